package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [file]",
	Short: "Run parse_list_of_rules and print the resulting rules",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		rules := css.ParseListOfRules(css.Decode(src), newDiagnostics())
		return render(rules)
	},
}

var ruleCmd = &cobra.Command{
	Use:   "rule [file]",
	Short: "Run parse_rule and print the single resulting rule",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		rule, err := css.ParseRule(css.Decode(src), newDiagnostics())
		if err != nil {
			return err
		}
		return render(rule)
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd, ruleCmd)
}
