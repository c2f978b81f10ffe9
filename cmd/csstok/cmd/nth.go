package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var nthCmd = &cobra.Command{
	Use:   "nth [file]",
	Short: "Run parse_an_plus_b and print the resulting {a, b} pair, e.g. for \"2n+1\"",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		ab, err := css.ParseAnPlusB(css.Decode(src), newDiagnostics())
		if err != nil {
			return err
		}
		return render(ab)
	},
}

func init() {
	rootCmd.AddCommand(nthCmd)
}
