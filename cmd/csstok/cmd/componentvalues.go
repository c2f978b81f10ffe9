package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var componentValueCmd = &cobra.Command{
	Use:   "component-value [file]",
	Short: "Run parse_component_value and print the single resulting component value",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		cv, err := css.ParseComponentValue(css.Decode(src), newDiagnostics())
		if err != nil {
			return err
		}
		return render(cv)
	},
}

var componentValuesCmd = &cobra.Command{
	Use:   "component-values [file]",
	Short: "Run parse_list_of_component_values and print the resulting component values",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		values := css.ParseListOfComponentValues(css.Decode(src), newDiagnostics())
		return render(values)
	},
}

var commaListCmd = &cobra.Command{
	Use:   "comma-list [file]",
	Short: "Run parse_comma_separated_list_of_component_values and print the resulting groups",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		groups := css.ParseCommaSeparatedListOfComponentValues(css.Decode(src), newDiagnostics())
		return render(groups)
	},
}

func init() {
	rootCmd.AddCommand(componentValueCmd, componentValuesCmd, commaListCmd)
}
