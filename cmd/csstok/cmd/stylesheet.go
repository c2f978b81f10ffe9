package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var stylesheetCmd = &cobra.Command{
	Use:   "stylesheet [file]",
	Short: "Run parse_stylesheet and print the resulting Stylesheet",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		sheet := css.ParseStylesheet(css.Decode(src), newDiagnostics())
		return render(sheet)
	},
}

func init() {
	rootCmd.AddCommand(stylesheetCmd)
}
