package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var declarationsCmd = &cobra.Command{
	Use:   "declarations [file]",
	Short: "Run parse_list_of_declarations and print the resulting declarations",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		decls := css.ParseListOfDeclarations(css.Decode(src), newDiagnostics())
		return render(decls)
	},
}

var declarationCmd = &cobra.Command{
	Use:   "declaration [file]",
	Short: "Run parse_declaration and print the single resulting declaration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		decl, err := css.ParseDeclaration(css.Decode(src), newDiagnostics())
		if err != nil {
			return err
		}
		return render(decl)
	},
}

func init() {
	rootCmd.AddCommand(declarationsCmd, declarationCmd)
}
