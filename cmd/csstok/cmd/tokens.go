package cmd

import (
	"github.com/spf13/cobra"

	"github.com/lukehoban/csssyntax/css"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Run the tokenizer alone and print every token, including whitespace (comments produce no token)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		src, err := readInput(args)
		if err != nil {
			return err
		}
		t := css.NewTokenizer(css.Decode(src), newDiagnostics())
		var tokens []css.Token
		for {
			tok := t.Next()
			tokens = append(tokens, tok)
			if tok.Kind == css.TEOF {
				break
			}
		}
		return render(tokens)
	},
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}
