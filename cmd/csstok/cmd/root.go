// Package cmd is the cobra command tree for csstok: a root command plus
// one subcommand per entry point.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lukehoban/csssyntax/css"
	"github.com/lukehoban/csssyntax/log"
)

var (
	rootCmd = &cobra.Command{
		Use:          "csstok",
		Short:        "csstok",
		SilenceUsage: true,
		Long:         `csstok tokenizes and parses CSS per CSS Syntax Module Level 3, printing the result of any of its entry points.`,
	}

	format string
)

// Execute executes the root command.
func Execute() error {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "repr", `output format: "repr" or "yaml"`)
	return rootCmd.Execute()
}

// readInput reads the file named by args[0], or stdin if no argument was
// given.
func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(args[0])
}

// render prints v per the --format flag.
func render(v interface{}) error {
	switch format {
	case "yaml":
		out, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(out))
		return nil
	default:
		repr.Println(v)
		return nil
	}
}

// newDiagnostics builds a css.Diagnostics that logs every parse error at
// Warn level with structured line/col/kind fields.
func newDiagnostics() css.Diagnostics {
	return func(e css.ParseError) {
		log.WithFields(log.WarnLevel, "parse error", map[string]interface{}{
			"line": e.Pos.Line,
			"col":  e.Pos.Col,
			"kind": e.Kind.String(),
		})
	}
}
