package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/DjordjeVuckovic/letter-rdp/internal/apperr"
	"github.com/DjordjeVuckovic/letter-rdp/pkg/config/env"
	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0"
	GitCommit = "development"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "rdp",
		Short: "Tokenizer and recursive-descent parser for a small statement language",
		Long: `rdp tokenizes and parses programs made of numbers, strings,
identifiers, arithmetic, assignments, let declarations and blocks.

Commands:
  parse   - print the syntax tree of a program
  tokens  - print the token stream of a program
  suite   - check parser output against YAML case files`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := env.LogLevel()
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetLogLoggerLevel(level)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	root.AddCommand(
		newParseCmd(),
		newTokensCmd(),
		newSuiteCmd(),
		newVersionCmd(),
	)
	return root
}

func Execute() error {
	return newRootCmd().Execute()
}

const stdinName = "<stdin>"

// readSource reads the file named by args[0], or the command's input when
// no file is given. It also returns the name used in error messages.
func readSource(cmd *cobra.Command, args []string) (name, source string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", fmt.Errorf("read stdin: %w", err)
		}
		return stdinName, string(data), nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("read source: %w", err)
	}
	return args[0], string(data), nil
}

// locate prefixes lexical and syntax errors with the input name. Other errors
// pass through unchanged.
func locate(name string, err error) error {
	if apperr.IsSourceError(err) {
		return fmt.Errorf("%s: %w", name, err)
	}
	return err
}
