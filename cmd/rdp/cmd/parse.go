package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/DjordjeVuckovic/letter-rdp/internal/parser"
	"github.com/spf13/cobra"
)

const (
	formatSexpr = "sexpr"
	formatJSON  = "json"
)

func newParseCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "parse [file]",
		Short: "Parse a program and print its syntax tree",
		Long: `Parses a program read from file (or stdin) and prints the syntax tree.

Formats:
  sexpr - compact s-expression, e.g. (program (expr (+ 1 2)))
  json  - indented JSON with a "type" field on every node`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatSexpr && format != formatJSON {
				return fmt.Errorf("unknown format %q (want %s or %s)", format, formatSexpr, formatJSON)
			}

			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			program, err := parser.New().Parse(source)
			if err != nil {
				return locate(name, err)
			}

			out := cmd.OutOrStdout()
			if format == formatSexpr {
				_, err = fmt.Fprintln(out, program.String())
				return err
			}

			data, err := json.MarshalIndent(program, "", "  ")
			if err != nil {
				return fmt.Errorf("encode ast: %w", err)
			}
			_, err = fmt.Fprintln(out, string(data))
			return err
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatSexpr, "Output format (sexpr, json)")
	return cmd
}
