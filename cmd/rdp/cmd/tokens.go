package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/letter-rdp/internal/token"
	"github.com/spf13/cobra"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens [file]",
		Short: "Print the token stream of a program",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, source, err := readSource(cmd, args)
			if err != nil {
				return err
			}

			tokens, err := token.NewRuleTokenizer().Tokenize(source)
			if err != nil {
				return locate(name, err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "POS\tTYPE\tVALUE")
			for _, tok := range tokens {
				fmt.Fprintf(w, "%s\t%s\t%s\n", tok.Pos, tok.Type, tok.Value)
			}
			return w.Flush()
		},
	}
}
