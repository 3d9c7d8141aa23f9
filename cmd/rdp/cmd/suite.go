package cmd

import (
	"fmt"
	"log/slog"

	"github.com/DjordjeVuckovic/letter-rdp/internal/suite"
	"github.com/DjordjeVuckovic/letter-rdp/internal/suite/report"
	"github.com/spf13/cobra"
)

func newSuiteCmd() *cobra.Command {
	var (
		workers int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "suite <file.yaml>...",
		Short: "Run YAML parser suites and report the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := suite.New(suite.Config{Workers: workers})

			results := make([]*suite.Result, 0, len(args))
			for _, path := range args {
				loaded, err := suite.LoadFromFile(path)
				if err != nil {
					return err
				}
				slog.Debug("running suite", "name", loaded.Suite.Name, "path", loaded.Path, "cases", len(loaded.Suite.Cases))

				res, err := runner.Run(cmd.Context(), loaded.Suite)
				if err != nil {
					return err
				}
				results = append(results, res)
			}

			rep := report.New(results)
			report.WriteTable(rep, cmd.OutOrStdout())

			if output != "" {
				if err := report.WriteJSON(rep, output); err != nil {
					return err
				}
				slog.Info("report written", "path", output)
			}

			if !rep.OK() {
				return fmt.Errorf("%d of %d cases failed", rep.Summary.Failed, rep.Summary.Cases)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "Cases parsed concurrently (0 = GOMAXPROCS)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a JSON report to this path")
	return cmd
}
