package main

import (
	"context"
	"errors"
	"time"

	"github.com/povarna/advent-of-code-2021/internal/input"
	"github.com/povarna/advent-of-code-2021/internal/report"
	"github.com/povarna/advent-of-code-2021/internal/runner"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newSolveCmd(a *app) *cobra.Command {
	var skipChecks bool
	var inputName string

	cmd := &cobra.Command{
		Use:   "solve [day...]",
		Short: "Solve the puzzle inputs, checking each day against its sample first",
		RunE: func(cmd *cobra.Command, args []string) error {
			startTime := time.Now()
			logger := a.deps.Logger

			days, err := a.selectDays(args)
			if err != nil {
				return err
			}

			r := a.deps.Runner
			if inputName != "" {
				if len(days) != 1 {
					return errors.New("--input requires exactly one day")
				}
				days[0].Input = inputName
				if inputName == "-" {
					logger.Info().Msg("Reading from stdin")
					r = runner.NewRunner(a.deps.Registry, stdinSource(cmd, a.deps.Loader, logger), logger)
				}
			}

			writer, err := report.NewWriter(cmd.OutOrStdout(), a.deps.Config.Format, logger)
			if err != nil {
				return err
			}

			answers, err := r.SolveAll(cmd.Context(), days, !skipChecks)
			if werr := writeAnswers(writer, answers); werr != nil {
				return werr
			}
			if err != nil {
				return err
			}

			logger.Info().
				Int("days", len(answers)).
				Dur("duration", time.Since(startTime)).
				Msg("Processing complete")

			return nil
		},
	}

	cmd.Flags().BoolVar(&skipChecks, "skip-checks", false, "Do not verify sample inputs before solving")
	cmd.Flags().StringVar(&inputName, "input", "", "Input name or .txt path for a single day, '-' for stdin")

	return cmd
}

// stdinSource serves "-" from standard input and every other name, such as
// sample inputs, from the file loader.
func stdinSource(cmd *cobra.Command, loader *input.FileLoader, logger *zerolog.Logger) input.LinesFunc {
	return func(ctx context.Context, name string) ([]string, error) {
		if name != "-" {
			return loader.Lines(ctx, name)
		}
		lines, err := input.NewReader(cmd.InOrStdin(), logger).ReadAll(ctx)
		if err != nil {
			return nil, err
		}
		return input.Texts(lines), nil
	}
}
