package main

import (
	"github.com/povarna/advent-of-code-2021/internal/report"
	"github.com/spf13/cobra"
)

func newCheckCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [day...]",
		Short: "Verify solvers against their sample inputs",
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := a.selectDays(args)
			if err != nil {
				return err
			}

			writer, err := report.NewWriter(cmd.OutOrStdout(), a.deps.Config.Format, a.deps.Logger)
			if err != nil {
				return err
			}

			answers, err := a.deps.Runner.CheckAll(cmd.Context(), days)
			if werr := writeAnswers(writer, answers); werr != nil {
				return werr
			}
			if err != nil {
				return err
			}

			a.deps.Logger.Info().Int("checked", len(answers)).Msg("All sample checks passed")
			return nil
		},
	}
}
