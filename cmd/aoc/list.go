package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, day := range a.deps.Registry.Days() {
				solver, err := a.deps.Registry.Get(day)
				if err != nil {
					return err
				}
				d := a.deps.Config.Lookup(day)
				sample := "-"
				if d.Sample != nil {
					sample = d.Sample.Input
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%02d  %-20s input=%s sample=%s\n", day, solver.Title(), d.Input, sample)
			}
			return nil
		},
	}
}
