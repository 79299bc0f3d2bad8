package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFormationCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "formation",
		Short: "Print the configured formation and its rocket count",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.cfg.Formation()
			if err != nil {
				return err
			}
			if err := f.Validate(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n%d rockets\n", f, f.Popcount())
			return nil
		},
	}
}
