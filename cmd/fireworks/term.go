package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks/internal/term"
)

func newTermCmd(a *app) *cobra.Command {
	var cellW, cellH float64
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Launch shows in the terminal with the mouse or the space bar",
		RunE: func(cmd *cobra.Command, args []string) error {
			screen, err := term.Open()
			if err != nil {
				return err
			}
			// The host resizes the launcher to the real terminal.
			l, err := a.newLauncher(1, 1)
			if err != nil {
				screen.Fini()
				return err
			}
			h := term.New(screen, l, term.Options{
				CellWidth:  cellW,
				CellHeight: cellH,
				Frame:      a.cfg.Session.Frame,
				Logger:     a.log,
			})
			return h.Run(cmd.Context())
		},
	}
	cmd.Flags().Float64Var(&cellW, "cell-width", 8, "launcher units per terminal column")
	cmd.Flags().Float64Var(&cellH, "cell-height", 16, "launcher units per terminal row")
	return cmd
}
