package main

import (
	"github.com/spf13/cobra"

	"github.com/phanxgames/fireworks"
	"github.com/phanxgames/fireworks/internal/overlay"
)

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Open a window and launch a show wherever it is clicked",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := a.cfg.Window
			l, err := a.newLauncher(float64(w.Width), float64(w.Height))
			if err != nil {
				return err
			}
			star, _ := fireworks.Easing(a.cfg.Render.StarEase)
			poof, _ := fireworks.Easing(a.cfg.Render.PoofEase)

			g := overlay.NewGame(l, overlay.Options{
				Width:         w.Width,
				Height:        w.Height,
				Title:         w.Title,
				Transparent:   w.Transparent,
				ShowStats:     w.ShowStats,
				ScreenshotDir: w.ScreenshotDir,
				TapSize:       a.cfg.Launcher.TapSize,
				Style:         overlay.DefaultStyle(star, poof),
				Logger:        a.log,
			})
			return overlay.Run(g)
		},
	}
}
