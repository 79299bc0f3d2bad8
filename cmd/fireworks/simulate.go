package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/phanxgames/fireworks"
)

func newSimulateCmd(a *app) *cobra.Command {
	var (
		width, height float64
		start         int64
		maxFrames     int
	)
	cmd := &cobra.Command{
		Use:   "simulate <script>",
		Short: "Replay a tap script on a fixed frame clock and print its snapshots as YAML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err := fireworks.LoadScript(data)
			if err != nil {
				return err
			}
			l, err := a.newLauncher(width, height)
			if err != nil {
				return err
			}

			snaps := fireworks.Simulate(l, runner, start, a.cfg.Session.Frame, maxFrames)
			if !runner.Done() {
				a.log.Warn("script did not finish", zap.Int("max_frames", maxFrames))
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string][]fireworks.Snapshot{"snapshots": snaps}); err != nil {
				return fmt.Errorf("write snapshots: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().Float64Var(&width, "width", 1080, "screen width")
	cmd.Flags().Float64Var(&height, "height", 1920, "screen height")
	cmd.Flags().Int64Var(&start, "start", 0, "clock value of the first frame, in Unix milliseconds")
	cmd.Flags().IntVar(&maxFrames, "max-frames", 10000, "stop after this many frames")
	return cmd
}
