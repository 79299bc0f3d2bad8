package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/phanxgames/fireworks"
	"github.com/phanxgames/fireworks/internal/audio"
	"github.com/phanxgames/fireworks/internal/config"
	"github.com/phanxgames/fireworks/internal/observability"
)

// Version is set at build time with -ldflags "-X main.Version=...".
var Version = "dev"

// app carries what PersistentPreRunE resolved to the subcommands.
type app struct {
	cfgFile string
	cfg     *config.Config
	log     *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "fireworks",
		Short:         "Launch a formation of fireworks from a tapped element.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = observability.NewStderrLogger(cfg.Logger)
			a.log.Debug("configuration loaded", zap.String("file", a.cfgFile))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./fireworks.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newPlayCmd(a),
		newTermCmd(a),
		newSimulateCmd(a),
		newFormationCmd(a),
	)
	return root
}

// newEngine builds the configured engine with phase events routed to the
// debug log and, when enabled, the burst sound.
func (a *app) newEngine() (*fireworks.Engine, error) {
	e, err := a.cfg.NewEngine()
	if err != nil {
		return nil, err
	}
	events := a.log.Named("events")
	sinks := fireworks.MultiSink{
		fireworks.EventSinkFunc(func(ev fireworks.PhaseEvent) {
			events.Debug("phase",
				zap.Stringer("type", ev.Type),
				zap.Int64("at", ev.At),
				zap.Float64("x", ev.Position.X), zap.Float64("y", ev.Position.Y))
		}),
	}
	if a.cfg.Audio.Enabled {
		p, err := audio.NewPlayer(a.cfg.Audio.Frequency, a.cfg.Audio.Length)
		if err != nil {
			// Shows run fine without sound.
			a.log.Warn("audio disabled", zap.Error(err))
		} else {
			sinks = append(sinks, p)
		}
	}
	e.Sink = sinks
	return e, nil
}

// newLauncher builds a launcher for a w×h screen.
func (a *app) newLauncher(w, h float64) (*fireworks.Launcher, error) {
	e, err := a.newEngine()
	if err != nil {
		return nil, err
	}
	lc := a.cfg.LauncherConfig(w, h)
	lc.Logger = a.log.Named("launcher")
	return fireworks.NewLauncher(e, lc), nil
}
