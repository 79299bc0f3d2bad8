// Package config loads fireworks settings from an optional YAML file and
// FIREWORKS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/phanxgames/fireworks"
)

// Config holds the entire application configuration.
type Config struct {
	Logger   LoggerConfig   `mapstructure:"logger" yaml:"logger"`
	Engine   EngineConfig   `mapstructure:"engine" yaml:"engine"`
	Session  SessionConfig  `mapstructure:"session" yaml:"session"`
	Launcher LauncherConfig `mapstructure:"launcher" yaml:"launcher"`
	Window   WindowConfig   `mapstructure:"window" yaml:"window"`
	Render   RenderConfig   `mapstructure:"render" yaml:"render"`
	Audio    AudioConfig    `mapstructure:"audio" yaml:"audio"`
}

// LoggerConfig selects log level, encoding and optional rotated file output.
type LoggerConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int    `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int    `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// EngineConfig holds show timing and the formation source.
type EngineConfig struct {
	Flight        time.Duration `mapstructure:"flight" yaml:"flight"`
	LaunchStagger time.Duration `mapstructure:"launch_stagger" yaml:"launch_stagger"`
	StarMin       time.Duration `mapstructure:"star_min" yaml:"star_min"`
	StarMax       time.Duration `mapstructure:"star_max" yaml:"star_max"`
	Poof          time.Duration `mapstructure:"poof" yaml:"poof"`
	// Formation is a path to a YAML formation file. Empty uses the built-in one.
	Formation string `mapstructure:"formation" yaml:"formation"`
	// Seed pins the random source for reproducible shows. Zero seeds randomly.
	Seed uint64 `mapstructure:"seed" yaml:"seed"`
}

// SessionConfig bounds each show.
type SessionConfig struct {
	Budget time.Duration `mapstructure:"budget" yaml:"budget"`
	Frame  time.Duration `mapstructure:"frame" yaml:"frame"`
}

// LauncherConfig controls the formation band and tap handling.
type LauncherConfig struct {
	BandHeight float64       `mapstructure:"band_height" yaml:"band_height"`
	Margin     float64       `mapstructure:"margin" yaml:"margin"`
	Debounce   time.Duration `mapstructure:"debounce" yaml:"debounce"`
	// TapSize is the side of the square treated as the tapped element when
	// a host only knows the pointer position.
	TapSize float64 `mapstructure:"tap_size" yaml:"tap_size"`
}

// WindowConfig sizes the overlay window.
type WindowConfig struct {
	Width       int    `mapstructure:"width" yaml:"width"`
	Height      int    `mapstructure:"height" yaml:"height"`
	Title       string `mapstructure:"title" yaml:"title"`
	Transparent bool   `mapstructure:"transparent" yaml:"transparent"`
	ShowStats   bool   `mapstructure:"show_stats" yaml:"show_stats"`
	// ScreenshotDir receives PNG captures taken with the S key.
	ScreenshotDir string `mapstructure:"screenshot_dir" yaml:"screenshot_dir"`
}

// RenderConfig names the gween easings hosts use to shade stars and poofs.
type RenderConfig struct {
	StarEase string `mapstructure:"star_ease" yaml:"star_ease"`
	PoofEase string `mapstructure:"poof_ease" yaml:"poof_ease"`
}

// AudioConfig controls the burst sound.
type AudioConfig struct {
	Enabled   bool          `mapstructure:"enabled" yaml:"enabled"`
	Frequency float64       `mapstructure:"frequency" yaml:"frequency"`
	Length    time.Duration `mapstructure:"length" yaml:"length"`
}

// SetDefaults installs the reference behavior as viper defaults.
func SetDefaults(v *viper.Viper) {
	// -- Logger --
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "fireworks")
	v.SetDefault("logger.log_file", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 7)
	v.SetDefault("logger.compress", false)

	// -- Engine --
	v.SetDefault("engine.flight", "1000ms")
	v.SetDefault("engine.launch_stagger", "250ms")
	v.SetDefault("engine.star_min", "750ms")
	v.SetDefault("engine.star_max", "1000ms")
	v.SetDefault("engine.poof", "200ms")
	v.SetDefault("engine.formation", "")
	v.SetDefault("engine.seed", 0)

	// -- Session --
	v.SetDefault("session.budget", "5s")
	v.SetDefault("session.frame", "16ms")

	// -- Launcher --
	v.SetDefault("launcher.band_height", 400)
	v.SetDefault("launcher.margin", 20)
	v.SetDefault("launcher.debounce", "500ms")
	v.SetDefault("launcher.tap_size", 48)

	// -- Window --
	v.SetDefault("window.width", 1080)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.title", "Fireworks")
	v.SetDefault("window.transparent", false)
	v.SetDefault("window.show_stats", true)
	v.SetDefault("window.screenshot_dir", "screenshots")

	// -- Render --
	v.SetDefault("render.star_ease", "out-back")
	v.SetDefault("render.poof_ease", "out-quad")

	// -- Audio --
	v.SetDefault("audio.enabled", false)
	v.SetDefault("audio.frequency", 660)
	v.SetDefault("audio.length", "60ms")
}

// NewDefaultConfig returns the configuration built from defaults alone.
func NewDefaultConfig() *Config {
	v := viper.New()
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		// Defaults are static; failing here is a programming error.
		panic(fmt.Sprintf("failed to unmarshal default config: %v", err))
	}
	return &cfg
}

// NewViper returns a viper instance with defaults and environment binding
// set up. path, when non-empty, is read as the config file; otherwise
// ./fireworks.yaml is used if present.
func NewViper(path string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("fireworks")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FIREWORKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}
	return v, nil
}

// NewConfigFromViper unmarshals and validates a configuration.
func NewConfigFromViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Load reads path (or ./fireworks.yaml), applies environment overrides and
// validates the result.
func Load(path string) (*Config, error) {
	v, err := NewViper(path)
	if err != nil {
		return nil, err
	}
	return NewConfigFromViper(v)
}

// Validate checks timings, ranges and easing names.
func (c *Config) Validate() error {
	e := c.Engine
	switch {
	case e.Flight <= 0:
		return fmt.Errorf("engine.flight must be positive")
	case e.LaunchStagger < 0 || e.LaunchStagger >= e.Flight:
		return fmt.Errorf("engine.launch_stagger must be in [0, engine.flight)")
	case e.StarMin <= 0 || e.StarMax < e.StarMin:
		return fmt.Errorf("engine.star_min must be positive and not above engine.star_max")
	case e.Poof <= 0:
		return fmt.Errorf("engine.poof must be positive")
	}
	if c.Session.Budget <= 0 || c.Session.Frame <= 0 {
		return fmt.Errorf("session.budget and session.frame must be positive")
	}
	if c.Launcher.BandHeight <= 0 || c.Launcher.Margin < 0 || c.Launcher.Debounce < 0 || c.Launcher.TapSize <= 0 {
		return fmt.Errorf("launcher.band_height and launcher.tap_size must be positive, margin and debounce non-negative")
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window.width and window.height must be positive")
	}
	for key, name := range map[string]string{"render.star_ease": c.Render.StarEase, "render.poof_ease": c.Render.PoofEase} {
		if _, ok := fireworks.Easing(name); !ok {
			return fmt.Errorf("%s: unknown easing %q", key, name)
		}
	}
	if c.Audio.Enabled && (c.Audio.Frequency <= 0 || c.Audio.Length <= 0) {
		return fmt.Errorf("audio.frequency and audio.length must be positive when audio is enabled")
	}
	return nil
}

// Timing converts the engine section to fireworks.Timing.
func (c *Config) Timing() fireworks.Timing {
	e := c.Engine
	return fireworks.Timing{
		Flight:        e.Flight.Milliseconds(),
		LaunchStagger: e.LaunchStagger.Milliseconds(),
		Star:          fireworks.Range{Min: e.StarMin.Milliseconds(), Max: e.StarMax.Milliseconds()},
		Poof:          e.Poof.Milliseconds(),
	}
}

// Formation returns the configured formation, loading it from disk when a
// path is set.
func (c *Config) Formation() (fireworks.Formation, error) {
	if c.Engine.Formation == "" {
		return fireworks.DefaultFormation, nil
	}
	return fireworks.LoadFormation(c.Engine.Formation)
}

// LauncherConfig builds a fireworks.LauncherConfig for a w×h screen.
func (c *Config) LauncherConfig(w, h float64) fireworks.LauncherConfig {
	return fireworks.LauncherConfig{
		ScreenWidth:  w,
		ScreenHeight: h,
		BandHeight:   c.Launcher.BandHeight,
		Margin:       c.Launcher.Margin,
		Debounce:     c.Launcher.Debounce,
		Session: fireworks.SessionConfig{
			Budget: c.Session.Budget,
			Frame:  c.Session.Frame,
		},
	}
}

// NewEngine builds an engine with the configured timing, formation and seed.
func (c *Config) NewEngine() (*fireworks.Engine, error) {
	f, err := c.Formation()
	if err != nil {
		return nil, err
	}
	var src fireworks.Source
	if c.Engine.Seed != 0 {
		src = rand.New(rand.NewPCG(c.Engine.Seed, c.Engine.Seed))
	}
	e := fireworks.NewEngine(src)
	e.Timing = c.Timing()
	e.Formation = f
	return e, nil
}
