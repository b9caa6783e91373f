package config

import (
	"os"
	"strings"

	"github.com/go-kit/log"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"pixlife/internal/session"
	"pixlife/pkg/life"
)

// Defaults match a 600x400 window drawn at seven pixels per cell.
const (
	DefaultWidth   = 85
	DefaultHeight  = 57
	DefaultScale   = 7
	DefaultFPS     = 60
	DefaultRate    = 30
	DefaultSeed    = 112
	DefaultHistory = session.DefaultHistoryLen
)

// Config holds every user-tunable setting.
type Config struct {
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	Scale    int    `yaml:"scale"`
	FPS      int    `yaml:"fps"`
	Rate     int    `yaml:"rate"`
	Seed     int64  `yaml:"seed"`
	Topology string `yaml:"topology"`
	History  int    `yaml:"history"`
	HUD      bool   `yaml:"hud"`
	LogLevel string `yaml:"log_level"`
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Scale:    DefaultScale,
		FPS:      DefaultFPS,
		Rate:     DefaultRate,
		Seed:     DefaultSeed,
		Topology: life.Bounded.String(),
		History:  DefaultHistory,
		HUD:      true,
		LogLevel: "info",
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[config.Load] failed to read file: %s", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "[config.Load] failed to parse file: %s", path)
	}
	return cfg, nil
}

// Bind attaches the configuration to the provided FlagSet, using the
// current field values as flag defaults.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.FPS, "fps", c.FPS, "driver frames per second")
	fs.IntVar(&c.Rate, "rate", c.Rate, "generations per second while playing")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for randomize")
	fs.StringVar(&c.Topology, "topology", c.Topology, "edge policy: bounded or toroidal")
	fs.IntVar(&c.History, "history", c.History, "population samples to keep")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the status panel")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "debug, info, warn or error")
}

// Merge copies into c every value from flags whose flag was set explicitly
// on fs. flags must be the Config that was bound to fs.
func (c *Config) Merge(fs *pflag.FlagSet, flags *Config) {
	set := func(name string, apply func()) {
		if f := fs.Lookup(name); f != nil && f.Changed {
			apply()
		}
	}
	set("width", func() { c.Width = flags.Width })
	set("height", func() { c.Height = flags.Height })
	set("scale", func() { c.Scale = flags.Scale })
	set("fps", func() { c.FPS = flags.FPS })
	set("rate", func() { c.Rate = flags.Rate })
	set("seed", func() { c.Seed = flags.Seed })
	set("topology", func() { c.Topology = flags.Topology })
	set("history", func() { c.History = flags.History })
	set("hud", func() { c.HUD = flags.HUD })
	set("log-level", func() { c.LogLevel = flags.LogLevel })
}

// Resolve layers defaults, the optional YAML file at path and explicitly set
// flags, then validates the result.
func Resolve(path string, fs *pflag.FlagSet, flags *Config) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		loaded, err := Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.Merge(fs, flags)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	positive := []struct {
		name  string
		value int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"scale", c.Scale},
		{"fps", c.FPS},
		{"rate", c.Rate},
		{"history", c.History},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return errors.Errorf("config: %s must be positive, got %d", p.name, p.value)
		}
	}
	if _, err := life.ParseTopology(c.Topology); err != nil {
		return errors.Wrap(err, "config")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return errors.Errorf("config: unknown log level %q", c.LogLevel)
	}
	return nil
}

// SessionOptions converts the configuration into session options. It
// assumes Validate has succeeded.
func (c *Config) SessionOptions(logger log.Logger) session.Options {
	topo, _ := life.ParseTopology(c.Topology)
	return session.Options{
		Width:      c.Width,
		Height:     c.Height,
		Seed:       c.Seed,
		Topology:   topo,
		HistoryLen: c.History,
		Logger:     logger,
	}
}
