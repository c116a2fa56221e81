package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Sim  string
	TPS  int
	Seed int64
	HUD  int

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "sand", TPS: 60, Seed: 42, HUD: 220}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "simulation option in key=value form (repeatable)")
}

// Options returns the overrides as the map handed to simulation factories.
func (c *Config) Options() map[string]string {
	if len(c.Overrides) == 0 {
		return nil
	}
	opts := make(map[string]string, len(c.Overrides))
	for _, kv := range c.Overrides {
		key, value, _ := strings.Cut(kv, "=")
		opts[key] = value
	}
	return opts
}

// KVList collects repeated key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set validates and appends one key=value pair.
func (l *KVList) Set(value string) error {
	key, _, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}
