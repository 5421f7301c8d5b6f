package app

import (
	"slices"
	"strings"

	"github.com/juju/errors"
	flag "github.com/juju/gnuflag"
	"github.com/juju/loggo"

	"mad-sand/internal/sims/sand"
)

// Config represents the command-line parameters shared by the frontends.
type Config struct {
	TPS      int
	Seed     int64
	HUDWidth int
	Sound    bool
	Log      string
	Sets     KeyValues
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{TPS: 60, HUDWidth: 220, Log: "<root>=WARNING"}
}

// TickRate returns the --tps value, falling back to 60 when it is not
// positive.
func (c *Config) TickRate() int {
	if c.TPS <= 0 {
		return 60
	}
	return c.TPS
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for reset (0 uses the configured seed)")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the parameter panel in pixels (0 hides it)")
	fs.BoolVar(&c.Sound, "sound", c.Sound, "click when painting")
	fs.StringVar(&c.Log, "log", c.Log, "logging configuration, e.g. <root>=INFO;madsand.sand=DEBUG")
	fs.Var(&c.Sets, "set", "world option as key=value (repeatable): "+strings.Join(sand.Keys(), ", "))
}

// SandConfig validates the --set overrides and builds the world config.
func (c *Config) SandConfig() (sand.Config, error) {
	m, err := c.Sets.Map()
	if err != nil {
		return sand.Config{}, errors.Trace(err)
	}
	return sand.FromMap(m), nil
}

// ConfigureLogging applies the --log value to the loggo registry.
func (c *Config) ConfigureLogging() error {
	if c.Log == "" {
		return nil
	}
	if err := loggo.ConfigureLoggers(c.Log); err != nil {
		return errors.Annotatef(err, "bad -log value %q", c.Log)
	}
	return nil
}

// KeyValues collects repeated key=value flags.
type KeyValues []string

// String implements flag.Value.
func (kv *KeyValues) String() string { return strings.Join(*kv, ",") }

// Set implements flag.Value.
func (kv *KeyValues) Set(s string) error {
	if _, _, err := splitKeyValue(s); err != nil {
		return err
	}
	*kv = append(*kv, s)
	return nil
}

// Map returns the collected pairs. Later values win. Keys the world does
// not understand are rejected.
func (kv KeyValues) Map() (map[string]string, error) {
	known := sand.Keys()
	out := make(map[string]string, len(kv))
	for _, item := range kv {
		k, v, err := splitKeyValue(item)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(known, k) {
			return nil, errors.NotValidf("option %q", k)
		}
		out[k] = v
	}
	return out, nil
}

func splitKeyValue(s string) (string, string, error) {
	k, v, ok := strings.Cut(s, "=")
	k = strings.TrimSpace(k)
	if !ok || k == "" {
		return "", "", errors.NotValidf("option %q (want key=value)", s)
	}
	return k, strings.TrimSpace(v), nil
}
