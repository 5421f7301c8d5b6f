package app

import (
	"testing"

	"github.com/juju/errors"
	flag "github.com/juju/gnuflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-sand/internal/sims/sand"
)

func parse(t *testing.T, args ...string) (*Config, error) {
	t.Helper()
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	return cfg, fs.Parse(true, args)
}

func TestBindDefaults(t *testing.T) {
	cfg, err := parse(t)
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.TPS)
	sc, err := cfg.SandConfig()
	require.NoError(t, err)
	assert.Equal(t, sand.DefaultConfig(), sc)
}

func TestBindOverrides(t *testing.T) {
	cfg, err := parse(t, "--tps", "30", "--set", "n=20", "--set", "scene=basin", "--set", "n=24", "--sound")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.TPS)
	assert.True(t, cfg.Sound)
	sc, err := cfg.SandConfig()
	require.NoError(t, err)
	assert.Equal(t, 24, sc.Size)
	assert.Equal(t, sand.SceneBasin, sc.Scene)
}

func TestTickRateClampsNonPositive(t *testing.T) {
	for arg, want := range map[string]int{"30": 30, "0": 60, "-5": 60} {
		cfg, err := parse(t, "--tps="+arg)
		require.NoError(t, err)
		assert.Equal(t, want, cfg.TickRate(), "--tps %s", arg)
	}
}

func TestMalformedOverride(t *testing.T) {
	_, err := parse(t, "--set", "novalue")
	assert.Error(t, err)

	cfg, err := parse(t, "--set", "gravity=9")
	require.NoError(t, err)
	_, err = cfg.SandConfig()
	assert.True(t, errors.IsNotValid(errors.Cause(err)), "%v", err)
}

func TestConfigureLogging(t *testing.T) {
	cfg := NewConfig()
	cfg.Log = "<root>=WARNING;madsand.app=DEBUG"
	assert.NoError(t, cfg.ConfigureLogging())
	cfg.Log = "<root>=LOUD"
	assert.Error(t, cfg.ConfigureLogging())
}
