package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvSeed, EnvTickRate, EnvTileSize, EnvPlayerSpeed, EnvWalkers, EnvMap} {
		t.Setenv(name, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 20*time.Millisecond, cfg.TickInterval())
}

func TestLoadConfigFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvSeed, "42")
	t.Setenv(EnvTickRate, "25")
	t.Setenv(EnvTileSize, "16")
	t.Setenv(EnvPlayerSpeed, "3.5")
	t.Setenv(EnvWalkers, "2")
	t.Setenv(EnvMap, "maps/arena.txt")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Seed:        42,
		TickRate:    25,
		TileSize:    16,
		PlayerSpeed: 3.5,
		Walkers:     2,
		MapPath:     "maps/arena.txt",
	}, cfg)
	assert.Equal(t, 40*time.Millisecond, cfg.TickInterval())
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		env   string
		value string
	}{
		{"seed not a number", EnvSeed, "abc"},
		{"tick rate not a number", EnvTickRate, "fast"},
		{"tick rate zero", EnvTickRate, "0"},
		{"tile size negative", EnvTileSize, "-1"},
		{"player speed zero", EnvPlayerSpeed, "0"},
		{"walkers negative", EnvWalkers, "-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.env, tt.value)

			_, err := LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfigErrorNamesVariable(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWalkers, "many")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvWalkers)
}

func TestStateToggle(t *testing.T) {
	assert.Equal(t, StatePaused, StateRunning.Toggle())
	assert.Equal(t, StateRunning, StatePaused.Toggle())
	assert.Equal(t, "running", StateRunning.String())
	assert.Equal(t, "paused", StatePaused.String())
	assert.Equal(t, "unknown", State(9).String())
}

func TestDriverDeltaTime(t *testing.T) {
	d := NewDriver(DefaultConfig().TickInterval())
	defer d.Stop()

	assert.InDelta(t, 0.02, d.DeltaTime(), 1e-9)
	select {
	case <-d.C():
	case <-time.After(time.Second):
		t.Fatal("driver did not tick")
	}
}
