package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"landing/internal/platform/config"
)

func TestNewAppliesDefaults(t *testing.T) {
	cfg, err := config.New("")
	require.NoError(t, err)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 1000, cfg.ParticleCount)
	assert.Equal(t, 150.0, cfg.SphereRadius)
	assert.Equal(t, 1000, cfg.BreakpointPx)
	assert.Equal(t, time.Second/30, cfg.FramePeriod())
}

func TestNewReadsEnvironmentOverrides(t *testing.T) {
	t.Setenv("LANDING_FPS", "60")
	t.Setenv("LANDING_PARTICLES", "250")
	t.Setenv("LANDING_SEED", "42")
	t.Setenv("LANDING_CONTENT_DIR", "/tmp/content")

	cfg, err := config.New("ignored")
	require.NoError(t, err)
	assert.Equal(t, 60, cfg.FPS)
	assert.Equal(t, 250, cfg.ParticleCount)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "/tmp/content", cfg.ContentDir)
}

func TestNewRejectsInvalidValues(t *testing.T) {
	t.Setenv("LANDING_FPS", "0")
	_, err := config.New("")
	require.Error(t, err)
}

func TestNewRejectsMalformedEnv(t *testing.T) {
	t.Setenv("LANDING_PARTICLES", "many")
	_, err := config.New("")
	require.ErrorContains(t, err, "parse env")
}
