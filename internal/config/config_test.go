package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultBudgetPolicy(), cfg.Budget)
	assert.Equal(t, 60*time.Second, cfg.Timeouts.Generation)
	assert.Equal(t, 5*time.Minute, cfg.Timeouts.Plan)
	assert.Equal(t, "gemini", cfg.GenerationProvider)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BUDGET_OVERRUN_FACTOR", "2.25")
	t.Setenv("BUDGET_MAX_ATTEMPTS", "3")
	t.Setenv("PROVIDER_TIMEOUT", "3s")
	t.Setenv("GENERATION_PROVIDER", "openai")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 2.25, cfg.Budget.OverrunFactor)
	assert.Equal(t, 3, cfg.Budget.MaxAttempts)
	assert.Equal(t, 3*time.Second, cfg.Timeouts.Provider)
	assert.Equal(t, "openai", cfg.GenerationProvider)
}

func TestLoadRejectsInvalidBudgetPolicy(t *testing.T) {
	t.Setenv("BUDGET_MAX_ATTEMPTS", "0")

	_, err := Load()
	assert.Error(t, err)
}
