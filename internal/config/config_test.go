package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "roomatch", cfg.Database.Namespace)

	// Scoring policy defaults are part of the compatibility contract.
	assert.Equal(t, 1, cfg.Matching.ReservedQuestionID)
	assert.Equal(t, 2, cfg.Matching.YearQuestionID)
	assert.Equal(t, 8, cfg.Matching.CriticalQuestionID)
	assert.Equal(t, 4, cfg.Matching.RadioScaleMax)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MATCH_DEFAULT_LIMIT", "10")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Matching.DefaultLimit)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestValidate_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.NoError(t, cfg.Validate())
}

func TestValidate_BadEnv(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Env = "staging"
	assert.Error(t, cfg.Validate())
}

func TestValidate_BadLimits(t *testing.T) {
	cfg, _ := Load()
	cfg.Matching.DefaultLimit = 100
	cfg.Matching.MaxLimit = 50
	assert.Error(t, cfg.Validate())
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg, _ := Load()
	cfg.Server.Port = ""
	cfg.Database.Host = ""
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SERVER_PORT")
	assert.Contains(t, err.Error(), "DB_HOST")
}
