package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		Database: DatabaseConfig{DSN: "postgres://u:p@localhost:5432/lexicon"},
		Vocab: VocabConfig{
			StrongPrefixes:  []string{"strong:", "STRONG:"},
			UnmatchedPolicy: UnmatchedEcho,
		},
		Suggest: SuggestConfig{
			IndexPath:      "./data/suggest.bleve",
			MaxSuggestions: 50,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

func TestConfig_Validate_OK(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate_EmptyPrefixes(t *testing.T) {
	cfg := validConfig()
	cfg.Vocab.StrongPrefixes = nil

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "strong_prefixes")
}

func TestConfig_Validate_BlankPrefix(t *testing.T) {
	cfg := validConfig()
	cfg.Vocab.StrongPrefixes = []string{"strong:", "  "}

	require.Error(t, cfg.Validate())
}

func TestConfig_Validate_UnknownPolicy(t *testing.T) {
	cfg := validConfig()
	cfg.Vocab.UnmatchedPolicy = "panic"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unmatched_policy")
}

func TestConfig_Validate_MaxSuggestions(t *testing.T) {
	cfg := validConfig()
	cfg.Suggest.MaxSuggestions = 0

	require.Error(t, cfg.Validate())
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("DATABASE_DSN", "postgres://u:p@localhost:5432/lexicon")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"strong:", "STRONG:"}, cfg.Vocab.StrongPrefixes)
	assert.Equal(t, UnmatchedEcho, cfg.Vocab.UnmatchedPolicy)
	assert.Equal(t, 50, cfg.Suggest.MaxSuggestions)
	assert.Equal(t, "info", cfg.Log.Level)
}
