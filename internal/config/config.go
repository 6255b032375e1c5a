package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Vocab    VocabConfig    `yaml:"vocab"`
	Suggest  SuggestConfig  `yaml:"suggest"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// VocabConfig holds vocabulary service settings.
type VocabConfig struct {
	// StrongPrefixes are the recognized strong-number token prefixes,
	// matched case-sensitively against each variant.
	StrongPrefixes []string `yaml:"strong_prefixes" env:"VOCAB_STRONG_PREFIXES" env-separator:"," env-default:"strong:,STRONG:"`

	// UnmatchedPolicy decides what the field getters return when keys
	// parse but no lexicon record matches: "echo" returns the raw input
	// verbatim, "empty" returns "".
	UnmatchedPolicy string `yaml:"unmatched_policy" env:"VOCAB_UNMATCHED_POLICY" env-default:"echo"`
}

// SuggestConfig holds suggestion index settings.
type SuggestConfig struct {
	IndexPath      string `yaml:"index_path"      env:"SUGGEST_INDEX_PATH"      env-default:"./data/suggest.bleve"`
	MaxSuggestions int    `yaml:"max_suggestions" env:"SUGGEST_MAX_SUGGESTIONS" env-default:"50"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// Unmatched-policy values for VocabConfig.UnmatchedPolicy.
const (
	UnmatchedEcho  = "echo"
	UnmatchedEmpty = "empty"
)
