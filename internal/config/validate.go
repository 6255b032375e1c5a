package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Vocab.StrongPrefixes) == 0 {
		return fmt.Errorf("vocab.strong_prefixes must not be empty")
	}
	for _, p := range c.Vocab.StrongPrefixes {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("vocab.strong_prefixes contains a blank prefix")
		}
	}

	switch c.Vocab.UnmatchedPolicy {
	case UnmatchedEcho, UnmatchedEmpty:
	default:
		return fmt.Errorf("vocab.unmatched_policy must be %q or %q (got %q)",
			UnmatchedEcho, UnmatchedEmpty, c.Vocab.UnmatchedPolicy)
	}

	if c.Suggest.MaxSuggestions <= 0 {
		return fmt.Errorf("suggest.max_suggestions must be > 0 (got %d)", c.Suggest.MaxSuggestions)
	}

	return nil
}
