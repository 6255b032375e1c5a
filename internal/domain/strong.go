package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultStrongPrefixes are the recognized prefixes of a strong-number
// token. Matching is case-sensitive against each variant.
var DefaultStrongPrefixes = []string{"strong:", "STRONG:"}

// strongSeparator reports whether r separates tokens in a compound
// identifier string.
func strongSeparator(r rune) bool {
	return r == ' ' || r == ','
}

// KeyParser splits compound vocabulary identifier strings into normalized
// strong-number keys. The recognized prefixes are configuration, not
// package state, so callers can extend them (e.g. dataset-specific
// prefixes) without touching the parser.
type KeyParser struct {
	prefixes []string
}

// NewKeyParser creates a parser for the given prefixes.
// An empty list falls back to DefaultStrongPrefixes.
func NewKeyParser(prefixes []string) KeyParser {
	if len(prefixes) == 0 {
		prefixes = DefaultStrongPrefixes
	}
	return KeyParser{prefixes: prefixes}
}

// Parse splits identifiers on runs of spaces and commas and normalizes
// every recognized token into a padded key. A token is recognized when it
// carries one of the configured prefixes and has at least a letter and one
// digit after it. Unrecognized tokens are dropped; so are recognized
// tokens whose numeric suffix does not parse. Zero matches yield an empty,
// non-nil slice.
func (p KeyParser) Parse(identifiers string) []string {
	tokens := strings.FieldsFunc(identifiers, strongSeparator)

	keys := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		for _, prefix := range p.prefixes {
			if len(tok) <= len(prefix)+1 || !strings.HasPrefix(tok, prefix) {
				continue
			}
			key, err := PadStrongNumber(tok[len(prefix):])
			if err != nil {
				// Malformed suffix on an otherwise recognized token:
				// skipped per-token rather than failing the request.
				break
			}
			keys = append(keys, key)
			break
		}
	}
	return keys
}

// PadStrongNumber normalizes a bare strong number (letter plus digits,
// e.g. "G123") into its padded key form ("G0123").
func PadStrongNumber(strongNumber string) (string, error) {
	if len(strongNumber) < 2 {
		return "", fmt.Errorf("strong number %q too short: %w", strongNumber, ErrValidation)
	}

	n, err := strconv.Atoi(strongNumber[1:])
	if err != nil {
		return "", fmt.Errorf("strong number %q has a non-numeric suffix: %w", strongNumber, ErrValidation)
	}

	return fmt.Sprintf("%c%04d", strongNumber[0], n), nil
}
