// Package suggest implements bounded prefix suggestions over the term
// dictionaries of the suggestion index.
package suggest

import (
	"context"
	"log/slog"

	"github.com/blevesearch/bleve/v2"

	"github.com/stepbible/step-vocab/internal/adapter/search"
	"github.com/stepbible/step-vocab/internal/config"
)

// Service answers prefix-suggestion queries against a single index handle.
// The index is owned and managed externally; the service only reads.
type Service struct {
	log *slog.Logger
	idx bleve.Index
	max int
}

// NewService creates a new Suggest service.
func NewService(logger *slog.Logger, idx bleve.Index, cfg config.SuggestConfig) *Service {
	return &Service{
		log: logger.With("service", "suggest"),
		idx: idx,
		max: cfg.MaxSuggestions,
	}
}

// Suggest returns up to the configured maximum number of distinct index
// terms of fieldName that start with prefix, in dictionary order. An empty
// or exhausted dictionary yields an empty, non-nil slice.
func (s *Service) Suggest(ctx context.Context, fieldName, prefix string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	terms, err := search.TermsWithPrefix(s.idx, fieldName, prefix, s.max)
	if err != nil {
		return nil, err
	}

	s.log.Debug("prefix suggestions",
		"field", fieldName,
		"prefix", prefix,
		"count", len(terms),
	)

	return terms, nil
}
