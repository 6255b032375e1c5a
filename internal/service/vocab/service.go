// Package vocab implements the vocabulary lookup service: it turns
// compound strong-number identifier strings into lexicon records or into
// concatenated lexicon fields.
package vocab

import (
	"context"
	"log/slog"

	"github.com/stepbible/step-vocab/internal/config"
	"github.com/stepbible/step-vocab/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type definitionRepo interface {
	GetByKeys(ctx context.Context, keys []string) ([]domain.LexiconDefinition, error)
	GetFieldsByKeys(ctx context.Context, keys []string) ([]domain.LexiconDefinition, error)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the vocabulary business logic. All operations are
// read-only and safe for concurrent callers.
type Service struct {
	log    *slog.Logger
	defs   definitionRepo
	parser domain.KeyParser
	cfg    config.VocabConfig
}

// NewService creates a new Vocabulary service.
func NewService(logger *slog.Logger, defs definitionRepo, cfg config.VocabConfig) *Service {
	return &Service{
		log:    logger.With("service", "vocab"),
		defs:   defs,
		parser: domain.NewKeyParser(cfg.StrongPrefixes),
		cfg:    cfg,
	}
}
