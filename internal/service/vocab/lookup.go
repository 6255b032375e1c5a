package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/stepbible/step-vocab/internal/domain"
)

// GetDefinitions returns whole lexicon records for every recognized
// strong-number token in identifiers, in store order. A blank identifiers
// string is a validation error; an identifiers string with no recognized
// tokens yields an empty slice without a store query.
func (s *Service) GetDefinitions(ctx context.Context, identifiers string) ([]domain.LexiconDefinition, error) {
	if strings.TrimSpace(identifiers) == "" {
		return nil, domain.NewValidationError("identifiers", "vocab identifiers must not be blank")
	}

	keys := s.parser.Parse(identifiers)
	if len(keys) == 0 {
		return []domain.LexiconDefinition{}, nil
	}

	defs, err := s.defs.GetByKeys(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("get definitions: %w", err)
	}

	return defs, nil
}
