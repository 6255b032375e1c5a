package vocab

import (
	"context"
	"fmt"
	"strings"

	"github.com/stepbible/step-vocab/internal/config"
	"github.com/stepbible/step-vocab/internal/domain"
)

// GetEnglishVocab returns the concatenated short glosses for the
// identifiers' lexicon records.
func (s *Service) GetEnglishVocab(ctx context.Context, identifiers string) (string, error) {
	return s.fieldText(ctx, identifiers, domain.FieldShortGloss)
}

// GetGreekVocab returns the concatenated original-language spellings for
// the identifiers' lexicon records.
func (s *Service) GetGreekVocab(ctx context.Context, identifiers string) (string, error) {
	return s.fieldText(ctx, identifiers, domain.FieldOriginalSpelling)
}

// GetDefaultTransliteration returns the concatenated simple
// transliterations for the identifiers' lexicon records.
func (s *Service) GetDefaultTransliteration(ctx context.Context, identifiers string) (string, error) {
	return s.fieldText(ctx, identifiers, domain.FieldTransliteration)
}

// fieldText is the shared routine behind the three field getters. No
// recognized tokens yields "". When keys parse but match no records, the
// configured unmatched policy decides between echoing the raw input and
// returning "". Matched records contribute the selected field in store
// order with no separator.
func (s *Service) fieldText(ctx context.Context, identifiers string, field domain.LexiconField) (string, error) {
	keys := s.parser.Parse(identifiers)
	if len(keys) == 0 {
		return "", nil
	}

	defs, err := s.defs.GetFieldsByKeys(ctx, keys)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", field, err)
	}

	if len(defs) == 0 {
		if s.cfg.UnmatchedPolicy == config.UnmatchedEmpty {
			return "", nil
		}
		s.log.Debug("no lexicon match, echoing input",
			"field", field.String(),
			"keys", len(keys),
		)
		return identifiers, nil
	}

	var b strings.Builder
	b.Grow(len(defs) * 32)
	for _, d := range defs {
		b.WriteString(d.FieldText(field))
	}

	return b.String(), nil
}
