package search

import (
	"fmt"

	"github.com/blevesearch/bleve/v2"

	"github.com/stepbible/step-vocab/internal/domain"
)

// TermsWithPrefix enumerates the index's term dictionary for fieldName
// starting at prefix and collects term text until the dictionary is
// exhausted or max terms have been gathered. An empty dictionary yields an
// empty, non-nil slice. Order is whatever the dictionary provides
// (lexicographic in bleve). Index I/O failures surface as
// domain.ErrInternal; they are never retried here.
func TermsWithPrefix(idx bleve.Index, fieldName, prefix string, max int) ([]string, error) {
	if max <= 0 {
		return []string{}, nil
	}

	dict, err := idx.FieldDictPrefix(fieldName, []byte(prefix))
	if err != nil {
		return nil, fmt.Errorf("open term dictionary for %q: %v: %w", fieldName, err, domain.ErrInternal)
	}
	defer dict.Close()

	terms := make([]string, 0, max)
	for len(terms) < max {
		entry, err := dict.Next()
		if err != nil {
			return nil, fmt.Errorf("enumerate terms for %q: %v: %w", fieldName, err, domain.ErrInternal)
		}
		if entry == nil {
			break
		}
		terms = append(terms, entry.Term)
	}

	return terms, nil
}
