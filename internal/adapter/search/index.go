// Package search owns the suggestion index. It is the bleve-backed
// counterpart of the PostgreSQL adapter: the seeder writes lexicon terms
// into it, the suggestion service reads bounded prefix enumerations out
// of its term dictionaries.
package search

import (
	"errors"
	"fmt"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
)

// Indexed field names. Each lexicon definition is indexed as one document
// keyed by its strong number.
const (
	FieldOriginal        = "original"
	FieldTransliteration = "transliteration"
	FieldGloss           = "gloss"
)

// Mapping builds the index mapping for the suggestion index. Every field
// uses the keyword analyzer so the term dictionary holds whole field
// values, which is what prefix suggestions enumerate.
func Mapping() mapping.IndexMapping {
	fieldMapping := func() *mapping.FieldMapping {
		fm := bleve.NewTextFieldMapping()
		fm.Analyzer = keyword.Name
		fm.Store = false
		fm.IncludeInAll = false
		return fm
	}

	doc := bleve.NewDocumentMapping()
	doc.AddFieldMappingsAt(FieldOriginal, fieldMapping())
	doc.AddFieldMappingsAt(FieldTransliteration, fieldMapping())
	doc.AddFieldMappingsAt(FieldGloss, fieldMapping())

	im := bleve.NewIndexMapping()
	im.DefaultMapping = doc
	return im
}

// Open opens the suggestion index at path, creating it with the standard
// mapping when it does not exist yet.
func Open(path string) (bleve.Index, error) {
	idx, err := bleve.Open(path)
	if err == nil {
		return idx, nil
	}
	if !errors.Is(err, bleve.ErrorIndexPathDoesNotExist) {
		return nil, fmt.Errorf("open suggestion index %s: %w", path, err)
	}

	idx, err = bleve.New(path, Mapping())
	if err != nil {
		return nil, fmt.Errorf("create suggestion index %s: %w", path, err)
	}
	return idx, nil
}

// Document is the shape indexed per lexicon definition.
type Document struct {
	Original        string `json:"original"`
	Transliteration string `json:"transliteration"`
	Gloss           string `json:"gloss"`
}
