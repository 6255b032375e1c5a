package domain

// LexiconDefinition is the reference-data record for one strong number.
// The lexicon is read-only for the lifetime of the service: rows are
// written once by the offline seeder and never mutated afterwards.
type LexiconDefinition struct {
	// StrongNumber is the padded key, one uppercase letter followed by
	// four digits (e.g. "G0123").
	StrongNumber string

	// Original is the original-language (Greek/Hebrew) spelling.
	Original string

	// ShortDefinition is the short English gloss.
	ShortDefinition string

	// SimpleTransliteration is the unaccented transliteration.
	SimpleTransliteration string
}

// LexiconField selects one textual field of a LexiconDefinition.
type LexiconField int

const (
	// FieldTransliteration selects the simple transliteration.
	FieldTransliteration LexiconField = iota
	// FieldShortGloss selects the short English definition.
	FieldShortGloss
	// FieldOriginalSpelling selects the original-language spelling.
	FieldOriginalSpelling
)

// String returns the field name for logs.
func (f LexiconField) String() string {
	switch f {
	case FieldTransliteration:
		return "transliteration"
	case FieldShortGloss:
		return "short_gloss"
	case FieldOriginalSpelling:
		return "original_spelling"
	default:
		return "unknown"
	}
}

// FieldText returns the text of the selected field. Any value, including
// the empty string, is valid; unknown fields yield "".
func (d LexiconDefinition) FieldText(f LexiconField) string {
	switch f {
	case FieldTransliteration:
		return d.SimpleTransliteration
	case FieldShortGloss:
		return d.ShortDefinition
	case FieldOriginalSpelling:
		return d.Original
	default:
		return ""
	}
}
