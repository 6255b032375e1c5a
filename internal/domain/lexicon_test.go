package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexiconDefinition_FieldText(t *testing.T) {
	t.Parallel()

	d := LexiconDefinition{
		StrongNumber:          "G0026",
		Original:              "ἀγάπη",
		ShortDefinition:       "love",
		SimpleTransliteration: "agape",
	}

	assert.Equal(t, "agape", d.FieldText(FieldTransliteration))
	assert.Equal(t, "love", d.FieldText(FieldShortGloss))
	assert.Equal(t, "ἀγάπη", d.FieldText(FieldOriginalSpelling))
	assert.Equal(t, "", d.FieldText(LexiconField(99)))
}

func TestLexiconField_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "transliteration", FieldTransliteration.String())
	assert.Equal(t, "short_gloss", FieldShortGloss.String())
	assert.Equal(t, "original_spelling", FieldOriginalSpelling.String())
}
