package lexicon

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"# strongs lexicon sample",
		"",
		"G26\tἀγάπη\tlove\tagape",
		"H0001\tאָב\tfather\tab",
		"G5547\tΧριστός\tChrist\tchristos",
	}, "\n")

	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, res.Definitions, 3)
	assert.Zero(t, res.Skipped)

	assert.Equal(t, "G0026", res.Definitions[0].StrongNumber)
	assert.Equal(t, "love", res.Definitions[0].ShortDefinition)
	assert.Equal(t, "H0001", res.Definitions[1].StrongNumber)
	assert.Equal(t, "christos", res.Definitions[2].SimpleTransliteration)
}

func TestParse_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	input := strings.Join([]string{
		"G26\tἀγάπη\tlove\tagape",
		"too\tfew",
		"GX\tbad\tkey\there",
		"H1\tאָב\tfather\tab",
	}, "\n")

	res, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Len(t, res.Definitions, 2)
	assert.Equal(t, 2, res.Skipped)
}

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	res, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, res.Definitions)
	assert.Zero(t, res.Skipped)
}
