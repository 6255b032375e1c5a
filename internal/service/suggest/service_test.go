package suggest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/blevesearch/bleve/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepbible/step-vocab/internal/adapter/search"
	"github.com/stepbible/step-vocab/internal/config"
)

func newService(t *testing.T, max int) *Service {
	t.Helper()

	idx, err := bleve.NewMemOnly(search.Mapping())
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	docs := map[string]search.Document{
		"H0085": {Transliteration: "abraham", Gloss: "Abraham"},
		"H0087": {Transliteration: "abram", Gloss: "Abram"},
		"H3327": {Transliteration: "isaac", Gloss: "Isaac"},
	}
	for id, doc := range docs {
		require.NoError(t, idx.Index(id, doc))
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewService(logger, idx, config.SuggestConfig{MaxSuggestions: max})
}

func TestService_Suggest(t *testing.T) {
	svc := newService(t, 50)

	terms, err := svc.Suggest(context.Background(), search.FieldTransliteration, "abr")
	require.NoError(t, err)
	assert.Equal(t, []string{"abraham", "abram"}, terms)
}

func TestService_Suggest_NoMatch(t *testing.T) {
	svc := newService(t, 50)

	terms, err := svc.Suggest(context.Background(), search.FieldTransliteration, "zz")
	require.NoError(t, err)
	assert.NotNil(t, terms)
	assert.Empty(t, terms)
}

func TestService_Suggest_RespectsMax(t *testing.T) {
	svc := newService(t, 2)

	terms, err := svc.Suggest(context.Background(), search.FieldTransliteration, "")
	require.NoError(t, err)
	assert.Len(t, terms, 2)
}

func TestService_Suggest_CancelledContext(t *testing.T) {
	svc := newService(t, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Suggest(ctx, search.FieldTransliteration, "abr")
	require.ErrorIs(t, err, context.Canceled)
}
