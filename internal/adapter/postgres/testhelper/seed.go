package testhelper

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stepbible/step-vocab/internal/domain"
)

// SeedDefinitions inserts the given lexicon definitions directly,
// failing the test on error.
func SeedDefinitions(t *testing.T, pool *pgxpool.Pool, defs []domain.LexiconDefinition) {
	t.Helper()

	ctx := context.Background()
	for _, d := range defs {
		_, err := pool.Exec(ctx,
			`INSERT INTO lexicon_definitions (strong_number, original, short_definition, simple_transliteration)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (strong_number) DO NOTHING`,
			d.StrongNumber, d.Original, d.ShortDefinition, d.SimpleTransliteration,
		)
		if err != nil {
			t.Fatalf("testhelper: seed definition %s: %v", d.StrongNumber, err)
		}
	}
}
