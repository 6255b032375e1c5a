// Package definition implements the lexicon definition repository using
// PostgreSQL. The lexicon is reference data: it is bulk-loaded by the
// offline seeder and read-only afterwards, so the repository exposes
// batched key-in-set reads plus a load-time insert.
package definition

import (
	"context"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"

	"github.com/stepbible/step-vocab/internal/adapter/postgres"
	"github.com/stepbible/step-vocab/internal/domain"
)

const table = "lexicon_definitions"

var qb = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Repo provides lexicon definition persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new lexicon definition repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// definitionRow mirrors the full column set read by GetByKeys.
type definitionRow struct {
	StrongNumber          string `db:"strong_number"`
	Original              string `db:"original"`
	ShortDefinition       string `db:"short_definition"`
	SimpleTransliteration string `db:"simple_transliteration"`
}

// fieldsRow is the three-field projection read by GetFieldsByKeys.
type fieldsRow struct {
	Original              string `db:"original"`
	ShortDefinition       string `db:"short_definition"`
	SimpleTransliteration string `db:"simple_transliteration"`
}

// GetByKeys returns whole records for the given padded keys in store order.
// An empty key list returns an empty slice without touching the database.
func (r *Repo) GetByKeys(ctx context.Context, keys []string) ([]domain.LexiconDefinition, error) {
	if len(keys) == 0 {
		return []domain.LexiconDefinition{}, nil
	}

	sql, args, err := qb.
		Select("strong_number", "original", "short_definition", "simple_transliteration").
		From(table).
		Where(squirrel.Eq{"strong_number": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lexicon query: %w", err)
	}

	var rows []definitionRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lexicon_definition", strings.Join(keys, ","))
	}

	defs := make([]domain.LexiconDefinition, len(rows))
	for i, row := range rows {
		defs[i] = domain.LexiconDefinition{
			StrongNumber:          row.StrongNumber,
			Original:              row.Original,
			ShortDefinition:       row.ShortDefinition,
			SimpleTransliteration: row.SimpleTransliteration,
		}
	}

	return defs, nil
}

// GetFieldsByKeys returns records limited to the three textual fields for
// the given padded keys, in store order. Used by the field getters, which
// never need the key back.
func (r *Repo) GetFieldsByKeys(ctx context.Context, keys []string) ([]domain.LexiconDefinition, error) {
	if len(keys) == 0 {
		return []domain.LexiconDefinition{}, nil
	}

	sql, args, err := qb.
		Select("original", "short_definition", "simple_transliteration").
		From(table).
		Where(squirrel.Eq{"strong_number": keys}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build lexicon fields query: %w", err)
	}

	var rows []fieldsRow
	if err := pgxscan.Select(ctx, r.db, &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, "lexicon_definition", strings.Join(keys, ","))
	}

	defs := make([]domain.LexiconDefinition, len(rows))
	for i, row := range rows {
		defs[i] = domain.LexiconDefinition{
			Original:              row.Original,
			ShortDefinition:       row.ShortDefinition,
			SimpleTransliteration: row.SimpleTransliteration,
		}
	}

	return defs, nil
}

// Count returns the number of lexicon definitions. Used by the seeder for
// its load summary.
func (r *Repo) Count(ctx context.Context) (int64, error) {
	sql, args, err := qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build lexicon count query: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, postgres.MapError(err, "lexicon_definition", "count")
	}

	return count, nil
}

// InsertBatch inserts definitions in one multi-row statement, skipping
// keys that already exist. Returns the number of rows actually inserted.
// loadID tags the rows with the seeder run that wrote them.
func (r *Repo) InsertBatch(ctx context.Context, defs []domain.LexiconDefinition, loadID uuid.UUID) (int64, error) {
	if len(defs) == 0 {
		return 0, nil
	}

	ins := qb.
		Insert(table).
		Columns("strong_number", "original", "short_definition", "simple_transliteration", "load_id")
	for _, d := range defs {
		ins = ins.Values(d.StrongNumber, d.Original, d.ShortDefinition, d.SimpleTransliteration, loadID)
	}
	ins = ins.Suffix("ON CONFLICT (strong_number) DO NOTHING")

	sql, args, err := ins.ToSql()
	if err != nil {
		return 0, fmt.Errorf("build lexicon insert: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, postgres.MapError(err, "lexicon_definition", defs[0].StrongNumber)
	}

	return tag.RowsAffected(), nil
}
