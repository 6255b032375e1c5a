package definition_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepbible/step-vocab/internal/adapter/postgres/definition"
	"github.com/stepbible/step-vocab/internal/domain"
)

func newMockRepo(t *testing.T) (*definition.Repo, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return definition.New(mock), mock
}

func TestRepo_GetByKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("empty keys short-circuit without query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		defs, err := repo.GetByKeys(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, defs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns records in store order", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"strong_number", "original", "short_definition", "simple_transliteration"}).
			AddRow("H0045", "אַבְרָהָם", "Abraham", "abraham").
			AddRow("G0123", "ἀκοή", "hearing", "akoe")
		mock.ExpectQuery(`SELECT strong_number, original, short_definition, simple_transliteration FROM lexicon_definitions`).
			WithArgs("G0123", "H0045").
			WillReturnRows(rows)

		defs, err := repo.GetByKeys(ctx, []string{"G0123", "H0045"})
		require.NoError(t, err)

		require.Len(t, defs, 2)
		assert.Equal(t, "H0045", defs[0].StrongNumber)
		assert.Equal(t, "G0123", defs[1].StrongNumber)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery(`SELECT strong_number, original, short_definition, simple_transliteration FROM lexicon_definitions`).
			WithArgs("G0123").
			WillReturnError(errors.New("boom"))

		_, err := repo.GetByKeys(ctx, []string{"G0123"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lexicon_definition")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_GetFieldsByKeys(t *testing.T) {
	ctx := context.Background()

	t.Run("empty keys short-circuit without query", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		defs, err := repo.GetFieldsByKeys(ctx, []string{})
		require.NoError(t, err)
		assert.Empty(t, defs)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("projection omits the key", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		rows := pgxmock.NewRows([]string{"original", "short_definition", "simple_transliteration"}).
			AddRow("ἀγάπη", "love", "agape")
		mock.ExpectQuery(`SELECT original, short_definition, simple_transliteration FROM lexicon_definitions`).
			WithArgs("G0026").
			WillReturnRows(rows)

		defs, err := repo.GetFieldsByKeys(ctx, []string{"G0026"})
		require.NoError(t, err)

		require.Len(t, defs, 1)
		assert.Empty(t, defs[0].StrongNumber)
		assert.Equal(t, "love", defs[0].ShortDefinition)
		assert.Equal(t, "agape", defs[0].SimpleTransliteration)
		assert.Equal(t, "ἀγάπη", defs[0].Original)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_InsertBatch(t *testing.T) {
	ctx := context.Background()
	loadID := uuid.New()

	t.Run("empty batch is a no-op", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		n, err := repo.InsertBatch(ctx, nil, loadID)
		require.NoError(t, err)
		assert.Zero(t, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("inserts and reports affected rows", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec(`INSERT INTO lexicon_definitions`).
			WithArgs(
				"G0026", "ἀγάπη", "love", "agape", loadID,
				"H0045", "אַבְרָהָם", "Abraham", "abraham", loadID,
			).
			WillReturnResult(pgxmock.NewResult("INSERT", 2))

		defs := []domain.LexiconDefinition{
			{StrongNumber: "G0026", Original: "ἀγάπη", ShortDefinition: "love", SimpleTransliteration: "agape"},
			{StrongNumber: "H0045", Original: "אַבְרָהָם", ShortDefinition: "Abraham", SimpleTransliteration: "abraham"},
		}

		n, err := repo.InsertBatch(ctx, defs, loadID)
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepo_Count(t *testing.T) {
	ctx := context.Background()
	repo, mock := newMockRepo(t)

	rows := pgxmock.NewRows([]string{"count"}).AddRow(int64(14197))
	mock.ExpectQuery(`SELECT COUNT`).WillReturnRows(rows)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 14197, n)
	require.NoError(t, mock.ExpectationsWereMet())
}
