package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revshare-calculator/domain"
)

func newSQLiteDB(t *testing.T) *SQLiteRecordRepository {
	t.Helper()
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "records.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewSQLiteRecordRepository(db)
}

func sampleRecord(id string) domain.Record {
	ts := time.Date(2025, 8, 6, 10, 0, 0, 0, time.UTC)
	return domain.Record{
		ID:           id,
		ProcessDate:  "2025-08-06",
		Status:       domain.StatusCompleted,
		System:       "二合一",
		RBOCode:      "RT-CN0100-PAWSV0001",
		ShortName:    "南京机场",
		ActualAmount: 1200.5,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}
}

func TestRecordRepositories(t *testing.T) {
	repos := map[string]func(t *testing.T) RecordRepository{
		"memory": func(t *testing.T) RecordRepository { return NewRecordRepositoryMemory() },
		"sqlite": func(t *testing.T) RecordRepository { return newSQLiteDB(t) },
	}

	for name, newRepo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			repo := newRepo(t)

			require.NoError(t, repo.Create(ctx, sampleRecord("a")))
			require.NoError(t, repo.Create(ctx, sampleRecord("b")))
			require.NoError(t, repo.Create(ctx, sampleRecord("c")))
			assert.Error(t, repo.Create(ctx, sampleRecord("a")))

			got, err := repo.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, sampleRecord("b"), got)

			updated := sampleRecord("b")
			updated.Status = domain.StatusProcessing
			updated.ActualAmount = 99
			require.NoError(t, repo.Update(ctx, updated))

			got, err = repo.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, domain.StatusProcessing, got.Status)
			assert.Equal(t, 99.0, got.ActualAmount)

			require.NoError(t, repo.Delete(ctx, "a"))
			assert.ErrorIs(t, repo.Delete(ctx, "a"), ErrRecordNotFound)
			assert.ErrorIs(t, repo.Update(ctx, sampleRecord("zzz")), ErrRecordNotFound)

			_, err = repo.Get(ctx, "a")
			assert.ErrorIs(t, err, ErrRecordNotFound)

			list, err := repo.List(ctx)
			require.NoError(t, err)
			require.Len(t, list, 2)
			assert.Equal(t, "b", list[0].ID)
			assert.Equal(t, "c", list[1].ID)
		})
	}
}
