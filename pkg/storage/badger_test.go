package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/topgear/pkg/models"
)

func newTestStorage(t *testing.T) *BadgerStorage {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewStorage(models.ResultEntity, db)
}

func result(day, placement int) *models.RaceResult {
	r := models.NewRaceResult(time.Date(2024, 5, day, 12, 0, 0, 0, time.UTC))
	r.Placement = placement
	r.FieldSize = 5
	return r
}

func TestBadgerStorage_SaveAndGet(t *testing.T) {
	s := newTestStorage(t)
	r := result(1, 3)
	require.NoError(t, s.SaveResult(r))

	got, err := s.GetResult(r.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Placement)
	assert.Equal(t, r.ID, got.ID)

	_, err = s.GetResult("missing")
	assert.ErrorIs(t, err, badger.ErrKeyNotFound)
}

func TestBadgerStorage_ListNewestFirst(t *testing.T) {
	s := newTestStorage(t)
	first, second, third := result(1, 4), result(2, 2), result(3, 1)
	for _, r := range []*models.RaceResult{second, third, first} {
		require.NoError(t, s.SaveResult(r))
	}

	all, err := s.ListResults(0, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{third.ID, second.ID, first.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	limited, err := s.ListResults(2, nil)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
	assert.Equal(t, third.ID, limited[0].ID)

	podium, err := s.ListResults(0, func(r *models.RaceResult) bool { return r.Placement <= 2 })
	require.NoError(t, err)
	assert.Len(t, podium, 2)
}

func TestBadgerStorage_IgnoresOtherEntities(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.SaveResult(result(1, 2)))
	other := NewStorage("resultx", s.db)
	require.NoError(t, other.SaveResult(result(2, 1)))

	all, err := s.ListResults(0, nil)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBadgerStorage_BestPlacement(t *testing.T) {
	s := newTestStorage(t)
	best, err := s.BestPlacement()
	require.NoError(t, err)
	assert.Equal(t, 0, best)

	require.NoError(t, s.SaveResult(result(1, 4)))
	require.NoError(t, s.SaveResult(result(2, 2)))
	require.NoError(t, s.SaveResult(result(3, 3)))

	best, err = s.BestPlacement()
	require.NoError(t, err)
	assert.Equal(t, 2, best)
}

func TestOpen_ErrorNamesDirOnce(t *testing.T) {
	// a regular file where the database directory should be
	dir := filepath.Join(t.TempDir(), "results")
	require.NoError(t, os.WriteFile(dir, []byte("x"), 0o600))

	_, err := Open(dir)
	require.Error(t, err)
	assert.Equal(t, 1, strings.Count(err.Error(), "failed to open result store"))
	assert.Contains(t, err.Error(), dir)
}
