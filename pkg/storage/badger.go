package storage

import (
	"fmt"

	"github.com/dgraph-io/badger/v3"
	"github.com/samber/lo"

	"github.com/golangdaddy/topgear/pkg/models"
)

// BadgerStorage keeps race results in a badger database. Keys are
// "<entity>/<ksuid>" so iteration order is finishing order.
type BadgerStorage struct {
	entityPrefix []byte
	db           *badger.DB
}

// Open opens (or creates) the result database in dir
func Open(dir string) (*badger.DB, error) {
	opts := badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR)
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open result store %s: %w", dir, err)
	}
	return db, nil
}

func NewStorage(entityType string, db *badger.DB) *BadgerStorage {
	return &BadgerStorage{
		entityPrefix: []byte(entityType),
		db:           db,
	}
}

func (b *BadgerStorage) buildKey(key string) []byte {
	return []byte(fmt.Sprintf("%s/%s", string(b.entityPrefix), key))
}

func (b *BadgerStorage) prefix() []byte {
	return append(append([]byte(nil), b.entityPrefix...), '/')
}

// SaveResult stores a race result under its id
func (b *BadgerStorage) SaveResult(r *models.RaceResult) error {
	buf, err := r.Marshal()
	if err != nil {
		return err
	}
	return b.db.Update(func(txn *badger.Txn) error {
		return txn.Set(b.buildKey(r.ID), buf)
	})
}

// GetResult loads one result by id
func (b *BadgerStorage) GetResult(id string) (*models.RaceResult, error) {
	var r *models.RaceResult
	err := b.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(b.buildKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			r, err = models.UnmarshalRaceResult(val)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get result %s: %w", id, err)
	}
	return r, nil
}

// ListResults returns the newest results first. A limit <= 0 returns all of
// them, filterFunc may be nil.
func (b *BadgerStorage) ListResults(limit int, filterFunc func(r *models.RaceResult) bool) ([]*models.RaceResult, error) {
	var results []*models.RaceResult
	prefix := b.prefix()

	err := b.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		it := txn.NewIterator(opts)
		defer it.Close()

		// reverse iteration starts at the last key below the seek key
		for it.Seek(append(prefix, 0xff)); it.ValidForPrefix(prefix); it.Next() {
			var r *models.RaceResult
			if err := it.Item().Value(func(val []byte) error {
				var err error
				r, err = models.UnmarshalRaceResult(val)
				return err
			}); err != nil {
				return err
			}
			if filterFunc != nil && !filterFunc(r) {
				continue
			}
			results = append(results, r)
			if limit > 0 && len(results) >= limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}
	return results, nil
}

// BestPlacement returns the best finishing position over all stored results,
// 0 when nothing is stored.
func (b *BadgerStorage) BestPlacement() (int, error) {
	results, err := b.ListResults(0, nil)
	if err != nil {
		return 0, err
	}
	if len(results) == 0 {
		return 0, nil
	}
	best := lo.MinBy(results, func(x, y *models.RaceResult) bool {
		return x.Placement < y.Placement
	})
	return best.Placement, nil
}
