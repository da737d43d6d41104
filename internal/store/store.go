package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"

	"github.com/videochess/videochess-backend/internal/model"
)

// Store persists per-turn records to BadgerDB so finished games can be
// replayed. Keys are game/<id>/turn/<seq> with a zero-padded sequence, so a
// prefix scan returns the log in play order.
type Store struct {
	db *badger.DB
}

func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil // Disable badger's own logging

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger at %s: %w", dir, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func turnKey(gameID string, ply int) []byte {
	return []byte(fmt.Sprintf("game/%s/turn/%06d", gameID, ply))
}

func logPrefix(gameID string) []byte {
	return []byte(fmt.Sprintf("game/%s/turn/", gameID))
}

// AppendTurn writes one turn record.
func (s *Store) AppendTurn(gameID string, rec model.TurnRecord) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(turnKey(gameID, rec.Ply), data)
	})
}

// GameLog returns every stored record for the game in play order. A game
// with no recorded turns yields an empty log, not an error.
func (s *Store) GameLog(gameID string) ([]model.TurnRecord, error) {
	records := []model.TurnRecord{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		prefix := logPrefix(gameID)
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			err := it.Item().Value(func(val []byte) error {
				var rec model.TurnRecord
				if err := json.Unmarshal(val, &rec); err != nil {
					return err
				}
				records = append(records, rec)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	return records, err
}
