// Package bolt persists the sync state in a single bbolt file.
package bolt

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
	bbolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

var (
	bucketName = []byte("sync")
	stateKey   = []byte("state")
)

const openTimeout = 5 * time.Second

// Store keeps one JSON-encoded SyncState under a fixed key. Each call runs in
// its own bbolt transaction, so Update is atomic with respect to other writers.
type Store struct {
	db     *bbolt.DB
	logger *zap.Logger
}

// Open creates or opens the state file at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	if path == "" {
		return nil, errors.New("state path is required")
	}
	db, err := bbolt.Open(path, 0o600, &bbolt.Options{Timeout: openTimeout})
	if err != nil {
		return nil, fmt.Errorf("open state file %s: %w", path, err)
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create state bucket: %w", err)
	}
	logger.Info("state store opened", zap.String("path", path))
	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Get(ctx context.Context) (model.SyncState, error) {
	if err := ctx.Err(); err != nil {
		return model.SyncState{}, err
	}
	var state model.SyncState
	err := s.db.View(func(tx *bbolt.Tx) error {
		var err error
		state, err = readState(tx)
		return err
	})
	return state, err
}

func (s *Store) Set(ctx context.Context, state model.SyncState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bbolt.Tx) error {
		return writeState(tx, state)
	})
}

// Update reads, transforms and writes the state in one read-write transaction.
// An error from fn rolls the transaction back and is returned unchanged.
func (s *Store) Update(ctx context.Context, fn func(model.SyncState) (model.SyncState, error)) (model.SyncState, error) {
	if err := ctx.Err(); err != nil {
		return model.SyncState{}, err
	}
	var result model.SyncState
	err := s.db.Update(func(tx *bbolt.Tx) error {
		current, err := readState(tx)
		if err != nil {
			return err
		}
		result = current
		next, err := fn(current.Clone())
		if err != nil {
			return err
		}
		if err := writeState(tx, next); err != nil {
			return err
		}
		result = next
		return nil
	})
	return result, err
}

func readState(tx *bbolt.Tx) (model.SyncState, error) {
	var state model.SyncState
	b := tx.Bucket(bucketName)
	if b == nil {
		return state, fmt.Errorf("bucket %s not found", bucketName)
	}
	raw := b.Get(stateKey)
	if raw == nil {
		return state, nil
	}
	if err := json.Unmarshal(raw, &state); err != nil {
		return state, fmt.Errorf("decode sync state: %w", err)
	}
	return state, nil
}

func writeState(tx *bbolt.Tx, state model.SyncState) error {
	raw, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("encode sync state: %w", err)
	}
	b := tx.Bucket(bucketName)
	if b == nil {
		return fmt.Errorf("bucket %s not found", bucketName)
	}
	return b.Put(stateKey, raw)
}
