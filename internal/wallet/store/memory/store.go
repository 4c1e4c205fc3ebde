// Package memory keeps the sync state in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/goodnatureofminers/blockinsight7000-walletsync/internal/wallet/model"
)

// Store is a mutex-guarded StateStore. Values are cloned on the way in and out.
type Store struct {
	mu     sync.Mutex
	state  model.SyncState
	writes int
}

func New(initial model.SyncState) *Store {
	return &Store{state: initial.Clone()}
}

func (s *Store) Get(ctx context.Context) (model.SyncState, error) {
	if err := ctx.Err(); err != nil {
		return model.SyncState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone(), nil
}

func (s *Store) Set(ctx context.Context, state model.SyncState) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state.Clone()
	s.writes++
	return nil
}

// Update applies fn under the store lock. An error from fn leaves the state untouched.
func (s *Store) Update(ctx context.Context, fn func(model.SyncState) (model.SyncState, error)) (model.SyncState, error) {
	if err := ctx.Err(); err != nil {
		return model.SyncState{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state.Clone())
	if err != nil {
		return s.state.Clone(), err
	}
	s.state = next.Clone()
	s.writes++
	return s.state.Clone(), nil
}

// Writes counts successful Set and Update calls.
func (s *Store) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}
