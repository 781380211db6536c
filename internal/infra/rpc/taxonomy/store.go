package taxonomy

import (
	"context"
	"errors"
	"sync"
)

// Store persists descriptions learned at runtime. Keys are normalized identifiers.
type Store interface {
	Get(ctx context.Context, identifier string) (string, bool, error)
	Set(ctx context.Context, identifier, description string) error
}

// MemoryStore is a process local Store safe for concurrent use.
type MemoryStore struct {
	entries sync.Map
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Get(_ context.Context, identifier string) (string, bool, error) {
	v, ok := s.entries.Load(identifier)
	if !ok {
		return "", false, nil
	}
	return v.(string), true, nil
}

func (s *MemoryStore) Set(_ context.Context, identifier, description string) error {
	s.entries.Store(identifier, description)
	return nil
}

// Len counts stored descriptions.
func (s *MemoryStore) Len() int {
	n := 0
	s.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

// TieredStore reads through a fast front store to a shared back store, so
// descriptions learned by one process are visible to the others.
type TieredStore struct {
	front Store
	back  Store
}

func NewTieredStore(front, back Store) *TieredStore {
	return &TieredStore{front: front, back: back}
}

func (s *TieredStore) Get(ctx context.Context, identifier string) (string, bool, error) {
	if d, ok, err := s.front.Get(ctx, identifier); err == nil && ok {
		return d, true, nil
	}
	d, ok, err := s.back.Get(ctx, identifier)
	if err != nil || !ok {
		return "", false, err
	}
	_ = s.front.Set(ctx, identifier, d)
	return d, true, nil
}

// Set writes both tiers. The front tier is written even if the back tier fails.
func (s *TieredStore) Set(ctx context.Context, identifier, description string) error {
	return errors.Join(
		s.front.Set(ctx, identifier, description),
		s.back.Set(ctx, identifier, description),
	)
}
