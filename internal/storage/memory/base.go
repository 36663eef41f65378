package memory

import (
	"context"
	"sync"
	"time"

	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/google/uuid"
)

type baseMemoryRepo[T any] struct {
	mu      sync.RWMutex
	records map[uuid.UUID]T
	extract func(*T) *domain.RecordMeta
}

func newBaseMemoryRepo[T any](extract func(*T) *domain.RecordMeta) baseMemoryRepo[T] {
	return baseMemoryRepo[T]{
		records: make(map[uuid.UUID]T),
		extract: extract,
	}
}

func (r *baseMemoryRepo[T]) create(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := r.extract(record)
	base.EnsureID()
	now := time.Now().UTC()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
	r.records[base.ID] = *record
	return nil
}

func (r *baseMemoryRepo[T]) update(_ context.Context, record *T) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	base := r.extract(record)
	if base.ID == uuid.Nil {
		return store.ErrNotFound
	}
	if _, ok := r.records[base.ID]; !ok {
		return store.ErrNotFound
	}
	base.UpdatedAt = time.Now().UTC()
	r.records[base.ID] = *record
	return nil
}

func (r *baseMemoryRepo[T]) getByID(_ context.Context, id uuid.UUID) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	if !r.extract(&record).DeletedAt.IsZero() {
		return nil, store.ErrNotFound
	}
	copy := record
	return &copy, nil
}

// find returns a copy of the first live record accepted by match.
func (r *baseMemoryRepo[T]) find(match func(*T) bool) (*T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if !r.extract(&record).DeletedAt.IsZero() {
			continue
		}
		if match(&record) {
			copy := record
			return &copy, nil
		}
	}
	return nil, store.ErrNotFound
}

func (r *baseMemoryRepo[T]) remove(match func(*T) bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, record := range r.records {
		if match(&record) {
			delete(r.records, id)
			return nil
		}
	}
	return store.ErrNotFound
}
