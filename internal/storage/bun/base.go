package bunrepo

import (
	"context"
	"time"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type baseRepository[T any] struct {
	repo    repository.Repository[*T]
	db      *bun.DB
	extract func(*T) *domain.RecordMeta
}

func newBaseRepository[T any](db *bun.DB, handlers repository.ModelHandlers[*T], extract func(*T) *domain.RecordMeta) baseRepository[T] {
	return baseRepository[T]{
		repo:    repository.NewRepository[*T](db, handlers),
		db:      db,
		extract: extract,
	}
}

func (r baseRepository[T]) create(ctx context.Context, record *T) error {
	base := r.extract(record)
	base.EnsureID()
	now := time.Now().UTC()
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
	_, err := r.repo.CreateTx(ctx, conn(ctx, r.db), record)
	return mapError(err)
}

func (r baseRepository[T]) update(ctx context.Context, record *T) error {
	base := r.extract(record)
	if base.ID == uuid.Nil {
		return store.ErrNotFound
	}
	base.UpdatedAt = time.Now().UTC()
	_, err := r.repo.UpdateTx(ctx, conn(ctx, r.db), record)
	return mapError(err)
}

func (r baseRepository[T]) getByID(ctx context.Context, id uuid.UUID) (*T, error) {
	record, err := r.repo.GetTx(ctx, conn(ctx, r.db), withID(id), withoutDeleted())
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if repository.IsRecordNotFound(err) {
		return store.ErrNotFound
	}
	return err
}
