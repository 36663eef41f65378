package bunrepo

import (
	"context"
	"errors"
	"strings"

	repository "github.com/goliatone/go-repository-bun"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type SettingsRepository struct {
	base baseRepository[domain.TrailSettings]
}

var _ store.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(db *bun.DB) *SettingsRepository {
	handlers := repository.ModelHandlers[*domain.TrailSettings]{
		NewRecord:          func() *domain.TrailSettings { return &domain.TrailSettings{} },
		GetID:              func(s *domain.TrailSettings) uuid.UUID { return s.ID },
		SetID:              func(s *domain.TrailSettings, id uuid.UUID) { s.ID = id },
		GetIdentifier:      func() string { return "config_key" },
		GetIdentifierValue: func(s *domain.TrailSettings) string { return s.Key },
	}
	return &SettingsRepository{
		base: newBaseRepository[domain.TrailSettings](db, handlers, func(s *domain.TrailSettings) *domain.RecordMeta { return &s.RecordMeta }),
	}
}

func (r *SettingsRepository) Create(ctx context.Context, record *domain.TrailSettings) error {
	if _, err := r.GetByKey(ctx, record.Key); err == nil {
		return store.ErrDuplicateKey
	} else if !errors.Is(err, store.ErrNotFound) {
		return err
	}
	return r.base.create(ctx, record)
}

func (r *SettingsRepository) Update(ctx context.Context, record *domain.TrailSettings) error {
	return r.base.update(ctx, record)
}

func (r *SettingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrailSettings, error) {
	return r.base.getByID(ctx, id)
}

func (r *SettingsRepository) GetByKey(ctx context.Context, key string) (*domain.TrailSettings, error) {
	record, err := r.base.repo.GetTx(ctx, conn(ctx, r.base.db), withKey(key), withoutDeleted())
	if err != nil {
		return nil, mapError(err)
	}
	return record, nil
}

func (r *SettingsRepository) DeleteByKey(ctx context.Context, key string) error {
	res, err := conn(ctx, r.base.db).NewDelete().
		Model((*domain.TrailSettings)(nil)).
		Where("LOWER(config_key) = ?", strings.ToLower(strings.TrimSpace(key))).
		ForceDelete().
		Exec(ctx)
	if err != nil {
		return mapError(err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return store.ErrNotFound
	}
	return nil
}
