package memory

import (
	"context"
	"strings"

	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/google/uuid"
)

type SettingsRepository struct {
	base baseMemoryRepo[domain.TrailSettings]
}

var _ store.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository() *SettingsRepository {
	return &SettingsRepository{
		base: newBaseMemoryRepo(func(s *domain.TrailSettings) *domain.RecordMeta { return &s.RecordMeta }),
	}
}

func (r *SettingsRepository) Create(ctx context.Context, record *domain.TrailSettings) error {
	if _, err := r.GetByKey(ctx, record.Key); err == nil {
		return store.ErrDuplicateKey
	}
	return r.base.create(ctx, record)
}

func (r *SettingsRepository) Update(ctx context.Context, record *domain.TrailSettings) error {
	return r.base.update(ctx, record)
}

func (r *SettingsRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.TrailSettings, error) {
	return r.base.getByID(ctx, id)
}

func (r *SettingsRepository) GetByKey(_ context.Context, key string) (*domain.TrailSettings, error) {
	key = strings.TrimSpace(key)
	return r.base.find(func(s *domain.TrailSettings) bool {
		return strings.EqualFold(s.Key, key)
	})
}

func (r *SettingsRepository) DeleteByKey(_ context.Context, key string) error {
	key = strings.TrimSpace(key)
	return r.base.remove(func(s *domain.TrailSettings) bool {
		return strings.EqualFold(s.Key, key)
	})
}
