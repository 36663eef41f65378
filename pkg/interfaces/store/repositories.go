package store

import (
	"context"
	"errors"

	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/google/uuid"
)

// ErrNotFound is returned when a record cannot be located.
var ErrNotFound = errors.New("store: not found")

// ErrDuplicateKey is returned when a settings record already exists for a key.
var ErrDuplicateKey = errors.New("store: duplicate key")

// SettingsRepository persists trails settings records keyed by config name.
type SettingsRepository interface {
	Create(ctx context.Context, record *domain.TrailSettings) error
	Update(ctx context.Context, record *domain.TrailSettings) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.TrailSettings, error)
	GetByKey(ctx context.Context, key string) (*domain.TrailSettings, error)
	// DeleteByKey removes the record so a new one can be created for key.
	DeleteByKey(ctx context.Context, key string) error
}
