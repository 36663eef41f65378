package storage

import (
	"context"
	"database/sql"

	persistence "github.com/goliatone/go-persistence-bun"
	bunrepo "github.com/goliatone/go-trails/internal/storage/bun"
	"github.com/goliatone/go-trails/internal/storage/memory"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/uptrace/bun"
)

// Providers exposes the repositories needed by services.
type Providers struct {
	Settings    store.SettingsRepository
	Transaction store.TransactionManager
}

type Option func(*Providers)

// WithSettingsRepository swaps the settings repository (useful for tests).
func WithSettingsRepository(repo store.SettingsRepository) Option {
	return func(p *Providers) {
		if repo != nil {
			p.Settings = repo
		}
	}
}

// NewMemoryProviders returns repositories backed by in-memory maps.
func NewMemoryProviders(opts ...Option) Providers {
	providers := Providers{
		Settings:    memory.NewSettingsRepository(),
		Transaction: &store.NopTransactionManager{},
	}
	for _, opt := range opts {
		opt(&providers)
	}
	return providers
}

// NewBunProviders wires Bun-backed repositories using go-repository-bun.
// The caller owns the *bun.DB lifecycle.
func NewBunProviders(db *bun.DB, opts ...Option) Providers {
	if db == nil {
		panic("storage: bun DB is required")
	}

	// Register models so go-persistence-bun migrations can pick them up.
	persistence.RegisterModel(Models()...)

	providers := Providers{
		Settings:    bunrepo.NewSettingsRepository(db),
		Transaction: &bunTxManager{db: db},
	}
	for _, opt := range opts {
		opt(&providers)
	}
	return providers
}

// Models lists every bun model owned by the module.
func Models() []any {
	return []any{
		(*domain.TrailSettings)(nil),
	}
}

// bunTxManager runs fn inside a bun transaction; repositories pick the tx up
// from the context passed to fn.
type bunTxManager struct {
	db *bun.DB
}

func (m *bunTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		return fn(bunrepo.ContextWithTx(ctx, tx))
	})
}
