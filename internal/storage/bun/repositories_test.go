package bunrepo

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/interfaces/store"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

func setupSQLiteDB(t *testing.T) *bun.DB {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.DriverName(), "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("sql open: %v", err)
	}
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if _, err := db.NewDropTable().Model((*domain.TrailSettings)(nil)).IfExists().Exec(ctx); err != nil {
		t.Fatalf("drop table: %v", err)
	}
	if _, err := db.NewCreateTable().Model((*domain.TrailSettings)(nil)).IfNotExists().Exec(ctx); err != nil {
		t.Fatalf("create table: %v", err)
	}
	return db
}

func TestSettingsRepositoryBun(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	record := &domain.TrailSettings{
		Key:     domain.SettingsKey,
		BaseURL: "https://example.com/viz",
	}
	if err := repo.Create(ctx, record); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.GetByKey(ctx, domain.SettingsKey)
	if err != nil {
		t.Fatalf("get by key: %v", err)
	}
	if got.BaseURL != "https://example.com/viz" {
		t.Fatalf("unexpected base url %q", got.BaseURL)
	}

	got.BaseURL = ""
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("update: %v", err)
	}
	byID, err := repo.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if byID.BaseURL != "" {
		t.Fatalf("expected cleared base url, got %q", byID.BaseURL)
	}

	if err := repo.Create(ctx, &domain.TrailSettings{Key: domain.SettingsKey}); !errors.Is(err, store.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestSettingsRepositoryBunNotFound(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSettingsRepository(db)

	if _, err := repo.GetByKey(context.Background(), "missing"); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSettingsRepositoryBunDeleteByKey(t *testing.T) {
	db := setupSQLiteDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, &domain.TrailSettings{Key: domain.SettingsKey, BaseURL: "https://example.com"}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.DeleteByKey(ctx, domain.SettingsKey); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := repo.GetByKey(ctx, domain.SettingsKey); !errors.Is(err, store.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Create(ctx, &domain.TrailSettings{Key: domain.SettingsKey}); err != nil {
		t.Fatalf("expected create after delete to succeed: %v", err)
	}
}
