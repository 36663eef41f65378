package commands

import (
	"testing"

	"github.com/goliatone/go-trails/internal/storage/memory"
	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/settings"
)

func TestRegistryExposesHandlers(t *testing.T) {
	svc, err := settings.New(settings.Dependencies{
		Repository: memory.NewSettingsRepository(),
		Config:     config.Defaults(),
	})
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	reg, err := New(Dependencies{Settings: svc, Block: block.New(block.Dependencies{})})
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	if len(reg.Commanders()) != 2 || len(reg.Queriers()) != 2 {
		t.Fatalf("unexpected handler counts %d/%d", len(reg.Commanders()), len(reg.Queriers()))
	}
}

func TestRegistryRejectsNilServices(t *testing.T) {
	if _, err := New(Dependencies{}); err == nil {
		t.Fatal("expected error for missing services")
	}
	var reg *Registry
	if reg.Commanders() != nil || reg.Queriers() != nil {
		t.Fatal("expected nil handlers on nil registry")
	}
}
