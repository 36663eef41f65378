package trails

import (
	"context"
	"strings"
	"testing"

	"github.com/goliatone/go-trails/pkg/activity"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/settings"
	"github.com/goliatone/go-trails/pkg/storage"
)

func TestModuleConstruction(t *testing.T) {
	module, err := NewModule(ModuleOptions{Storage: storage.NewMemoryProviders()})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	if module.Resolver() == nil || module.Settings() == nil || module.Block() == nil {
		t.Fatal("expected core services")
	}
	if module.Commands() == nil {
		t.Fatal("expected commands registry")
	}
	if module.Container() == nil || module.Logger() == nil {
		t.Fatal("expected container and logger")
	}
}

func TestModuleRenderFlow(t *testing.T) {
	ctx := context.Background()
	var audited []activity.Event
	module, err := NewModule(ModuleOptions{
		Hooks: []activity.Hook{activity.HookFunc(func(_ context.Context, evt activity.Event) {
			audited = append(audited, evt)
		})},
	})
	if err != nil {
		t.Fatalf("module: %v", err)
	}
	view := domain.NewViewContext("entity.node.canonical",
		domain.Param{Name: "node", Value: domain.EntityRef{Type: "node", ID: "42"}},
	)

	show, err := module.ShouldDisplay(ctx, view)
	if err != nil || show {
		t.Fatalf("expected hidden block without base url, got %v (%v)", show, err)
	}

	if _, err := module.Settings().Save(ctx, settings.Input{BaseURL: "https://trails.example.com/viz/"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	show, err = module.ShouldDisplay(ctx, view)
	if err != nil || !show {
		t.Fatalf("expected block to display, got %v (%v)", show, err)
	}

	payload, err := module.Render(ctx, view, "en")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if payload.IframeURL != "https://trails.example.com/viz/42.html" || payload.CacheMaxAge != 0 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if !strings.Contains(payload.HTML, "<iframe") {
		t.Fatalf("expected iframe markup, got %q", payload.HTML)
	}
	if len(audited) != 1 || audited[0].Verb != activity.VerbSettingsUpdated {
		t.Fatalf("expected one audit event, got %+v", audited)
	}
}

func TestNilModuleIsSafe(t *testing.T) {
	var m *Module
	if payload, err := m.Render(context.Background(), domain.ViewContext{}, ""); err != nil || !payload.Empty() {
		t.Fatalf("expected empty payload, got %+v (%v)", payload, err)
	}
	if m.Resolver() != nil || m.Settings() != nil || m.Commands() != nil {
		t.Fatal("expected nil accessors")
	}
}
