package commands

import (
	"context"
	"testing"

	command "github.com/goliatone/go-command"

	"github.com/goliatone/go-trails/internal/storage/memory"
	"github.com/goliatone/go-trails/pkg/block"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/settings"
)

func newTestCatalog(t *testing.T) (*Catalog, *settings.Service) {
	t.Helper()
	svc, err := settings.New(settings.Dependencies{
		Repository: memory.NewSettingsRepository(),
		Config:     config.Defaults(),
	})
	if err != nil {
		t.Fatalf("settings: %v", err)
	}
	renderer := block.New(block.Dependencies{
		BaseURL: block.BaseURLFunc(func(ctx context.Context) (string, error) {
			current, err := svc.BaseURL(ctx)
			return current.Value, err
		}),
	})
	cat, err := NewCatalog(Dependencies{Settings: svc, Block: renderer})
	if err != nil {
		t.Fatalf("catalog: %v", err)
	}
	return cat, svc
}

func TestNewCatalogRequiresServices(t *testing.T) {
	if _, err := NewCatalog(Dependencies{}); err == nil {
		t.Fatal("expected missing settings service error")
	}
}

func TestCatalogSaveAndRender(t *testing.T) {
	ctx := context.Background()
	cat, _ := newTestCatalog(t)

	collector := command.NewResult[*domain.TrailSettings]()
	if err := cat.SaveSettings.Execute(command.ContextWithResult(ctx, collector), SaveSettings{BaseURL: "https://trails.example.com/"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	record, ok := collector.Load()
	if !ok || record.BaseURL != "https://trails.example.com/" {
		t.Fatalf("expected stored record result, got %+v (%v)", record, ok)
	}

	view := domain.NewViewContext("", domain.Param{Name: "node", Value: domain.EntityRef{Type: "node", ID: "12"}})
	payload, err := cat.RenderBlock.Query(ctx, RenderBlock{View: view})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if payload.IframeURL != "https://trails.example.com/12.html" {
		t.Fatalf("unexpected payload %+v", payload)
	}

	form, err := cat.GetSettings.Query(ctx, GetSettings{})
	if err != nil {
		t.Fatalf("form: %v", err)
	}
	if field, _ := form.Field(settings.FieldBaseURL); field.Value != "https://trails.example.com/" {
		t.Fatalf("expected prefilled form, got %+v", form)
	}
}

func TestCatalogResetClearsBlock(t *testing.T) {
	ctx := context.Background()
	cat, svc := newTestCatalog(t)

	if err := cat.SaveSettings.Execute(ctx, SaveSettings{BaseURL: "https://trails.example.com"}); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := cat.ResetSettings.Execute(ctx, ResetSettings{ActorID: "admin"}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if _, ok, _ := svc.Get(ctx); ok {
		t.Fatal("expected settings to be removed")
	}
	view := domain.NewViewContext("", domain.Param{Name: "node", Value: domain.EntityRef{Type: "node", ID: "12"}})
	payload, err := cat.RenderBlock.Query(ctx, RenderBlock{View: view})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !payload.Empty() {
		t.Fatalf("expected empty payload after reset, got %+v", payload)
	}
}

func TestSaveSettingsAcceptsFreeFormValues(t *testing.T) {
	for _, value := range []string{"  ", "https://example.com/a b"} {
		if err := (SaveSettings{BaseURL: value}).Validate(); err != nil {
			t.Fatalf("expected %q to be accepted, got %v", value, err)
		}
	}
	cat, _ := newTestCatalog(t)
	if err := cat.SaveSettings.Execute(context.Background(), SaveSettings{BaseURL: "https://example.com/a b"}); err != nil {
		t.Fatalf("expected free-form value to save, got %v", err)
	}
	if err := cat.SaveSettings.Execute(context.Background(), SaveSettings{BaseURL: "https://example.com/%zz"}); err == nil {
		t.Fatal("expected unparseable value to be rejected by the settings service")
	}
}
