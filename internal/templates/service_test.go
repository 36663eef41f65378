package templates

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-trails/pkg/translations"
)

func newTestService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	translator, err := translations.NewTranslator("en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	svc, err := NewService(translator, opts...)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresTranslator(t *testing.T) {
	if _, err := NewService(nil); !errors.Is(err, ErrTranslatorRequired) {
		t.Fatalf("expected ErrTranslatorRequired, got %v", err)
	}
}

func TestRenderIframeTemplate(t *testing.T) {
	svc := newTestService(t)
	out, err := svc.Render(context.Background(), IframeTemplate, "", map[string]any{
		"entity_id":  "42",
		"iframe_url": "https://example.com/viz/42.html",
		"width":      "100%",
		"height":     "600",
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{
		`src="https://example.com/viz/42.html"`,
		`title="Trail for 42"`,
		`data-entity-id="42"`,
		`height="600"`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderUsesRequestedLocale(t *testing.T) {
	svc := newTestService(t)
	out, err := svc.Render(context.Background(), IframeTemplate, "de", map[string]any{"entity_id": "7"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "Trail für 7") {
		t.Fatalf("expected german title, got:\n%s", out)
	}
}

func TestRenderCustomTemplateAndHelpers(t *testing.T) {
	svc := newTestService(t,
		WithTemplate("greeting", `{{ shout(name) }}`),
		WithHelperFuncs(map[string]any{"shout": strings.ToUpper, "skip": nil}),
	)
	out, err := svc.Render(context.Background(), "greeting", "en", map[string]any{"name": "trails"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "TRAILS" {
		t.Fatalf("unexpected output %q", out)
	}
	for _, name := range svc.Helpers() {
		if name == "skip" {
			t.Fatal("expected nil helper to be skipped")
		}
	}
}

func TestRenderUnknownTemplate(t *testing.T) {
	svc := newTestService(t)
	if _, err := svc.Render(context.Background(), "missing", "en", nil); !errors.Is(err, ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}
}

func TestRenderHonoursCancelledContext(t *testing.T) {
	svc := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Render(ctx, IframeTemplate, "en", nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
