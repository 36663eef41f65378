package block

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	glog "github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-trails/internal/templates"
	"github.com/goliatone/go-trails/pkg/config"
	"github.com/goliatone/go-trails/pkg/domain"
	"github.com/goliatone/go-trails/pkg/resolver"
	"github.com/goliatone/go-trails/pkg/translations"
)

type logEntry struct {
	level string
	msg   string
	args  []any
}

type captureLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *captureLogger) add(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *captureLogger) Trace(msg string, args ...any)           { l.add("trace", msg, args) }
func (l *captureLogger) Debug(msg string, args ...any)           { l.add("debug", msg, args) }
func (l *captureLogger) Info(msg string, args ...any)            { l.add("info", msg, args) }
func (l *captureLogger) Warn(msg string, args ...any)            { l.add("warn", msg, args) }
func (l *captureLogger) Error(msg string, args ...any)           { l.add("error", msg, args) }
func (l *captureLogger) Fatal(msg string, args ...any)           { l.add("fatal", msg, args) }
func (l *captureLogger) WithContext(context.Context) glog.Logger { return l }

func (l *captureLogger) has(level, msg string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		if e.level == level && e.msg == msg {
			return true
		}
	}
	return false
}

func staticBase(url string) BaseURLSource {
	return BaseURLFunc(func(context.Context) (string, error) { return url, nil })
}

func newRenderer(t *testing.T, lgr *captureLogger, base BaseURLSource) *Renderer {
	t.Helper()
	translator, err := translations.NewTranslator("en")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	tpl, err := templates.NewService(translator)
	if err != nil {
		t.Fatalf("templates: %v", err)
	}
	return New(Dependencies{
		Resolver:  resolver.New(resolver.WithLogger(lgr)),
		BaseURL:   base,
		Templates: tpl,
		Logger:    lgr,
		Render:    config.Defaults().Render,
	})
}

func nodeView(id string) domain.ViewContext {
	return domain.NewViewContext("entity.node.canonical",
		domain.Param{Name: "node", Value: domain.EntityRef{Type: "node", ID: id}},
	)
}

func TestBuildProducesPayload(t *testing.T) {
	lgr := &captureLogger{}
	r := newRenderer(t, lgr, staticBase("https://trails.example.com/viz/"))

	payload, err := r.Build(context.Background(), nodeView("42"), "en")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if payload.Empty() {
		t.Fatal("expected a payload")
	}
	if payload.Theme != Theme || payload.EntityID != "42" || !payload.ShouldDisplay || payload.CacheMaxAge != 0 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.IframeURL != "https://trails.example.com/viz/42.html" {
		t.Fatalf("unexpected iframe url %q", payload.IframeURL)
	}
	if !strings.Contains(payload.HTML, `src="https://trails.example.com/viz/42.html"`) {
		t.Fatalf("expected iframe src in html:\n%s", payload.HTML)
	}
	if !strings.Contains(payload.Text, "https://trails.example.com/viz/42.html") {
		t.Fatalf("expected iframe url in text rendering:\n%s", payload.Text)
	}
	if len(lgr.entries) != 0 {
		t.Fatalf("expected no log output, got %+v", lgr.entries)
	}
}

func TestBuildWithoutEntity(t *testing.T) {
	lgr := &captureLogger{}
	r := newRenderer(t, lgr, staticBase("https://trails.example.com"))

	payload, err := r.Build(context.Background(), domain.NewViewContext("user.login"), "en")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !payload.Empty() {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
	if !lgr.has("warn", "No entity found in current route.") {
		t.Fatal("expected resolver warning")
	}
	if !lgr.has("warn", "No entity ID found for trails block.") {
		t.Fatal("expected block warning")
	}
}

func TestBuildWithoutBaseURL(t *testing.T) {
	lgr := &captureLogger{}
	r := newRenderer(t, lgr, staticBase(""))

	payload, err := r.Build(context.Background(), nodeView("42"), "en")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !payload.Empty() {
		t.Fatalf("expected empty payload, got %+v", payload)
	}
	if !lgr.has("error", "Base URL is not configured.") {
		t.Fatal("expected resolver error")
	}
	if !lgr.has("error", "Could not build iframe URL for entity.") {
		t.Fatal("expected block error")
	}
	for _, e := range lgr.entries {
		if e.msg == "Could not build iframe URL for entity." && (len(e.args) != 2 || e.args[1] != "42") {
			t.Fatalf("expected entity id field, got %v", e.args)
		}
	}
}

func TestBuildPropagatesBaseURLErrors(t *testing.T) {
	boom := errors.New("db down")
	r := newRenderer(t, &captureLogger{}, BaseURLFunc(func(context.Context) (string, error) { return "", boom }))
	if _, err := r.Build(context.Background(), nodeView("1"), "en"); !errors.Is(err, boom) {
		t.Fatalf("expected lookup error, got %v", err)
	}
}

func TestBuildWithoutTemplatesSkipsMarkup(t *testing.T) {
	r := New(Dependencies{BaseURL: staticBase("https://trails.example.com")})
	payload, err := r.Build(context.Background(), nodeView("9"), "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if payload.IframeURL != "https://trails.example.com/9.html" || payload.HTML != "" || payload.Text != "" {
		t.Fatalf("unexpected payload %+v", payload)
	}
}
