package translations

import "testing"

func TestTranslatorResolvesCatalogs(t *testing.T) {
	translator, err := NewTranslator("")
	if err != nil {
		t.Fatalf("translator: %v", err)
	}
	if got := Translate(translator, "en", KeyFormBaseURLTitle); got != "Base URL" {
		t.Fatalf("expected Base URL, got %q", got)
	}
	if got := Translate(translator, "de", KeyFormBaseURLTitle); got != "Basis-URL" {
		t.Fatalf("expected german title, got %q", got)
	}
	if got := Translate(translator, "en", KeyIframeTitle, "42"); got != "Trail for 42" {
		t.Fatalf("expected formatted title, got %q", got)
	}
}

func TestTranslateFallsBackToDefaults(t *testing.T) {
	if got := Translate(nil, "fr", KeyFormBaseURLDescription); got != "The base URL for the iframe sources." {
		t.Fatalf("unexpected fallback %q", got)
	}
	if got := Translate(nil, "en", KeyIframeTitle, "7"); got != "Trail for 7" {
		t.Fatalf("unexpected formatted fallback %q", got)
	}
	if got := Translate(nil, "en", "unknown.key"); got != "unknown.key" {
		t.Fatalf("expected key echo, got %q", got)
	}
}
