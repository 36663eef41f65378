package templates

import (
	"sort"
	"sync"

	gotemplate "github.com/goliatone/go-template"
)

// helperRegistry tracks which helpers were pushed into the renderer. Nil
// funcs are skipped since pongo2 cannot call them.
type helperRegistry struct {
	mu       sync.Mutex
	names    map[string]struct{}
	renderer *gotemplate.Engine
}

func newHelperRegistry(renderer *gotemplate.Engine) *helperRegistry {
	return &helperRegistry{
		names:    make(map[string]struct{}),
		renderer: renderer,
	}
}

func (r *helperRegistry) Register(funcs map[string]any) {
	if r == nil || len(funcs) == 0 {
		return
	}
	live := make(map[string]any, len(funcs))
	r.mu.Lock()
	for name, fn := range funcs {
		if fn == nil {
			continue
		}
		live[name] = fn
		r.names[name] = struct{}{}
	}
	r.mu.Unlock()
	if len(live) > 0 {
		gotemplate.WithTemplateFunc(live)(r.renderer)
	}
}

func (r *helperRegistry) Names() []string {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.names))
	for name := range r.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
