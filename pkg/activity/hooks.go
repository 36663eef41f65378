package activity

import (
	"context"
	"time"
)

// Verbs emitted by the settings editor.
const (
	VerbSettingsUpdated = "trails.settings.updated"
	VerbSettingsReset   = "trails.settings.reset"
)

// ObjectTypeSettings identifies the audited object.
const ObjectTypeSettings = "trail_settings"

// Event is an audit entry describing an administrator action.
type Event struct {
	Verb       string
	ActorID    string
	TenantID   string
	ObjectType string
	ObjectID   string
	Channel    string
	Metadata   map[string]any
	OccurredAt time.Time
}

// Hook observers receive activity events.
type Hook interface {
	Notify(ctx context.Context, evt Event)
}

// HookFunc lets plain functions act as hooks.
type HookFunc func(ctx context.Context, evt Event)

func (f HookFunc) Notify(ctx context.Context, evt Event) {
	if f != nil {
		f(ctx, evt)
	}
}

// Hooks fans an event out to several observers.
type Hooks []Hook

// Notify delivers the event to every hook, skipping nil entries.
func (h Hooks) Notify(ctx context.Context, evt Event) {
	if len(h) == 0 {
		return
	}
	if evt.OccurredAt.IsZero() {
		evt.OccurredAt = time.Now().UTC()
	}
	for _, hook := range h {
		if hook == nil {
			continue
		}
		delivered := evt
		delivered.Metadata = CloneMetadata(evt.Metadata)
		hook.Notify(ctx, delivered)
	}
}

// Nop discards events.
type Nop struct{}

func (Nop) Notify(_ context.Context, _ Event) {}

// CloneMetadata makes a shallow copy so hooks can mutate without affecting callers.
func CloneMetadata(src map[string]any) map[string]any {
	if len(src) == 0 {
		return nil
	}
	dst := make(map[string]any, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
