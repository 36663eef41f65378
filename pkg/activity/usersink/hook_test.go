package usersink

import (
	"context"
	"testing"
	"time"

	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/goliatone/go-trails/pkg/activity"
)

type recordingSink struct {
	records []types.ActivityRecord
}

func (s *recordingSink) Log(_ context.Context, rec types.ActivityRecord) error {
	s.records = append(s.records, rec)
	return nil
}

func TestHookNotifyMapsSettingsEvent(t *testing.T) {
	sink := &recordingSink{}
	hook := Hook{Sink: sink}
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	actor := uuid.New()

	hook.Notify(context.Background(), activity.Event{
		Verb:       activity.VerbSettingsUpdated,
		ActorID:    actor.String(),
		ObjectType: activity.ObjectTypeSettings,
		ObjectID:   "trails.settings",
		Metadata:   map[string]any{"new_base_url": "https://example.com/viz"},
		OccurredAt: now,
	})

	if len(sink.records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(sink.records))
	}
	rec := sink.records[0]
	if rec.Verb != activity.VerbSettingsUpdated || rec.ActorID != actor {
		t.Fatalf("unexpected record %+v", rec)
	}
	if rec.ObjectType != activity.ObjectTypeSettings || rec.ObjectID != "trails.settings" {
		t.Fatalf("object fields not mapped")
	}
	if rec.Channel != DefaultChannel {
		t.Fatalf("expected default channel, got %q", rec.Channel)
	}
	if rec.Data["new_base_url"] != "https://example.com/viz" {
		t.Fatalf("metadata not propagated")
	}
	if rec.OccurredAt != now {
		t.Fatalf("occurred_at mismatch: %v", rec.OccurredAt)
	}
}

func TestHookKeepsNonUUIDActorInData(t *testing.T) {
	sink := &recordingSink{}
	Hook{Sink: sink}.Notify(context.Background(), activity.Event{Verb: activity.VerbSettingsReset, ActorID: "admin"})

	rec := sink.records[0]
	if rec.ActorID != uuid.Nil || rec.Data["actor"] != "admin" {
		t.Fatalf("expected textual actor in data, got %+v", rec)
	}
	if rec.OccurredAt.IsZero() {
		t.Fatal("expected occurred_at to be stamped")
	}
}

func TestHookWithoutSink(t *testing.T) {
	Hook{}.Notify(context.Background(), activity.Event{Verb: activity.VerbSettingsReset})
}
