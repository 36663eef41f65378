package usersink

import (
	"context"
	"time"

	"github.com/goliatone/go-users/pkg/types"
	"github.com/google/uuid"

	"github.com/goliatone/go-trails/pkg/activity"
)

// DefaultChannel tags records when the event does not name one.
const DefaultChannel = "trails"

// Hook forwards trails audit events to a go-users ActivitySink.
type Hook struct {
	Sink types.ActivitySink
}

// Notify maps the event into a types.ActivityRecord. Sink errors are dropped;
// auditing never blocks a settings change.
func (h Hook) Notify(ctx context.Context, evt activity.Event) {
	if h.Sink == nil {
		return
	}
	channel := evt.Channel
	if channel == "" {
		channel = DefaultChannel
	}
	actor := parseUUID(evt.ActorID)
	record := types.ActivityRecord{
		ID:         uuid.New(),
		UserID:     actor,
		ActorID:    actor,
		Verb:       evt.Verb,
		ObjectType: evt.ObjectType,
		ObjectID:   evt.ObjectID,
		Channel:    channel,
		TenantID:   parseUUID(evt.TenantID),
		Data:       buildData(evt),
		OccurredAt: evt.OccurredAt,
	}
	if record.OccurredAt.IsZero() {
		record.OccurredAt = time.Now().UTC()
	}
	_ = h.Sink.Log(ctx, record)
}

func buildData(evt activity.Event) map[string]any {
	data := activity.CloneMetadata(evt.Metadata)
	if data == nil {
		data = make(map[string]any)
	}
	if evt.ActorID != "" && parseUUID(evt.ActorID) == uuid.Nil {
		data["actor"] = evt.ActorID
	}
	return data
}

func parseUUID(raw string) uuid.UUID {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil
	}
	return id
}
