package events

import "time"

// Event subjects published by the engine
const (
	TypeDrawCompleted   = "draw.completed"
	TypeDrawFailed      = "draw.failed"
	TypeEntriesImported = "entries.imported"
)

// Event is an outbound notification about something the engine did
type Event struct {
	Type    string                 `json:"type"`
	At      time.Time              `json:"at"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Publisher delivers events to downstream consumers. Publishing is
// best-effort: the draw pipeline never fails because an event could not be
// delivered.
type Publisher interface {
	Publish(event Event)
	Close()
}

// NoopPublisher drops all events. Used when eventing is disabled.
type NoopPublisher struct{}

func (NoopPublisher) Publish(Event) {}
func (NoopPublisher) Close()        {}
