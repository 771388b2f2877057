package about

import (
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventProfileCreated EventType = "profile.created"
	EventProfileUpdated EventType = "profile.updated"
)

// Event announces a new or revised profile. Consumers re-read the store
// rather than trusting the payload.
type Event struct {
	EventType  EventType `json:"event_type"`
	ProfileID  uuid.UUID `json:"profile_id"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
