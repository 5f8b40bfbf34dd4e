package events

import (
	"time"

	"github.com/google/uuid"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the subject suffix for this event (e.g. "created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the canonical Event implementation.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// Lifecycle event types. Each becomes the suffix of a "returns.<type>"
// JetStream subject.
const (
	TypeReturnCreated   = "created"
	TypeReturnApproved  = "approved"
	TypeReturnCancelled = "cancelled"
	TypeReturnCompleted = "completed"
)

func newReturnEvent(eventType string, returnId uuid.UUID, authorizationCode, status string) BaseEvent {
	return BaseEvent{
		Type: eventType,
		Data: map[string]interface{}{
			"return_id":          returnId,
			"authorization_code": authorizationCode,
			"status":             status,
		},
		OccurredAt: time.Now(),
	}
}

func NewReturnCreated(returnId uuid.UUID, authorizationCode, status string) BaseEvent {
	return newReturnEvent(TypeReturnCreated, returnId, authorizationCode, status)
}

func NewReturnApproved(returnId uuid.UUID, authorizationCode, status string) BaseEvent {
	return newReturnEvent(TypeReturnApproved, returnId, authorizationCode, status)
}

func NewReturnCancelled(returnId uuid.UUID, authorizationCode, status string) BaseEvent {
	return newReturnEvent(TypeReturnCancelled, returnId, authorizationCode, status)
}

func NewReturnCompleted(returnId uuid.UUID, authorizationCode, status string) BaseEvent {
	return newReturnEvent(TypeReturnCompleted, returnId, authorizationCode, status)
}
