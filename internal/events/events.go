// Package events publishes ledger notifications to a message broker so that
// downstream consumers (spreadsheets sync, notifications) can react to them.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// Event types.
const (
	TypeInstallmentGroupCreated = "installment_group.created"
	TypeRecurrenceAdvanced      = "recurrence.advanced"
)

// Event is the JSON envelope sent to the broker.
type Event struct {
	Type       string         `json:"type"`
	UserID     string         `json:"user_id"`
	ResourceID string         `json:"resource_id,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data,omitempty"`
}

// New builds an event stamped with the current time.
func New(eventType, userID, resourceID string, data map[string]any) Event {
	return Event{
		Type:       eventType,
		UserID:     userID,
		ResourceID: resourceID,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}

// ToJSON encodes the event.
func (e Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events. Callers treat failures as non-fatal.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// Nop discards events. It is used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, Event) error { return nil }
func (Nop) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

// Events returns a copy of what has been published so far.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

func (r *Recorder) Close() error { return nil }
