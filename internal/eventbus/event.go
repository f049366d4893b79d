package eventbus

import (
	"time"

	"github.com/grachmannico95/fintrack-be/internal/domain"
)

type EventType string

const (
	EventTypeImportCompleted EventType = "import.completed"
)

type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Payload   interface{} `json:"payload"`
	Timestamp time.Time   `json:"timestamp"`
}

type ImportCompletedEvent struct {
	Record domain.ImportRecord `json:"record"`
}

// NewImportCompleted keys the event by preview id, so a replay of the same
// commit is recognised as a duplicate.
func NewImportCompleted(record domain.ImportRecord) Event {
	return Event{
		ID:        "import-completed-" + record.PreviewID,
		Type:      EventTypeImportCompleted,
		Payload:   ImportCompletedEvent{Record: record},
		Timestamp: record.CommittedAt,
	}
}
