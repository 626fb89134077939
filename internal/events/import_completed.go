package events

import "time"

const ImportCompletedTopic = "hr.import.completed.v1"

type ImportCompletedEvent struct {
	EventType  string    `json:"event_type"`
	Domain     string    `json:"domain"`
	RowCount   int       `json:"row_count"`
	UploadedBy string    `json:"uploaded_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
