package events

import "time"

const ReportEmailRequestedTopic = "hr.report.email.requested.v1"

type ReportEmailRequestedEvent struct {
	EventType      string    `json:"event_type"`
	EmployeeNumber string    `json:"employee_number"`
	Month          string    `json:"month"`
	Recipient      string    `json:"recipient"`
	RequestedBy    string    `json:"requested_by"`
	OccurredAt     time.Time `json:"occurred_at"`
}
