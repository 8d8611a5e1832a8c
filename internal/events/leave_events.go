package events

import "time"

const LeaveLifecycleTopic = "hr.leave.lifecycle.v1"

const (
	LeaveCreatedEventType       = "leave_created"
	LeaveStatusChangedEventType = "leave_status_changed"
	LeaveDeletedEventType       = "leave_deleted"
)

type LeaveCreatedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	LeaveID     string    `json:"leave_id"`
	RequesterID string    `json:"requester_id"`
	LeaveTypeID string    `json:"leave_type_id"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	TotalDays   int       `json:"total_days"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type LeaveStatusChangedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	LeaveID     string    `json:"leave_id"`
	RequesterID string    `json:"requester_id"`
	ActorID     string    `json:"actor_id"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Step        string    `json:"step"`
	OccurredAt  time.Time `json:"occurred_at"`
}

type LeaveDeletedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id,omitempty"`
	LeaveID     string    `json:"leave_id"`
	RequesterID string    `json:"requester_id"`
	PriorStatus string    `json:"prior_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}
