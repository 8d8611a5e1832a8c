package events

import "time"

const LeaveTypeLifecycleTopic = "hr.leave_type.lifecycle.v1"

const LeaveTypeCreatedEventType = "leave_type_created"

// LeaveTypeCreatedEvent asks the balance seeder to backfill the new type for
// every active user.
type LeaveTypeCreatedEvent struct {
	EventType          string    `json:"event_type"`
	RequestID          string    `json:"request_id,omitempty"`
	LeaveTypeID        string    `json:"leave_type_id"`
	DefaultDaysPerYear int       `json:"default_days_per_year"`
	Year               int       `json:"year"`
	OccurredAt         time.Time `json:"occurred_at"`
}
