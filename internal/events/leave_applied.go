package events

import "time"

const LeaveAppliedTopic = "hr.leave.applied.v1"

type LeaveAppliedEvent struct {
	EventType   string    `json:"event_type"`
	RequestID   string    `json:"request_id"`
	LeaveID     uint      `json:"leave_id"`
	UserID      uint      `json:"user_id"`
	LeaveTypeID uint      `json:"leave_type_id"`
	TotalDays   int       `json:"total_days"`
	OccurredAt  time.Time `json:"occurred_at"`
}
