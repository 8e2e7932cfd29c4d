package events

import "time"

const LeaveDecidedTopic = "hr.leave.decided.v1"

type LeaveDecidedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id"`
	LeaveID    uint      `json:"leave_id"`
	UserID     uint      `json:"user_id"`
	Status     string    `json:"status"`
	ReviewedBy uint      `json:"reviewed_by"`
	OccurredAt time.Time `json:"occurred_at"`
}
