package leave

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

// isAllowedStatusTransition encodes the lifecycle: a request is decided
// exactly once. Approved and rejected are both terminal.
func isAllowedStatusTransition(currentStatus, targetStatus string) bool {
	if currentStatus != StatusPending {
		return false
	}
	return targetStatus == StatusApproved || targetStatus == StatusRejected
}
