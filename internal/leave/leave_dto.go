package leave

type ApplyLeaveRequest struct {
	LeaveTypeID uint   `json:"leaveTypeId" binding:"required"`
	StartDate   string `json:"startDate" binding:"required"`
	EndDate     string `json:"endDate" binding:"required"`
	Reason      string `json:"reason"`
}

type LeaveResponse struct {
	ID            uint    `json:"id"`
	UserID        uint    `json:"userId"`
	UserName      string  `json:"userName,omitempty"`
	LeaveTypeID   uint    `json:"leaveTypeId"`
	LeaveTypeName string  `json:"leaveTypeName,omitempty"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
	TotalDays     int     `json:"totalDays"`
	Reason        string  `json:"reason"`
	Status        string  `json:"status"`
	AppliedAt     string  `json:"appliedAt"`
	ReviewedAt    *string `json:"reviewedAt,omitempty"`
	ReviewedBy    *uint   `json:"reviewedBy,omitempty"`
}

type ApprovalResponse struct {
	LeaveID uint   `json:"leaveId"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type LeaveBalanceResponse struct {
	LeaveTypeID    uint   `json:"leaveTypeId"`
	LeaveTypeName  string `json:"leaveTypeName"`
	RemainingDays  int    `json:"remainingDays"`
	MaxDaysPerYear int    `json:"maxDaysPerYear"`
}
