package dashboard

type EmployeeDashboardResponse struct {
	PendingLeavesCount    int                   `json:"pendingLeavesCount"`
	ApprovedLeavesCount   int                   `json:"approvedLeavesCount"`
	RemainingLeaveSummary []LeaveBalanceSummary `json:"remainingLeaveSummary"`
	RecentLeaves          []RecentLeave         `json:"recentLeaves"`
}

type LeaveBalanceSummary struct {
	LeaveTypeName  string `json:"leaveTypeName"`
	RemainingDays  int    `json:"remainingDays"`
	MaxDaysPerYear int    `json:"maxDaysPerYear"`
}

type RecentLeave struct {
	ID            uint   `json:"id"`
	LeaveTypeName string `json:"leaveTypeName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TotalDays     int    `json:"totalDays"`
	Status        string `json:"status"`
	AppliedAt     string `json:"appliedAt"`
}

type ManagerDashboardResponse struct {
	PendingApprovalsCount int              `json:"pendingApprovalsCount"`
	ApprovedTodayCount    int              `json:"approvedTodayCount"`
	RecentDecisions       []RecentDecision `json:"recentDecisions"`
}

type RecentDecision struct {
	LeaveID       uint   `json:"leaveId"`
	EmployeeName  string `json:"employeeName"`
	LeaveTypeName string `json:"leaveTypeName"`
	StartDate     string `json:"startDate"`
	EndDate       string `json:"endDate"`
	TotalDays     int    `json:"totalDays"`
	Status        string `json:"status"`
	DecidedAt     string `json:"decidedAt"`
}

type AdminDashboardResponse struct {
	TotalUsers         int         `json:"totalUsers"`
	UsersByRole        UsersByRole `json:"usersByRole"`
	LeaveTypesCount    int         `json:"leaveTypesCount"`
	TotalLeaveRequests int64       `json:"totalLeaveRequests"`
}

type UsersByRole struct {
	Employees int `json:"employees"`
	Managers  int `json:"managers"`
	Admins    int `json:"admins"`
}
