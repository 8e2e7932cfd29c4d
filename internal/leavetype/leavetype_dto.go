package leavetype

type CreateLeaveTypeRequest struct {
	Name           string `json:"name" binding:"required"`
	MaxDaysPerYear int    `json:"max_days_per_year" binding:"required,min=1,max=365"`
}

type UpdateLeaveTypeRequest struct {
	MaxDaysPerYear int `json:"max_days_per_year" binding:"required,min=1,max=365"`
}

type LeaveTypeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	MaxDaysPerYear int    `json:"max_days_per_year"`
}
