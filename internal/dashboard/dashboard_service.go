package dashboard

import (
	"context"
	"time"

	"go-leave/internal/balance"
	"go-leave/internal/leave"
	"go-leave/internal/leavetype"
	"go-leave/internal/user"

	"go.uber.org/zap"
)

const recentLimit = 5

//go:generate mockgen -source=dashboard_service.go -destination=mock/dashboard_service_mock.go -package=mock
type Service interface {
	Employee(ctx context.Context, userID uint) (EmployeeDashboardResponse, error)
	Manager(ctx context.Context) (ManagerDashboardResponse, error)
	Admin(ctx context.Context) (AdminDashboardResponse, error)
}

type service struct {
	leaves   leave.Repository
	balances balance.Repository
	users    user.Repository
	types    leavetype.Repository
	logger   *zap.Logger
}

func NewService(leaves leave.Repository, balances balance.Repository, users user.Repository, types leavetype.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{leaves: leaves, balances: balances, users: users, types: types, logger: l}
}

func (s *service) Employee(ctx context.Context, userID uint) (EmployeeDashboardResponse, error) {
	pending, err := s.leaves.CountByUserAndStatus(ctx, userID, leave.StatusPending)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}
	approved, err := s.leaves.CountByUserAndStatus(ctx, userID, leave.StatusApproved)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	summaries, err := s.balances.FindSummariesByUser(ctx, userID)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	recent, err := s.leaves.FindRecentByUser(ctx, userID, recentLimit)
	if err != nil {
		return EmployeeDashboardResponse{}, err
	}

	resp := EmployeeDashboardResponse{
		PendingLeavesCount:    int(pending),
		ApprovedLeavesCount:   int(approved),
		RemainingLeaveSummary: make([]LeaveBalanceSummary, len(summaries)),
		RecentLeaves:          make([]RecentLeave, len(recent)),
	}
	for i, sum := range summaries {
		resp.RemainingLeaveSummary[i] = LeaveBalanceSummary{
			LeaveTypeName:  sum.LeaveTypeName,
			RemainingDays:  sum.RemainingDays,
			MaxDaysPerYear: sum.MaxDaysPerYear,
		}
	}
	for i, l := range recent {
		item := RecentLeave{
			ID:        l.ID,
			StartDate: l.StartDate.Format("2006-01-02"),
			EndDate:   l.EndDate.Format("2006-01-02"),
			TotalDays: l.TotalDays,
			Status:    l.Status,
			AppliedAt: l.AppliedAt.Format(time.RFC3339),
		}
		if l.LeaveType != nil {
			item.LeaveTypeName = l.LeaveType.Name
		}
		resp.RecentLeaves[i] = item
	}
	return resp, nil
}

func (s *service) Manager(ctx context.Context) (ManagerDashboardResponse, error) {
	pending, err := s.leaves.CountByStatus(ctx, leave.StatusPending)
	if err != nil {
		return ManagerDashboardResponse{}, err
	}

	// Counts approved requests applied today, not decided today. Kept as-is
	// until the frontend card is reworded; see the repository method.
	approvedToday, err := s.leaves.CountApprovedAppliedOn(ctx, time.Now().UTC())
	if err != nil {
		return ManagerDashboardResponse{}, err
	}

	decided, err := s.leaves.FindRecentDecided(ctx, recentLimit)
	if err != nil {
		return ManagerDashboardResponse{}, err
	}

	resp := ManagerDashboardResponse{
		PendingApprovalsCount: int(pending),
		ApprovedTodayCount:    int(approvedToday),
		RecentDecisions:       make([]RecentDecision, len(decided)),
	}
	for i, l := range decided {
		item := RecentDecision{
			LeaveID:   l.ID,
			StartDate: l.StartDate.Format("2006-01-02"),
			EndDate:   l.EndDate.Format("2006-01-02"),
			TotalDays: l.TotalDays,
			Status:    l.Status,
		}
		if l.User != nil {
			item.EmployeeName = l.User.Name
		}
		if l.LeaveType != nil {
			item.LeaveTypeName = l.LeaveType.Name
		}
		if l.ReviewedAt != nil {
			item.DecidedAt = l.ReviewedAt.Format(time.RFC3339)
		} else {
			item.DecidedAt = l.AppliedAt.Format(time.RFC3339)
		}
		resp.RecentDecisions[i] = item
	}
	return resp, nil
}

func (s *service) Admin(ctx context.Context) (AdminDashboardResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return AdminDashboardResponse{}, err
	}

	byRole := UsersByRole{}
	for _, u := range users {
		switch u.Role {
		case user.RoleEmployee:
			byRole.Employees++
		case user.RoleManager:
			byRole.Managers++
		case user.RoleAdmin:
			byRole.Admins++
		}
	}

	types, err := s.types.FindAll(ctx)
	if err != nil {
		return AdminDashboardResponse{}, err
	}

	totalRequests, err := s.leaves.Count(ctx)
	if err != nil {
		return AdminDashboardResponse{}, err
	}

	return AdminDashboardResponse{
		TotalUsers:         len(users),
		UsersByRole:        byRole,
		LeaveTypesCount:    len(types),
		TotalLeaveRequests: totalRequests,
	}, nil
}
