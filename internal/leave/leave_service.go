package leave

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go-leave/internal/balance"
	balanceerrors "go-leave/internal/balance/errors"
	"go-leave/internal/events"
	leaveerrors "go-leave/internal/leave/errors"
	"go-leave/internal/leavetype"
	leavetypeerrors "go-leave/internal/leavetype/errors"
	"go-leave/internal/messaging/kafka"
	"go-leave/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, userID uint, req ApplyLeaveRequest) (LeaveResponse, error)
	MyRequests(ctx context.Context, userID uint) ([]LeaveResponse, error)
	MyBalances(ctx context.Context, userID uint) ([]LeaveBalanceResponse, error)
	Pending(ctx context.Context) ([]LeaveResponse, error)
	Approve(ctx context.Context, reviewerID, leaveID uint) (ApprovalResponse, error)
	Reject(ctx context.Context, reviewerID, leaveID uint) (ApprovalResponse, error)
}

type service struct {
	db       *gorm.DB
	repo     Repository
	types    leavetype.Repository
	balances balance.Repository
	outbox   kafka.OutboxRepository
	logger   *zap.Logger
}

func NewService(db *gorm.DB, repo Repository, types leavetype.Repository, balances balance.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{db: db, repo: repo, types: types, balances: balances, logger: l}
}

func NewServiceWithOutbox(db *gorm.DB, repo Repository, types leavetype.Repository, balances balance.Repository, outbox kafka.OutboxRepository, logger ...*zap.Logger) Service {
	svc := NewService(db, repo, types, balances, logger...).(*service)
	svc.outbox = outbox
	return svc
}

// Apply validates the request, debits the balance up front and stores the
// request as PENDING, all in one transaction. The days come back only if a
// manager later rejects it.
func (s *service) Apply(ctx context.Context, userID uint, req ApplyLeaveRequest) (LeaveResponse, error) {
	s.logger.Debug("apply leave requested",
		zap.Uint("user_id", userID),
		zap.Uint("leave_type_id", req.LeaveTypeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return LeaveResponse{}, err
	}
	if startDate.After(endDate) {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateRange
	}

	var l *LeaveRequest

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)
		qBalances := s.balances.WithTx(tx)

		lt, err := s.types.WithTx(tx).FindByID(ctx, req.LeaveTypeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leavetypeerrors.ErrLeaveTypeNotFound
			}
			return err
		}

		// Inclusive of both endpoints: a one-day leave is start == end.
		totalDays := int(endDate.Sub(startDate).Hours()/24) + 1

		b, err := qBalances.FindByUserAndType(ctx, userID, lt.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return balanceerrors.ErrNoBalanceRecord
			}
			return err
		}

		if err := balance.Debit(b, totalDays); err != nil {
			return err
		}

		overlap, err := qtx.HasOverlappingPeriod(ctx, userID, startDate, endDate)
		if err != nil {
			return err
		}
		if overlap {
			s.logger.Warn("apply leave overlap detected",
				zap.Uint("user_id", userID),
				zap.String("start_date", req.StartDate),
				zap.String("end_date", req.EndDate),
			)
			return leaveerrors.ErrLeaveOverlap
		}

		l = &LeaveRequest{
			UserID:      userID,
			LeaveTypeID: lt.ID,
			StartDate:   startDate,
			EndDate:     endDate,
			TotalDays:   totalDays,
			Reason:      req.Reason,
			Status:      StatusPending,
			AppliedAt:   time.Now().UTC(),
		}

		if err := qtx.Create(ctx, l); err != nil {
			return err
		}

		if err := qBalances.Update(ctx, b); err != nil {
			return err
		}

		return s.enqueueApplied(ctx, tx, l)
	})
	if err != nil {
		s.logger.Warn("apply leave failed", zap.Uint("user_id", userID), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("apply leave success",
		zap.Uint("leave_id", l.ID),
		zap.Uint("user_id", userID),
		zap.Int("total_days", l.TotalDays),
	)
	return mapToResponse(*l), nil
}

func (s *service) MyRequests(ctx context.Context, userID uint) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindAllByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

func (s *service) MyBalances(ctx context.Context, userID uint) ([]LeaveBalanceResponse, error) {
	summaries, err := s.balances.FindSummariesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make([]LeaveBalanceResponse, len(summaries))
	for i, sum := range summaries {
		resp[i] = LeaveBalanceResponse{
			LeaveTypeID:    sum.LeaveTypeID,
			LeaveTypeName:  sum.LeaveTypeName,
			RemainingDays:  sum.RemainingDays,
			MaxDaysPerYear: sum.MaxDaysPerYear,
		}
	}
	return resp, nil
}

func (s *service) Pending(ctx context.Context) ([]LeaveResponse, error) {
	leaves, err := s.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	return mapToListResponse(leaves), nil
}

// Approve only flips the status: the balance was already debited when the
// request was applied.
func (s *service) Approve(ctx context.Context, reviewerID, leaveID uint) (ApprovalResponse, error) {
	return s.decide(ctx, reviewerID, leaveID, StatusApproved)
}

// Reject returns the debited days to the balance along with the status flip.
func (s *service) Reject(ctx context.Context, reviewerID, leaveID uint) (ApprovalResponse, error) {
	return s.decide(ctx, reviewerID, leaveID, StatusRejected)
}

func (s *service) decide(ctx context.Context, reviewerID, leaveID uint, targetStatus string) (ApprovalResponse, error) {
	s.logger.Debug("decide leave requested",
		zap.Uint("leave_id", leaveID),
		zap.Uint("reviewer_id", reviewerID),
		zap.String("target_status", targetStatus),
	)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		qtx := s.repo.WithTx(tx)

		l, err := qtx.FindByID(ctx, leaveID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return leaveerrors.ErrLeaveNotFound
			}
			return err
		}

		if !isAllowedStatusTransition(l.Status, targetStatus) {
			s.logger.Warn("decide leave transition invalid",
				zap.Uint("leave_id", leaveID),
				zap.String("from_status", l.Status),
				zap.String("to_status", targetStatus),
			)
			return leaveerrors.InvalidTransition(l.Status)
		}

		now := time.Now().UTC()
		l.Status = targetStatus
		l.ReviewedAt = &now
		l.ReviewedBy = &reviewerID

		if targetStatus == StatusRejected {
			if err := s.creditBack(ctx, tx, l); err != nil {
				return err
			}
		}

		if err := qtx.Update(ctx, l); err != nil {
			return err
		}

		return s.enqueueDecided(ctx, tx, l)
	})
	if err != nil {
		s.logger.Warn("decide leave failed",
			zap.Uint("leave_id", leaveID),
			zap.String("target_status", targetStatus),
			zap.Error(err),
		)
		return ApprovalResponse{}, err
	}

	s.logger.Info("decide leave success",
		zap.Uint("leave_id", leaveID),
		zap.Uint("reviewer_id", reviewerID),
		zap.String("status", targetStatus),
	)
	return ApprovalResponse{
		LeaveID: leaveID,
		Status:  targetStatus,
		Message: fmt.Sprintf("leave request %s", lowerStatus(targetStatus)),
	}, nil
}

// creditBack restores the days a rejection frees up. A missing balance row is
// tolerated: the leave type may have been reconfigured since the request was
// made, and a rejection must not fail over bookkeeping.
func (s *service) creditBack(ctx context.Context, tx *gorm.DB, l *LeaveRequest) error {
	qBalances := s.balances.WithTx(tx)

	b, err := qBalances.FindByUserAndType(ctx, l.UserID, l.LeaveTypeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("reject leave balance row missing, skipping credit",
				zap.Uint("leave_id", l.ID),
				zap.Uint("user_id", l.UserID),
				zap.Uint("leave_type_id", l.LeaveTypeID),
			)
			return nil
		}
		return err
	}

	balance.Credit(b, l.TotalDays)
	return qBalances.Update(ctx, b)
}

func (s *service) enqueueApplied(ctx context.Context, tx *gorm.DB, l *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveAppliedEvent{
		EventType:   "leave_applied",
		RequestID:   rid,
		LeaveID:     l.ID,
		UserID:      l.UserID,
		LeaveTypeID: l.LeaveTypeID,
		TotalDays:   l.TotalDays,
		OccurredAt:  time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   fmt.Sprintf("%d", l.ID),
		EventType:     event.EventType,
		Topic:         events.LeaveAppliedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueueDecided(ctx context.Context, tx *gorm.DB, l *LeaveRequest) error {
	if s.outbox == nil {
		return nil
	}

	rid := contextutil.GetRequestID(ctx)
	event := events.LeaveDecidedEvent{
		EventType:  "leave_decided",
		RequestID:  rid,
		LeaveID:    l.ID,
		UserID:     l.UserID,
		Status:     l.Status,
		ReviewedBy: *l.ReviewedBy,
		OccurredAt: time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		s.logger.Error("marshal event failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "leave_request",
		AggregateID:   fmt.Sprintf("%d", l.ID),
		EventType:     event.EventType,
		Topic:         events.LeaveDecidedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, leaveerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func lowerStatus(status string) string {
	switch status {
	case StatusApproved:
		return "approved"
	case StatusRejected:
		return "rejected"
	default:
		return "pending"
	}
}

func mapToResponse(l LeaveRequest) LeaveResponse {
	resp := LeaveResponse{
		ID:          l.ID,
		UserID:      l.UserID,
		LeaveTypeID: l.LeaveTypeID,
		StartDate:   l.StartDate.Format("2006-01-02"),
		EndDate:     l.EndDate.Format("2006-01-02"),
		TotalDays:   l.TotalDays,
		Reason:      l.Reason,
		Status:      l.Status,
		AppliedAt:   l.AppliedAt.Format(time.RFC3339),
		ReviewedBy:  l.ReviewedBy,
	}
	if l.User != nil {
		resp.UserName = l.User.Name
	}
	if l.LeaveType != nil {
		resp.LeaveTypeName = l.LeaveType.Name
	}
	if l.ReviewedAt != nil {
		v := l.ReviewedAt.Format(time.RFC3339)
		resp.ReviewedAt = &v
	}
	return resp
}

func mapToListResponse(leaves []LeaveRequest) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}
