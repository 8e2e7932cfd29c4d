package leavetype_test

import (
	"context"
	"testing"

	"go-leave/internal/balance"
	"go-leave/internal/leavetype"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type fakeLeaveTypeRepository struct {
	createFn           func(ctx context.Context, lt *leavetype.LeaveType) error
	findAllFn          func(ctx context.Context) ([]leavetype.LeaveType, error)
	findByIDFn         func(ctx context.Context, id uint) (*leavetype.LeaveType, error)
	findByNameFoldFn   func(ctx context.Context, name string) (*leavetype.LeaveType, error)
	updateFn           func(ctx context.Context, lt *leavetype.LeaveType) error
	deleteFn           func(ctx context.Context, id uint) error
	hasLeaveRequestsFn func(ctx context.Context, id uint) (bool, error)
}

func (f *fakeLeaveTypeRepository) WithTx(tx *gorm.DB) leavetype.Repository { return f }

func (f *fakeLeaveTypeRepository) Create(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.createFn != nil {
		return f.createFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) FindAll(ctx context.Context) ([]leavetype.LeaveType, error) {
	if f.findAllFn != nil {
		return f.findAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeLeaveTypeRepository) FindByID(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveTypeRepository) FindByNameFold(ctx context.Context, name string) (*leavetype.LeaveType, error) {
	if f.findByNameFoldFn != nil {
		return f.findByNameFoldFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeLeaveTypeRepository) Update(ctx context.Context, lt *leavetype.LeaveType) error {
	if f.updateFn != nil {
		return f.updateFn(ctx, lt)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return nil
}

func (f *fakeLeaveTypeRepository) HasLeaveRequests(ctx context.Context, id uint) (bool, error) {
	if f.hasLeaveRequestsFn != nil {
		return f.hasLeaveRequestsFn(ctx, id)
	}
	return false, nil
}

type fakeBalanceRepository struct {
	findAllByTypeFn     func(ctx context.Context, leaveTypeID uint) ([]balance.LeaveBalance, error)
	createForAllUsersFn func(ctx context.Context, leaveTypeID uint, remainingDays int) error
	updateBatchFn       func(ctx context.Context, balances []balance.LeaveBalance) error
	deleteByTypeFn      func(ctx context.Context, leaveTypeID uint) error
}

func (f *fakeBalanceRepository) WithTx(tx *gorm.DB) balance.Repository { return f }

func (f *fakeBalanceRepository) FindByUserAndType(ctx context.Context, userID, leaveTypeID uint) (*balance.LeaveBalance, error) {
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBalanceRepository) FindAllByType(ctx context.Context, leaveTypeID uint) ([]balance.LeaveBalance, error) {
	if f.findAllByTypeFn != nil {
		return f.findAllByTypeFn(ctx, leaveTypeID)
	}
	return nil, nil
}

func (f *fakeBalanceRepository) FindSummariesByUser(ctx context.Context, userID uint) ([]balance.Summary, error) {
	return nil, nil
}

func (f *fakeBalanceRepository) CreateBatch(ctx context.Context, balances []balance.LeaveBalance) error {
	return nil
}

func (f *fakeBalanceRepository) CreateForAllUsers(ctx context.Context, leaveTypeID uint, remainingDays int) error {
	if f.createForAllUsersFn != nil {
		return f.createForAllUsersFn(ctx, leaveTypeID, remainingDays)
	}
	return nil
}

func (f *fakeBalanceRepository) Update(ctx context.Context, b *balance.LeaveBalance) error {
	return nil
}

func (f *fakeBalanceRepository) UpdateBatch(ctx context.Context, balances []balance.LeaveBalance) error {
	if f.updateBatchFn != nil {
		return f.updateBatchFn(ctx, balances)
	}
	return nil
}

func (f *fakeBalanceRepository) DeleteByType(ctx context.Context, leaveTypeID uint) error {
	if f.deleteByTypeFn != nil {
		return f.deleteByTypeFn(ctx, leaveTypeID)
	}
	return nil
}

type leaveTypeServiceDeps struct {
	sqlMock  sqlmock.Sqlmock
	service  leavetype.Service
	repo     *fakeLeaveTypeRepository
	balances *fakeBalanceRepository
}

func setupLeaveTypeServiceTest(t *testing.T) *leaveTypeServiceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 db,
		PreferSimpleProtocol: true,
	}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)

	repo := &fakeLeaveTypeRepository{}
	balances := &fakeBalanceRepository{}
	svc := leavetype.NewService(gormDB, repo, balances)

	return &leaveTypeServiceDeps{
		sqlMock:  sqlMock,
		service:  svc,
		repo:     repo,
		balances: balances,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestLeaveTypeService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("success seeds balances at full quota", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, lt *leavetype.LeaveType) error {
			lt.ID = 4
			return nil
		}

		var seededTypeID uint
		var seededDays int
		deps.balances.createForAllUsersFn = func(ctx context.Context, leaveTypeID uint, remainingDays int) error {
			seededTypeID = leaveTypeID
			seededDays = remainingDays
			return nil
		}

		resp, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{
			Name:           "Paternity Leave",
			MaxDaysPerYear: 7,
		})

		assert.NoError(t, err)
		assert.Equal(t, uint(4), resp.ID)
		assert.Equal(t, uint(4), seededTypeID)
		assert.Equal(t, 7, seededDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative duplicate name case-insensitive", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByNameFoldFn = func(ctx context.Context, name string) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: 1, Name: "Casual Leave"}, nil
		}

		_, err := deps.service.Create(ctx, leavetype.CreateLeaveTypeRequest{
			Name:           "casual leave",
			MaxDaysPerYear: 12,
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveTypeService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success quota raise grants delta", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: id, Name: "Casual Leave", MaxDaysPerYear: 12}, nil
		}
		deps.balances.findAllByTypeFn = func(ctx context.Context, leaveTypeID uint) ([]balance.LeaveBalance, error) {
			return []balance.LeaveBalance{
				{ID: 1, RemainingDays: 3},
				{ID: 2, RemainingDays: 12},
			}, nil
		}

		var saved []balance.LeaveBalance
		deps.balances.updateBatchFn = func(ctx context.Context, balances []balance.LeaveBalance) error {
			saved = balances
			return nil
		}

		resp, err := deps.service.Update(ctx, 1, leavetype.UpdateLeaveTypeRequest{MaxDaysPerYear: 15})

		assert.NoError(t, err)
		assert.Equal(t, 15, resp.MaxDaysPerYear)
		assert.Len(t, saved, 2)
		assert.Equal(t, 6, saved[0].RemainingDays)
		assert.Equal(t, 15, saved[1].RemainingDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success quota cut clamps", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: id, Name: "Casual Leave", MaxDaysPerYear: 12}, nil
		}
		deps.balances.findAllByTypeFn = func(ctx context.Context, leaveTypeID uint) ([]balance.LeaveBalance, error) {
			return []balance.LeaveBalance{
				{ID: 1, RemainingDays: 12},
				{ID: 2, RemainingDays: 4},
			}, nil
		}

		var saved []balance.LeaveBalance
		deps.balances.updateBatchFn = func(ctx context.Context, balances []balance.LeaveBalance) error {
			saved = balances
			return nil
		}

		_, err := deps.service.Update(ctx, 1, leavetype.UpdateLeaveTypeRequest{MaxDaysPerYear: 8})

		assert.NoError(t, err)
		assert.Equal(t, 8, saved[0].RemainingDays)
		assert.Equal(t, 4, saved[1].RemainingDays)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("success unchanged quota skips cascade", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: id, Name: "Casual Leave", MaxDaysPerYear: 12}, nil
		}

		cascaded := false
		deps.balances.findAllByTypeFn = func(ctx context.Context, leaveTypeID uint) ([]balance.LeaveBalance, error) {
			cascaded = true
			return nil, nil
		}

		_, err := deps.service.Update(ctx, 1, leavetype.UpdateLeaveTypeRequest{MaxDaysPerYear: 12})

		assert.NoError(t, err)
		assert.False(t, cascaded)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative unknown id", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Update(ctx, 99, leavetype.UpdateLeaveTypeRequest{MaxDaysPerYear: 8})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestLeaveTypeService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("success removes balances with the type", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: id, Name: "Casual Leave", MaxDaysPerYear: 12}, nil
		}

		var deletedType uint
		deps.balances.deleteByTypeFn = func(ctx context.Context, leaveTypeID uint) error {
			deletedType = leaveTypeID
			return nil
		}

		err := deps.service.Delete(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, uint(1), deletedType)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("negative type with requests", func(t *testing.T) {
		deps := setupLeaveTypeServiceTest(t)
		expectTx(t, deps.sqlMock, false)

		deps.repo.findByIDFn = func(ctx context.Context, id uint) (*leavetype.LeaveType, error) {
			return &leavetype.LeaveType{ID: id, Name: "Casual Leave", MaxDaysPerYear: 12}, nil
		}
		deps.repo.hasLeaveRequestsFn = func(ctx context.Context, id uint) (bool, error) {
			return true, nil
		}

		err := deps.service.Delete(ctx, 1)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "existing leave requests")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}
