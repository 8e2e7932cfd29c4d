package dashboard_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-leave/internal/dashboard"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type apiEnvelope struct {
	Ok   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
}

type fakeDashboardService struct {
	employeeFn func(ctx context.Context, userID uint) (dashboard.EmployeeDashboardResponse, error)
	managerFn  func(ctx context.Context) (dashboard.ManagerDashboardResponse, error)
	adminFn    func(ctx context.Context) (dashboard.AdminDashboardResponse, error)
}

func (f *fakeDashboardService) Employee(ctx context.Context, userID uint) (dashboard.EmployeeDashboardResponse, error) {
	return f.employeeFn(ctx, userID)
}

func (f *fakeDashboardService) Manager(ctx context.Context) (dashboard.ManagerDashboardResponse, error) {
	return f.managerFn(ctx)
}

func (f *fakeDashboardService) Admin(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
	return f.adminFn(ctx)
}

func newTestContext(t *testing.T, path string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, path, nil)
	return c, w
}

func TestDashboardHandler_Employee(t *testing.T) {
	t.Run("success passes the authenticated user through", func(t *testing.T) {
		svc := &fakeDashboardService{
			employeeFn: func(ctx context.Context, userID uint) (dashboard.EmployeeDashboardResponse, error) {
				assert.Equal(t, uint(42), userID)
				return dashboard.EmployeeDashboardResponse{PendingLeavesCount: 2}, nil
			},
		}
		handler := dashboard.NewHandler(svc, nil)

		c, w := newTestContext(t, "/api/dashboard/employee")
		c.Set("user_id", uint(42))

		handler.Employee(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)

		var resp dashboard.EmployeeDashboardResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, 2, resp.PendingLeavesCount)
	})
}

func TestDashboardHandler_Admin(t *testing.T) {
	t.Run("success cache miss computes and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		resp := dashboard.AdminDashboardResponse{TotalUsers: 4, LeaveTypesCount: 3, TotalLeaveRequests: 17}
		payload, err := json.Marshal(resp)
		assert.NoError(t, err)

		mock.ExpectGet("dashboard:admin").RedisNil()
		mock.ExpectSet("dashboard:admin", payload, 60*time.Second).SetVal("OK")

		called := false
		svc := &fakeDashboardService{
			adminFn: func(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
				called = true
				return resp, nil
			},
		}
		handler := dashboard.NewHandler(svc, rdb)

		c, w := newTestContext(t, "/api/dashboard/admin")
		handler.Admin(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, called)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("success cache hit skips the service", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		cached := dashboard.AdminDashboardResponse{TotalUsers: 4, LeaveTypesCount: 3, TotalLeaveRequests: 17}
		payload, err := json.Marshal(cached)
		assert.NoError(t, err)
		mock.ExpectGet("dashboard:admin").SetVal(string(payload))

		svc := &fakeDashboardService{
			adminFn: func(ctx context.Context) (dashboard.AdminDashboardResponse, error) {
				t.Fatal("service should not be called on a cache hit")
				return dashboard.AdminDashboardResponse{}, nil
			},
		}
		handler := dashboard.NewHandler(svc, rdb)

		c, w := newTestContext(t, "/api/dashboard/admin")
		handler.Admin(c)

		assert.Equal(t, http.StatusOK, w.Code)

		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		var resp dashboard.AdminDashboardResponse
		assert.NoError(t, json.Unmarshal(env.Data, &resp))
		assert.Equal(t, 4, resp.TotalUsers)
		assert.Equal(t, int64(17), resp.TotalLeaveRequests)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
