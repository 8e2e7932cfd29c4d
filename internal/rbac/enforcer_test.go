package rbac_test

import (
	"testing"

	"go-leave/internal/rbac"

	"github.com/stretchr/testify/assert"
)

func TestEnforcerGrants(t *testing.T) {
	e, err := rbac.NewEnforcer()
	assert.NoError(t, err)

	cases := []struct {
		name    string
		role    string
		obj     string
		act     string
		allowed bool
	}{
		{"employee can apply", "EMPLOYEE", rbac.ResourceLeave, rbac.ActionCreate, true},
		{"employee can read own leaves", "EMPLOYEE", rbac.ResourceLeave, rbac.ActionRead, true},
		{"employee cannot approve", "EMPLOYEE", rbac.ResourceLeave, rbac.ActionApprove, false},
		{"employee cannot manage users", "EMPLOYEE", rbac.ResourceUser, rbac.ActionManage, false},
		{"employee sees employee dashboard", "EMPLOYEE", rbac.ResourceDashboard, rbac.ActionViewEmployee, true},
		{"employee blocked from manager dashboard", "EMPLOYEE", rbac.ResourceDashboard, rbac.ActionViewManager, false},

		{"manager can approve", "MANAGER", rbac.ResourceLeave, rbac.ActionApprove, true},
		{"manager can apply too", "MANAGER", rbac.ResourceLeave, rbac.ActionCreate, true},
		{"manager sees manager dashboard", "MANAGER", rbac.ResourceDashboard, rbac.ActionViewManager, true},
		{"manager blocked from admin dashboard", "MANAGER", rbac.ResourceDashboard, rbac.ActionViewAdmin, false},
		{"manager cannot manage leave types", "MANAGER", rbac.ResourceLeaveType, rbac.ActionManage, false},
		{"manager cannot manage settings", "MANAGER", rbac.ResourceSettings, rbac.ActionManage, false},

		{"admin manages users", "ADMIN", rbac.ResourceUser, rbac.ActionManage, true},
		{"admin manages leave types", "ADMIN", rbac.ResourceLeaveType, rbac.ActionManage, true},
		{"admin manages settings", "ADMIN", rbac.ResourceSettings, rbac.ActionManage, true},
		{"admin sees admin dashboard", "ADMIN", rbac.ResourceDashboard, rbac.ActionViewAdmin, true},
		{"admin does not approve leaves", "ADMIN", rbac.ResourceLeave, rbac.ActionApprove, false},

		{"unknown role gets nothing", "INTERN", rbac.ResourceLeave, rbac.ActionRead, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := e.Enforce(tc.role, tc.obj, tc.act)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, ok)
		})
	}
}
