package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// Resources and actions gated by the enforcer.
const (
	ResourceLeave     = "leave"
	ResourceLeaveType = "leave_type"
	ResourceUser      = "user"
	ResourceSettings  = "settings"
	ResourceDashboard = "dashboard"

	ActionRead    = "read"
	ActionCreate  = "create"
	ActionApprove = "approve"
	ActionManage  = "manage"

	// Dashboard views are modelled as actions on the dashboard resource
	ActionViewEmployee = "view_employee"
	ActionViewManager  = "view_manager"
	ActionViewAdmin    = "view_admin"
)

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && r.obj == p.obj && r.act == p.act
`

// policies maps the closed role set onto resource/action grants. The role
// values mirror users.role; there is no tenant dimension.
var policies = [][]string{
	// every authenticated role can see leave types, apply, and read own data
	{"EMPLOYEE", ResourceLeave, ActionCreate},
	{"EMPLOYEE", ResourceLeave, ActionRead},
	{"EMPLOYEE", ResourceDashboard, ActionViewEmployee},
	{"MANAGER", ResourceLeave, ActionCreate},
	{"MANAGER", ResourceLeave, ActionRead},
	{"MANAGER", ResourceDashboard, ActionViewEmployee},
	{"ADMIN", ResourceLeave, ActionCreate},
	{"ADMIN", ResourceLeave, ActionRead},
	{"ADMIN", ResourceDashboard, ActionViewEmployee},

	// manager workflow surface
	{"MANAGER", ResourceLeave, ActionApprove},
	{"MANAGER", ResourceDashboard, ActionViewManager},

	// admin surface
	{"ADMIN", ResourceUser, ActionManage},
	{"ADMIN", ResourceLeaveType, ActionManage},
	{"ADMIN", ResourceSettings, ActionManage},
	{"ADMIN", ResourceDashboard, ActionViewAdmin},
}

// NewEnforcer builds a casbin enforcer over the static policy table. Roles
// are a closed three-value set, so the policy lives in code rather than in
// storage.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}

	return e, nil
}
