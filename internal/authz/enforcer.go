package authz

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const enforcerModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// policies is the full static permission table. Admins can do everything;
// employees are limited to their own attendance, requests and the shared
// schedule/evaluation views.
var policies = [][]string{
	{RoleAdmin, "*", "*"},
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "request", "read"},
	{RoleEmployee, "request", "create"},
	{RoleEmployee, "schedule", "read"},
	{RoleEmployee, "evaluation", "read"},
	{RoleEmployee, "report", "read"},
	{RoleEmployee, "employee", "read_self"},
}

type Enforcer struct {
	inner *casbin.Enforcer
}

// NewEnforcer builds an in-memory casbin enforcer. The policy set is fixed
// at startup; there is no runtime policy management surface.
func NewEnforcer() (*Enforcer, error) {
	m, err := model.NewModelFromString(enforcerModel)
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

	return &Enforcer{inner: e}, nil
}

func (e *Enforcer) Enforce(role, object, action string) (bool, error) {
	return e.inner.Enforce(role, object, action)
}
