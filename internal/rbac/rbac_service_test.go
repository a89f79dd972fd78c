package rbac

import (
	"errors"
	"testing"

	"go-payroll/internal/domain"
	"go-payroll/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type failingRepo struct{}

func (failingRepo) GetRolePermissions() ([]RolePermission, error) {
	return nil, errors.New("policy store unavailable")
}

func (failingRepo) GetRoleInheritance() ([]RoleInheritance, error) {
	return nil, nil
}

func newTestService(t *testing.T) Service {
	t.Helper()
	e, err := infra.NewEnforcer()
	assert.NoError(t, err)

	svc, err := NewService(NewStaticRepository(), e)
	assert.NoError(t, err)
	return svc
}

func TestService_Enforce(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"employee marks attendance", RoleEmployee, "attendance", "mark", true},
		{"employee cannot approve leave", RoleEmployee, "leave", "approve", false},
		{"supervisor approves overtime", RoleSupervisor, "overtime", "approve", true},
		{"supervisor inherits self service", RoleSupervisor, "leave", "submit", true},
		{"supervisor cannot process payroll", RoleSupervisor, "payroll", "process", false},
		{"hr updates salary", RoleHR, "salary", "update", true},
		{"payroll processes a period", RolePayroll, "payroll", "process", true},
		{"payroll cannot change salary", RolePayroll, "salary", "update", false},
		{"it reads roles", RoleIT, "role", "read", true},
		{"unknown role", "CONTRACTOR", "attendance", "mark", false},
		{"empty role", "", "attendance", "mark", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed, err := svc.Enforce(domain.EnforceRequest{
				EmployeeID: "emp-1",
				Role:       tt.role,
				Resource:   tt.resource,
				Action:     tt.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tt.allowed, allowed)
		})
	}
}

func TestService_ListRoles(t *testing.T) {
	svc := newTestService(t)

	roles, err := svc.ListRoles()
	assert.NoError(t, err)
	assert.Len(t, roles, 5)

	byName := map[string]domain.RoleResponse{}
	for _, r := range roles {
		byName[r.Name] = r
	}
	assert.Contains(t, byName[RoleSupervisor].Permissions, "leave:approve")
	assert.Contains(t, byName[RoleSupervisor].Permissions, "attendance:mark")
	assert.Equal(t, []string{RoleEmployee}, byName[RoleHR].Inherits)
}

func TestNewService_PolicyLoadFailure(t *testing.T) {
	e, err := infra.NewEnforcer()
	assert.NoError(t, err)

	_, err = NewService(failingRepo{}, e)
	assert.EqualError(t, err, "policy store unavailable")
}
