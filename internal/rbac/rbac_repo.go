package rbac

const (
	RoleEmployee   = "EMPLOYEE"
	RoleSupervisor = "SUPERVISOR"
	RoleHR         = "HR"
	RolePayroll    = "PAYROLL"
	RoleIT         = "IT"
)

type RolePermission struct {
	Role     string
	Resource string
	Action   string
}

type RoleInheritance struct {
	Role   string
	Parent string
}

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetRolePermissions() ([]RolePermission, error)
	GetRoleInheritance() ([]RoleInheritance, error)
}

type staticRepository struct {
	permissions []RolePermission
	inheritance []RoleInheritance
}

// NewStaticRepository serves the built-in role to permission mapping.
func NewStaticRepository() Repository {
	return &staticRepository{
		permissions: defaultPermissions(),
		inheritance: []RoleInheritance{
			{Role: RoleSupervisor, Parent: RoleEmployee},
			{Role: RoleHR, Parent: RoleEmployee},
			{Role: RolePayroll, Parent: RoleEmployee},
			{Role: RoleIT, Parent: RoleEmployee},
		},
	}
}

func (r *staticRepository) GetRolePermissions() ([]RolePermission, error) {
	return r.permissions, nil
}

func (r *staticRepository) GetRoleInheritance() ([]RoleInheritance, error) {
	return r.inheritance, nil
}

func defaultPermissions() []RolePermission {
	grant := func(role, resource string, actions ...string) []RolePermission {
		out := make([]RolePermission, len(actions))
		for i, a := range actions {
			out[i] = RolePermission{Role: role, Resource: resource, Action: a}
		}
		return out
	}

	var p []RolePermission
	// self service
	p = append(p, grant(RoleEmployee, "attendance", "mark", "read_own")...)
	p = append(p, grant(RoleEmployee, "leave", "submit", "read_own")...)
	p = append(p, grant(RoleEmployee, "overtime", "submit", "read_own")...)
	p = append(p, grant(RoleEmployee, "payroll", "read_own")...)
	p = append(p, grant(RoleEmployee, "leave_balance", "read_own")...)
	p = append(p, grant(RoleEmployee, "pay_period", "read")...)

	p = append(p, grant(RoleSupervisor, "leave", "read", "approve")...)
	p = append(p, grant(RoleSupervisor, "overtime", "read", "approve")...)
	p = append(p, grant(RoleSupervisor, "attendance", "read")...)
	p = append(p, grant(RoleSupervisor, "employee", "read")...)

	p = append(p, grant(RoleHR, "employee", "read", "create", "update")...)
	p = append(p, grant(RoleHR, "salary", "read", "update")...)
	p = append(p, grant(RoleHR, "attendance", "read")...)
	p = append(p, grant(RoleHR, "leave", "read", "approve")...)
	p = append(p, grant(RoleHR, "overtime", "read", "approve")...)
	p = append(p, grant(RoleHR, "leave_balance", "read", "manage")...)
	p = append(p, grant(RoleHR, "reference_data", "manage")...)

	p = append(p, grant(RolePayroll, "employee", "read")...)
	p = append(p, grant(RolePayroll, "salary", "read")...)
	p = append(p, grant(RolePayroll, "attendance", "read")...)
	p = append(p, grant(RolePayroll, "pay_period", "create")...)
	p = append(p, grant(RolePayroll, "payroll", "read", "process")...)
	p = append(p, grant(RolePayroll, "reference_data", "manage")...)

	p = append(p, grant(RoleIT, "role", "read")...)
	return p
}
