package rbac

import (
	"fmt"
	"sort"
	"sync"

	"go-payroll/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListRoles() ([]domain.RoleResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   *zap.Logger
}

// NewService loads the repository policy into enforcer.
func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	s := &service{repo: repo, enforcer: enforcer, logger: l}
	if err := s.LoadPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.enforcer.ClearPolicy()

	inheritance, err := s.repo.GetRoleInheritance()
	if err != nil {
		return err
	}
	for _, ri := range inheritance {
		if _, err := s.enforcer.AddGroupingPolicy(ri.Role, ri.Parent); err != nil {
			return fmt.Errorf("add role %s: %w", ri.Role, err)
		}
	}

	perms, err := s.repo.GetRolePermissions()
	if err != nil {
		return err
	}
	for _, rp := range perms {
		if _, err := s.enforcer.AddPolicy(rp.Role, rp.Resource, rp.Action); err != nil {
			return fmt.Errorf("add permission %s %s:%s: %w", rp.Role, rp.Resource, rp.Action, err)
		}
	}

	s.logger.Info("rbac policy loaded",
		zap.Int("roles", len(inheritance)),
		zap.Int("permissions", len(perms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if req.Role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("role", req.Role),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("role", req.Role),
		zap.String("permission", req.Resource+":"+req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles() ([]domain.RoleResponse, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inheritance, err := s.repo.GetRoleInheritance()
	if err != nil {
		return nil, err
	}
	parents := map[string][]string{}
	for _, ri := range inheritance {
		parents[ri.Role] = append(parents[ri.Role], ri.Parent)
	}

	roles := []string{RoleEmployee, RoleSupervisor, RoleHR, RolePayroll, RoleIT}
	resp := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		implicit, err := s.enforcer.GetImplicitPermissionsForUser(role)
		if err != nil {
			return nil, err
		}
		perms := make([]string, 0, len(implicit))
		for _, p := range implicit {
			if len(p) >= 3 {
				perms = append(perms, p[1]+":"+p[2])
			}
		}
		sort.Strings(perms)
		resp = append(resp, domain.RoleResponse{
			Name:        role,
			Inherits:    parents[role],
			Permissions: perms,
		})
	}
	return resp, nil
}
