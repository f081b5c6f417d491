package rbac

import (
	"context"
	"errors"
	"strings"
	"sync"

	"sharda-hr/internal/domain"
	rbacerrors "sharda-hr/internal/rbac/errors"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	RoleOf(companyID, employeeID string) (string, error)

	SeedDefaultRoles(ctx context.Context, companyID string) error
	ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error)
	AssignRole(ctx context.Context, companyID string, req AssignRoleRequest) error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

// The enforcer holds a single company at a time; every Enforce reloads so
// role changes apply without a restart.
func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(companyID)
	if err != nil {
		return err
	}

	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleName, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleName, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	if strings.TrimSpace(req.EmployeeID) == "" || strings.TrimSpace(req.CompanyID) == "" ||
		strings.TrimSpace(req.Resource) == "" || strings.TrimSpace(req.Action) == "" {
		return false, rbacerrors.ErrInvalidEnforceRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("enforce",
		zap.String("employee_id", req.EmployeeID),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

// RoleOf returns the employee's most privileged role, EMPLOYEE when none is assigned.
func (s *service) RoleOf(companyID, employeeID string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(companyID); err != nil {
		return "", err
	}
	role := HighestRole(s.enforcer.GetRolesForUserInDomain(employeeID, companyID))
	if role == "" {
		role = RoleEmployee
	}
	return role, nil
}

func (s *service) SeedDefaultRoles(ctx context.Context, companyID string) error {
	if err := s.repo.SeedRoles(ctx, companyID, DefaultMatrix()); err != nil {
		return err
	}
	s.logger.Info("default roles seeded", zap.String("company_id", companyID))
	return nil
}

func (s *service) ListRoles(ctx context.Context, companyID string) ([]RoleResponse, error) {
	roles, err := s.repo.ListRoles(ctx, companyID)
	if err != nil {
		return nil, err
	}
	out := make([]RoleResponse, 0, len(roles))
	for _, r := range roles {
		out = append(out, RoleResponse{ID: r.ID.String(), Name: r.Name, Description: r.Description})
	}
	return out, nil
}

func (s *service) AssignRole(ctx context.Context, companyID string, req AssignRoleRequest) error {
	if !IsBuiltInRole(req.Role) {
		return rbacerrors.ErrUnknownRole
	}
	role, err := s.repo.GetRoleByName(ctx, companyID, req.Role)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rbacerrors.ErrRoleNotFound
		}
		return err
	}
	if err := s.repo.AssignEmployeeRole(ctx, req.EmployeeID, role.ID); err != nil {
		return err
	}
	s.logger.Info("role assigned",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("role", role.Name),
	)
	return nil
}
