package rbac

import (
	"context"
	"errors"
	"testing"

	"sharda-hr/internal/domain"
	rbacerrors "sharda-hr/internal/rbac/errors"
	"sharda-hr/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	employeeRoles []EmployeeRoleRow
	rolePerms     []RolePermissionRow
	roles         map[string]*Role

	seeded   map[string][]Grant
	assigned map[string]uuid.UUID
}

func (f *fakeRepo) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	return f.employeeRoles, nil
}

func (f *fakeRepo) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	return f.rolePerms, nil
}

func (f *fakeRepo) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	out := []Role{}
	for _, r := range f.roles {
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRepo) GetRoleByName(ctx context.Context, companyID, name string) (*Role, error) {
	if r, ok := f.roles[name]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeRepo) AssignEmployeeRole(ctx context.Context, employeeID string, roleID uuid.UUID) error {
	if f.assigned == nil {
		f.assigned = map[string]uuid.UUID{}
	}
	f.assigned[employeeID] = roleID
	return nil
}

func (f *fakeRepo) SeedRoles(ctx context.Context, companyID string, matrix map[string][]Grant) error {
	f.seeded = matrix
	return nil
}

func newTestEnforcer(t *testing.T) *casbin.Enforcer {
	t.Helper()
	e, err := infra.NewDefaultEnforcer()
	require.NoError(t, err)
	return e
}

func TestRBACService_Enforce(t *testing.T) {
	repo := &fakeRepo{
		employeeRoles: []EmployeeRoleRow{{EmployeeID: "emp-1", RoleName: RoleHR}},
		rolePerms: []RolePermissionRow{
			{RoleName: RoleHR, Resource: "employee", Action: "read"},
			{RoleName: RoleHR, Resource: "payroll", Action: "process"},
		},
	}
	svc := NewService(repo, newTestEnforcer(t))

	require.NoError(t, svc.LoadCompanyPolicy("company-1"))

	allowed, err := svc.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-1", CompanyID: "company-1", Resource: "payroll", Action: "process",
	})
	assert.NoError(t, err)
	assert.True(t, allowed)

	denied, err := svc.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-1", CompanyID: "company-1", Resource: "payroll", Action: "lock",
	})
	assert.NoError(t, err)
	assert.False(t, denied)

	otherCompany, err := svc.Enforce(domain.EnforceRequest{
		EmployeeID: "emp-2", CompanyID: "company-1", Resource: "employee", Action: "read",
	})
	assert.NoError(t, err)
	assert.False(t, otherCompany)
}

func TestRBACService_EnforceRequiresFields(t *testing.T) {
	svc := NewService(&fakeRepo{}, newTestEnforcer(t))
	_, err := svc.Enforce(domain.EnforceRequest{EmployeeID: "emp-1", CompanyID: "c"})
	assert.True(t, errors.Is(err, rbacerrors.ErrInvalidEnforceRequest))
}

func TestRBACService_RoleOf(t *testing.T) {
	repo := &fakeRepo{
		employeeRoles: []EmployeeRoleRow{
			{EmployeeID: "emp-1", RoleName: RoleManager},
			{EmployeeID: "emp-1", RoleName: RoleHR},
		},
	}
	svc := NewService(repo, newTestEnforcer(t))

	role, err := svc.RoleOf("company-1", "emp-1")
	assert.NoError(t, err)
	assert.Equal(t, RoleHR, role)

	role, err = svc.RoleOf("company-1", "emp-unassigned")
	assert.NoError(t, err)
	assert.Equal(t, RoleEmployee, role)
}

func TestRBACService_SeedDefaultRoles(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, newTestEnforcer(t))

	require.NoError(t, svc.SeedDefaultRoles(context.Background(), uuid.NewString()))
	assert.Len(t, repo.seeded, 4)
	assert.Contains(t, repo.seeded[RoleAdmin], Grant{Resource: "payroll", Action: "lock"})
	assert.NotContains(t, repo.seeded[RoleHR], Grant{Resource: "payroll", Action: "lock"})
	assert.NotContains(t, repo.seeded[RoleEmployee], Grant{Resource: "leave", Action: "read_all"})
}

func TestRBACService_AssignRole(t *testing.T) {
	hrRole := &Role{ID: uuid.New(), Name: RoleHR}
	repo := &fakeRepo{roles: map[string]*Role{RoleHR: hrRole}}
	svc := NewService(repo, newTestEnforcer(t))
	ctx := context.Background()

	err := svc.AssignRole(ctx, "company-1", AssignRoleRequest{EmployeeID: "emp-1", Role: "HR"})
	assert.NoError(t, err)
	assert.Equal(t, hrRole.ID, repo.assigned["emp-1"])

	err = svc.AssignRole(ctx, "company-1", AssignRoleRequest{EmployeeID: "emp-1", Role: "OWNER"})
	assert.True(t, errors.Is(err, rbacerrors.ErrUnknownRole))

	err = svc.AssignRole(ctx, "company-1", AssignRoleRequest{EmployeeID: "emp-1", Role: "MANAGER"})
	assert.True(t, errors.Is(err, rbacerrors.ErrRoleNotFound))
}

func TestHighestRole(t *testing.T) {
	assert.Equal(t, "ADMIN", HighestRole([]string{"employee", "admin", "hr"}))
	assert.Equal(t, "MANAGER", HighestRole([]string{"custom", "manager"}))
	assert.Equal(t, "", HighestRole(nil))
}
