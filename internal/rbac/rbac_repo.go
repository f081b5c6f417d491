package rbac

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(companyID string) ([]RolePermissionRow, error)

	ListRoles(ctx context.Context, companyID string) ([]Role, error)
	GetRoleByName(ctx context.Context, companyID, name string) (*Role, error)
	AssignEmployeeRole(ctx context.Context, employeeID string, roleID uuid.UUID) error
	SeedRoles(ctx context.Context, companyID string, matrix map[string][]Grant) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow

	err := r.db.
		Table("employee_roles").
		Select("employee_roles.employee_id, roles.name AS role_name").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.
		Table("role_permissions").
		Select("roles.name AS role_name, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(ctx context.Context, companyID string) ([]Role, error) {
	var result []Role
	err := r.db.WithContext(ctx).Where("company_id = ?", companyID).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByName(ctx context.Context, companyID, name string) (*Role, error) {
	var result Role
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND name = ?", companyID, strings.ToUpper(name)).
		First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// AssignEmployeeRole replaces any role the employee already holds in the
// role's company.
func (r *repository) AssignEmployeeRole(ctx context.Context, employeeID string, roleID uuid.UUID) error {
	eid, err := uuid.Parse(employeeID)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec(`
			DELETE FROM employee_roles
			WHERE employee_id = ?
			  AND role_id IN (SELECT id FROM roles WHERE company_id = (SELECT company_id FROM roles WHERE id = ?))`,
			eid, roleID).Error; err != nil {
			return err
		}
		return tx.Create(&EmployeeRole{EmployeeID: eid, RoleID: roleID}).Error
	})
}

// SeedRoles is idempotent: existing roles and grants are left in place.
func (r *repository) SeedRoles(ctx context.Context, companyID string, matrix map[string][]Grant) error {
	cid, err := uuid.Parse(companyID)
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		permIDs := map[Grant]uuid.UUID{}

		for roleName, grantList := range matrix {
			var role Role
			err := tx.Where("company_id = ? AND name = ?", cid, roleName).First(&role).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				role = Role{ID: uuid.New(), CompanyID: cid, Name: roleName, Description: roleName + " (default)"}
				if err := tx.Create(&role).Error; err != nil {
					return err
				}
			} else if err != nil {
				return err
			}

			for _, g := range grantList {
				pid, ok := permIDs[g]
				if !ok {
					perm := Permission{
						ID:       uuid.New(),
						Resource: g.Resource,
						Action:   g.Action,
						Label:    g.Resource + ":" + g.Action,
						Category: g.Resource,
					}
					if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&perm).Error; err != nil {
						return err
					}
					if err := tx.Where("resource = ? AND action = ?", g.Resource, g.Action).First(&perm).Error; err != nil {
						return err
					}
					pid = perm.ID
					permIDs[g] = pid
				}

				if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
					Create(&RolePermission{RoleID: role.ID, PermissionID: pid}).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
}
