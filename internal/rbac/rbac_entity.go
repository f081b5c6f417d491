package rbac

import (
	"time"

	"github.com/google/uuid"
)

type Role struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_roles_company_name"`
	Name        string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_roles_company_name"`
	Description string    `gorm:"type:text"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Permission struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Resource string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_permissions_resource_action"`
	Action   string    `gorm:"type:varchar(50);not null;uniqueIndex:uq_permissions_resource_action"`
	Label    string    `gorm:"type:varchar(100)"`
	Category string    `gorm:"type:varchar(50)"`
}

type RolePermission struct {
	RoleID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PermissionID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

type EmployeeRole struct {
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey"`
	RoleID     uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// Rows read back for policy loading.
type EmployeeRoleRow struct {
	EmployeeID string
	RoleName   string
}

type RolePermissionRow struct {
	RoleName string
	Resource string
	Action   string
}
