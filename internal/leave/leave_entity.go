package leave

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TypeCasual = "CASUAL"
	TypeSick   = "SICK"
	TypeEarned = "EARNED"
	TypeUnpaid = "UNPAID"
)

const (
	StatusPending   = "PENDING"
	StatusSubmitted = "SUBMITTED"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

func IsLeaveType(t string) bool {
	switch t {
	case TypeCasual, TypeSick, TypeEarned, TypeUnpaid:
		return true
	}
	return false
}

type Leave struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_company_status"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_leaves_employee_dates"`

	LeaveType string          `gorm:"type:varchar(20);not null"`
	StartDate time.Time       `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	EndDate   time.Time       `gorm:"type:date;not null;index:idx_leaves_employee_dates"`
	HalfDay   bool            `gorm:"not null;default:false"`
	Days      decimal.Decimal `gorm:"type:numeric(6,1);not null"`
	Reason    string          `gorm:"type:text"`

	Status          string     `gorm:"type:varchar(20);not null;default:'PENDING';index:idx_leaves_company_status"`
	CreatedBy       uuid.UUID  `gorm:"type:uuid;not null"`
	ApprovedBy      *uuid.UUID `gorm:"type:uuid"`
	RejectionReason *string    `gorm:"type:text"`

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ApprovedAt  *time.Time
	CancelledAt *time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index:idx_leaves_deleted_at"`

	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

type EmployeeRef struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// Balance is one employee's allowance of one leave type for a calendar year.
type Balance struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_leave_balance,priority:1"`
	Year       int             `gorm:"not null;uniqueIndex:uq_leave_balance,priority:2"`
	LeaveType  string          `gorm:"type:varchar(20);not null;uniqueIndex:uq_leave_balance,priority:3"`
	Entitled   decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	Adjusted   decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	Used       decimal.Decimal `gorm:"type:numeric(6,1);not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Balance) TableName() string {
	return "leave_balances"
}

func (b Balance) Available() decimal.Decimal {
	return b.Entitled.Add(b.Adjusted).Sub(b.Used)
}
