package employeesalary

import (
	"time"

	"github.com/google/uuid"
)

// EmployeeSalary is one revision of a salary structure. Amounts are monthly, in paise.
type EmployeeSalary struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID `gorm:"type:uuid;not null;index"`
	EmployeeID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_effective"`
	Basic            int64     `gorm:"not null"`
	HRA              int64     `gorm:"column:hra;not null;default:0"`
	SpecialAllowance int64     `gorm:"not null;default:0"`
	OtherAllowance   int64     `gorm:"not null;default:0"`
	EffectiveDate    time.Time `gorm:"type:date;not null;uniqueIndex:uq_employee_salary_effective"`
	Note             string    `gorm:"type:varchar(255)"`
	EmployeeName     string    `gorm:"->;-:migration"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (s EmployeeSalary) Gross() int64 {
	return s.Basic + s.HRA + s.SpecialAllowance + s.OtherAllowance
}
