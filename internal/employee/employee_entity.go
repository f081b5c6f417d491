package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusActive    = "ACTIVE"
	StatusProbation = "PROBATION"
	StatusNotice    = "NOTICE"
	StatusExited    = "EXITED"
)

type Employee struct {
	ID               uuid.UUID           `gorm:"type:uuid;primaryKey"`
	CompanyID        uuid.UUID           `gorm:"type:uuid;not null;uniqueIndex:uq_employee_code;uniqueIndex:uq_employee_email"`
	EmployeeCode     string              `gorm:"type:varchar(30);not null;uniqueIndex:uq_employee_code"`
	FullName         string              `gorm:"type:varchar(150);not null"`
	Email            string              `gorm:"type:varchar(150);not null;uniqueIndex:uq_employee_email"`
	Phone            string              `gorm:"type:varchar(30)"`
	DepartmentID     *uuid.UUID          `gorm:"type:uuid;index"`
	Department       *EmployeeDepartment `gorm:"foreignKey:DepartmentID"`
	Designation      string              `gorm:"type:varchar(100)"`
	ManagerID        *uuid.UUID          `gorm:"type:uuid;index"`
	DateOfJoining    time.Time           `gorm:"type:date;not null"`
	DateOfExit       *time.Time          `gorm:"type:date"`
	EmploymentStatus string              `gorm:"type:varchar(20);not null;default:ACTIVE"`
	PAN              string              `gorm:"column:pan;type:varchar(10)"`
	UAN              string              `gorm:"column:uan;type:varchar(12)"`
	ESICNumber       string              `gorm:"column:esic_number;type:varchar(17)"`
	BankAccount      string              `gorm:"type:varchar(30)"`
	IFSC             string              `gorm:"column:ifsc;type:varchar(11)"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// EmployeeDepartment is the read-only slice of departments preloaded with an employee.
type EmployeeDepartment struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string
}

func (EmployeeDepartment) TableName() string {
	return "departments"
}

// ActiveDuring reports whether the employee was on the rolls at any point in [start, end].
func (e Employee) ActiveDuring(start, end time.Time) bool {
	if e.DateOfJoining.After(end) {
		return false
	}
	if e.DateOfExit != nil && e.DateOfExit.Before(start) {
		return false
	}
	return true
}

func IsAssignableStatus(s string) bool {
	switch s {
	case StatusActive, StatusProbation, StatusNotice:
		return true
	}
	return false
}
