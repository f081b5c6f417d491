package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "PRESENT"
	StatusHalfDay = "HALF_DAY"
	StatusAbsent  = "ABSENT"
	StatusLeave   = "LEAVE"
	StatusHoliday = "HOLIDAY"
	StatusWeekOff = "WEEK_OFF"
)

const (
	SourceSelf   = "SELF"
	SourceManual = "MANUAL"
	SourceImport = "IMPORT"
	SourceLeave  = "LEAVE"
)

func IsStatus(s string) bool {
	switch s {
	case StatusPresent, StatusHalfDay, StatusAbsent, StatusLeave, StatusHoliday, StatusWeekOff:
		return true
	}
	return false
}

// Attendance is one row per employee per calendar day.
type Attendance struct {
	ID             uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID    `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID     uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date,priority:1"`
	AttendanceDate time.Time    `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendance_employee_date,priority:2"`
	Status         string       `gorm:"column:status;type:varchar(20);not null;default:PRESENT"`
	Late           bool         `gorm:"column:late;not null;default:false"`
	ClockIn        *time.Time   `gorm:"column:clock_in;type:timestamptz"`
	ClockOut       *time.Time   `gorm:"column:clock_out;type:timestamptz"`
	WorkedMinutes  int          `gorm:"column:worked_minutes;not null;default:0"`
	Latitude       *float64     `gorm:"column:latitude"`
	Longitude      *float64     `gorm:"column:longitude"`
	Source         string       `gorm:"column:source;type:varchar(20);not null;default:MANUAL"`
	Notes          *string      `gorm:"column:notes;type:text"`
	CreatedAt      time.Time    `gorm:"column:created_at"`
	UpdatedAt      time.Time    `gorm:"column:updated_at"`
	Employee       *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
