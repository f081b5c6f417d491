package contractlabour

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "PRESENT"
	AttendanceHalfDay = "HALF_DAY"
	AttendanceAbsent  = "ABSENT"
)

func IsAttendanceStatus(s string) bool {
	switch s {
	case AttendancePresent, AttendanceHalfDay, AttendanceAbsent:
		return true
	}
	return false
}

// Contractor is the agency that supplies contract workers.
type Contractor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_contractor_name,priority:1"`
	Name          string    `gorm:"type:varchar(150);not null;uniqueIndex:uq_contractor_name,priority:2"`
	ContactPerson string    `gorm:"type:varchar(120)"`
	Phone         string    `gorm:"type:varchar(30)"`
	Email         string    `gorm:"type:varchar(150)"`
	GSTIN         string    `gorm:"column:gstin;type:varchar(15)"`
	Active        bool      `gorm:"not null;default:true"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

func (Contractor) TableName() string {
	return "contractors"
}

// Worker is paid a daily wage in paise plus an hourly overtime rate.
type Worker struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_contract_worker_code,priority:1"`
	ContractorID uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkerCode   string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_contract_worker_code,priority:2"`
	FullName     string    `gorm:"type:varchar(150);not null"`
	Phone        string    `gorm:"type:varchar(30)"`
	Skill        string    `gorm:"type:varchar(80)"`
	DailyWage    int64     `gorm:"not null"`
	OTHourlyRate int64     `gorm:"column:ot_hourly_rate;not null;default:0"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	DeletedAt    gorm.DeletedAt `gorm:"index"`

	Contractor *Contractor `gorm:"foreignKey:ContractorID;references:ID"`
}

func (Worker) TableName() string {
	return "contract_workers"
}

type WorkerAttendance struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WorkerID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_contract_attendance_worker_date,priority:1"`
	AttendanceDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_contract_attendance_worker_date,priority:2"`
	Status         string          `gorm:"type:varchar(20);not null"`
	OvertimeHours  decimal.Decimal `gorm:"type:numeric(5,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (WorkerAttendance) TableName() string {
	return "contract_worker_attendances"
}

// ContractPayroll is the finalized wage of one worker for one month.
type ContractPayroll struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_contract_payroll_company_month,priority:1"`
	WorkerID      uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_contract_payroll_worker_month,priority:1"`
	ContractorID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Month         string          `gorm:"type:char(7);not null;uniqueIndex:uq_contract_payroll_worker_month,priority:2;index:idx_contract_payroll_company_month,priority:2"`
	DaysPresent   int             `gorm:"not null"`
	HalfDays      int             `gorm:"not null"`
	PayableDays   decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	OvertimeHours decimal.Decimal `gorm:"type:numeric(6,2);not null"`
	DailyWage     int64           `gorm:"not null"`
	OTHourlyRate  int64           `gorm:"column:ot_hourly_rate;not null"`
	BaseWage      int64           `gorm:"not null"`
	OvertimePay   int64           `gorm:"not null"`
	TotalWage     int64           `gorm:"not null"`
	FinalizedBy   uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
}

func (ContractPayroll) TableName() string {
	return "contract_payrolls"
}
