package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusLocked    = "LOCKED"
)

const (
	KindEarning       = "EARNING"
	KindDeduction     = "DEDUCTION"
	KindReimbursement = "REIMBURSEMENT"
	KindEmployer      = "EMPLOYER"
)

// Component codes of the statutory lines. Custom deduction rules use RULE.
const (
	CodeBasic            = "BASIC"
	CodeHRA              = "HRA"
	CodeSpecialAllowance = "SPECIAL"
	CodeOtherAllowance   = "OTHER"
	CodePF               = "PF"
	CodeESI              = "ESI"
	CodePT               = "PT"
	CodeRule             = "RULE"
	CodeExpense          = "EXPENSE"
	CodeEmployerPF       = "EMPLOYER_PF"
	CodeEmployerESI      = "EMPLOYER_ESI"
)

// Run is one company's payroll for a calendar month. Money is in paise.
type Run struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_run_month,priority:1"`
	Month               string     `gorm:"type:char(7);not null;uniqueIndex:uq_payroll_run_month,priority:2"`
	Status              string     `gorm:"type:varchar(20);not null;default:DRAFT"`
	EmployeeCount       int        `gorm:"not null;default:0"`
	TotalGross          int64      `gorm:"not null;default:0"`
	TotalDeductions     int64      `gorm:"not null;default:0"`
	TotalReimbursements int64      `gorm:"not null;default:0"`
	TotalNet            int64      `gorm:"not null;default:0"`
	CreatedBy           uuid.UUID  `gorm:"type:uuid;not null"`
	ProcessedBy         *uuid.UUID `gorm:"type:uuid"`
	ProcessedAt         *time.Time
	LockedBy            *uuid.UUID `gorm:"type:uuid"`
	LockedAt            *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Run) TableName() string {
	return "payroll_runs"
}

// Payslip keeps a snapshot of the employee so that a locked run still renders
// after the employee record changes.
type Payslip struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	RunID               uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_run_employee,priority:1"`
	EmployeeID          uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_run_employee,priority:2;index"`
	EmployeeCode        string          `gorm:"type:varchar(20);not null"`
	EmployeeName        string          `gorm:"type:varchar(150);not null"`
	Designation         string          `gorm:"type:varchar(100)"`
	Month               string          `gorm:"type:char(7);not null"`
	WorkingDays         int             `gorm:"not null"`
	PayableDays         decimal.Decimal `gorm:"type:numeric(5,1);not null"`
	LOPDays             decimal.Decimal `gorm:"column:lop_days;type:numeric(5,1);not null"`
	Gross               int64           `gorm:"not null"`
	TotalDeductions     int64           `gorm:"not null"`
	CappedDeductions    int64           `gorm:"not null;default:0"`
	TotalReimbursements int64           `gorm:"not null;default:0"`
	Net                 int64           `gorm:"not null"`
	EmployerPF          int64           `gorm:"column:employer_pf;not null;default:0"`
	EmployerESI         int64           `gorm:"column:employer_esi;not null;default:0"`
	PDFPath             *string         `gorm:"column:pdf_path;type:text"`
	PDFGeneratedAt      *time.Time      `gorm:"column:pdf_generated_at"`
	Components          []Component     `gorm:"foreignKey:PayslipID;constraint:OnDelete:CASCADE"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}

// Component is one line of a payslip. Reference carries the expense claim id
// for reimbursement lines and the rule id for custom deductions.
type Component struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PayslipID uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null"`
	Kind      string    `gorm:"type:varchar(20);not null"`
	Code      string    `gorm:"type:varchar(20);not null"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Amount    int64     `gorm:"not null"`
	Reference *string   `gorm:"type:varchar(64)"`
	Sequence  int       `gorm:"not null"`
	CreatedAt time.Time
}

func (Component) TableName() string {
	return "payslip_components"
}
