package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateRunRequest struct {
	Month string `json:"month" binding:"required"`
}

type ListRunsFilter struct {
	Year   int    `form:"year" binding:"omitempty,gte=2000,lte=2100"`
	Status string `form:"status" binding:"omitempty,oneof=DRAFT PROCESSED LOCKED"`
}

type PreviewRequest struct {
	EmployeeID string `form:"employee_id" binding:"required,uuid"`
	Month      string `form:"month" binding:"required"`
}

type RunResponse struct {
	ID                  string     `json:"id"`
	Month               string     `json:"month"`
	Status              string     `json:"status"`
	EmployeeCount       int        `json:"employee_count"`
	TotalGross          int64      `json:"total_gross"`
	TotalDeductions     int64      `json:"total_deductions"`
	TotalReimbursements int64      `json:"total_reimbursements"`
	TotalNet            int64      `json:"total_net"`
	CreatedBy           string     `json:"created_by"`
	ProcessedBy         string     `json:"processed_by,omitempty"`
	ProcessedAt         *time.Time `json:"processed_at,omitempty"`
	LockedBy            string     `json:"locked_by,omitempty"`
	LockedAt            *time.Time `json:"locked_at,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
}

// ProcessResponse lists the employees left out of the run with the reason.
type ProcessResponse struct {
	Run     RunResponse       `json:"run"`
	Skipped []SkippedEmployee `json:"skipped"`
}

type SkippedEmployee struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeCode string `json:"employee_code"`
	Reason       string `json:"reason"`
}

type ComponentResponse struct {
	Kind      string `json:"kind"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	Amount    int64  `json:"amount"`
	Reference string `json:"reference,omitempty"`
}

type PayslipResponse struct {
	ID                  string              `json:"id,omitempty"`
	RunID               string              `json:"run_id,omitempty"`
	EmployeeID          string              `json:"employee_id"`
	EmployeeCode        string              `json:"employee_code"`
	EmployeeName        string              `json:"employee_name"`
	Designation         string              `json:"designation,omitempty"`
	Month               string              `json:"month"`
	WorkingDays         int                 `json:"working_days"`
	PayableDays         decimal.Decimal     `json:"payable_days"`
	LOPDays             decimal.Decimal     `json:"lop_days"`
	Gross               int64               `json:"gross"`
	TotalDeductions     int64               `json:"total_deductions"`
	CappedDeductions    int64               `json:"capped_deductions"`
	TotalReimbursements int64               `json:"total_reimbursements"`
	Net                 int64               `json:"net"`
	EmployerPF          int64               `json:"employer_pf"`
	EmployerESI         int64               `json:"employer_esi"`
	PDFAvailable        bool                `json:"pdf_available"`
	Released            bool                `json:"released"`
	Components          []ComponentResponse `json:"components,omitempty"`
}
