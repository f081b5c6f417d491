package contractlabour

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractorRequest struct {
	Name          string `json:"name" binding:"required,max=150"`
	ContactPerson string `json:"contact_person" binding:"max=120"`
	Phone         string `json:"phone" binding:"max=30"`
	Email         string `json:"email" binding:"omitempty,email"`
	GSTIN         string `json:"gstin" binding:"omitempty,len=15,alphanum"`
	Active        *bool  `json:"active"`
}

type ContractorResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	ContactPerson string    `json:"contact_person,omitempty"`
	Phone         string    `json:"phone,omitempty"`
	Email         string    `json:"email,omitempty"`
	GSTIN         string    `json:"gstin,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

type CreateWorkerRequest struct {
	ContractorID string `json:"contractor_id" binding:"required,uuid"`
	FullName     string `json:"full_name" binding:"required,max=150"`
	Phone        string `json:"phone" binding:"max=30"`
	Skill        string `json:"skill" binding:"max=80"`
	DailyWage    int64  `json:"daily_wage" binding:"required,gt=0"`
	OTHourlyRate int64  `json:"ot_hourly_rate" binding:"gte=0"`
}

type UpdateWorkerRequest struct {
	ContractorID string `json:"contractor_id" binding:"required,uuid"`
	FullName     string `json:"full_name" binding:"required,max=150"`
	Phone        string `json:"phone" binding:"max=30"`
	Skill        string `json:"skill" binding:"max=80"`
	DailyWage    int64  `json:"daily_wage" binding:"required,gt=0"`
	OTHourlyRate int64  `json:"ot_hourly_rate" binding:"gte=0"`
	Active       *bool  `json:"active"`
}

type WorkerFilter struct {
	ContractorID string `form:"contractor_id" binding:"omitempty,uuid"`
	Search       string `form:"search"`
	Active       *bool  `form:"active"`
}

type WorkerResponse struct {
	ID             string    `json:"id"`
	WorkerCode     string    `json:"worker_code"`
	FullName       string    `json:"full_name"`
	ContractorID   string    `json:"contractor_id"`
	ContractorName string    `json:"contractor_name,omitempty"`
	Phone          string    `json:"phone,omitempty"`
	Skill          string    `json:"skill,omitempty"`
	DailyWage      int64     `json:"daily_wage"`
	OTHourlyRate   int64     `json:"ot_hourly_rate"`
	Active         bool      `json:"active"`
	CreatedAt      time.Time `json:"created_at"`
}

type MarkAttendanceRequest struct {
	WorkerID      string          `json:"worker_id" binding:"required,uuid"`
	Date          string          `json:"date" binding:"required"`
	Status        string          `json:"status" binding:"required"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type BulkMarkAttendanceRequest struct {
	Entries []MarkAttendanceRequest `json:"entries" binding:"required,min=1,max=5000,dive"`
}

type BulkMarkResponse struct {
	Saved int `json:"saved"`
}

type AttendanceFilter struct {
	Month        string `form:"month" binding:"required"`
	WorkerID     string `form:"worker_id" binding:"omitempty,uuid"`
	ContractorID string `form:"contractor_id" binding:"omitempty,uuid"`
}

type AttendanceResponse struct {
	ID            string          `json:"id"`
	WorkerID      string          `json:"worker_id"`
	Date          string          `json:"date"`
	Status        string          `json:"status"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
}

type PayrollRequest struct {
	Month        string `form:"month" json:"month" binding:"required"`
	ContractorID string `form:"contractor_id" json:"contractor_id" binding:"omitempty,uuid"`
}

// PayrollLine is the wage of one worker for the month. Amounts are in paise.
type PayrollLine struct {
	WorkerID       string          `json:"worker_id"`
	WorkerCode     string          `json:"worker_code"`
	WorkerName     string          `json:"worker_name"`
	ContractorID   string          `json:"contractor_id"`
	ContractorName string          `json:"contractor_name,omitempty"`
	DaysPresent    int             `json:"days_present"`
	HalfDays       int             `json:"half_days"`
	PayableDays    decimal.Decimal `json:"payable_days"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	DailyWage      int64           `json:"daily_wage"`
	OTHourlyRate   int64           `json:"ot_hourly_rate"`
	BaseWage       int64           `json:"base_wage"`
	OvertimePay    int64           `json:"overtime_pay"`
	TotalWage      int64           `json:"total_wage"`
}

type PayrollResponse struct {
	Month     string        `json:"month"`
	Finalized bool          `json:"finalized"`
	Lines     []PayrollLine `json:"lines"`
	TotalWage int64         `json:"total_wage"`
}
