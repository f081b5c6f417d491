package leave

import "github.com/shopspring/decimal"

type CreateLeaveRequest struct {
	EmployeeID string `json:"employee_id" binding:"omitempty,uuid"`
	LeaveType  string `json:"leave_type" binding:"required,oneof=CASUAL SICK EARNED UNPAID"`
	StartDate  string `json:"start_date" binding:"required"`
	EndDate    string `json:"end_date" binding:"required"`
	HalfDay    bool   `json:"half_day"`
	Reason     string `json:"reason" binding:"max=1000"`
}

type RejectLeaveRequest struct {
	RejectionReason string `json:"rejection_reason" binding:"required,max=1000"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
	Year       int
}

type LeaveResponse struct {
	ID              string          `json:"id"`
	EmployeeID      string          `json:"employee_id"`
	EmployeeName    string          `json:"employee_name,omitempty"`
	LeaveType       string          `json:"leave_type"`
	StartDate       string          `json:"start_date"`
	EndDate         string          `json:"end_date"`
	HalfDay         bool            `json:"half_day"`
	Days            decimal.Decimal `json:"days"`
	Reason          string          `json:"reason"`
	Status          string          `json:"status"`
	CreatedBy       string          `json:"created_by"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	RejectionReason *string         `json:"rejection_reason,omitempty"`
}

type AdjustBalanceRequest struct {
	EmployeeID string          `json:"employee_id" binding:"required,uuid"`
	Year       int             `json:"year" binding:"required,gte=2000,lte=2100"`
	LeaveType  string          `json:"leave_type" binding:"required,oneof=CASUAL SICK EARNED"`
	Delta      decimal.Decimal `json:"delta"`
	Reason     string          `json:"reason" binding:"required,max=500"`
}

type BalanceResponse struct {
	EmployeeID string          `json:"employee_id"`
	Year       int             `json:"year"`
	LeaveType  string          `json:"leave_type"`
	Entitled   decimal.Decimal `json:"entitled"`
	Adjusted   decimal.Decimal `json:"adjusted"`
	Used       decimal.Decimal `json:"used"`
	Available  decimal.Decimal `json:"available"`
}
