package expense

import "time"

type ItemRequest struct {
	Category    string `json:"category" binding:"required,oneof=TRAVEL FOOD LODGING FUEL MEDICAL OTHER"`
	Date        string `json:"date" binding:"required"`
	Amount      int64  `json:"amount" binding:"required,gt=0"`
	Description string `json:"description" binding:"max=500"`
	ReceiptURL  string `json:"receipt_url" binding:"omitempty,url"`
}

type CreateClaimRequest struct {
	EmployeeID string        `json:"employee_id" binding:"omitempty,uuid"`
	Title      string        `json:"title" binding:"required,max=150"`
	Items      []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type UpdateClaimRequest struct {
	Title string        `json:"title" binding:"required,max=150"`
	Items []ItemRequest `json:"items" binding:"required,min=1,dive"`
}

type RejectClaimRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

type ListFilter struct {
	EmployeeID string
	Status     string
}

type ItemResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	Date        string `json:"date"`
	Amount      int64  `json:"amount"`
	Description string `json:"description,omitempty"`
	ReceiptURL  string `json:"receipt_url,omitempty"`
}

type ClaimResponse struct {
	ID              string         `json:"id"`
	ClaimNumber     string         `json:"claim_number"`
	EmployeeID      string         `json:"employee_id"`
	EmployeeName    string         `json:"employee_name,omitempty"`
	Title           string         `json:"title"`
	TotalAmount     int64          `json:"total_amount"`
	Status          string         `json:"status"`
	SubmittedAt     *time.Time     `json:"submitted_at,omitempty"`
	ReviewedBy      string         `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time     `json:"reviewed_at,omitempty"`
	RejectionReason string         `json:"rejection_reason,omitempty"`
	PayrollRunID    string         `json:"payroll_run_id,omitempty"`
	ReimbursedAt    *time.Time     `json:"reimbursed_at,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	Items           []ItemResponse `json:"items"`
}

// ReimbursableClaim is an approved claim waiting for the next payroll.
type ReimbursableClaim struct {
	ID          string
	ClaimNumber string
	Amount      int64
}

// LimitViolation is reported when a submitted claim goes over the monthly
// limit of a category.
type LimitViolation struct {
	Category string `json:"category"`
	Limit    int64  `json:"limit"`
	Claimed  int64  `json:"claimed"`
}
