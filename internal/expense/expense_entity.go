package expense

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	CategoryTravel  = "TRAVEL"
	CategoryFood    = "FOOD"
	CategoryLodging = "LODGING"
	CategoryFuel    = "FUEL"
	CategoryMedical = "MEDICAL"
	CategoryOther   = "OTHER"
)

const (
	StatusDraft      = "DRAFT"
	StatusSubmitted  = "SUBMITTED"
	StatusApproved   = "APPROVED"
	StatusRejected   = "REJECTED"
	StatusReimbursed = "REIMBURSED"
)

func IsCategory(c string) bool {
	switch c {
	case CategoryTravel, CategoryFood, CategoryLodging, CategoryFuel, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

// Claim is an expense claim. Amounts are in paise.
type Claim struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_expense_claim_number,priority:1;index:idx_expense_claims_company_status"`
	EmployeeID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ClaimNumber string    `gorm:"type:varchar(20);not null;uniqueIndex:uq_expense_claim_number,priority:2"`
	Title       string    `gorm:"type:varchar(150);not null"`
	TotalAmount int64     `gorm:"not null;default:0"`

	Status          string `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_expense_claims_company_status"`
	SubmittedAt     *time.Time
	ReviewedBy      *uuid.UUID `gorm:"type:uuid"`
	ReviewedAt      *time.Time
	RejectionReason *string    `gorm:"type:text"`
	PayrollRunID    *uuid.UUID `gorm:"type:uuid;index"`
	ReimbursedAt    *time.Time

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Items    []Item       `gorm:"foreignKey:ClaimID;constraint:OnDelete:CASCADE"`
	Employee *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Claim) TableName() string {
	return "expense_claims"
}

type Item struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClaimID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null"`
	Category    string    `gorm:"type:varchar(20);not null"`
	ExpenseDate time.Time `gorm:"type:date;not null"`
	Amount      int64     `gorm:"not null"`
	Description string    `gorm:"type:text"`
	ReceiptURL  string    `gorm:"type:text"`
	CreatedAt   time.Time
}

func (Item) TableName() string {
	return "expense_items"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
