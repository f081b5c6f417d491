package settings

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RuleFixed          = "FIXED"
	RulePercentOfBasic = "PERCENT_OF_BASIC"
	RulePercentOfGross = "PERCENT_OF_GROSS"
	RulePerLOPDay      = "PER_LOP_DAY"
	RulePerLateMark    = "PER_LATE_MARK"
)

type CompanySetting struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Document  []byte    `gorm:"type:jsonb;not null"`
	UpdatedBy string    `gorm:"type:varchar(64)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (CompanySetting) TableName() string {
	return "company_settings"
}

// DeductionRule is a company-defined payroll deduction. Amount (paise) is used by
// FIXED, PER_LOP_DAY and PER_LATE_MARK; Percent by the PERCENT_OF_* types.
type DeductionRule struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(100);not null"`
	Type           string          `gorm:"type:varchar(30);not null"`
	Amount         int64           `gorm:"not null;default:0"`
	Percent        decimal.Decimal `gorm:"type:numeric(7,4);not null;default:0"`
	EmployeeID     *uuid.UUID      `gorm:"type:uuid;index"`
	Active         bool            `gorm:"not null;default:true"`
	LateGraceCount int             `gorm:"not null;default:0"`
	Sequence       int             `gorm:"not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func IsRuleType(t string) bool {
	switch t {
	case RuleFixed, RulePercentOfBasic, RulePercentOfGross, RulePerLOPDay, RulePerLateMark:
		return true
	}
	return false
}
