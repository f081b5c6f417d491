package settings

import "github.com/shopspring/decimal"

type DeductionRuleRequest struct {
	Name           string          `json:"name" binding:"required,max=100"`
	Type           string          `json:"type" binding:"required"`
	Amount         int64           `json:"amount" binding:"gte=0"`
	Percent        decimal.Decimal `json:"percent"`
	EmployeeID     string          `json:"employee_id" binding:"omitempty,uuid"`
	Active         *bool           `json:"active"`
	LateGraceCount int             `json:"late_grace_count" binding:"gte=0"`
	Sequence       int             `json:"sequence"`
}

type DeductionRuleResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Type           string          `json:"type"`
	Amount         int64           `json:"amount"`
	Percent        decimal.Decimal `json:"percent"`
	EmployeeID     string          `json:"employee_id,omitempty"`
	Active         bool            `json:"active"`
	LateGraceCount int             `json:"late_grace_count"`
	Sequence       int             `json:"sequence"`
}

type SettingsResponse struct {
	CompanySettings
	IsDefault bool `json:"is_default"`
}
