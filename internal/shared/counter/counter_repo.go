package counter

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

const (
	TypeEmployeeCode   = "employee_code"
	TypeWorkerCode     = "contract_worker_code"
	TypeExpenseClaimNo = "expense_claim_number"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error)
}

type CompanyCounter struct {
	CompanyID   string `gorm:"type:uuid;primaryKey"`
	CounterType string `gorm:"type:varchar(60);primaryKey"`
	LastValue   int64  `gorm:"not null;default:0"`
	UpdatedAt   time.Time
}

func (CompanyCounter) TableName() string {
	return "company_counters"
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetNextValue(ctx context.Context, companyID string, counterType string) (int64, error) {
	var nextValue int64

	// Atomic upsert-and-increment per company/type.
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO company_counters (company_id, counter_type, last_value, updated_at)
		VALUES (?, ?, 1, now())
		ON CONFLICT (company_id, counter_type) DO UPDATE
		SET last_value = company_counters.last_value + 1, updated_at = now()
		RETURNING last_value
	`, companyID, counterType).Scan(&nextValue).Error

	if err != nil {
		return 0, err
	}

	return nextValue, nil
}

func FormatEmployeeCode(v int64) string {
	return fmt.Sprintf("EMP-%06d", v)
}

func FormatWorkerCode(v int64) string {
	return fmt.Sprintf("CW-%05d", v)
}

func FormatClaimNumber(year int, v int64) string {
	return fmt.Sprintf("EXP-%d-%04d", year, v)
}
