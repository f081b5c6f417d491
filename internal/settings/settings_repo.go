package settings

import (
	"context"
	"errors"

	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Get returns nil without error when the company has not saved settings.
	Get(ctx context.Context, companyID string) (*CompanySetting, error)
	Upsert(ctx context.Context, setting *CompanySetting) error
	ListRules(ctx context.Context, companyID string) ([]DeductionRule, error)
	ListActiveRules(ctx context.Context, companyID, employeeID string) ([]DeductionRule, error)
	FindRule(ctx context.Context, companyID, id string) (*DeductionRule, error)
	CreateRule(ctx context.Context, rule *DeductionRule) error
	UpdateRule(ctx context.Context, rule *DeductionRule) error
	DeleteRule(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Get(ctx context.Context, companyID string) (*CompanySetting, error) {
	var setting CompanySetting
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *repository) Upsert(ctx context.Context, setting *CompanySetting) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "company_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"document", "updated_by", "updated_at"}),
		}).
		Create(setting).Error
}

func (r *repository) ListRules(ctx context.Context, companyID string) ([]DeductionRule, error) {
	var rules []DeductionRule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("sequence ASC, created_at ASC").
		Find(&rules).Error
	return rules, err
}

// ListActiveRules returns company-wide rules plus those scoped to employeeID, in application order.
func (r *repository) ListActiveRules(ctx context.Context, companyID, employeeID string) ([]DeductionRule, error) {
	var rules []DeductionRule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("active = ?", true).
		Where("employee_id IS NULL OR employee_id = ?", employeeID).
		Order("sequence ASC, created_at ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) FindRule(ctx context.Context, companyID, id string) (*DeductionRule, error) {
	var rule DeductionRule
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *repository) CreateRule(ctx context.Context, rule *DeductionRule) error {
	return r.db.WithContext(ctx).Create(rule).Error
}

func (r *repository) UpdateRule(ctx context.Context, rule *DeductionRule) error {
	return r.db.WithContext(ctx).Save(rule).Error
}

func (r *repository) DeleteRule(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&DeductionRule{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
