package payroll

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	CreateRun(ctx context.Context, run *Run) error
	FindRun(ctx context.Context, companyID, id string) (*Run, error)
	// FindRunForUpdate locks the run row until the surrounding transaction ends.
	FindRunForUpdate(ctx context.Context, companyID, id string) (*Run, error)
	ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]Run, error)
	UpdateRun(ctx context.Context, run *Run) error
	DeleteRun(ctx context.Context, companyID, id string) error

	ReplacePayslips(ctx context.Context, companyID, runID string, payslips []Payslip) error
	ListPayslips(ctx context.Context, companyID, runID string) ([]Payslip, error)
	ListEmployeePayslips(ctx context.Context, companyID, employeeID string) ([]Payslip, error)
	FindPayslip(ctx context.Context, companyID, id string) (*Payslip, error)
	SetPayslipPDF(ctx context.Context, companyID, id, path string, at time.Time) error
	ReimbursedClaimIDs(ctx context.Context, companyID, runID string) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: txutil.Bind(r.db, tx)}
}

func (r *repository) CreateRun(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Create(run).Error
}

func (r *repository) FindRun(ctx context.Context, companyID, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) FindRunForUpdate(ctx context.Context, companyID, id string) (*Run, error) {
	var run Run
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		First(&run, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *repository) ListRuns(ctx context.Context, companyID string, filter ListRunsFilter) ([]Run, error) {
	var runs []Run
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(companyID))
	if filter.Year > 0 {
		q = q.Where("month LIKE ?", fmt.Sprintf("%04d-%%", filter.Year))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("month DESC").Find(&runs).Error
	return runs, err
}

func (r *repository) UpdateRun(ctx context.Context, run *Run) error {
	return r.db.WithContext(ctx).Save(run).Error
}

func (r *repository) DeleteRun(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Run{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) ReplacePayslips(ctx context.Context, companyID, runID string, payslips []Payslip) error {
	db := r.db.WithContext(ctx)
	if err := db.
		Where("payslip_id IN (?)", db.Model(&Payslip{}).Select("id").Where("company_id = ? AND run_id = ?", companyID, runID)).
		Delete(&Component{}).Error; err != nil {
		return err
	}
	if err := db.Scopes(tenant.Scope(companyID)).
		Where("run_id = ?", runID).
		Delete(&Payslip{}).Error; err != nil {
		return err
	}
	if len(payslips) == 0 {
		return nil
	}
	return db.CreateInBatches(payslips, 100).Error
}

func (r *repository) ListPayslips(ctx context.Context, companyID, runID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("run_id = ?", runID).
		Order("employee_code ASC").
		Find(&payslips).Error
	return payslips, err
}

// ListEmployeePayslips returns only payslips of locked runs.
func (r *repository) ListEmployeePayslips(ctx context.Context, companyID, employeeID string) ([]Payslip, error) {
	var payslips []Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.ScopeTable("payslips", companyID)).
		Joins("JOIN payroll_runs ON payroll_runs.id = payslips.run_id").
		Where("payslips.employee_id = ? AND payroll_runs.status = ?", employeeID, StatusLocked).
		Order("payslips.month DESC").
		Find(&payslips).Error
	return payslips, err
}

func (r *repository) FindPayslip(ctx context.Context, companyID, id string) (*Payslip, error) {
	var p Payslip
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Components", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		}).
		First(&p, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) SetPayslipPDF(ctx context.Context, companyID, id, path string, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&Payslip{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(map[string]any{"pdf_path": path, "pdf_generated_at": at}).Error
}

func (r *repository) ReimbursedClaimIDs(ctx context.Context, companyID, runID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Component{}).
		Joins("JOIN payslips ON payslips.id = payslip_components.payslip_id").
		Where("payslips.company_id = ? AND payslips.run_id = ?", companyID, runID).
		Where("payslip_components.kind = ? AND payslip_components.reference IS NOT NULL", KindReimbursement).
		Pluck("payslip_components.reference", &ids).Error
	return ids, err
}
