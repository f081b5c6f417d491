package expense

import (
	"context"
	"database/sql"
	"time"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, claim *Claim) error
	FindByID(ctx context.Context, companyID, id string) (*Claim, error)
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Claim, error)
	Update(ctx context.Context, claim *Claim) error
	ReplaceItems(ctx context.Context, claim *Claim) error
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)

	// CategoryTotals sums the employee's submitted, approved and reimbursed
	// items per category with an expense date in [start, end].
	CategoryTotals(ctx context.Context, companyID, employeeID string, start, end time.Time, excludeClaimID string) (map[string]int64, error)
	// FindApproved returns approved claims that are free or already held by
	// runID. An empty runID returns only free claims.
	FindApproved(ctx context.Context, companyID, employeeID, runID string) ([]Claim, error)
	ReserveForRun(ctx context.Context, companyID, runID string, ids []string) (int64, error)
	ReleaseRun(ctx context.Context, companyID, runID string) error
	MarkReimbursed(ctx context.Context, companyID string, ids []string, runID string, at time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, claim *Claim) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(claim).Error
}

func (r *repository) FindByID(ctx context.Context, companyID, id string) (*Claim, error) {
	var claim Claim
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("expense_date ASC")
		}).
		Preload("Employee").
		First(&claim, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Claim, error) {
	var claims []Claim
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Items").
		Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	err := q.Order("created_at DESC").Find(&claims).Error
	return claims, err
}

func (r *repository) Update(ctx context.Context, claim *Claim) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(claim).Error
}

func (r *repository) ReplaceItems(ctx context.Context, claim *Claim) error {
	db := r.db.WithContext(ctx)
	if err := db.Where("claim_id = ?", claim.ID).Delete(&Item{}).Error; err != nil {
		return err
	}
	if len(claim.Items) == 0 {
		return nil
	}
	return db.Create(&claim.Items).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Claim{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CategoryTotals(
	ctx context.Context,
	companyID, employeeID string,
	start, end time.Time,
	excludeClaimID string,
) (map[string]int64, error) {
	type row struct {
		Category string
		Total    int64
	}
	var rows []row
	q := r.db.WithContext(ctx).
		Table("expense_items").
		Select("expense_items.category, COALESCE(SUM(expense_items.amount), 0) AS total").
		Joins("JOIN expense_claims ON expense_claims.id = expense_items.claim_id").
		Where("expense_claims.company_id = ? AND expense_claims.employee_id = ?", companyID, employeeID).
		Where("expense_claims.deleted_at IS NULL").
		Where("expense_claims.status IN ?", []string{StatusSubmitted, StatusApproved, StatusReimbursed}).
		Where("expense_items.expense_date BETWEEN ? AND ?", start, end)
	if excludeClaimID != "" {
		q = q.Where("expense_claims.id <> ?", excludeClaimID)
	}
	if err := q.Group("expense_items.category").Scan(&rows).Error; err != nil {
		return nil, err
	}
	totals := make(map[string]int64, len(rows))
	for _, r := range rows {
		totals[r.Category] = r.Total
	}
	return totals, nil
}

func (r *repository) FindApproved(ctx context.Context, companyID, employeeID, runID string) ([]Claim, error) {
	var claims []Claim
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND status = ?", employeeID, StatusApproved)
	if runID == "" {
		q = q.Where("payroll_run_id IS NULL")
	} else {
		q = q.Where("(payroll_run_id IS NULL OR payroll_run_id = ?)", runID)
	}
	err := q.Order("claim_number ASC").Find(&claims).Error
	return claims, err
}

func (r *repository) ReserveForRun(ctx context.Context, companyID, runID string, ids []string) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Claim{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ? AND status = ?", ids, StatusApproved).
		Where("(payroll_run_id IS NULL OR payroll_run_id = ?)", runID).
		Update("payroll_run_id", runID)
	return res.RowsAffected, res.Error
}

func (r *repository) ReleaseRun(ctx context.Context, companyID, runID string) error {
	return r.db.WithContext(ctx).
		Model(&Claim{}).
		Scopes(tenant.Scope(companyID)).
		Where("payroll_run_id = ? AND status = ?", runID, StatusApproved).
		Update("payroll_run_id", nil).Error
}

func (r *repository) MarkReimbursed(ctx context.Context, companyID string, ids []string, runID string, at time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&Claim{}).
		Scopes(tenant.Scope(companyID)).
		Where("id IN ? AND status = ? AND payroll_run_id = ?", ids, StatusApproved, runID).
		Updates(map[string]any{
			"status":        StatusReimbursed,
			"reimbursed_at": at,
		})
	return res.RowsAffected, res.Error
}
