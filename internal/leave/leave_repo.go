package leave

import (
	"context"
	"database/sql"
	"time"

	"sharda-hr/internal/shared/dateutil"
	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	Update(ctx context.Context, l *Leave) error
	Delete(ctx context.Context, companyID, id string) error
	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error)

	// FindBalanceForUpdate locks the row until the surrounding transaction ends.
	FindBalanceForUpdate(ctx context.Context, companyID, employeeID string, year int, leaveType string) (*Balance, error)
	ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]Balance, error)
	SaveBalance(ctx context.Context, b *Balance) error
	// CreateBalanceIfAbsent reports whether a new row was inserted.
	CreateBalanceIfAbsent(ctx context.Context, b *Balance) (bool, error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Leave, error) {
	var leaves []Leave
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee")
	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Year > 0 {
		q = q.Where("EXTRACT(YEAR FROM start_date) = ?", filter.Year)
	}
	err := q.Order("start_date DESC").Find(&leaves).Error
	return leaves, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(l).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Leave{}, "id = ?", id)
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
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time, excludeID *string) (bool, error) {
	db := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("status NOT IN ?", []string{StatusCancelled, StatusRejected}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate.Format(dateutil.DateLayout), endDate.Format(dateutil.DateLayout))

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

func (r *repository) FindBalanceForUpdate(ctx context.Context, companyID, employeeID string, year int, leaveType string) (*Balance, error) {
	var b Balance
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND year = ? AND leave_type = ?", employeeID, year, leaveType).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *repository) ListBalances(ctx context.Context, companyID, employeeID string, year int) ([]Balance, error) {
	var rows []Balance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND year = ?", employeeID, year).
		Order("leave_type ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) SaveBalance(ctx context.Context, b *Balance) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *repository) CreateBalanceIfAbsent(ctx context.Context, b *Balance) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(b)
	return res.RowsAffected > 0, res.Error
}
