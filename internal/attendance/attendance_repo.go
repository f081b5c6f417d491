package attendance

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
	Create(ctx context.Context, a *Attendance) error
	// Upsert replaces the status of an existing (employee, date) row and keeps its clock times.
	Upsert(ctx context.Context, a *Attendance) error
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindAll(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	EmployeeInCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	DeleteLeaveDays(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) Upsert(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "attendance_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "late", "source", "notes", "updated_at"}),
		}).
		Create(a).Error
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("attendance_date = ?", date.Format(dateutil.DateLayout)).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAll lists rows in [start, end]. An empty employeeID means every employee.
func (r *repository) FindAll(ctx context.Context, companyID, employeeID string, start, end time.Time) ([]Attendance, error) {
	var rows []Attendance
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Where("attendance_date BETWEEN ? AND ?", start.Format(dateutil.DateLayout), end.Format(dateutil.DateLayout))
	if employeeID != "" {
		q = q.Where("employee_id = ?", employeeID)
	}
	err := q.Order("attendance_date DESC, employee_id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) EmployeeInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) DeleteLeaveDays(ctx context.Context, companyID, employeeID string, start, end time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ?", employeeID).
		Where("source = ?", SourceLeave).
		Where("attendance_date BETWEEN ? AND ?", start.Format(dateutil.DateLayout), end.Format(dateutil.DateLayout)).
		Delete(&Attendance{})
	return res.RowsAffected, res.Error
}
