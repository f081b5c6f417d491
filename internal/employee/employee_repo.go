package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Employee, error)
	FindOptions(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error)
	FindByCode(ctx context.Context, companyID, code string) (*Employee, error)
	FindDirectReports(ctx context.Context, companyID, managerID string) ([]Employee, error)
	FindOnRolls(ctx context.Context, companyID string, start, end time.Time) ([]Employee, error)
	DepartmentExists(ctx context.Context, companyID, departmentID string) (bool, error)
	Update(ctx context.Context, empl *Employee) error
	Delete(ctx context.Context, companyID, id string) error
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

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Create(empl).Error
}

func (r *repository) FindAll(ctx context.Context, companyID string, filter ListFilter) ([]Employee, error) {
	var emps []Employee
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Department")

	if s := strings.TrimSpace(filter.Query); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("(LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(employee_code) LIKE ?)", like, like, like)
	}
	if filter.DepartmentID != "" {
		q = q.Where("department_id = ?", filter.DepartmentID)
	}
	if filter.Status != "" {
		q = q.Where("employment_status = ?", filter.Status)
	}

	err := q.Order("full_name ASC").Find(&emps).Error
	return emps, err
}

// FindOptions returns the lightweight list used by pickers; exited employees are left out.
func (r *repository) FindOptions(ctx context.Context, companyID string) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("id", "employee_code", "full_name").
		Where("employment_status <> ?", StatusExited).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Department").
		First(&empl, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindByCode(ctx context.Context, companyID, code string) (*Employee, error) {
	var empl Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&empl, "employee_code = ?", code).Error
	if err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *repository) FindDirectReports(ctx context.Context, companyID, managerID string) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("manager_id = ? AND employment_status <> ?", managerID, StatusExited).
		Order("full_name ASC").
		Find(&emps).Error
	return emps, err
}

// FindOnRolls returns employees who joined on or before end and had not exited before start.
func (r *repository) FindOnRolls(ctx context.Context, companyID string, start, end time.Time) ([]Employee, error) {
	var emps []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("date_of_joining <= ?", end).
		Where("date_of_exit IS NULL OR date_of_exit >= ?", start).
		Order("employee_code ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) DepartmentExists(ctx context.Context, companyID, departmentID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("departments").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", departmentID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, empl *Employee) error {
	return r.db.WithContext(ctx).Omit("Department").Save(empl).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
