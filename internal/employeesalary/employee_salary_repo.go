package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *EmployeeSalary) error
	FindAllByCompany(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmployeeSalary, error)
	FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error)
	EmployeeInCompany(ctx context.Context, companyID, employeeID string) (bool, error)
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

func (r *repository) Create(ctx context.Context, salary *EmployeeSalary) error {
	return r.db.WithContext(ctx).Create(salary).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID, employeeID string) ([]EmployeeSalary, error) {
	var salaries []EmployeeSalary
	q := r.db.WithContext(ctx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Scopes(tenant.ScopeTable("employee_salaries", companyID))
	if employeeID != "" {
		q = q.Where("employee_salaries.employee_id = ?", employeeID)
	}
	err := q.Order("employees.full_name ASC").
		Order("employee_salaries.effective_date DESC").
		Find(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.db.WithContext(ctx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Scopes(tenant.ScopeTable("employee_salaries", companyID)).
		Where("employee_salaries.id = ?", id).
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

// FindEffective returns the latest revision whose effective date is on or before asOf.
func (r *repository) FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*EmployeeSalary, error) {
	var salary EmployeeSalary
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("employee_id = ? AND effective_date <= ?", employeeID, asOf).
		Order("effective_date DESC").
		First(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
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

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&EmployeeSalary{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
