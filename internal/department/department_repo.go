package department

import (
	"context"
	"database/sql"
	"errors"

	departmenterrors "sharda-hr/internal/department/errors"
	"sharda-hr/internal/shared/txutil"
	"sharda-hr/internal/tenant"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

//go:generate mockgen -source=department_repo.go -destination=mock/department_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, dept *Department) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Department, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Department, error)
	FindByName(ctx context.Context, companyID, name string) (*Department, error)
	CountActiveEmployees(ctx context.Context, companyID, id string) (int64, error)
	Update(ctx context.Context, dept *Department) error
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

func (r *repository) Create(ctx context.Context, dept *Department) error {
	return mapError(r.db.WithContext(ctx).Create(dept).Error)
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Department, error) {
	var depts []Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("name ASC").
		Find(&depts).Error
	return depts, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		First(&dept).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &dept, nil
}

// FindByName matches case-insensitively; bulk import resolves department names with it.
func (r *repository) FindByName(ctx context.Context, companyID, name string) (*Department, error) {
	var dept Department
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("LOWER(name) = LOWER(?)", name).
		First(&dept).Error
	if err != nil {
		return nil, mapError(err)
	}
	return &dept, nil
}

func (r *repository) CountActiveEmployees(ctx context.Context, companyID, id string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("department_id = ? AND deleted_at IS NULL AND employment_status <> ?", id, "EXITED").
		Count(&count).Error
	return count, err
}

func (r *repository) Update(ctx context.Context, dept *Department) error {
	return mapError(r.db.WithContext(ctx).Save(dept).Error)
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	res := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Delete(&Department{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return departmenterrors.ErrDepartmentNotFound
	}
	return nil
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return departmenterrors.ErrDepartmentNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return departmenterrors.ErrDepartmentNameExists
	}
	return err
}
