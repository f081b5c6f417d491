package employeesalary_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"sharda-hr/internal/employeesalary"
	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	createFn             func(ctx context.Context, salary *employeesalary.EmployeeSalary) error
	findAllByCompanyFn   func(ctx context.Context, companyID, employeeID string) ([]employeesalary.EmployeeSalary, error)
	findByIDAndCompanyFn func(ctx context.Context, companyID, id string) (*employeesalary.EmployeeSalary, error)
	findEffectiveFn      func(ctx context.Context, companyID, employeeID string, asOf time.Time) (*employeesalary.EmployeeSalary, error)
	employeeInCompanyFn  func(ctx context.Context, companyID, employeeID string) (bool, error)
	deleteFn             func(ctx context.Context, companyID, id string) error
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) employeesalary.Repository {
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, salary *employeesalary.EmployeeSalary) error {
	if f.createFn != nil {
		return f.createFn(ctx, salary)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAllByCompany(ctx context.Context, companyID, employeeID string) ([]employeesalary.EmployeeSalary, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID, employeeID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*employeesalary.EmployeeSalary, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) FindEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (*employeesalary.EmployeeSalary, error) {
	if f.findEffectiveFn != nil {
		return f.findEffectiveFn(ctx, companyID, employeeID, asOf)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeSalaryRepository) EmployeeInCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	if f.employeeInCompanyFn != nil {
		return f.employeeInCompanyFn(ctx, companyID, employeeID)
	}
	return true, nil
}

func (f *fakeSalaryRepository) Delete(ctx context.Context, companyID, id string) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, companyID, id)
	}
	return nil
}

type serviceDeps struct {
	repo    *fakeSalaryRepository
	sqlMock sqlmock.Sqlmock
	service employeesalary.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := &fakeSalaryRepository{}
	return &serviceDeps{repo: repo, sqlMock: mock, service: employeesalary.NewService(db, repo)}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeSalaryService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	req := employeesalary.CreateEmployeeSalaryRequest{
		EmployeeID:       employeeID,
		Basic:            3000000,
		HRA:              1200000,
		SpecialAllowance: 500000,
		EffectiveDate:    "2026-04-01",
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, true)

		var saved *employeesalary.EmployeeSalary
		deps.repo.createFn = func(ctx context.Context, s *employeesalary.EmployeeSalary) error {
			saved = s
			return nil
		}

		resp, err := deps.service.Create(ctx, companyID, req)

		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, companyID, saved.CompanyID.String())
		assert.Equal(t, int64(4700000), resp.Gross)
		assert.Equal(t, "2026-04-01", resp.EffectiveDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee from another company", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.employeeInCompanyFn = func(ctx context.Context, cid, eid string) (bool, error) { return false, nil }

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, employeesalaryerrors.ErrEmployeeNotFound)
	})

	t.Run("duplicate effective date", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		deps.repo.createFn = func(ctx context.Context, s *employeesalary.EmployeeSalary) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_salary_effective"}
		}

		_, err := deps.service.Create(ctx, companyID, req)
		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists)
	})

	t.Run("bad date", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(t, deps.sqlMock, false)
		bad := req
		bad.EffectiveDate = "April"

		_, err := deps.service.Create(ctx, companyID, bad)
		assert.ErrorIs(t, err, employeesalaryerrors.ErrInvalidEffectiveDate)
	})
}

func TestEmployeeSalaryService_UpdateAppendsRevision(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	companyID := uuid.NewString()
	baseID := uuid.New()
	employeeID := uuid.New()

	deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid, id string) (*employeesalary.EmployeeSalary, error) {
		assert.Equal(t, baseID.String(), id)
		return &employeesalary.EmployeeSalary{
			ID: baseID, EmployeeID: employeeID, Basic: 3000000, HRA: 1200000, SpecialAllowance: 500000,
			EffectiveDate: time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		}, nil
	}
	var created *employeesalary.EmployeeSalary
	deps.repo.createFn = func(ctx context.Context, s *employeesalary.EmployeeSalary) error {
		created = s
		return nil
	}
	expectTx(t, deps.sqlMock, true)

	hra := int64(1500000)
	resp, err := deps.service.Update(ctx, companyID, baseID.String(), employeesalary.UpdateEmployeeSalaryRequest{
		Basic:         3500000,
		HRA:           &hra,
		EffectiveDate: "2026-04-01",
	})

	require.NoError(t, err)
	require.NotNil(t, created)
	assert.NotEqual(t, baseID, created.ID)
	assert.Equal(t, employeeID, created.EmployeeID)
	assert.Equal(t, int64(500000), created.SpecialAllowance)
	assert.Equal(t, int64(3500000+1500000+500000), resp.Gross)
}

func TestEmployeeSalaryService_GetEffective(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.NewString()
	employeeID := uuid.NewString()

	t.Run("found", func(t *testing.T) {
		deps := setupServiceTest(t)
		asOf := time.Date(2026, 3, 31, 18, 30, 0, 0, time.UTC)
		deps.repo.findEffectiveFn = func(ctx context.Context, cid, eid string, at time.Time) (*employeesalary.EmployeeSalary, error) {
			assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), at)
			return &employeesalary.EmployeeSalary{ID: uuid.New(), Basic: 100, EffectiveDate: at}, nil
		}

		resp, err := deps.service.GetEffective(ctx, companyID, employeeID, asOf)
		require.NoError(t, err)
		assert.Equal(t, int64(100), resp.Basic)
	})

	t.Run("none effective", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetEffective(ctx, companyID, employeeID, time.Now())
		assert.ErrorIs(t, err, employeesalaryerrors.ErrNoEffectiveSalary)
	})
}

func TestEmployeeSalaryService_Delete(t *testing.T) {
	deps := setupServiceTest(t)
	expectTx(t, deps.sqlMock, false)
	deps.repo.deleteFn = func(ctx context.Context, cid, id string) error { return gorm.ErrRecordNotFound }

	err := deps.service.Delete(context.Background(), uuid.NewString(), uuid.NewString())
	assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
}
