package employeesalary_test

import (
	"context"
	"database/sql"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"sharda-hr/internal/employeesalary"
	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeSalaryService struct {
	CreateFn       func(ctx context.Context, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error)
	GetAllFn       func(ctx context.Context, companyID, employeeID string) ([]employeesalary.EmployeeSalaryResponse, error)
	GetEffectiveFn func(ctx context.Context, companyID, employeeID string, asOf time.Time) (employeesalary.EmployeeSalaryResponse, error)
	DeleteFn       func(ctx context.Context, companyID, id string) error
}

func (f *fakeSalaryService) Create(ctx context.Context, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeSalaryService) CreateInTx(ctx context.Context, tx *sql.Tx, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakeSalaryService) GetAll(ctx context.Context, companyID, employeeID string) ([]employeesalary.EmployeeSalaryResponse, error) {
	return f.GetAllFn(ctx, companyID, employeeID)
}
func (f *fakeSalaryService) GetByID(ctx context.Context, companyID, id string) (employeesalary.EmployeeSalaryResponse, error) {
	return employeesalary.EmployeeSalaryResponse{}, employeesalaryerrors.ErrSalaryNotFound
}
func (f *fakeSalaryService) Update(ctx context.Context, companyID, id string, req employeesalary.UpdateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
	return employeesalary.EmployeeSalaryResponse{}, nil
}
func (f *fakeSalaryService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}
func (f *fakeSalaryService) GetEffective(ctx context.Context, companyID, employeeID string, asOf time.Time) (employeesalary.EmployeeSalaryResponse, error) {
	return f.GetEffectiveFn(ctx, companyID, employeeID, asOf)
}

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", "comp-1")
		c.Next()
	})
	return r
}

func TestSalaryHandler_Create(t *testing.T) {
	svc := &fakeSalaryService{
		CreateFn: func(ctx context.Context, companyID string, req employeesalary.CreateEmployeeSalaryRequest) (employeesalary.EmployeeSalaryResponse, error) {
			assert.Equal(t, "comp-1", companyID)
			return employeesalary.EmployeeSalaryResponse{ID: "s-1", Basic: req.Basic}, nil
		},
	}
	r := newRouter()
	r.POST("/employee-salaries", employeesalary.NewHandler(svc).Create)

	t.Run("created", func(t *testing.T) {
		body := `{"employee_id":"7b0f5e1c-7c2a-4d39-9b7e-2f0b4b8f6a11","basic":2500000,"effective_date":"2026-04-01"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employee-salaries", strings.NewReader(body)))
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("negative allowance rejected by binding", func(t *testing.T) {
		body := `{"employee_id":"7b0f5e1c-7c2a-4d39-9b7e-2f0b4b8f6a11","basic":2500000,"hra":-1,"effective_date":"2026-04-01"}`
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/employee-salaries", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestSalaryHandler_GetEffective(t *testing.T) {
	svc := &fakeSalaryService{
		GetEffectiveFn: func(ctx context.Context, companyID, employeeID string, asOf time.Time) (employeesalary.EmployeeSalaryResponse, error) {
			assert.Equal(t, "emp-1", employeeID)
			assert.Equal(t, "2026-03-15", asOf.Format("2006-01-02"))
			return employeesalary.EmployeeSalaryResponse{}, employeesalaryerrors.ErrNoEffectiveSalary
		},
	}
	r := newRouter()
	r.GET("/employee-salaries/effective", employeesalary.NewHandler(svc).GetEffective)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee-salaries/effective?employee_id=emp-1&as_of=2026-03-15", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/employee-salaries/effective?employee_id=emp-1&as_of=bad", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSalaryHandler_Delete(t *testing.T) {
	svc := &fakeSalaryService{
		DeleteFn: func(ctx context.Context, companyID, id string) error { return nil },
	}
	r := newRouter()
	r.DELETE("/employee-salaries/:id", employeesalary.NewHandler(svc).Delete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/employee-salaries/s-1", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
}
