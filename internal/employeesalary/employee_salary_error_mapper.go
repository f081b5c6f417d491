package employeesalary

import (
	"errors"
	"strings"

	employeesalaryerrors "sharda-hr/internal/employeesalary/errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return employeesalaryerrors.ErrSalaryNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgerrcode.UniqueViolation && pgErr.ConstraintName == "uq_employee_salary_effective" {
			return employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_salary_effective") {
		return employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists
	}

	return err
}
