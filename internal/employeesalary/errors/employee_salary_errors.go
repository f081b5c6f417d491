package employeesalaryerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrSalaryEffectiveDateAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Salary for this employee and effective date already exists",
		http.StatusConflict,
	)
	ErrSalaryNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary record not found",
		http.StatusNotFound,
	)
	ErrNoEffectiveSalary = apperror.New(
		apperror.CodeNotFound,
		"No salary structure is effective on that date",
		http.StatusNotFound,
	)
	ErrInvalidSalaryID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid salary ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Employee not found for this company",
		http.StatusBadRequest,
	)
	ErrInvalidEffectiveDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid effective_date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Basic must be positive and allowances cannot be negative",
		http.StatusBadRequest,
	)
)
