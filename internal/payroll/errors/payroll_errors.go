package payrollerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidRunID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payroll run ID",
		http.StatusBadRequest,
	)
	ErrInvalidPayslipID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payslip ID",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid actor ID",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must use the YYYY-MM format",
		http.StatusBadRequest,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll run not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrRunExists = apperror.New(
		apperror.CodeConflict,
		"A payroll run already exists for this month",
		http.StatusConflict,
	)
	ErrRunLocked = apperror.New(
		apperror.CodeInvalidState,
		"Payroll run is locked",
		http.StatusConflict,
	)
	ErrRunNotProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Only a processed payroll run can be locked",
		http.StatusConflict,
	)
	ErrOnlyDraftDeletable = apperror.New(
		apperror.CodeInvalidState,
		"Only a draft payroll run can be deleted",
		http.StatusConflict,
	)
	ErrNoEmployeesOnRolls = apperror.New(
		apperror.CodeInvalidState,
		"No employee with an effective salary is on rolls for this month",
		http.StatusConflict,
	)
	ErrNoEffectiveSalary = apperror.New(
		apperror.CodeInvalidState,
		"Employee has no salary structure effective in this month",
		http.StatusConflict,
	)
	ErrPayslipNotReleased = apperror.New(
		apperror.CodeForbidden,
		"Payslip is not released until the payroll run is locked",
		http.StatusForbidden,
	)
)
