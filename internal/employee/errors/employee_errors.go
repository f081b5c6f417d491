package employeeerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrEmployeeCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid company ID",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfJoining = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_joining, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateOfExit = apperror.New(
		apperror.CodeInvalidInput,
		"date_of_exit must be a YYYY-MM-DD date on or after date_of_joining",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"employment_status must be ACTIVE, PROBATION or NOTICE",
		http.StatusBadRequest,
	)
	ErrInvalidPAN = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid PAN format",
		http.StatusBadRequest,
	)
	ErrInvalidIFSC = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid IFSC format",
		http.StatusBadRequest,
	)
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Department not found for this company",
		http.StatusBadRequest,
	)
	ErrManagerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"Manager not found for this company",
		http.StatusBadRequest,
	)
	ErrSelfManager = apperror.New(
		apperror.CodeInvalidInput,
		"An employee cannot be their own manager",
		http.StatusBadRequest,
	)
	ErrEmployeeExited = apperror.New(
		apperror.CodeInvalidState,
		"Employee has already exited",
		http.StatusConflict,
	)
)
