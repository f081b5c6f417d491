package departmenterrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrDepartmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"department not found",
		http.StatusNotFound,
	)
	ErrDepartmentNameExists = apperror.New(
		apperror.CodeConflict,
		"department name already exists in this company",
		http.StatusConflict,
	)
	ErrDepartmentInUse = apperror.New(
		apperror.CodeInvalidState,
		"department still has active employees",
		http.StatusConflict,
	)
	ErrInvalidDepartmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid department id",
		http.StatusBadRequest,
	)
)
