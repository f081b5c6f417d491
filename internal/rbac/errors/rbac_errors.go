package rbacerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrRoleNotFound = apperror.New(
		apperror.CodeNotFound,
		"role not found",
		http.StatusNotFound,
	)
	ErrUnknownRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be one of ADMIN, HR, MANAGER, EMPLOYEE",
		http.StatusBadRequest,
	)
	ErrInvalidEnforceRequest = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id, company_id, resource, and action are required",
		http.StatusBadRequest,
	)
)
