package expenseerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidClaimID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid claim id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidItemDate = apperror.New(
		apperror.CodeInvalidInput,
		"item date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrFutureItemDate = apperror.New(
		apperror.CodeInvalidInput,
		"item date cannot be in the future",
		http.StatusBadRequest,
	)
	ErrInvalidCategory = apperror.New(
		apperror.CodeInvalidInput,
		"unknown expense category",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"item amount must be positive",
		http.StatusBadRequest,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"a rejection reason is required",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrClaimNotFound = apperror.New(
		apperror.CodeNotFound,
		"expense claim not found",
		http.StatusNotFound,
	)
	ErrOnlyDraftEditable = apperror.New(
		apperror.CodeInvalidState,
		"only draft claims can be changed",
		http.StatusConflict,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid expense claim status transition",
		http.StatusConflict,
	)
	ErrCategoryLimitExceeded = apperror.New(
		apperror.CodeInvalidState,
		"claim exceeds the category limit",
		http.StatusUnprocessableEntity,
	)
	ErrReimbursementConflict = apperror.New(
		apperror.CodeInvalidState,
		"expense claim is held or settled by another payroll run",
		http.StatusConflict,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"you cannot review your own expense claim",
		http.StatusForbidden,
	)
)
