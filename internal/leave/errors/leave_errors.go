package leaveerrors

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
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"invalid leave type",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrHalfDayRange = apperror.New(
		apperror.CodeInvalidInput,
		"a half-day leave must start and end on the same date",
		http.StatusBadRequest,
	)
	ErrCrossYear = apperror.New(
		apperror.CodeInvalidInput,
		"a leave must fall within one calendar year",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrInvalidStatusTransition = apperror.New(
		apperror.CodeInvalidState,
		"invalid leave status transition",
		http.StatusConflict,
	)
	ErrOnlyPendingDeletable = apperror.New(
		apperror.CodeInvalidState,
		"only pending leaves can be deleted",
		http.StatusConflict,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection_reason is required when status is REJECTED",
		http.StatusBadRequest,
	)
	ErrInsufficientBalance = apperror.New(
		apperror.CodeInsufficientBalance,
		"insufficient leave balance",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment must be a non-zero multiple of 0.5",
		http.StatusBadRequest,
	)
	ErrSelfApproval = apperror.New(
		apperror.CodeForbidden,
		"you cannot approve or reject your own leave",
		http.StatusForbidden,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"invalid year",
		http.StatusBadRequest,
	)
)
