package contractlabourerrors

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
	ErrInvalidContractorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid contractor id",
		http.StatusBadRequest,
	)
	ErrInvalidWorkerID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid worker id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrFutureDate = apperror.New(
		apperror.CodeInvalidInput,
		"attendance cannot be marked for a future date",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must use the YYYY-MM format",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"status must be PRESENT, HALF_DAY or ABSENT",
		http.StatusBadRequest,
	)
	ErrInvalidOvertime = apperror.New(
		apperror.CodeInvalidInput,
		"overtime hours must be between 0 and 16",
		http.StatusBadRequest,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeInvalidInput,
		"the same worker and date appear more than once",
		http.StatusBadRequest,
	)
	ErrContractorNotFound = apperror.New(
		apperror.CodeNotFound,
		"contractor not found",
		http.StatusNotFound,
	)
	ErrWorkerNotFound = apperror.New(
		apperror.CodeNotFound,
		"contract worker not found",
		http.StatusNotFound,
	)
	ErrContractorExists = apperror.New(
		apperror.CodeConflict,
		"a contractor with this name already exists",
		http.StatusConflict,
	)
	ErrContractorInactive = apperror.New(
		apperror.CodeInvalidState,
		"contractor is inactive",
		http.StatusConflict,
	)
	ErrContractorHasWorkers = apperror.New(
		apperror.CodeInvalidState,
		"contractor still has active workers",
		http.StatusConflict,
	)
	ErrWorkerInactive = apperror.New(
		apperror.CodeInvalidState,
		"contract worker is inactive",
		http.StatusConflict,
	)
	ErrPayrollFinalized = apperror.New(
		apperror.CodeInvalidState,
		"contract payroll for this month is already finalized",
		http.StatusConflict,
	)
	ErrNothingToFinalize = apperror.New(
		apperror.CodeInvalidState,
		"no worker has attendance in this month",
		http.StatusConflict,
	)
)
