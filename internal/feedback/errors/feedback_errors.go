package feedbackerrors

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
	ErrInvalidCycleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid cycle id",
		http.StatusBadRequest,
	)
	ErrInvalidAssignmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid assignment id",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidPeriod = apperror.New(
		apperror.CodeInvalidInput,
		"period end must not be before period start",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"dates must use the YYYY-MM-DD format",
		http.StatusBadRequest,
	)
	ErrNoCompetencies = apperror.New(
		apperror.CodeInvalidInput,
		"at least one competency is required",
		http.StatusBadRequest,
	)
	ErrDuplicateCompetency = apperror.New(
		apperror.CodeInvalidInput,
		"competency names must be unique",
		http.StatusBadRequest,
	)
	ErrInvalidRelationship = apperror.New(
		apperror.CodeInvalidInput,
		"relationship must be SELF, MANAGER, PEER or DIRECT_REPORT",
		http.StatusBadRequest,
	)
	ErrSelfMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"SELF assignments need the same reviewer and reviewee, others need different ones",
		http.StatusBadRequest,
	)
	ErrRatingsIncomplete = apperror.New(
		apperror.CodeInvalidInput,
		"every competency must be rated",
		http.StatusBadRequest,
	)
	ErrUnknownCompetency = apperror.New(
		apperror.CodeInvalidInput,
		"rating given for an unknown competency",
		http.StatusBadRequest,
	)
	ErrRatingOutOfScale = apperror.New(
		apperror.CodeInvalidInput,
		"rating is outside the cycle scale",
		http.StatusBadRequest,
	)
	ErrCycleNotFound = apperror.New(
		apperror.CodeNotFound,
		"feedback cycle not found",
		http.StatusNotFound,
	)
	ErrAssignmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"feedback assignment not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrAssignmentExists = apperror.New(
		apperror.CodeConflict,
		"this reviewer is already assigned to the reviewee in this cycle",
		http.StatusConflict,
	)
	ErrCycleNotDraft = apperror.New(
		apperror.CodeInvalidState,
		"only draft cycles can be changed",
		http.StatusConflict,
	)
	ErrCycleNotActive = apperror.New(
		apperror.CodeInvalidState,
		"feedback cycle is not active",
		http.StatusConflict,
	)
	ErrCycleClosed = apperror.New(
		apperror.CodeInvalidState,
		"feedback cycle is closed",
		http.StatusConflict,
	)
	ErrCycleHasNoAssignments = apperror.New(
		apperror.CodeInvalidState,
		"a cycle needs assignments before it can be activated",
		http.StatusConflict,
	)
	ErrAlreadySubmitted = apperror.New(
		apperror.CodeInvalidState,
		"feedback was already submitted",
		http.StatusConflict,
	)
	ErrNotReviewer = apperror.New(
		apperror.CodeForbidden,
		"this assignment belongs to another reviewer",
		http.StatusForbidden,
	)
	ErrReportNotReleased = apperror.New(
		apperror.CodeForbidden,
		"the report is available once the cycle is closed",
		http.StatusForbidden,
	)
)
