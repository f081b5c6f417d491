package attendanceerrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrAlreadyClockedIn = apperror.New(
		apperror.CodeConflict,
		"Attendance already recorded for today",
		http.StatusConflict,
	)
	ErrClockInNotFound = apperror.New(
		apperror.CodeInvalidState,
		"Clock in not found for today",
		http.StatusConflict,
	)
	ErrAlreadyClockedOut = apperror.New(
		apperror.CodeInvalidState,
		"Already clocked out for today",
		http.StatusConflict,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance status",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance date, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid month, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrDuplicateEntry = apperror.New(
		apperror.CodeConflict,
		"The same employee and date appear more than once",
		http.StatusConflict,
	)
)
