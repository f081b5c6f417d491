package bulkimporterrors

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
	ErrInvalidJobID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid import job id",
		http.StatusBadRequest,
	)
	ErrUnknownKind = apperror.New(
		apperror.CodeInvalidInput,
		"unknown import kind",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"file must be CSV or XLSX",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"an import file is required",
		http.StatusBadRequest,
	)
	ErrFileTooLarge = apperror.New(
		apperror.CodeInvalidInput,
		"import file is too large",
		http.StatusRequestEntityTooLarge,
	)
	ErrUnreadableFile = apperror.New(
		apperror.CodeInvalidInput,
		"import file could not be read",
		http.StatusBadRequest,
	)
	ErrEmptyFile = apperror.New(
		apperror.CodeInvalidInput,
		"import file has no header row",
		http.StatusBadRequest,
	)
	ErrTooManyRows = apperror.New(
		apperror.CodeInvalidInput,
		"import file has too many rows",
		http.StatusBadRequest,
	)
	ErrHeaderMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"import file columns do not match the template",
		http.StatusBadRequest,
	)
	ErrMonthRequired = apperror.New(
		apperror.CodeInvalidInput,
		"attendance imports need a month in YYYY-MM format",
		http.StatusBadRequest,
	)
	ErrJobNotFound = apperror.New(
		apperror.CodeNotFound,
		"import job not found",
		http.StatusNotFound,
	)
	ErrRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll run not found",
		http.StatusNotFound,
	)
)
