package settingserrors

import (
	"net/http"

	"sharda-hr/internal/shared/apperror"
)

var (
	ErrInvalidSettings = apperror.New(
		apperror.CodeInvalidInput,
		"Settings document is invalid",
		http.StatusBadRequest,
	)
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Deduction rule not found",
		http.StatusNotFound,
	)
	ErrInvalidRuleID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid deduction rule ID",
		http.StatusBadRequest,
	)
	ErrInvalidRuleType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be FIXED, PERCENT_OF_BASIC, PERCENT_OF_GROSS, PER_LOP_DAY or PER_LATE_MARK",
		http.StatusBadRequest,
	)
	ErrInvalidRuleValue = apperror.New(
		apperror.CodeInvalidInput,
		"Amount rules need a positive amount and percent rules a percent within (0, 100]",
		http.StatusBadRequest,
	)
)
