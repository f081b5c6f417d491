package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// formatFieldName turns "date_of_joining" into "Date Of Joining".
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding failure into VALIDATION_ERROR. The
// message names the first failing field and Details maps every failing field
// to its rule, e.g. {"status": "oneof=ACTIVE PROBATION NOTICE"}. Errors that
// are not validator errors (malformed JSON, bad query types) keep a generic
// message with the decoder's text as details.
func MapValidationError(err error) *AppError {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeValidation, "Invalid input", http.StatusBadRequest).WithDetails(err.Error())
	}

	fields := make(map[string]string, len(errs))
	for _, e := range errs {
		rule := e.Tag()
		if e.Param() != "" {
			rule += "=" + e.Param()
		}
		fields[e.Field()] = rule
	}

	first := formatFieldName(errs[0].Field())
	msg := first + " is invalid"
	if errs[0].Tag() == "required" {
		msg = first + " is required"
	}
	return New(CodeValidation, msg, http.StatusBadRequest).WithDetails(fields)
}
