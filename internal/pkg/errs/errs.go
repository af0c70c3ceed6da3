package errs

import (
	"fmt"
	"net/http"
	"strings"

	"aaelink/internal/pkg/logx"
)

// CustomError is the error structure returned to HTTP clients.
// It carries a business code, a user-facing message, and the HTTP status to respond with.
type CustomError struct {
	// Code is the business error code (see constants definition).
	Code int

	// Message is the user-friendly error description.
	Message string

	// Status is the standard HTTP status code corresponding to this error.
	Status int
}

// Error implements the standard Go error interface.
func (e CustomError) Error() string {
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// NewError constructs a *CustomError from a predefined error code.
// details are printf arguments for templates containing verbs. For ErrUnknown,
// an error passed as the first detail is logged instead of being formatted.
// Unknown codes fall back to ErrUnknown.
func NewError(code int, details ...any) *CustomError {
	templateErr, ok := errorMap[code]

	if !ok {
		logx.Error(
			fmt.Errorf("attempted to create an error with an unknown code in errorMap"),
			"Unknown error code requested",
			"requested_code", code,
		)

		unknownErr := errorMap[ErrUnknown]
		return &unknownErr
	}

	customErr := templateErr

	if customErr.Status == 0 {
		customErr.Status = http.StatusBadRequest
	}

	if code == ErrUnknown {
		if len(details) > 0 {
			if originalErr, ok := details[0].(error); ok {
				logx.Error(originalErr, "Handling ErrUnknown with underlying error")
			}
		}
		return &customErr
	}

	if strings.Contains(customErr.Message, "%") {
		if len(details) > 0 {
			customErr.Message = fmt.Sprintf(customErr.Message, details...)
		} else {
			customErr.Message = fallbackMessage(customErr.Message)
		}
	} else if len(details) > 0 {
		logx.Warn(
			"Details provided for error, but message template has no formatting placeholders. Details ignored.",
			"code", code,
		)
	}

	return &customErr
}

// fallbackMessage strips a trailing parenthesised template clause, e.g. " (max %d MB)".
func fallbackMessage(tmpl string) string {
	if i := strings.Index(tmpl, " ("); i >= 0 && strings.Contains(tmpl[i:], "%") {
		return strings.TrimSpace(tmpl[:i]) + "."
	}
	return tmpl
}
