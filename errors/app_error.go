package errors

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/RalfNorthman/form-and-plot/form"
)

// AppError is the error type returned across the API layer. It carries
// the HTTP status code to send, a client-safe message, the underlying
// error (for logs only), and optional structured details such as
// validation violations.
type AppError struct {
	// Code is the HTTP status code for the client response.
	Code int `json:"-"`

	// Message is the human-readable message sent to the client.
	Message string `json:"message"`

	// Err is the underlying error, kept for logging and never exposed
	// to clients in release mode.
	Err error `json:"-"`

	// Details holds extra structured information for the client, e.g.
	// the list of validation violations.
	Details interface{} `json:"details,omitempty"`
}

// Error implements the standard error interface with a log-friendly string.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("AppError: Code=%d, Message=%s, UnderlyingError=%v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("AppError: Code=%d, Message=%s", e.Code, e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError builds an AppError. 'underlyingErr' may be nil; the first
// entry of 'details', if any, becomes the client-visible details payload.
func NewAppError(code int, message string, underlyingErr error, details ...interface{}) *AppError {
	var d interface{}
	if len(details) > 0 {
		d = details[0]
	}
	return &AppError{
		Code:    code,
		Message: message,
		Err:     underlyingErr,
		Details: d,
	}
}

// ToJSONResponse shapes the AppError for a JSON response. The underlying
// error is only included outside production.
func (e *AppError) ToJSONResponse(production bool) map[string]interface{} {
	response := map[string]interface{}{
		"error": e.Message,
	}

	if e.Details != nil {
		response["details"] = e.Details
	}

	if e.Err != nil && !production {
		response["underlying_error"] = e.Err.Error()
	}

	return response
}

// FormatValidationErrors converts validator.ValidationErrors (from the
// struct binding layer) into a field-to-message map for client responses.
// Other non-nil errors are reduced to their message string; nil stays nil.
func FormatValidationErrors(err error) interface{} {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		out := make(map[string]string)
		for _, fe := range ves {
			out[fe.Namespace()] = fmt.Sprintf("failed on validation tag '%s'", fe.Tag())
		}
		return out
	}

	return err.Error()
}

// FormatViolations renders measurement violations into client-facing
// detail entries, preserving the order the validators reported them in.
func FormatViolations(violations []form.Violation) []map[string]string {
	if len(violations) == 0 {
		return nil
	}

	out := make([]map[string]string, 0, len(violations))
	for _, v := range violations {
		out = append(out, map[string]string{
			"field":   string(v.Field),
			"kind":    string(v.Kind),
			"message": v.Message(),
		})
	}
	return out
}
