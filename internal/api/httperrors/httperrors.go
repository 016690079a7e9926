package httperrors

import (
	"fmt"
	"net/http"

	"github/w3kit/go-smart-account/internal/types"
)

// HTTPError wraps a public error payload so handlers can return it directly.
type HTTPError struct {
	types.PublicHTTPError
	Internal error `json:"-"`
}

// NewHTTPError creates a generic HTTP error with the given status, type and
// title.
func NewHTTPError(code int, errorType string, title string) *HTTPError {
	return &HTTPError{
		PublicHTTPError: types.PublicHTTPError{
			Code:  code,
			Type:  errorType,
			Title: title,
		},
	}
}

// NewHTTPErrorWithDetail creates an HTTP error carrying extra public detail.
func NewHTTPErrorWithDetail(code int, errorType string, title string, detail string) *HTTPError {
	httpError := NewHTTPError(code, errorType, title)
	httpError.Detail = detail

	return httpError
}

func (e *HTTPError) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("HTTPError %d (%s): %s: %v", e.Code, e.Type, e.Title, e.Internal)
	}

	return fmt.Sprintf("HTTPError %d (%s): %s", e.Code, e.Type, e.Title)
}

// HTTPValidationError wraps a validation error payload.
type HTTPValidationError struct {
	types.PublicHTTPValidationError
}

// NewHTTPValidationError creates an HTTP error with per-field validation
// details.
func NewHTTPValidationError(code int, errorType string, title string, validationErrors []*types.HTTPValidationErrorDetail) *HTTPValidationError {
	return &HTTPValidationError{
		PublicHTTPValidationError: types.PublicHTTPValidationError{
			PublicHTTPError: types.PublicHTTPError{
				Code:  code,
				Type:  errorType,
				Title: title,
			},
			ValidationErrors: validationErrors,
		},
	}
}

func (e *HTTPValidationError) Error() string {
	return fmt.Sprintf("HTTPValidationError %d (%s): %s (%d fields)", e.Code, e.Type, e.Title, len(e.ValidationErrors))
}

var (
	// ErrBadRequestMalformedBody is returned when the request body cannot be
	// bound at all.
	ErrBadRequestMalformedBody = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Malformed request body.")
)
