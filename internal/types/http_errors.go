package types

// Public error type identifiers returned to API consumers.
const (
	PublicHTTPErrorTypeGeneric          = "generic"
	PublicHTTPErrorTypeInvalidAddress   = "invalid_address"
	PublicHTTPErrorTypeInvalidDigest    = "invalid_digest"
	PublicHTTPErrorTypeInvalidSignature = "invalid_signature"
	PublicHTTPErrorTypeSigningFailed    = "signing_failed"
	PublicHTTPErrorTypeTransportFailure = "transport_failure"
)

// PublicHTTPError is the JSON error payload returned by the API.
type PublicHTTPError struct {
	Code   int    `json:"code"`
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
}

// HTTPValidationErrorDetail describes a single invalid request field.
type HTTPValidationErrorDetail struct {
	Key   *string `json:"key"`
	In    *string `json:"in"`
	Error *string `json:"error"`
}

// PublicHTTPValidationError extends the error payload with per-field details.
type PublicHTTPValidationError struct {
	PublicHTTPError
	ValidationErrors []*HTTPValidationErrorDetail `json:"validationErrors,omitempty"`
}
