package account

import (
	"github.com/pkg/errors"
)

// Kind classifies which stage of an account operation failed, so callers can
// distinguish "my key could not sign" from "the network is unreachable" from
// "the signature format was unexpected".
type Kind string

const (
	// KindInvalidAddress means the owner address could not be interpreted as
	// a 20-byte value. Raised before any request is constructed.
	KindInvalidAddress Kind = "invalid_address"

	// KindInvalidDigest means the caller-supplied message hash was not
	// well-formed 32-byte hex.
	KindInvalidDigest Kind = "invalid_digest"

	// KindInvalidSignature means the signer returned something that does not
	// decode into r (32 bytes), s (32 bytes), v (1 byte).
	KindInvalidSignature Kind = "invalid_signature"

	// KindSigningFailed means the external signer capability errored or
	// rejected the request. Never retried here.
	KindSigningFailed Kind = "signing_failed"

	// KindTransportFailure is an opaque passthrough of the transport's own
	// error.
	KindTransportFailure Kind = "transport_failure"
)

// Error is a typed account error. The Kind is stable API; the wrapped cause
// is diagnostic only.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a typed account error from a message.
func NewError(kind Kind, msg string) error {
	return &Error{Kind: kind, Err: errors.New(msg)}
}

// WrapError wraps a cause into a typed account error.
func WrapError(kind Kind, err error, msg string) error {
	return &Error{Kind: kind, Err: errors.Wrap(err, msg)}
}

// KindOf extracts the Kind from an error chain, or "" if the error carries
// no account kind.
func KindOf(err error) Kind {
	var accErr *Error
	if errors.As(err, &accErr) {
		return accErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given Kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
