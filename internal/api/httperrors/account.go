package httperrors

import (
	"net/http"

	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/types"
)

// FromAccountError maps a typed account error to its public HTTP error. The
// stage that failed stays visible to the caller; internal detail does not.
func FromAccountError(err error) *HTTPError {
	var httpError *HTTPError

	switch account.KindOf(err) {
	case account.KindInvalidAddress:
		httpError = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidAddress, "Owner address is not a valid 20-byte hex address.")
	case account.KindInvalidDigest:
		httpError = NewHTTPError(http.StatusBadRequest, types.PublicHTTPErrorTypeInvalidDigest, "Message hash is not valid 32-byte hex.")
	case account.KindInvalidSignature:
		httpError = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeInvalidSignature, "Signer returned a malformed signature.")
	case account.KindSigningFailed:
		httpError = NewHTTPError(http.StatusServiceUnavailable, types.PublicHTTPErrorTypeSigningFailed, "Signing capability is unavailable or rejected the request.")
	case account.KindTransportFailure:
		httpError = NewHTTPError(http.StatusBadGateway, types.PublicHTTPErrorTypeTransportFailure, "Wallet provider request failed.")
	default:
		httpError = NewHTTPError(http.StatusInternalServerError, types.PublicHTTPErrorTypeGeneric, "Internal server error.")
	}

	httpError.Internal = err

	return httpError
}
