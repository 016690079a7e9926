package wallet

import (
	goerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/swag"
)

// PostDeriveAddressPayload is the request body for deriving a wallet address.
type PostDeriveAddressPayload struct {
	// Owner address, 20-byte hex, optionally 0x-prefixed.
	// Required: true
	OwnerAddress *string `json:"ownerAddress"`

	// Wallet format version; the service default is used when empty.
	ScaCore string `json:"scaCore,omitempty"`

	// Optional display name for the wallet.
	Name string `json:"name,omitempty"`
}

// Validate validates this payload.
func (m *PostDeriveAddressPayload) Validate() error {
	if err := validateRequiredString("ownerAddress", "body", m.OwnerAddress); err != nil {
		return err
	}

	return nil
}

// PostSignDigestPayload is the request body for producing a packed signature.
type PostSignDigestPayload struct {
	// Message hash to sign, 0x-prefixed 32-byte hex.
	// Required: true
	MessageHash *string `json:"messageHash"`

	// Whether the digest belongs to a user operation carrying a
	// pre-verification gas value.
	HasUserOpGas bool `json:"hasUserOpGas,omitempty"`
}

// Validate validates this payload.
func (m *PostSignDigestPayload) Validate() error {
	if err := validateRequiredString("messageHash", "body", m.MessageHash); err != nil {
		return err
	}

	return nil
}

// PostSignDigestResponse carries the packed contract-ready signature.
type PostSignDigestResponse struct {
	Signature string `json:"signature"`
}

func validateRequiredString(name, in string, value *string) error {
	if swag.StringValue(value) == "" {
		return goerrors.Required(name, in, value)
	}

	return nil
}
