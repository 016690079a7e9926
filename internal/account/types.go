package account

import "time"

const (
	// OwnerWeight is the weight assigned to the single local owner of a
	// derived wallet. Part of the wire contract with the verifying contract,
	// version-gated by the scaCore format version.
	OwnerWeight = 1

	// ThresholdWeight is the signing threshold of a derived wallet. With a
	// single owner of OwnerWeight, any owner signature clears it.
	ThresholdWeight = 1
)

// WeightedOwner is a single entry in a weighted-multisig owner set.
type WeightedOwner struct {
	Address string `json:"address"`
	Weight  int    `json:"weight"`
}

// WebauthnOwner is a passkey-backed owner entry. The local-owner path never
// populates these; the field exists so the request shape matches the wire
// contract of the provider API.
type WebauthnOwner struct {
	PublicKeyX string `json:"publicKeyX"`
	PublicKeyY string `json:"publicKeyY"`
	Weight     int    `json:"weight"`
}

// WeightedMultiSig describes the signature-verification policy of a modular
// wallet: an operation is valid once the signing owners' weights sum to at
// least ThresholdWeight.
type WeightedMultiSig struct {
	Owners          []WeightedOwner `json:"owners,omitempty"`
	WebauthnOwners  []WebauthnOwner `json:"webauthnOwners,omitempty"`
	ThresholdWeight int             `json:"thresholdWeight"`
}

// OwnershipConfiguration is the initial ownership policy a wallet is deployed
// with. OwnershipContractAddress overrides the default ownership contract and
// is never set on the local-owner path.
type OwnershipConfiguration struct {
	OwnershipContractAddress *string          `json:"ownershipContractAddress,omitempty"`
	WeightedMultiSig         WeightedMultiSig `json:"weightedMultiSig"`
}

// RequestMetadata carries optional free-text labels for the wallet.
type RequestMetadata struct {
	Name string `json:"name,omitempty"`
}

// AddressDerivationRequest asks the provider to derive the counterfactual
// address of a wallet with the given ownership configuration. ScaCore is the
// wallet format version understood by the provider; InitCode is never set on
// the local-owner path.
type AddressDerivationRequest struct {
	OwnershipConfiguration OwnershipConfiguration `json:"ownershipConfiguration"`
	ScaCore                string                 `json:"scaCore"`
	InitCode               string                 `json:"initCode,omitempty"`
	Metadata               *RequestMetadata       `json:"metadata,omitempty"`
}

// ModularWallet is the wallet descriptor returned by the provider. Beyond the
// address it is pass-through: deployment state and version metadata are owned
// by the provider and returned to the caller unmodified.
type ModularWallet struct {
	ID         string    `json:"id,omitempty"`
	Address    string    `json:"address"`
	Blockchain string    `json:"blockchain,omitempty"`
	ScaCore    string    `json:"scaCore,omitempty"`
	InitCode   string    `json:"initCode,omitempty"`
	Name       string    `json:"name,omitempty"`
	State      string    `json:"state,omitempty"`
	CreateDate time.Time `json:"createDate,omitempty"`
	UpdateDate time.Time `json:"updateDate,omitempty"`
}
