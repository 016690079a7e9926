package derive

import (
	"context"

	"github/w3kit/go-smart-account/internal/account"
)

// Transport is the address-resolution capability. The wire format belongs to
// the transport; this package only guarantees the shape and field values of
// the request it hands over. Implementations own retries and timeouts.
type Transport interface {
	ResolveAddress(ctx context.Context, req *account.AddressDerivationRequest) (*account.ModularWallet, error)
}

// Service builds canonical address-derivation requests for wallets secured by
// exactly one local key. Multi-owner and WebAuthn-owner configurations are a
// distinct path and must be routed elsewhere by the caller.
type Service interface {
	// DeriveWalletAddress resolves the wallet descriptor for a single-owner
	// weighted-multisig configuration. name is an optional display label.
	DeriveWalletAddress(ctx context.Context, ownerAddress string, scaCore string, name string) (*account.ModularWallet, error)
}
