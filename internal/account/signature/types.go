package signature

import "context"

const (
	// SigTypeFlagDigest is the signature-type discriminator offset added to v
	// for digest-mode signatures. The verifying contract uses the adjusted v
	// to select the hashing convention; an incorrect flag makes it reject a
	// structurally valid signature.
	SigTypeFlagDigest = 32

	// SignatureLength is r (32) + s (32) + v (1).
	SignatureLength = 65
)

// Signer is the external signing capability. It signs a 32-byte digest and
// returns a 65-byte recoverable signature r || s || v. Implementations must
// be safe for concurrent use or serialize internally.
type Signer interface {
	SignDigest(ctx context.Context, digest []byte) ([]byte, error)
}

// Encoder produces contract-ready packed signatures from message digests.
type Encoder interface {
	// SignMessage signs the given 32-byte message hash and returns the packed
	// signature the on-chain verifier expects. If hasUserOpGas is true the
	// digest is first re-hashed with the personal-message scheme and the
	// resulting v is tagged with SigTypeFlagDigest.
	SignMessage(ctx context.Context, messageHashHex string, hasUserOpGas bool) (string, error)
}
