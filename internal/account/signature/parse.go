package signature

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github/w3kit/go-smart-account/internal/account"
)

// RawSignature is a recoverable signature split into its components.
// R and S are big-endian, matching the signature's natural representation.
type RawSignature struct {
	R [32]byte
	S [32]byte
	V byte
}

// Parse splits a 65-byte signature into r, s, v. Anything but exactly 65
// bytes fails with an invalid-signature error; there is no truncation or
// padding.
func Parse(sig []byte) (*RawSignature, error) {
	if len(sig) != SignatureLength {
		return nil, account.NewError(account.KindInvalidSignature,
			fmt.Sprintf("signature must be %d bytes, got %d", SignatureLength, len(sig)))
	}

	var raw RawSignature
	copy(raw.R[:], sig[0:32])
	copy(raw.S[:], sig[32:64])
	raw.V = sig[64]

	return &raw, nil
}

// ParseHex decodes a 0x-prefixed hex signature string and splits it.
func ParseHex(sigHex string) (*RawSignature, error) {
	sig, err := hexutil.Decode(sigHex)
	if err != nil {
		return nil, account.WrapError(account.KindInvalidSignature, err, "failed to decode signature hex")
	}

	return Parse(sig)
}

// Bytes re-assembles the signature as r || s || v without any tagging.
func (raw *RawSignature) Bytes() []byte {
	out := make([]byte, 0, SignatureLength)
	out = append(out, raw.R[:]...)
	out = append(out, raw.S[:]...)
	out = append(out, raw.V)

	return out
}

// Pack concatenates r || s || adjustedV and hex-encodes with a 0x prefix.
// The result is always 2+130 characters of lowercase hex, the exact layout
// the on-chain verifier consumes.
func (raw *RawSignature) Pack(adjustedV byte) string {
	packed := make([]byte, 0, SignatureLength)
	packed = append(packed, raw.R[:]...)
	packed = append(packed, raw.S[:]...)
	packed = append(packed, adjustedV)

	return hexutil.Encode(packed)
}
