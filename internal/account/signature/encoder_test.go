package signature_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/account/signature"
)

// fakeSigner returns a fixed signature and records the digest it was asked to
// sign.
type fakeSigner struct {
	sig        []byte
	err        error
	lastDigest []byte
	calls      int
}

func (f *fakeSigner) SignDigest(_ context.Context, digest []byte) ([]byte, error) {
	f.calls++
	f.lastDigest = append([]byte(nil), digest...)
	if f.err != nil {
		return nil, f.err
	}

	return append([]byte(nil), f.sig...), nil
}

// testVectorSignature is r = 0x00..01, s = 0x00..02, v = 27.
func testVectorSignature() []byte {
	sig := make([]byte, signature.SignatureLength)
	sig[31] = 0x01
	sig[63] = 0x02
	sig[64] = 27

	return sig
}

const testMessageHash = "0x5d5cbb368a1e6b056a24e5f0b04030f8e1a3a08eeec3f099f55a759e9b1e2e6a"

func TestSignMessagePlainDigest(t *testing.T) {
	signer := &fakeSigner{sig: testVectorSignature()}
	encoder, err := signature.NewEncoder(signer)
	require.NoError(t, err)

	packed, err := encoder.SignMessage(t.Context(), testMessageHash, false)
	require.NoError(t, err)

	// 0x + r + s + v, exactly 130 hex characters after the prefix
	expected := "0x" +
		strings.Repeat("0", 62) + "01" +
		strings.Repeat("0", 62) + "02" +
		"1b"
	assert.Equal(t, expected, packed)
	assert.Len(t, packed, 132)

	// the raw digest is signed as-is
	rawDigest, err := hexutil.Decode(testMessageHash)
	require.NoError(t, err)
	assert.Equal(t, rawDigest, signer.lastDigest)
}

func TestSignMessageUserOpGas(t *testing.T) {
	signer := &fakeSigner{sig: testVectorSignature()}
	encoder, err := signature.NewEncoder(signer)
	require.NoError(t, err)

	packed, err := encoder.SignMessage(t.Context(), testMessageHash, true)
	require.NoError(t, err)

	// last byte carries the digest-mode flag
	expectedTail := fmt.Sprintf("%02x", 27+signature.SigTypeFlagDigest)
	assert.Equal(t, expectedTail, packed[len(packed)-2:])

	// everything but the tail is unchanged
	expectedBody := "0x" +
		strings.Repeat("0", 62) + "01" +
		strings.Repeat("0", 62) + "02"
	assert.Equal(t, expectedBody, packed[:len(packed)-2])

	// the signed digest is the personal-message hash, not the raw input
	rawDigest, err := hexutil.Decode(testMessageHash)
	require.NoError(t, err)
	assert.NotEqual(t, rawDigest, signer.lastDigest)
	assert.Equal(t, accounts.TextHash(rawDigest), signer.lastDigest)
}

func TestSignMessageIdempotent(t *testing.T) {
	signer := &fakeSigner{sig: testVectorSignature()}
	encoder, err := signature.NewEncoder(signer)
	require.NoError(t, err)

	first, err := encoder.SignMessage(t.Context(), testMessageHash, true)
	require.NoError(t, err)
	second, err := encoder.SignMessage(t.Context(), testMessageHash, true)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, signer.calls)
}

func TestSignMessageSignerFailure(t *testing.T) {
	signer := &fakeSigner{err: errors.New("device locked")}
	encoder, err := signature.NewEncoder(signer)
	require.NoError(t, err)

	_, err = encoder.SignMessage(t.Context(), testMessageHash, false)
	require.Error(t, err)
	assert.Equal(t, account.KindSigningFailed, account.KindOf(err))
}

func TestSignMessageMalformedSignature(t *testing.T) {
	tests := []struct {
		name string
		sig  []byte
	}{
		{"too short", make([]byte, 64)},
		{"too long", make([]byte, 66)},
		{"empty", []byte{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoder, err := signature.NewEncoder(&fakeSigner{sig: tt.sig})
			require.NoError(t, err)

			_, err = encoder.SignMessage(t.Context(), testMessageHash, false)
			require.Error(t, err)
			assert.Equal(t, account.KindInvalidSignature, account.KindOf(err))
		})
	}
}

func TestSignMessageMalformedDigest(t *testing.T) {
	encoder, err := signature.NewEncoder(&fakeSigner{sig: testVectorSignature()})
	require.NoError(t, err)

	tests := []struct {
		name string
		hash string
	}{
		{"missing prefix", strings.Repeat("ab", 32)},
		{"odd length", "0x" + strings.Repeat("a", 63)},
		{"not 32 bytes", "0x" + strings.Repeat("ab", 31)},
		{"not hex", "0x" + strings.Repeat("zz", 32)},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := encoder.SignMessage(t.Context(), tt.hash, false)
			require.Error(t, err)
			assert.Equal(t, account.KindInvalidDigest, account.KindOf(err))
		})
	}
}

func TestSignMessageFlagOverflow(t *testing.T) {
	sig := testVectorSignature()
	sig[64] = 0xff
	encoder, err := signature.NewEncoder(&fakeSigner{sig: sig})
	require.NoError(t, err)

	// plain digest mode passes v through untouched
	packed, err := encoder.SignMessage(t.Context(), testMessageHash, false)
	require.NoError(t, err)
	assert.Equal(t, "ff", packed[len(packed)-2:])

	// digest mode must not wrap around
	_, err = encoder.SignMessage(t.Context(), testMessageHash, true)
	require.Error(t, err)
	assert.Equal(t, account.KindInvalidSignature, account.KindOf(err))
}
