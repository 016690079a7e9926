package signature_test

import (
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/account/signature"
)

func TestParseRoundTrip(t *testing.T) {
	sig := make([]byte, signature.SignatureLength)
	for i := range sig {
		sig[i] = byte(i + 1)
	}

	raw, err := signature.Parse(sig)
	require.NoError(t, err)

	assert.Equal(t, sig[0:32], raw.R[:])
	assert.Equal(t, sig[32:64], raw.S[:])
	assert.Equal(t, sig[64], raw.V)
	assert.Equal(t, sig, raw.Bytes())

	// packing with the untagged v reproduces the original signature
	assert.Equal(t, hexutil.Encode(sig), raw.Pack(raw.V))
}

func TestParseHexRoundTrip(t *testing.T) {
	sigHex := "0x" + strings.Repeat("11", 32) + strings.Repeat("22", 32) + "1c"

	raw, err := signature.ParseHex(sigHex)
	require.NoError(t, err)
	assert.Equal(t, byte(0x1c), raw.V)
	assert.Equal(t, sigHex, raw.Pack(raw.V))
}

func TestParseHexMalformed(t *testing.T) {
	tests := []struct {
		name   string
		sigHex string
	}{
		{"odd hex length", "0x" + strings.Repeat("1", 129)},
		{"too short", "0x" + strings.Repeat("11", 64)},
		{"too long", "0x" + strings.Repeat("11", 66)},
		{"no prefix", strings.Repeat("11", 65)},
		{"not hex", "0x" + strings.Repeat("gg", 65)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := signature.ParseHex(tt.sigHex)
			require.Error(t, err)
			assert.Equal(t, account.KindInvalidSignature, account.KindOf(err))
		})
	}
}

func TestPackAdjustedV(t *testing.T) {
	raw := &signature.RawSignature{V: 27}
	raw.R[31] = 0x01
	raw.S[31] = 0x02

	packed := raw.Pack(raw.V + signature.SigTypeFlagDigest)

	require.Len(t, packed, 132)
	assert.Equal(t, strings.ToLower(packed), packed)
	assert.Equal(t, "3b", packed[len(packed)-2:])
}
