package signature

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/util"
)

type encoder struct {
	signer Signer
}

// NewEncoder creates a new signature Encoder on top of an external signer
// capability.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewEncoder(signer Signer) (Encoder, error) {
	return &encoder{
		signer: signer,
	}, nil
}

// SignMessage runs the single-pass pipeline: digest select, sign, parse, tag,
// pack. No state is retained between invocations.
func (e *encoder) SignMessage(ctx context.Context, messageHashHex string, hasUserOpGas bool) (string, error) {
	log := util.LogFromContext(ctx)

	digest, err := decodeDigest(messageHashHex)
	if err != nil {
		return "", err
	}

	// User operations that embed a pre-verification gas value are signed over
	// the personal-message hash of the digest, not the digest itself.
	if hasUserOpGas {
		digest = accounts.TextHash(digest)
	}

	sig, err := e.signer.SignDigest(ctx, digest)
	if err != nil {
		log.Debug().Err(err).Bool("hasUserOpGas", hasUserOpGas).Msg("Signer capability failed")
		return "", account.WrapError(account.KindSigningFailed, err, "failed to sign digest")
	}

	raw, err := Parse(sig)
	if err != nil {
		return "", err
	}

	adjustedV := raw.V
	if hasUserOpGas {
		// The flag must land in the same byte; wrapping around would alias a
		// different signature type on chain, so fail instead.
		if int(raw.V)+SigTypeFlagDigest > 0xff {
			return "", account.NewError(account.KindInvalidSignature,
				fmt.Sprintf("recovery id %d cannot carry digest flag %d in one byte", raw.V, SigTypeFlagDigest))
		}
		adjustedV = raw.V + SigTypeFlagDigest
	}

	return raw.Pack(adjustedV), nil
}

// decodeDigest parses the caller-supplied message hash and enforces the
// 32-byte length the signer capability expects.
func decodeDigest(messageHashHex string) ([]byte, error) {
	digest, err := hexutil.Decode(messageHashHex)
	if err != nil {
		return nil, account.WrapError(account.KindInvalidDigest, err, "failed to decode message hash")
	}

	if len(digest) != common.HashLength {
		return nil, account.NewError(account.KindInvalidDigest,
			fmt.Sprintf("message hash must be %d bytes, got %d", common.HashLength, len(digest)))
	}

	return digest, nil
}
