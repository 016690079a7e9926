package signer

import (
	"context"
	"crypto/ecdsa"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github/w3kit/go-smart-account/internal/account/signature"
)

// ethereumRecoveryOffset converts the 0/1 recovery id produced by the raw
// secp256k1 signer into the canonical 27/28 form verifiers expect.
const ethereumRecoveryOffset = 27

type localSigner struct {
	privateKey *ecdsa.PrivateKey
	address    common.Address
}

// NewLocalSigner creates a Signer backed by an existing hex-encoded secp256k1
// private key. It never generates or persists keys.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewLocalSigner(privateKeyHex string) (signature.Signer, error) {
	key, err := crypto.HexToECDSA(privateKeyHex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse signer private key")
	}

	return &localSigner{
		privateKey: key,
		address:    crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// Address returns the owner address of the signing key.
func (s *localSigner) Address() common.Address {
	return s.address
}

// SignDigest signs a 32-byte digest and returns r || s || v with canonical
// v in {27, 28}. Safe for concurrent use: the key is immutable after
// construction.
func (s *localSigner) SignDigest(_ context.Context, digest []byte) ([]byte, error) {
	if len(digest) != common.HashLength {
		return nil, errors.Errorf("digest must be %d bytes, got %d", common.HashLength, len(digest))
	}

	sig, err := crypto.Sign(digest, s.privateKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to sign digest")
	}

	sig[crypto.RecoveryIDOffset] += ethereumRecoveryOffset

	return sig, nil
}
