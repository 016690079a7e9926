package derive_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/account/derive"
)

type fakeTransport struct {
	wallet  *account.ModularWallet
	err     error
	lastReq *account.AddressDerivationRequest
	calls   int
}

func (f *fakeTransport) ResolveAddress(_ context.Context, req *account.AddressDerivationRequest) (*account.ModularWallet, error) {
	f.calls++
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}

	return f.wallet, nil
}

const (
	testOwnerAddress = "0x9b1f7F645351AF3631a656421eD2e40f2802E6c0"
	testScaCore      = "circle_6900_v1"
)

func TestDeriveWalletAddress(t *testing.T) {
	transport := &fakeTransport{wallet: &account.ModularWallet{Address: "0x000000000000000000000000000000000000dEaD"}}
	service, err := derive.NewService(transport)
	require.NoError(t, err)

	wallet, err := service.DeriveWalletAddress(t.Context(), testOwnerAddress, testScaCore, "savings")
	require.NoError(t, err)
	require.NotNil(t, wallet)
	assert.Equal(t, "0x000000000000000000000000000000000000dEaD", wallet.Address)

	req := transport.lastReq
	require.NotNil(t, req)
	assert.Equal(t, testScaCore, req.ScaCore)
	assert.Empty(t, req.InitCode)
	assert.Nil(t, req.OwnershipConfiguration.OwnershipContractAddress)
	assert.Empty(t, req.OwnershipConfiguration.WeightedMultiSig.WebauthnOwners)

	require.Len(t, req.OwnershipConfiguration.WeightedMultiSig.Owners, 1)
	owner := req.OwnershipConfiguration.WeightedMultiSig.Owners[0]
	assert.Equal(t, common.HexToAddress(testOwnerAddress).Hex(), owner.Address)
	assert.Equal(t, account.OwnerWeight, owner.Weight)
	assert.Equal(t, account.ThresholdWeight, req.OwnershipConfiguration.WeightedMultiSig.ThresholdWeight)

	require.NotNil(t, req.Metadata)
	assert.Equal(t, "savings", req.Metadata.Name)
}

func TestDeriveWalletAddressCanonicalizesOwner(t *testing.T) {
	transport := &fakeTransport{wallet: &account.ModularWallet{Address: "0x1"}}
	service, err := derive.NewService(transport)
	require.NoError(t, err)

	// lowercase without prefix is accepted and canonicalized
	_, err = service.DeriveWalletAddress(t.Context(), "9b1f7f645351af3631a656421ed2e40f2802e6c0", testScaCore, "")
	require.NoError(t, err)

	owner := transport.lastReq.OwnershipConfiguration.WeightedMultiSig.Owners[0]
	assert.Equal(t, common.HexToAddress(testOwnerAddress).Hex(), owner.Address)
	assert.Nil(t, transport.lastReq.Metadata)
}

func TestDeriveWalletAddressRequestShape(t *testing.T) {
	transport := &fakeTransport{wallet: &account.ModularWallet{Address: "0x1"}}
	service, err := derive.NewService(transport)
	require.NoError(t, err)

	_, err = service.DeriveWalletAddress(t.Context(), testOwnerAddress, testScaCore, "")
	require.NoError(t, err)

	// absent-by-contract fields must not serialize at all
	raw, err := json.Marshal(transport.lastReq)
	require.NoError(t, err)

	var asMap map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &asMap))
	assert.NotContains(t, asMap, "initCode")
	assert.NotContains(t, asMap, "metadata")

	cfg, ok := asMap["ownershipConfiguration"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, cfg, "ownershipContractAddress")

	multisig, ok := cfg["weightedMultiSig"].(map[string]interface{})
	require.True(t, ok)
	assert.NotContains(t, multisig, "webauthnOwners")
	assert.Contains(t, multisig, "owners")
	assert.Contains(t, multisig, "thresholdWeight")
}

func TestDeriveWalletAddressInvalidOwner(t *testing.T) {
	transport := &fakeTransport{}
	service, err := derive.NewService(transport)
	require.NoError(t, err)

	tests := []struct {
		name         string
		ownerAddress string
	}{
		{"empty", ""},
		{"too short", "0x9b1f7f"},
		{"too long", testOwnerAddress + "00"},
		{"not hex", "0x9b1f7f645351af3631a656421ed2e40f2802e6zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.DeriveWalletAddress(t.Context(), tt.ownerAddress, testScaCore, "")
			require.Error(t, err)
			assert.Equal(t, account.KindInvalidAddress, account.KindOf(err))
		})
	}

	// validation failures must never reach the transport
	assert.Equal(t, 0, transport.calls)
}

func TestDeriveWalletAddressTransportError(t *testing.T) {
	transportErr := account.WrapError(account.KindTransportFailure, errors.New("connection refused"), "failed to resolve wallet address")
	service, err := derive.NewService(&fakeTransport{err: transportErr})
	require.NoError(t, err)

	_, wrappedErr := service.DeriveWalletAddress(t.Context(), testOwnerAddress, testScaCore, "")
	require.Error(t, wrappedErr)

	// transport errors propagate unchanged
	assert.Equal(t, transportErr, wrappedErr)
}
