package derive

import (
	"context"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github/w3kit/go-smart-account/internal/account"
	"github/w3kit/go-smart-account/internal/util"
)

type service struct {
	transport Transport
}

// NewService creates a new derive Service on top of an address-resolution
// transport.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(transport Transport) (Service, error) {
	return &service{
		transport: transport,
	}, nil
}

// DeriveWalletAddress validates the owner address, builds the single-owner
// request and delegates it to the transport. The transport result is returned
// verbatim; transport errors propagate unchanged and are not retried here.
func (s *service) DeriveWalletAddress(ctx context.Context, ownerAddress string, scaCore string, name string) (*account.ModularWallet, error) {
	log := util.LogFromContext(ctx)

	// Validation must happen before the request is sent; the transport is not
	// relied on to reject malformed addresses.
	if !common.IsHexAddress(ownerAddress) {
		return nil, account.NewError(account.KindInvalidAddress,
			fmt.Sprintf("owner address %q is not a 20-byte hex address", ownerAddress))
	}

	req := &account.AddressDerivationRequest{
		OwnershipConfiguration: account.OwnershipConfiguration{
			WeightedMultiSig: account.WeightedMultiSig{
				Owners: []account.WeightedOwner{
					{
						Address: common.HexToAddress(ownerAddress).Hex(),
						Weight:  account.OwnerWeight,
					},
				},
				ThresholdWeight: account.ThresholdWeight,
			},
		},
		ScaCore: scaCore,
	}

	if name != "" {
		req.Metadata = &account.RequestMetadata{Name: name}
	}

	wallet, err := s.transport.ResolveAddress(ctx, req)
	if err != nil {
		log.Debug().Err(err).Str("scaCore", scaCore).Msg("Address resolution failed")
		return nil, err
	}

	return wallet, nil
}
