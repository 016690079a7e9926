package modular

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/w3kit/go-smart-account/internal/account"
	httpClient "github/w3kit/go-smart-account/internal/client/http"
)

// walletResponse is the provider's envelope around a wallet descriptor.
type walletResponse struct {
	Data struct {
		Wallet account.ModularWallet `json:"wallet"`
	} `json:"data"`
}

// Client talks to the modular wallet provider's REST API. It owns the wire
// format; callers only see account types.
type Client struct {
	apiKey     string
	httpClient *httpClient.Client
}

// NewClient creates a provider API client.
func NewClient(apiKey string, options ...httpClient.ClientOption) *Client {
	return &Client{
		apiKey:     apiKey,
		httpClient: httpClient.NewClient(options...),
	}
}

// ResolveAddress submits an address-derivation request and returns the
// deployed or counterfactual wallet descriptor. Failures are reported as
// transport errors; the request body is exactly the canonical request built
// by the derive service.
func (c *Client) ResolveAddress(ctx context.Context, req *account.AddressDerivationRequest) (*account.ModularWallet, error) {
	resp, err := c.httpClient.Post(
		ctx,
		"wallets/address",
		req,
		httpClient.WithBearerToken(c.apiKey),
		httpClient.WithHeader("X-Idempotency-Key", uuid.NewString()),
	)
	if err != nil {
		if resp != nil && resp.Body != nil {
			resp.Body.Close()
		}
		return nil, account.WrapError(account.KindTransportFailure, err, "failed to resolve wallet address")
	}

	var response walletResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &response); err != nil {
		return nil, account.WrapError(account.KindTransportFailure, err, "failed to process wallet address response")
	}

	if response.Data.Wallet.Address == "" {
		return nil, account.WrapError(account.KindTransportFailure, errors.New("response carries no wallet address"), "malformed wallet address response")
	}

	return &response.Data.Wallet, nil
}
