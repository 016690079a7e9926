package wallet

import (
	"net/http"

	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github/w3kit/go-smart-account/internal/api"
	"github/w3kit/go-smart-account/internal/api/httperrors"
	walletTypes "github/w3kit/go-smart-account/internal/types/wallet"
	"github/w3kit/go-smart-account/internal/util"
)

func PostDeriveAddressRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/derive-address", postDeriveAddressHandler(s))
}

func postDeriveAddressHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body walletTypes.PostDeriveAddressPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		scaCore := body.ScaCore
		if scaCore == "" {
			scaCore = s.Config.Wallet.DefaultScaCore
		}

		wallet, err := s.Derive.DeriveWalletAddress(ctx, swag.StringValue(body.OwnerAddress), scaCore, body.Name)
		if err != nil {
			log.Debug().Err(err).Msg("Failed to derive wallet address")
			return httperrors.FromAccountError(err)
		}

		return c.JSON(http.StatusOK, wallet)
	}
}
