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

func PostSignDigestRoute(s *api.Server) *echo.Route {
	return s.Router.APIV1Wallet.POST("/sign-digest", postSignDigestHandler(s))
}

func postSignDigestHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		log := util.LogFromContext(ctx)

		var body walletTypes.PostSignDigestPayload
		if err := util.BindAndValidateBody(c, &body); err != nil {
			return err
		}

		packed, err := s.Encoder.SignMessage(ctx, swag.StringValue(body.MessageHash), body.HasUserOpGas)
		if err != nil {
			log.Debug().Err(err).Bool("hasUserOpGas", body.HasUserOpGas).Msg("Failed to sign digest")
			return httperrors.FromAccountError(err)
		}

		return c.JSON(http.StatusOK, walletTypes.PostSignDigestResponse{Signature: packed})
	}
}
