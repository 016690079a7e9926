package handlers

import (
	"github.com/labstack/echo/v4"
	"github/w3kit/go-smart-account/internal/api"
	"github/w3kit/go-smart-account/internal/api/handlers/common"
	"github/w3kit/go-smart-account/internal/api/handlers/wallet"
)

// AttachAllRoutes attaches all handlers to their route groups.
func AttachAllRoutes(s *api.Server) []*echo.Route {
	return []*echo.Route{
		common.GetHealthyRoute(s),
		common.GetReadyRoute(s),
		common.GetMetricsRoute(s),
		wallet.PostDeriveAddressRoute(s),
		wallet.PostSignDigestRoute(s),
	}
}
