package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/w3kit/go-smart-account/internal/api"
)

// statusNotReady follows the Cloudflare convention of 521 for "web server is
// down" style readiness failures.
const statusNotReady = 521

func GetReadyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/ready", getReadyHandler(s))
}

func getReadyHandler(s *api.Server) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.Ready() {
			return c.String(statusNotReady, "Not ready.")
		}

		return c.String(http.StatusOK, "Ready.")
	}
}
