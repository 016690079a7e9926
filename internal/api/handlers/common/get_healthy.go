package common

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github/w3kit/go-smart-account/internal/api"
)

func GetHealthyRoute(s *api.Server) *echo.Route {
	return s.Router.Management.GET("/healthy", getHealthyHandler())
}

// getHealthyHandler is the liveness probe: the process is up and serving.
func getHealthyHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy.")
	}
}
