package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// Auth guards a route group with a static bearer token. An empty configured
// token disables the check (local development).
func Auth(apiToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if apiToken == "" {
				return next(c)
			}

			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if !strings.HasPrefix(header, bearerPrefix) {
				return echo.ErrUnauthorized
			}

			token := strings.TrimPrefix(header, bearerPrefix)
			if subtle.ConstantTimeCompare([]byte(token), []byte(apiToken)) != 1 {
				return echo.ErrUnauthorized
			}

			return next(c)
		}
	}
}
