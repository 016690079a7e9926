package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github/w3kit/go-smart-account/internal/util"
)

// Logger attaches a request-scoped zerolog logger (tagged with the request
// id) to the request context and logs request completion.
func Logger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := c.Response().Header().Get(echo.HeaderXRequestID)
			l := log.With().
				Str("request_id", requestID).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Logger()

			ctx := util.WithRequestID(util.WithLogger(req.Context(), l), requestID)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			l.Debug().
				Int("status", c.Response().Status).
				Dur("duration", time.Since(start)).
				Msg("Request handled")

			return err
		}
	}
}
