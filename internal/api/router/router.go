package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github/w3kit/go-smart-account/internal/api"
	"github/w3kit/go-smart-account/internal/api/handlers"
	"github/w3kit/go-smart-account/internal/api/httperrors"
	apiMiddleware "github/w3kit/go-smart-account/internal/api/middleware"
	"github/w3kit/go-smart-account/internal/types"
	"github/w3kit/go-smart-account/internal/util"
)

// Init attaches the echo instance, route groups and all handlers to the
// server.
func Init(s *api.Server) {
	s.Echo = echo.New()
	s.Echo.HideBanner = true
	s.Echo.HidePort = true
	s.Echo.HTTPErrorHandler = errorHandler(s.Config.Echo.HideInternalServerErrorDetails)

	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.RequestID())
	s.Echo.Use(apiMiddleware.Logger())

	s.Router = &api.Router{
		Root:        s.Echo.Group(""),
		Management:  s.Echo.Group("/-"),
		APIV1Wallet: s.Echo.Group("/api/v1/wallet", apiMiddleware.Auth(s.Config.Auth.APIToken)),
	}

	s.Router.Routes = handlers.AttachAllRoutes(s)
}

// errorHandler renders all errors as the public error payload, keeping
// internal detail out of responses when configured to.
func errorHandler(hideInternalServerErrorDetails bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		log := util.LogFromContext(c.Request().Context())

		var payload interface{}
		code := http.StatusInternalServerError

		switch e := err.(type) { //nolint:errorlint // top-level error shape decides the response
		case *httperrors.HTTPValidationError:
			code = e.Code
			payload = e.PublicHTTPValidationError
		case *httperrors.HTTPError:
			code = e.Code
			payload = e.PublicHTTPError
			if e.Internal != nil {
				log.Debug().Err(e.Internal).Int("code", e.Code).Str("type", e.Type).Msg("Request failed")
			}
		case *echo.HTTPError:
			code = e.Code
			payload = types.PublicHTTPError{
				Code:  e.Code,
				Type:  types.PublicHTTPErrorTypeGeneric,
				Title: http.StatusText(e.Code),
			}
		default:
			log.Error().Err(err).Msg("Unhandled error")

			title := "Internal server error."
			if !hideInternalServerErrorDetails {
				title = err.Error()
			}
			payload = types.PublicHTTPError{
				Code:  code,
				Type:  types.PublicHTTPErrorTypeGeneric,
				Title: title,
			}
		}

		if jsonErr := c.JSON(code, payload); jsonErr != nil {
			log.Error().Err(jsonErr).Msg("Failed to write error response")
		}
	}
}
