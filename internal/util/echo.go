package util

import (
	"net/http"

	goerrors "github.com/go-openapi/errors"
	"github.com/go-openapi/swag"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github/w3kit/go-smart-account/internal/api/httperrors"
	"github/w3kit/go-smart-account/internal/types"
)

// Validatable is implemented by request payloads that carry their own
// validation.
type Validatable interface {
	Validate() error
}

// BindAndValidateBody binds the request body into v and runs its validation,
// translating failures into public HTTP errors.
func BindAndValidateBody(c echo.Context, v Validatable) error {
	if err := c.Bind(v); err != nil {
		LogFromContext(c.Request().Context()).Debug().Err(err).Msg("Failed to bind request body")
		return httperrors.ErrBadRequestMalformedBody
	}

	if err := v.Validate(); err != nil {
		var validation *goerrors.Validation
		if errors.As(err, &validation) {
			return httperrors.NewHTTPValidationError(
				http.StatusBadRequest,
				types.PublicHTTPErrorTypeGeneric,
				"Validation failed.",
				[]*types.HTTPValidationErrorDetail{
					{
						Key:   swag.String(validation.Name),
						In:    swag.String(validation.In),
						Error: swag.String(validation.Error()),
					},
				},
			)
		}

		return httperrors.NewHTTPErrorWithDetail(http.StatusBadRequest, types.PublicHTTPErrorTypeGeneric, "Validation failed.", err.Error())
	}

	return nil
}
