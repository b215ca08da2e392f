package utils

import (
	"github.com/labstack/echo/v4"

	"github.com/tyrehub/tyrehub/internal/pkg/apperrors"
)

// DomainErrorResponse maps an application error to its HTTP status and
// sends the standard error envelope.
func DomainErrorResponse(c echo.Context, err error) error {
	status := apperrors.HTTPStatus(err)
	return ErrorResponseHandler(c, status, err.Error())
}
