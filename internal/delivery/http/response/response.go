// Package response renders the unified JSON envelope.
package response

import (
	"net/http"

	deliverycontext "elevenstore/internal/delivery/context"
	domainerrors "elevenstore/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

func meta(c echo.Context) *domainerrors.MetaInfo {
	return &domainerrors.MetaInfo{
		RequestID: deliverycontext.GetRequestID(c),
		SessionID: deliverycontext.GetSessionID(c.Request().Context()),
	}
}

// Success writes data under the success envelope
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: meta(c),
	})
}

// Error writes a business error under the error envelope
func Error(c echo.Context, statusCode int, code, message string, details any) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: meta(c),
	})
}

// AppError writes err with its own status and code
func AppError(c echo.Context, err domainerrors.AppError) error {
	var details any
	if d := err.Details(); d != "" {
		details = d
	}

	return Error(c, err.HTTPCode(), err.ErrorCode(), err.Message(), details)
}
