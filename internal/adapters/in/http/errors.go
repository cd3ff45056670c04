package http

import (
	"errors"
	"net/http"

	"distribution/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps application errors onto HTTP status codes and renders
// the shared Error body. Unrecognized errors become a 500 without leaking
// the internal message.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrInsufficientStock):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrForbidden):
		code = http.StatusForbidden
		message = err.Error()
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
		message = err.Error()
	}

	return ctx.JSON(code, Error{Code: code, Message: message})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
