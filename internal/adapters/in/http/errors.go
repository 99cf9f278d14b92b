package http

import (
	"errors"
	"net/http"

	"taproom/internal/core/domain/model/session"
	"taproom/internal/core/domain/services"
	"taproom/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusOf maps engine errors to HTTP statuses. Calls made in the wrong phase
// are conflicts, invalid input is 400 and anything unexpected is 500.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, session.ErrPhaseTransitionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, services.ErrCartIsEmpty), errors.Is(err, services.ErrLocationIsRequired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func errorJSON(ctx echo.Context, err error) error {
	code := statusOf(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = http.StatusText(code)
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
