package http

import (
	"errors"
	"net/http"

	"diner/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// renderFailure is the error translator: the single point that turns a
// failure from any pipeline stage into a client response. Pipeline problems
// carry their own status; typed application errors are classified through
// their sentinels; anything unexpected becomes a generic 500.
func renderFailure(c echo.Context, err error) error {
	var p *problem
	if errors.As(err, &p) {
		return c.JSON(p.status, errorEnvelope{Error: p.message})
	}

	var notFound *errs.ObjectNotFoundError
	if errors.As(err, &notFound) {
		return c.JSON(http.StatusNotFound, errorEnvelope{Error: err.Error()})
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return c.JSON(http.StatusBadRequest, errorEnvelope{Error: err.Error()})
	}

	return c.JSON(http.StatusInternalServerError, errorEnvelope{Error: "Something went wrong!"})
}
