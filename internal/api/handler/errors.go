package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omsorgsplus/booking-api/internal/core/domain"
)

// mapError turns classified domain errors into *echo.HTTPError. Anything
// else is returned unchanged and ends up as a logged 500 in the error handler.
func mapError(err error) error {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		return echo.NewHTTPError(http.StatusBadRequest, ve.Reason)
	case errors.Is(err, domain.ErrInvalidID):
		return echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	case errors.Is(err, domain.ErrStaffNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "staff member not found")
	case errors.Is(err, domain.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "booking not found")
	case errors.Is(err, domain.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return err
}

// bind decodes and validates the body. Decoding failures are 400 with a fixed
// message; validation failures carry the field messages.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return mapError(err)
	}
	return nil
}

// statusOf reports the status mapError would produce, for handlers that
// write their own envelope.
func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(mapError(err), &he) {
		if msg, ok := he.Message.(string); ok {
			return he.Code, msg
		}
		return he.Code, http.StatusText(he.Code)
	}
	return http.StatusInternalServerError, ""
}
