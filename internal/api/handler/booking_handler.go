package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/omsorgsplus/booking-api/internal/api/metrics"
	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for bookings.
type BookingHandler struct {
	service ports.BookingService
	loc     *time.Location
}

// NewBookingHandler reads wall-clock datetimes in loc.
func NewBookingHandler(service ports.BookingService, loc *time.Location) *BookingHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &BookingHandler{service: service, loc: loc}
}

// List handles GET /api/bookings.
//
// @Summary      List bookings, newest first
// @Tags         bookings
// @Produce      json
// @Param        staffId  query     string  false  "Only bookings for this staff id"
// @Success      200      {array}   domain.Booking
// @Failure      500      {object}  errorResponse
// @Router       /api/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	list, err := h.service.ListBookings(c.Request().Context(), ports.BookingFilter{
		StaffID: strings.TrimSpace(c.QueryParam("staffId")),
	})
	if err != nil {
		return mapError(err)
	}
	if list == nil {
		list = []*domain.Booking{}
	}
	return c.JSON(http.StatusOK, list)
}

// Get handles GET /api/bookings/:id.
//
// @Summary      Get a booking
// @Tags         bookings
// @Produce      json
// @Param        id   path      string  true  "Booking id (24 hex characters)"
// @Success      200  {object}  domain.Booking
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/bookings/{id} [get]
func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.service.GetBooking(c.Request().Context(), c.Param("id"))
	if err != nil {
		return mapError(err)
	}
	return c.JSON(http.StatusOK, b)
}

// Create handles POST /api/bookings. The booking is stored even when the
// operator email fails; notified reports the email outcome.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      createBookingRequest  true  "Booking"
// @Success      201   {object}  bookingCreatedResponse
// @Failure      400   {object}  failureResponse
// @Failure      500   {object}  failureResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := bind(c, &req); err != nil {
		return failure(c, err)
	}

	datetime, err := domain.ParseDatetime(req.Datetime, h.loc)
	if err != nil {
		return failure(c, err)
	}

	result, err := h.service.CreateBooking(c.Request().Context(), ports.CreateBookingInput{
		StaffID:   req.StaffID,
		Datetime:  datetime,
		Need:      req.Need,
		Address:   req.Address,
		UserEmail: req.UserEmail,
	})
	if err != nil {
		return failure(c, err)
	}

	metrics.BookingsCreatedTotal.Inc()
	metrics.ObserveNotification("booking", result.Notified)

	return c.JSON(http.StatusCreated, bookingCreatedResponse{
		Success:  true,
		Booking:  result.Booking,
		Notified: result.Notified,
	})
}

// failure writes the {success:false, error} envelope used by the booking and
// contact endpoints.
func failure(c echo.Context, err error) error {
	code, msg := statusOf(err)
	if code == http.StatusInternalServerError && msg == "" {
		msg = "something went wrong, please try again later"
	}
	return c.JSON(code, failureResponse{Success: false, Error: msg})
}
