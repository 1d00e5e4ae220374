package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/omsorgsplus/booking-api/internal/api/metrics"
	"github.com/omsorgsplus/booking-api/internal/core/domain"
	"github.com/omsorgsplus/booking-api/internal/core/ports"
)

type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Status handles GET /api/contact.
//
// @Summary      Contact endpoint status
// @Tags         contact
// @Produce      json
// @Success      200  {object}  contactResponse
// @Router       /api/contact [get]
func (h *ContactHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, contactResponse{Success: true, Message: "contact router active"})
}

// Submit handles POST /api/contact. Nothing is stored; the response reflects
// whether the email reached the relay.
//
// @Summary      Send a contact-form question
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Question"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  failureResponse
// @Failure      500   {object}  failureResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req contactRequest
	if err := bind(c, &req); err != nil {
		return failure(c, err)
	}

	err := h.service.Submit(c.Request().Context(), domain.ContactMessage{
		Name:     req.Name,
		Email:    req.Email,
		Question: req.Question,
	})
	if errors.Is(err, domain.ErrEmailDispatch) {
		metrics.ObserveNotification("contact", false)
		return c.JSON(http.StatusInternalServerError, failureResponse{
			Success: false,
			Error:   "could not send email, please try again later",
		})
	}
	if err != nil {
		return failure(c, err)
	}

	metrics.ObserveNotification("contact", true)
	return c.JSON(http.StatusCreated, contactResponse{Success: true, Message: "email sent"})
}
