package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shinelaptops/storefront/internal/catalog"
	"github.com/shinelaptops/storefront/internal/session"
	"github.com/shinelaptops/storefront/internal/wizard"
)

const bookingWizard = "booking"

// OpenBookingRequest is the body of POST /api/booking/open
type OpenBookingRequest struct {
	ServiceID string `json:"serviceId"`
}

// ContinueBookingRequest is the optional body of POST /api/booking/continue.
// Details are applied before advancing when the flow is in the details step.
type ContinueBookingRequest struct {
	Details *wizard.BookingDetails `json:"details,omitempty"`
}

// BookingResponse is the booking state with the selected service resolved
type BookingResponse struct {
	wizard.BookingState
	Service   *catalog.Service `json:"service,omitempty"`
	Completed bool             `json:"completed"`
}

func (h *Handler) bookingResponse(st wizard.BookingState, completed bool) BookingResponse {
	resp := BookingResponse{BookingState: st, Completed: completed}
	if st.ServiceID != "" {
		if svc, err := h.store.Service(st.ServiceID); err == nil {
			resp.Service = &svc
		}
	}
	return resp
}

// bookingStep runs fn on the session booking and records the transition.
// finishes marks a step that completes the booking when it leaves the
// confirmation step; dismissing the modal does not.
func (h *Handler) bookingStep(c *gin.Context, finishes bool, fn func(b *wizard.Booking) error) {
	var (
		before, after wizard.Step
		state         wizard.BookingState
	)
	err := h.withSession(c, func(st *session.State) error {
		before = st.Booking.Step()
		err := fn(st.Booking)
		after = st.Booking.Step()
		state = st.Booking.State()
		return err
	})

	h.metrics.RecordWizardTransition(bookingWizard, before.String(), after.String())
	if err != nil {
		var verr wizard.ValidationError
		if errors.As(err, &verr) {
			h.metrics.RecordValidationFailure(bookingWizard)
		}
		h.respondError(c, err)
		return
	}

	completed := finishes && before == wizard.StepConfirmed && after == wizard.StepClosed
	if completed {
		h.logger.Info().Str("session", c.Writer.Header().Get(session.HeaderName)).Msg("Booking completed")
	}
	c.JSON(http.StatusOK, h.bookingResponse(state, completed))
}

// GetBooking returns the booking state
// @Summary Get booking
// @Tags booking
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} handlers.BookingResponse
// @Router /api/booking [get]
func (h *Handler) GetBooking(c *gin.Context) {
	h.bookingStep(c, false, func(*wizard.Booking) error { return nil })
}

// OpenBooking starts the booking flow for a service
// @Summary Open booking
// @Description Starts the flow at the service step, discarding any flow in progress
// @Tags booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body handlers.OpenBookingRequest true "Service to book"
// @Success 200 {object} handlers.BookingResponse
// @Failure 404 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse
// @Router /api/booking/open [post]
func (h *Handler) OpenBooking(c *gin.Context) {
	var req OpenBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	h.bookingStep(c, false, func(b *wizard.Booking) error {
		return b.Open(req.ServiceID)
	})
}

// ContinueBooking advances the booking one step
// @Summary Continue booking
// @Description Leaving the details step requires name, email and phone
// @Tags booking
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Param request body handlers.ContinueBookingRequest false "Details to apply first"
// @Success 200 {object} handlers.BookingResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Failure 422 {object} handlers.ErrorResponse
// @Router /api/booking/continue [post]
func (h *Handler) ContinueBooking(c *gin.Context) {
	var req ContinueBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.respondError(c, fmt.Errorf("%w: %v", errBadParam, err))
		return
	}
	h.bookingStep(c, true, func(b *wizard.Booking) error {
		if req.Details != nil && b.Step() == wizard.StepDetails {
			if err := b.SetDetails(*req.Details); err != nil {
				return err
			}
		}
		return b.Continue()
	})
}

// BookingBack returns from the details step to the service step
// @Summary Booking back
// @Tags booking
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} handlers.BookingResponse
// @Failure 409 {object} handlers.ErrorResponse
// @Router /api/booking/back [post]
func (h *Handler) BookingBack(c *gin.Context) {
	h.bookingStep(c, false, func(b *wizard.Booking) error {
		return b.Back()
	})
}

// CloseBooking discards the booking flow
// @Summary Close booking
// @Tags booking
// @Produce json
// @Param X-Session-ID header string false "Session id"
// @Success 200 {object} handlers.BookingResponse
// @Router /api/booking/close [post]
func (h *Handler) CloseBooking(c *gin.Context) {
	h.bookingStep(c, false, func(b *wizard.Booking) error {
		b.Close()
		return nil
	})
}
