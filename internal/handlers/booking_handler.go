package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/httpresp"
	"github.com/fsanztor01/TrimTime/internal/middleware"
	ucAppointment "github.com/fsanztor01/TrimTime/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	availability *ucAppointment.GetAvailability
	confirm      *ucAppointment.ConfirmBooking
	list         *ucAppointment.ListAppointments
}

func NewBookingHandler(
	availability *ucAppointment.GetAvailability,
	confirm *ucAppointment.ConfirmBooking,
	list *ucAppointment.ListAppointments,
) *BookingHandler {
	return &BookingHandler{
		availability: availability,
		confirm:      confirm,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type StepRequest struct {
	Step  int          `json:"step" binding:"required"`
	Draft domain.Draft `json:"draft"`
}

type ConfirmRequest struct {
	Draft domain.Draft `json:"draft" binding:"required"`
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *BookingHandler) Availability(c *gin.Context) {
	in := ucAppointment.AvailabilityInput{
		Date:                 c.Query("date"),
		BarberID:             c.Query("barber_id"),
		ServiceID:            c.Query("service_id"),
		ExcludeAppointmentID: c.Query("exclude"),
	}

	if in.Date == "" || in.BarberID == "" || in.ServiceID == "" {
		httperr.BadRequest(c, "missing_params", "date, barber_id and service_id are required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// ======================================================
// STEP NAVIGATION
// ======================================================

// Advance validates the current step's fields server-side; the draft itself
// stays with the client between calls.
func (h *BookingHandler) Advance(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid step payload.")
		return
	}

	next, err := domain.Advance(req.Draft, req.Step)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"step": next})
}

func (h *BookingHandler) Retreat(c *gin.Context) {
	var req StepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid step payload.")
		return
	}

	httpresp.OK(c, gin.H{"step": domain.Retreat(req.Step)})
}

// ======================================================
// CONFIRM
// ======================================================

func (h *BookingHandler) Confirm(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), userID, req.Draft)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// MY APPOINTMENTS
// ======================================================

func (h *BookingHandler) ListMine(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	apps, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		ClientID: userID,
		Status:   c.Query("status"),
		DateFrom: c.Query("from"),
		DateTo:   c.Query("to"),
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, apps)
}
