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
// ADMIN APPOINTMENT OPERATIONS
// ======================================================

// Status changes are explicit endpoints over the Transition use case; the
// handler never touches the status field itself.
type AppointmentAdminHandler struct {
	transition *ucAppointment.Transition
	list       *ucAppointment.ListAppointments
}

func NewAppointmentAdminHandler(
	transition *ucAppointment.Transition,
	list *ucAppointment.ListAppointments,
) *AppointmentAdminHandler {
	return &AppointmentAdminHandler{
		transition: transition,
		list:       list,
	}
}

func (h *AppointmentAdminHandler) List(c *gin.Context) {
	apps, err := h.list.Execute(c.Request.Context(), domain.ListFilter{
		ClientID: c.Query("client_id"),
		BarberID: c.Query("barber_id"),
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

func (h *AppointmentAdminHandler) Confirm(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.transition.Confirm(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentAdminHandler) Complete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.transition.Complete(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentAdminHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.transition.Cancel(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}

func (h *AppointmentAdminHandler) SoftDelete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(string)

	ap, err := h.transition.SoftDelete(c.Request.Context(), actorID, c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, ap)
}
