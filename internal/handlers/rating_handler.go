package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/httpresp"
	"github.com/fsanztor01/TrimTime/internal/middleware"
	"github.com/fsanztor01/TrimTime/internal/usecase/rating"
)

type RatingHandler struct {
	submit *rating.Submit
	list   *rating.List
}

func NewRatingHandler(submit *rating.Submit, list *rating.List) *RatingHandler {
	return &RatingHandler{
		submit: submit,
		list:   list,
	}
}

type SubmitRatingRequest struct {
	AppointmentID string `json:"appointment_id" binding:"required"`
	BarberRating  int    `json:"barber_rating" binding:"required"`
	AppRating     int    `json:"app_rating" binding:"required"`
	Comment       string `json:"comment" binding:"max=100"`
}

func (h *RatingHandler) Submit(c *gin.Context) {
	var req SubmitRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid rating data.")
		return
	}

	userID := c.GetString(middleware.ContextUserID)

	r, err := h.submit.Execute(c.Request.Context(), rating.SubmitInput{
		AppointmentID: req.AppointmentID,
		UserID:        userID,
		BarberRating:  req.BarberRating,
		AppRating:     req.AppRating,
		Comment:       req.Comment,
	})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, r)
}

// ListByBarber is public: clients browse a barber's reviews before booking.
func (h *RatingHandler) ListByBarber(c *gin.Context) {
	ratings, err := h.list.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, ratings)
}

func (h *RatingHandler) ListAll(c *gin.Context) {
	ratings, err := h.list.Execute(c.Request.Context(), c.Query("barber_id"))
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, ratings)
}
