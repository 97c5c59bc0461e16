package handlers

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/httpresp"
	"github.com/fsanztor01/TrimTime/internal/models"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
)

// ======================================================
// HANDLER
// ======================================================

type CatalogStore interface {
	ListServices(ctx context.Context, activeOnly bool) ([]models.Service, error)
	GetService(ctx context.Context, id string) (*models.Service, error)
	ListBarbers(ctx context.Context, activeOnly bool) ([]models.Barber, error)
	GetBarber(ctx context.Context, id string) (*models.Barber, error)
	SaveService(ctx context.Context, svc *models.Service) error
	SaveBarber(ctx context.Context, b *models.Barber) error
}

type CatalogHandler struct {
	store CatalogStore
}

func NewCatalogHandler(store CatalogStore) *CatalogHandler {
	return &CatalogHandler{store: store}
}

// ======================================================
// REQUESTS
// ======================================================

type SaveServiceRequest struct {
	ID          string  `json:"id"`
	NameEN      string  `json:"name_en" binding:"required"`
	NameES      string  `json:"name_es"`
	DescEN      string  `json:"desc_en"`
	DescES      string  `json:"desc_es"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Active      *bool   `json:"active"`
}

type SaveBarberRequest struct {
	ID           string `json:"id"`
	NameEN       string `json:"name_en" binding:"required"`
	NameES       string `json:"name_es"`
	WorkingDays  string `json:"working_days" binding:"required"`  // "1-5" or "1,3,5"
	WorkingHours string `json:"working_hours" binding:"required"` // "HH:MM-HH:MM"
	Active       *bool  `json:"active"`
}

// ======================================================
// PUBLIC LISTINGS
// ======================================================

// ListServices hides inactive services unless all=true (admin view).
func (h *CatalogHandler) ListServices(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	services, err := h.store.ListServices(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) ListBarbers(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	barbers, err := h.store.ListBarbers(c.Request.Context(), activeOnly)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.List(c, barbers)
}

// ======================================================
// ADMIN CRUD
// ======================================================

func (h *CatalogHandler) SaveService(c *gin.Context) {
	var req SaveServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid service data.")
		return
	}

	id := req.ID
	if p := c.Param("id"); p != "" {
		id = p
	}

	svc := &models.Service{
		ID:          id,
		NameEN:      req.NameEN,
		NameES:      req.NameES,
		DescEN:      req.DescEN,
		DescES:      req.DescES,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Active:      true,
	}
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.store.SaveService(c.Request.Context(), svc); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *CatalogHandler) SaveBarber(c *gin.Context) {
	var req SaveBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid barber data.")
		return
	}

	// Schedule notation is validated up front so availability never has to
	// deal with a malformed stored spec.
	if _, err := timegrid.ParseWorkingDays(req.WorkingDays); err != nil {
		httperr.BadRequest(c, "invalid_working_days", err.Error())
		return
	}
	if _, _, err := timegrid.ParseHoursRange(req.WorkingHours); err != nil {
		httperr.BadRequest(c, "invalid_working_hours", err.Error())
		return
	}

	id := req.ID
	if p := c.Param("id"); p != "" {
		id = p
	}

	b := &models.Barber{
		ID:           id,
		NameEN:       req.NameEN,
		NameES:       req.NameES,
		WorkingDays:  req.WorkingDays,
		WorkingHours: req.WorkingHours,
		Active:       true,
	}
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	if req.Active != nil {
		b.Active = *req.Active
	}

	if err := h.store.SaveBarber(c.Request.Context(), b); err != nil {
		httperr.FromError(c, err)
		return
	}

	httpresp.Created(c, b)
}
