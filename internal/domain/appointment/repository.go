package appointment

import (
	"context"

	"github.com/fsanztor01/TrimTime/internal/models"
)

// ListFilter narrows appointment listings. Date bounds are inclusive
// canonical "YYYY-MM-DD" strings; lexicographic comparison is intentional.
type ListFilter struct {
	ClientID string
	BarberID string
	Status   string
	DateFrom string
	DateTo   string

	// Soft-deleted rows are hidden from listings but wanted by statistics.
	IncludeDeleted bool
}

type Repository interface {
	// -------- Appointment store --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	// Insert if the id is unseen, else full replace. Stamps UpdatedAt.
	UpsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		id string,
		fields map[string]any,
	) error

	// -------- Catalog --------
	ListServices(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Service, error)

	GetService(
		ctx context.Context,
		id string,
	) (*models.Service, error)

	ListBarbers(
		ctx context.Context,
		activeOnly bool,
	) ([]models.Barber, error)

	GetBarber(
		ctx context.Context,
		id string,
	) (*models.Barber, error)
}
