package appointment

import (
	"context"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/models"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// Execute returns appointments matching the filter, soft-deleted rows always
// excluded: listings are a UI surface, statistics go through their own path.
func (uc *ListAppointments) Execute(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	filter.IncludeDeleted = false
	return uc.repo.ListAppointments(ctx, filter)
}
