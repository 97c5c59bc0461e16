package rating

import (
	"context"

	domain "github.com/fsanztor01/TrimTime/internal/domain/rating"
	"github.com/fsanztor01/TrimTime/internal/models"
)

type List struct {
	repo domain.Repository
}

func NewList(repo domain.Repository) *List {
	return &List{repo: repo}
}

// Execute lists all ratings, or one barber's when barberID is set.
func (uc *List) Execute(ctx context.Context, barberID string) ([]models.Rating, error) {
	if barberID != "" {
		return uc.repo.ListRatingsByBarber(ctx, barberID)
	}
	return uc.repo.ListRatings(ctx)
}
