package rating

import (
	"context"

	"github.com/fsanztor01/TrimTime/internal/models"
)

type Repository interface {
	CreateRating(
		ctx context.Context,
		r *models.Rating,
	) error

	ListRatingsByBarber(
		ctx context.Context,
		barberID string,
	) ([]models.Rating, error)

	ListRatings(
		ctx context.Context,
	) ([]models.Rating, error)

	GetAppointment(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	MarkAppointmentRated(
		ctx context.Context,
		appointmentID string,
	) error

	UpdateBarberRating(
		ctx context.Context,
		barberID string,
		rating float64,
	) error
}
