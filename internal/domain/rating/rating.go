package rating

import (
	"math"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

// Validate checks the star values before anything is written.
func Validate(r *models.Rating) error {
	if r.AppointmentID == "" {
		return httperr.ErrValidation("appointment")
	}
	if r.BarberRating < 1 || r.BarberRating > 5 {
		return httperr.ErrBusiness("invalid_barber_rating")
	}
	if r.AppRating < 1 || r.AppRating > 5 {
		return httperr.ErrBusiness("invalid_app_rating")
	}
	return nil
}

// Aggregate is the barber's displayed rating: arithmetic mean of submitted
// barber ratings rounded to one decimal. Zero when there are none.
func Aggregate(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}

	sum := 0
	for _, r := range ratings {
		sum += r.BarberRating
	}

	mean := float64(sum) / float64(len(ratings))
	return math.Round(mean*10) / 10
}
