package rating

import (
	"testing"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

func TestValidateStarsRange(t *testing.T) {
	base := models.Rating{AppointmentID: "ap-1", BarberRating: 5, AppRating: 4}

	if err := Validate(&base); err != nil {
		t.Fatalf("valid rating rejected: %v", err)
	}

	for _, stars := range []int{0, 6, -1} {
		r := base
		r.BarberRating = stars
		if err := Validate(&r); !httperr.IsBusiness(err, "invalid_barber_rating") {
			t.Fatalf("barber stars %d: expected business error, got %v", stars, err)
		}

		r = base
		r.AppRating = stars
		if err := Validate(&r); !httperr.IsBusiness(err, "invalid_app_rating") {
			t.Fatalf("app stars %d: expected business error, got %v", stars, err)
		}
	}
}

func TestValidateMissingAppointment(t *testing.T) {
	r := models.Rating{BarberRating: 5, AppRating: 5}
	if err := Validate(&r); !httperr.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestAggregate(t *testing.T) {
	if got := Aggregate(nil); got != 0 {
		t.Fatalf("empty aggregate: expected 0, got %v", got)
	}

	ratings := []models.Rating{
		{BarberRating: 5},
		{BarberRating: 4},
		{BarberRating: 4},
	}
	// 13/3 = 4.333.. -> 4.3
	if got := Aggregate(ratings); got != 4.3 {
		t.Fatalf("expected 4.3, got %v", got)
	}

	ratings = append(ratings, models.Rating{BarberRating: 5})
	// 18/4 = 4.5
	if got := Aggregate(ratings); got != 4.5 {
		t.Fatalf("expected 4.5, got %v", got)
	}
}
