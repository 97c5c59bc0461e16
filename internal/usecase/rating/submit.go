package rating

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fsanztor01/TrimTime/internal/audit"
	appointmentdomain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	domain "github.com/fsanztor01/TrimTime/internal/domain/rating"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type SubmitInput struct {
	AppointmentID string
	UserID        string
	BarberRating  int
	AppRating     int
	Comment       string
}

// ======================================================
// USE CASE
// ======================================================

// Submit records a post-service rating. Exactly one rating per appointment;
// a second submit fails with already_rated.
type Submit struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSubmit(repo domain.Repository, auditDispatcher *audit.Dispatcher) *Submit {
	return &Submit{
		repo:  repo,
		audit: auditDispatcher,
	}
}

func (uc *Submit) Execute(ctx context.Context, in SubmitInput) (*models.Rating, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	if appointmentdomain.Status(ap.Status) != appointmentdomain.StatusCompleted {
		return nil, httperr.ErrBusiness("not_completed")
	}
	if ap.Rated {
		return nil, httperr.ErrBusiness("already_rated")
	}
	if ap.ClientID != in.UserID {
		return nil, httperr.ErrBusiness("not_your_appointment")
	}

	r := &models.Rating{
		ID:            uuid.NewString(),
		AppointmentID: ap.ID,
		BarberID:      ap.BarberID,
		UserID:        in.UserID,
		BarberRating:  in.BarberRating,
		AppRating:     in.AppRating,
		Comment:       in.Comment,
		CreatedAt:     time.Now(),
	}

	if err := domain.Validate(r); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateRating(ctx, r); err != nil {
		return nil, err
	}

	if err := uc.repo.MarkAppointmentRated(ctx, ap.ID); err != nil {
		return nil, err
	}

	// Recompute the barber aggregate from all of their ratings.
	all, err := uc.repo.ListRatingsByBarber(ctx, ap.BarberID)
	if err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateBarberRating(ctx, ap.BarberID, domain.Aggregate(all)); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.UserID,
		Action:   "rating_submitted",
		Entity:   "rating",
		EntityID: &r.ID,
	})

	return r, nil
}
