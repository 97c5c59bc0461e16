package appointment

import (
	"context"

	"github.com/fsanztor01/TrimTime/internal/cache"
	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
)

// ======================================================
// INPUT
// ======================================================

type AvailabilityInput struct {
	Date      string // YYYY-MM-DD
	BarberID  string
	ServiceID string

	// Set while rescheduling so the appointment being moved does not
	// conflict with itself.
	ExcludeAppointmentID string
}

// ======================================================
// USE CASE
// ======================================================

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	sched domain.Schedule
}

func NewGetAvailability(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	sched domain.Schedule,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		cache: availCache,
		sched: sched,
	}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	in AvailabilityInput,
) ([]domain.SlotAvailability, error) {

	date, err := timegrid.ParseCanonicalDate(in.Date)
	if err != nil {
		return nil, httperr.ErrValidation("date")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, err
	}

	// A missing barber is not an error: every slot is reported closed.
	barber, err := uc.repo.GetBarber(ctx, in.BarberID)
	if err != nil && !httperr.IsNotFound(err) {
		return nil, err
	}

	// Exclusion makes the result appointment-specific; never cache those.
	useCache := in.ExcludeAppointmentID == ""
	if useCache {
		if slots, ok := uc.cache.Get(ctx, in.BarberID, in.Date, svc.DurationMin); ok {
			return slots, nil
		}
	}

	existing, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		BarberID: in.BarberID,
		DateFrom: in.Date,
		DateTo:   in.Date,
	})
	if err != nil {
		return nil, err
	}

	slots := domain.ComputeAvailability(
		uc.sched,
		date,
		barber,
		svc.DurationMin,
		existing,
		in.ExcludeAppointmentID,
	)

	if useCache {
		uc.cache.Set(ctx, in.BarberID, in.Date, svc.DurationMin, slots)
	}

	return slots, nil
}
