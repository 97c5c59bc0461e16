package appointment

import (
	"context"

	"github.com/fsanztor01/TrimTime/internal/audit"
	"github.com/fsanztor01/TrimTime/internal/cache"
	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/models"
	"github.com/fsanztor01/TrimTime/internal/timezone"
)

// ======================================================
// ADMIN STATUS TRANSITIONS
// ======================================================

// Transition runs the single-field admin status updates: confirm, complete,
// cancel, soft delete. Canceling or completing never creates a new overlap,
// so no availability recheck is needed here.
type Transition struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	tz    string
}

func NewTransition(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	tz string,
) *Transition {
	return &Transition{
		repo:  repo,
		cache: availCache,
		audit: auditDispatcher,
		tz:    tz,
	}
}

func (uc *Transition) Confirm(ctx context.Context, actorID, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actorID, id, "appointment_confirmed",
		func(ap *models.Appointment) error {
			return domain.Confirm(ap)
		})
}

func (uc *Transition) Complete(ctx context.Context, actorID, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actorID, id, "appointment_completed",
		func(ap *models.Appointment) error {
			return domain.Complete(ap, timezone.NowIn(uc.tz))
		})
}

func (uc *Transition) Cancel(ctx context.Context, actorID, id string) (*models.Appointment, error) {
	ap, err := uc.apply(ctx, actorID, id, "appointment_canceled",
		func(ap *models.Appointment) error {
			return domain.Cancel(ap, timezone.NowIn(uc.tz))
		})
	if err != nil {
		return nil, err
	}

	// A canceled appointment frees its slot.
	uc.cache.Invalidate(ctx, ap.BarberID, ap.Date)
	return ap, nil
}

func (uc *Transition) SoftDelete(ctx context.Context, actorID, id string) (*models.Appointment, error) {
	return uc.apply(ctx, actorID, id, "appointment_deleted",
		func(ap *models.Appointment) error {
			return domain.SoftDelete(ap)
		})
}

func (uc *Transition) apply(
	ctx context.Context,
	actorID string,
	id string,
	action string,
	mutate func(*models.Appointment) error,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := mutate(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpsertAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
