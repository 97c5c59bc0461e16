package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fsanztor01/TrimTime/internal/audit"
	"github.com/fsanztor01/TrimTime/internal/cache"
	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
)

// ======================================================
// USE CASE
// ======================================================

// ConfirmBooking commits a booking draft. Availability is re-checked against
// a fresh store read at this moment, never a view cached from slot rendering,
// which closes the window between slot display and confirm click.
//
// Rescheduling is cancel-and-recreate: the original appointment is canceled
// with a note and a brand-new pending appointment is inserted carrying
// RescheduledFrom, so the statistics keep the full history.
type ConfirmBooking struct {
	repo  domain.Repository
	cache *cache.AvailabilityCache
	audit *audit.Dispatcher
	sched domain.Schedule

	maxDaysAhead int

	// Injected for tests.
	now func() time.Time
}

func NewConfirmBooking(
	repo domain.Repository,
	availCache *cache.AvailabilityCache,
	auditDispatcher *audit.Dispatcher,
	sched domain.Schedule,
	maxDaysAhead int,
	now func() time.Time,
) *ConfirmBooking {
	if now == nil {
		now = time.Now
	}
	return &ConfirmBooking{
		repo:         repo,
		cache:        availCache,
		audit:        auditDispatcher,
		sched:        sched,
		maxDaysAhead: maxDaysAhead,
		now:          now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	clientID string,
	draft domain.Draft,
) (*models.Appointment, error) {

	if err := domain.ValidateForConfirm(draft); err != nil {
		return nil, err
	}

	date, err := timegrid.ParseCanonicalDate(draft.Date)
	if err != nil {
		return nil, httperr.ErrValidation("date")
	}
	if _, err := timegrid.MinutesOfDay(draft.Time); err != nil {
		return nil, httperr.ErrValidation("time")
	}
	if !onGrid(uc.sched, draft.Time) {
		return nil, httperr.ErrValidation("time")
	}

	if err := uc.checkBookingWindow(draft); err != nil {
		return nil, err
	}

	svc, err := uc.repo.GetService(ctx, draft.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.Active {
		return nil, httperr.ErrBusiness("service_inactive")
	}

	barber, err := uc.repo.GetBarber(ctx, draft.BarberID)
	if err != nil {
		return nil, err
	}

	var original *models.Appointment
	if draft.OriginalAppointmentID != "" {
		original, err = uc.repo.GetAppointment(ctx, draft.OriginalAppointmentID)
		if err != nil {
			return nil, err
		}
		if err := domain.CanCancel(domain.Status(original.Status)); err != nil {
			return nil, err
		}
	}

	// Fresh read; the slot set shown to the user may be stale by now.
	existing, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		BarberID: draft.BarberID,
		DateFrom: draft.Date,
		DateTo:   draft.Date,
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
		draft.OriginalAppointmentID,
	)

	slot, ok := domain.SlotFor(slots, draft.Time)
	if !ok {
		return nil, httperr.ErrValidation("time")
	}
	if !slot.Available {
		return nil, httperr.ErrConflict(draft.Time, slot.Reason)
	}

	now := uc.now()

	if original != nil {
		if err := domain.Cancel(original, now); err != nil {
			return nil, err
		}
		original.Notes = "rescheduled"
		if err := uc.repo.UpsertAppointment(ctx, original); err != nil {
			return nil, err
		}
	}

	ap := &models.Appointment{
		ID:          uuid.NewString(),
		ClientID:    clientID,
		BarberID:    draft.BarberID,
		ServiceID:   draft.ServiceID,
		Date:        draft.Date,
		Time:        draft.Time,
		DurationMin: svc.DurationMin,
		Price:       svc.Price,
		Status:      string(domain.InitialStatus()),
	}
	if original != nil {
		ap.RescheduledFrom = &original.ID
	}

	if err := uc.repo.UpsertAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.BarberID, ap.Date)
	if original != nil {
		uc.cache.Invalidate(ctx, original.BarberID, original.Date)
	}

	action := "appointment_created"
	if original != nil {
		action = "appointment_rescheduled"
	}
	uc.audit.Dispatch(audit.Event{
		UserID:   &clientID,
		Action:   action,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

func (uc *ConfirmBooking) checkBookingWindow(draft domain.Draft) error {
	now := uc.now()

	startMin, _ := timegrid.MinutesOfDay(draft.Time)
	today := timegrid.CanonicalDate(now)
	nowMin := now.Hour()*60 + now.Minute()

	if draft.Date < today || (draft.Date == today && startMin <= nowMin) {
		return httperr.ErrBusiness("in_the_past")
	}

	if uc.maxDaysAhead > 0 {
		limit := timegrid.CanonicalDate(now.AddDate(0, 0, uc.maxDaysAhead))
		if draft.Date > limit {
			return httperr.ErrBusiness("too_far_ahead")
		}
	}

	return nil
}

func onGrid(sched domain.Schedule, t string) bool {
	for _, s := range timegrid.Slots(sched.OpenTime, sched.CloseTime, sched.SlotMinutes) {
		if s == t {
			return true
		}
	}
	return false
}
