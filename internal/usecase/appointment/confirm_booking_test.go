package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
	infraRepo "github.com/fsanztor01/TrimTime/internal/infra/repository"
	"github.com/fsanztor01/TrimTime/internal/models"
)

func fixedNow() time.Time {
	// Tuesday.
	return time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)
}

func bookingSchedule() domain.Schedule {
	return domain.Schedule{
		OpenTime:       "09:00",
		CloseTime:      "18:00",
		SlotMinutes:    30,
		ClosedWeekdays: []time.Weekday{time.Sunday},
	}
}

func seededRepo() *infraRepo.MemoryRepository {
	repo := infraRepo.NewMemoryRepository()
	repo.PutService(models.Service{
		ID:          "svc-cut",
		NameEN:      "Haircut",
		DurationMin: 30,
		Price:       25,
		Active:      true,
	})
	repo.PutService(models.Service{
		ID:          "svc-full",
		NameEN:      "Cut and beard",
		DurationMin: 60,
		Price:       40,
		Active:      true,
	})
	repo.PutBarber(models.Barber{
		ID:           "barber-1",
		NameEN:       "Marco",
		WorkingDays:  "1-6",
		WorkingHours: "09:00-18:00",
		Active:       true,
	})
	return repo
}

func newConfirm(repo *infraRepo.MemoryRepository) *ConfirmBooking {
	return NewConfirmBooking(repo, nil, nil, bookingSchedule(), 30, fixedNow)
}

func TestConfirmBookingCreatesPending(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	ap, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, ap.ID)
	assert.Equal(t, "client-1", ap.ClientID)
	assert.Equal(t, string(domain.StatusPending), ap.Status)
	assert.Equal(t, 30, ap.DurationMin)
	assert.Equal(t, 25.0, ap.Price)
	assert.Nil(t, ap.RescheduledFrom)

	stored, err := repo.GetAppointment(context.Background(), ap.ID)
	require.NoError(t, err)
	assert.Equal(t, "2026-09-07", stored.Date)
	assert.Equal(t, "10:00", stored.Time)
}

func TestConfirmBookingConflictAtConfirmTime(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	// A second client grabs the same slot after seeing it free.
	_, err = uc.Execute(context.Background(), "client-2", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))

	apps, err := repo.ListAppointments(context.Background(), domain.ListFilter{BarberID: "barber-1"})
	require.NoError(t, err)
	assert.Len(t, apps, 1, "failed confirm must not write")
}

func TestConfirmBookingBackToBack(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	// Ends exactly when the first one starts.
	_, err = uc.Execute(context.Background(), "client-2", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "09:30",
	})
	require.NoError(t, err)

	// 60-minute service at 09:30 would run into the 10:00 booking.
	_, err = uc.Execute(context.Background(), "client-3", domain.Draft{
		ServiceID: "svc-full",
		BarberID:  "barber-1",
		Date:      "2026-09-08",
		Time:      "09:30",
	})
	require.NoError(t, err, "different date must not conflict")
}

func TestConfirmBookingLongServiceOverlap(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:30",
	})
	require.NoError(t, err)

	// 60 minutes starting 10:00 overlaps the 10:30 booking.
	_, err = uc.Execute(context.Background(), "client-2", domain.Draft{
		ServiceID: "svc-full",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.Error(t, err)
	assert.True(t, httperr.IsConflict(err))
}

func TestConfirmBookingWindow(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	cases := []struct {
		name string
		date string
		time string
		code string
	}{
		{"yesterday", "2026-08-31", "10:00", "in_the_past"},
		{"earlier today", "2026-09-01", "09:30", "in_the_past"},
		{"right now", "2026-09-01", "10:00", "in_the_past"},
		{"beyond window", "2026-10-05", "10:00", "too_far_ahead"},
	}

	for _, tc := range cases {
		_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
			ServiceID: "svc-cut",
			BarberID:  "barber-1",
			Date:      tc.date,
			Time:      tc.time,
		})
		require.Error(t, err, tc.name)

		var be httperr.BusinessError
		require.ErrorAs(t, err, &be, tc.name)
		assert.Equal(t, tc.code, be.Code, tc.name)
	}

	// Later today is bookable.
	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-01",
		Time:      "10:30",
	})
	require.NoError(t, err)
}

func TestConfirmBookingOffGridTime(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	for _, badTime := range []string{"10:15", "08:30", "18:00", "25:00"} {
		_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
			ServiceID: "svc-cut",
			BarberID:  "barber-1",
			Date:      "2026-09-07",
			Time:      badTime,
		})
		assert.True(t, httperr.IsValidation(err), "time %s: got %v", badTime, err)
	}
}

func TestConfirmBookingInactiveService(t *testing.T) {
	repo := seededRepo()
	repo.PutService(models.Service{
		ID:          "svc-old",
		NameEN:      "Retired",
		DurationMin: 30,
		Price:       10,
		Active:      false,
	})
	uc := newConfirm(repo)

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-old",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "service_inactive", be.Code)
}

func TestConfirmBookingUnknownService(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-missing",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	assert.True(t, httperr.IsNotFound(err), "got %v", err)
}

func TestConfirmBookingReschedule(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)
	ctx := context.Background()

	original, err := uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	moved, err := uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID:             "svc-cut",
		BarberID:              "barber-1",
		Date:                  "2026-09-07",
		Time:                  "11:00",
		OriginalAppointmentID: original.ID,
	})
	require.NoError(t, err)

	assert.NotEqual(t, original.ID, moved.ID)
	require.NotNil(t, moved.RescheduledFrom)
	assert.Equal(t, original.ID, *moved.RescheduledFrom)
	assert.Equal(t, string(domain.StatusPending), moved.Status)

	old, err := repo.GetAppointment(ctx, original.ID)
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCanceled), old.Status)
	assert.Equal(t, "rescheduled", old.Notes)
	require.NotNil(t, old.CanceledAt)

	// The vacated slot is free again.
	_, err = uc.Execute(ctx, "client-2", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)
}

func TestConfirmBookingRescheduleToSameSlot(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)
	ctx := context.Background()

	original, err := uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	// Keeping the same slot must not conflict with the appointment itself.
	moved, err := uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID:             "svc-cut",
		BarberID:              "barber-1",
		Date:                  "2026-09-07",
		Time:                  "10:00",
		OriginalAppointmentID: original.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, "10:00", moved.Time)
}

func TestConfirmBookingRescheduleTerminal(t *testing.T) {
	repo := seededRepo()
	uc := newConfirm(repo)
	ctx := context.Background()

	original, err := uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	require.NoError(t, repo.UpdateAppointment(ctx, original.ID, map[string]any{
		"status": string(domain.StatusCanceled),
	}))

	_, err = uc.Execute(ctx, "client-1", domain.Draft{
		ServiceID:             "svc-cut",
		BarberID:              "barber-1",
		Date:                  "2026-09-07",
		Time:                  "11:00",
		OriginalAppointmentID: original.ID,
	})
	var be httperr.BusinessError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "invalid_state", be.Code)
}

func TestConfirmBookingIncompleteDraft(t *testing.T) {
	uc := newConfirm(seededRepo())

	_, err := uc.Execute(context.Background(), "client-1", domain.Draft{
		ServiceID: "svc-cut",
	})
	assert.True(t, httperr.IsValidation(err))
}
