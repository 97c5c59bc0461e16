package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/fsanztor01/TrimTime/internal/domain/appointment"
	"github.com/fsanztor01/TrimTime/internal/httperr"
)

func TestGetAvailabilityFreeDay(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo, nil, bookingSchedule())

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-09-07",
		BarberID:  "barber-1",
		ServiceID: "svc-cut",
	})
	require.NoError(t, err)
	require.Len(t, slots, 18)
	for _, s := range slots {
		assert.True(t, s.Available, "slot %s", s.Time)
	}
}

func TestGetAvailabilityReflectsBooking(t *testing.T) {
	repo := seededRepo()
	ctx := context.Background()

	_, err := newConfirm(repo).Execute(ctx, "client-1", domain.Draft{
		ServiceID: "svc-cut",
		BarberID:  "barber-1",
		Date:      "2026-09-07",
		Time:      "10:00",
	})
	require.NoError(t, err)

	uc := NewGetAvailability(repo, nil, bookingSchedule())
	slots, err := uc.Execute(ctx, AvailabilityInput{
		Date:      "2026-09-07",
		BarberID:  "barber-1",
		ServiceID: "svc-cut",
	})
	require.NoError(t, err)

	slot, ok := domain.SlotFor(slots, "10:00")
	require.True(t, ok)
	assert.False(t, slot.Available)
	assert.Equal(t, domain.ReasonConflict, slot.Reason)
}

func TestGetAvailabilityUnknownBarberAllClosed(t *testing.T) {
	repo := seededRepo()
	uc := NewGetAvailability(repo, nil, bookingSchedule())

	slots, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-09-07",
		BarberID:  "barber-missing",
		ServiceID: "svc-cut",
	})
	require.NoError(t, err)
	require.Len(t, slots, 18)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, domain.ReasonClosed, s.Reason)
	}
}

func TestGetAvailabilityBadDate(t *testing.T) {
	uc := NewGetAvailability(seededRepo(), nil, bookingSchedule())

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "07/09/2026",
		BarberID:  "barber-1",
		ServiceID: "svc-cut",
	})
	assert.True(t, httperr.IsValidation(err))
}

func TestGetAvailabilityUnknownService(t *testing.T) {
	uc := NewGetAvailability(seededRepo(), nil, bookingSchedule())

	_, err := uc.Execute(context.Background(), AvailabilityInput{
		Date:      "2026-09-07",
		BarberID:  "barber-1",
		ServiceID: "svc-missing",
	})
	assert.True(t, httperr.IsNotFound(err))
}
