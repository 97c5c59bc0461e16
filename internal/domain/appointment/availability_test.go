package appointment

import (
	"testing"
	"time"

	"github.com/fsanztor01/TrimTime/internal/models"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
)

func testSchedule() Schedule {
	return Schedule{
		OpenTime:       "09:00",
		CloseTime:      "18:00",
		SlotMinutes:    30,
		ClosedWeekdays: []time.Weekday{time.Sunday},
	}
}

func testBarber() *models.Barber {
	return &models.Barber{
		ID:           "barber-1",
		WorkingDays:  "1-6",
		WorkingHours: "09:00-18:00",
		Active:       true,
	}
}

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timegrid.ParseCanonicalDate(s)
	if err != nil {
		t.Fatalf("parse date %q: %v", s, err)
	}
	return d
}

func countAvailable(slots []SlotAvailability) int {
	n := 0
	for _, s := range slots {
		if s.Available {
			n++
		}
	}
	return n
}

func TestComputeAvailabilityOpenDay(t *testing.T) {
	// Monday, no existing appointments: every slot is free.
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, nil, "")
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	if countAvailable(slots) != 18 {
		t.Fatalf("expected all slots free, got %d", countAvailable(slots))
	}
}

func TestComputeAvailabilityClosedSunday(t *testing.T) {
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-06"), testBarber(), 30, nil, "")
	if len(slots) != 18 {
		t.Fatalf("expected 18 slots, got %d", len(slots))
	}
	for _, s := range slots {
		if s.Available || s.Reason != ReasonClosed {
			t.Fatalf("expected slot %s closed, got %+v", s.Time, s)
		}
	}
}

func TestComputeAvailabilityNilBarber(t *testing.T) {
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), nil, 30, nil, "")
	for _, s := range slots {
		if s.Available || s.Reason != ReasonClosed {
			t.Fatalf("expected slot %s closed for nil barber", s.Time)
		}
	}
}

func TestComputeAvailabilityBarberDayOff(t *testing.T) {
	b := testBarber()
	b.WorkingDays = "1-5"

	// Saturday 2026-09-12: shop open, barber off.
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-12"), b, 30, nil, "")
	for _, s := range slots {
		if s.Available {
			t.Fatalf("expected slot %s closed on barber day off", s.Time)
		}
	}
}

func TestComputeAvailabilityBarberHoursNarrowWindow(t *testing.T) {
	b := testBarber()
	b.WorkingHours = "10:00-14:00"

	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), b, 30, nil, "")

	byTime := make(map[string]SlotAvailability)
	for _, s := range slots {
		byTime[s.Time] = s
	}

	if byTime["09:00"].Available || byTime["09:00"].Reason != ReasonClosed {
		t.Fatalf("09:00 must be outside barber hours")
	}
	if !byTime["10:00"].Available {
		t.Fatalf("10:00 must be inside barber hours")
	}
	if !byTime["13:30"].Available {
		t.Fatalf("13:30 must fit before 14:00")
	}
	if byTime["14:00"].Available {
		t.Fatalf("14:00 must be outside barber hours")
	}
}

func TestComputeAvailabilityConflict(t *testing.T) {
	existing := []models.Appointment{
		{
			ID:          "ap-1",
			BarberID:    "barber-1",
			Date:        "2026-09-07",
			Time:        "10:00",
			DurationMin: 45,
			Status:      string(StatusConfirmed),
		},
	}

	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, existing, "")

	byTime := make(map[string]SlotAvailability)
	for _, s := range slots {
		byTime[s.Time] = s
	}

	// 09:30 + 30min ends exactly at 10:00: back to back is legal.
	if !byTime["09:30"].Available {
		t.Fatalf("09:30 must be free, got %+v", byTime["09:30"])
	}
	if byTime["10:00"].Available || byTime["10:00"].Reason != ReasonConflict {
		t.Fatalf("10:00 must conflict, got %+v", byTime["10:00"])
	}
	// The 45-minute service runs into 10:30.
	if byTime["10:30"].Available || byTime["10:30"].Reason != ReasonConflict {
		t.Fatalf("10:30 must conflict, got %+v", byTime["10:30"])
	}
	if !byTime["11:00"].Available {
		t.Fatalf("11:00 must be free after the busy interval")
	}
}

func TestComputeAvailabilityCanceledDoesNotBlock(t *testing.T) {
	existing := []models.Appointment{
		{
			ID:          "ap-1",
			BarberID:    "barber-1",
			Date:        "2026-09-07",
			Time:        "10:00",
			DurationMin: 30,
			Status:      string(StatusCanceled),
		},
	}

	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, existing, "")
	if s, _ := SlotFor(slots, "10:00"); !s.Available {
		t.Fatalf("canceled appointment must not block its slot")
	}
}

func TestComputeAvailabilityExcludeSelf(t *testing.T) {
	existing := []models.Appointment{
		{
			ID:          "ap-1",
			BarberID:    "barber-1",
			Date:        "2026-09-07",
			Time:        "10:00",
			DurationMin: 30,
			Status:      string(StatusPending),
		},
	}

	// While rescheduling ap-1 its own interval is free.
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, existing, "ap-1")
	if s, _ := SlotFor(slots, "10:00"); !s.Available {
		t.Fatalf("rescheduled appointment must not conflict with itself")
	}

	slots = ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, existing, "")
	if s, _ := SlotFor(slots, "10:00"); s.Available {
		t.Fatalf("without exclusion the slot must conflict")
	}
}

func TestComputeAvailabilityDurationOverrunsClose(t *testing.T) {
	// 60-minute service: 17:30 would end 18:30, past closing.
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 60, nil, "")

	byTime := make(map[string]SlotAvailability)
	for _, s := range slots {
		byTime[s.Time] = s
	}

	if !byTime["17:00"].Available {
		t.Fatalf("17:00 + 60min ends exactly at close and must be free")
	}
	if byTime["17:30"].Available || byTime["17:30"].Reason != ReasonClosed {
		t.Fatalf("17:30 + 60min overruns close, got %+v", byTime["17:30"])
	}
}

func TestSlotForMissing(t *testing.T) {
	slots := ComputeAvailability(testSchedule(), mustDate(t, "2026-09-07"), testBarber(), 30, nil, "")
	if _, ok := SlotFor(slots, "08:00"); ok {
		t.Fatalf("08:00 is not on the grid")
	}
	if _, ok := SlotFor(slots, "09:15"); ok {
		t.Fatalf("09:15 is off-grid and must not resolve")
	}
}
