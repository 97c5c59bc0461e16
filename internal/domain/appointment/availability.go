package appointment

import (
	"time"

	"github.com/fsanztor01/TrimTime/internal/models"
	"github.com/fsanztor01/TrimTime/internal/timegrid"
)

// Reasons a slot can be reported unavailable. An unavailable slot is a normal
// result, never an error.
const (
	ReasonClosed   = "closed"
	ReasonConflict = "conflict"
)

// Schedule is the shop-level slot configuration.
type Schedule struct {
	OpenTime       string
	CloseTime      string
	SlotMinutes    int
	ClosedWeekdays []time.Weekday
}

type SlotAvailability struct {
	Time      string `json:"time"`
	Available bool   `json:"available"`
	Reason    string `json:"reason,omitempty"`
}

// ComputeAvailability reports, for every shop slot on the given date, whether
// a service of durationMin minutes could start there with the given barber.
//
// A slot is "closed" when the shop is closed that day, the barber does not
// work that day, or the interval [slot, slot+duration) does not fit inside
// both the shop hours and the barber hours. It is a "conflict" when it
// overlaps an existing non-canceled, non-deleted appointment of the same
// barber on the same date, excluding excludeID (so a reschedule never
// conflicts with the appointment being moved).
//
// The function never fails: a nil barber or an unparsable schedule simply
// yields every slot unavailable.
func ComputeAvailability(
	sched Schedule,
	date time.Time,
	barber *models.Barber,
	durationMin int,
	existing []models.Appointment,
	excludeID string,
) []SlotAvailability {

	slots := timegrid.Slots(sched.OpenTime, sched.CloseTime, sched.SlotMinutes)
	out := make([]SlotAvailability, 0, len(slots))

	allClosed := func() []SlotAvailability {
		for _, s := range slots {
			out = append(out, SlotAvailability{Time: s, Reason: ReasonClosed})
		}
		return out
	}

	if timegrid.IsClosedDay(date, sched.ClosedWeekdays) {
		return allClosed()
	}
	if barber == nil || !barber.Active {
		return allClosed()
	}

	workDays, err := timegrid.ParseWorkingDays(barber.WorkingDays)
	if err != nil || !workDays[timegrid.Weekday1To7(date)] {
		return allClosed()
	}

	barberOpen, barberClose, err := timegrid.ParseHoursRange(barber.WorkingHours)
	if err != nil {
		return allClosed()
	}

	shopOpen, _ := timegrid.MinutesOfDay(sched.OpenTime)
	shopClose, _ := timegrid.MinutesOfDay(sched.CloseTime)

	// The bookable window is the intersection of shop and barber hours.
	windowOpen := shopOpen
	if barberOpen > windowOpen {
		windowOpen = barberOpen
	}
	windowClose := shopClose
	if barberClose < windowClose {
		windowClose = barberClose
	}

	if durationMin <= 0 {
		durationMin = sched.SlotMinutes
	}

	dateStr := timegrid.CanonicalDate(date)
	busy := busyIntervals(existing, barber.ID, dateStr, excludeID)

	for _, s := range slots {
		start, err := timegrid.MinutesOfDay(s)
		if err != nil {
			out = append(out, SlotAvailability{Time: s, Reason: ReasonClosed})
			continue
		}
		end := start + durationMin

		if start < windowOpen || end > windowClose {
			out = append(out, SlotAvailability{Time: s, Reason: ReasonClosed})
			continue
		}

		conflict := false
		for _, iv := range busy {
			if timegrid.Overlaps(start, end, iv.start, iv.end) {
				conflict = true
				break
			}
		}

		if conflict {
			out = append(out, SlotAvailability{Time: s, Reason: ReasonConflict})
		} else {
			out = append(out, SlotAvailability{Time: s, Available: true})
		}
	}

	return out
}

type interval struct {
	start int
	end   int
}

func busyIntervals(existing []models.Appointment, barberID, date, excludeID string) []interval {
	var busy []interval

	for _, ap := range existing {
		if ap.BarberID != barberID || ap.Date != date {
			continue
		}
		if ap.ID == excludeID {
			continue
		}
		if !BlocksSlot(Status(ap.Status)) || ap.Deleted {
			continue
		}

		start, err := timegrid.MinutesOfDay(ap.Time)
		if err != nil {
			continue
		}
		dur := ap.DurationMin
		if dur <= 0 {
			dur = timegrid.DefaultSlotMinutes
		}
		busy = append(busy, interval{start: start, end: start + dur})
	}

	return busy
}

// SlotFor returns the availability entry for one specific time, used by the
// confirm-time recheck.
func SlotFor(slots []SlotAvailability, t string) (SlotAvailability, bool) {
	for _, s := range slots {
		if s.Time == t {
			return s, true
		}
	}
	return SlotAvailability{}, false
}
