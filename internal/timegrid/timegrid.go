// Package timegrid holds the pure slot and calendar-date helpers used by the
// availability engine. All interval math is done on minutes since midnight so
// overlap checks never touch time zones or wall-clock arithmetic.
package timegrid

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"

	DefaultSlotMinutes = 30
)

// Slots returns every slot start in [open, close), stepped by stepMinutes.
// The closing time itself is never a slot. A slot whose service would run past
// closing is still returned; rejecting overruns belongs to availability.
func Slots(open, close string, stepMinutes int) []string {
	openMin, err := MinutesOfDay(open)
	if err != nil {
		return nil
	}
	closeMin, err := MinutesOfDay(close)
	if err != nil {
		return nil
	}
	if stepMinutes <= 0 {
		stepMinutes = DefaultSlotMinutes
	}

	var slots []string
	for cur := openMin; cur < closeMin; cur += stepMinutes {
		slots = append(slots, FormatMinutes(cur))
	}
	return slots
}

// MinutesOfDay parses "HH:MM" into minutes since midnight.
func MinutesOfDay(hm string) (int, error) {
	parts := strings.SplitN(hm, ":", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q", hm)
	}

	return hour*60 + minute, nil
}

func FormatMinutes(min int) string {
	return fmt.Sprintf("%02d:%02d", min/60, min%60)
}

// Overlaps reports whether the half-open intervals [startA, endA) and
// [startB, endB) intersect. Back-to-back intervals do not overlap.
func Overlaps(startA, endA, startB, endB int) bool {
	return startA < endB && endA > startB
}

func CanonicalDate(t time.Time) string {
	return t.Format(DateFormat)
}

func ParseCanonicalDate(date string) (time.Time, error) {
	return time.Parse(DateFormat, date)
}

// IsClosedDay reports whether the shop is closed on the given date.
func IsClosedDay(date time.Time, closedWeekdays []time.Weekday) bool {
	for _, wd := range closedWeekdays {
		if date.Weekday() == wd {
			return true
		}
	}
	return false
}

// Weekday1To7 maps time.Weekday onto the 1=Monday..7=Sunday indices used by
// barber working-day specs.
func Weekday1To7(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// ParseWorkingDays accepts a contiguous range "1-5" or a list "1,3,5" (the
// list items may themselves be ranges, e.g. "1-3,5") and returns the set of
// covered weekday indices.
func ParseWorkingDays(spec string) (map[int]bool, error) {
	days := make(map[int]bool)

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if from, to, ok := strings.Cut(part, "-"); ok {
			start, err := parseWeekday(from)
			if err != nil {
				return nil, err
			}
			end, err := parseWeekday(to)
			if err != nil {
				return nil, err
			}
			if end < start {
				return nil, fmt.Errorf("invalid weekday range %q", part)
			}
			for d := start; d <= end; d++ {
				days[d] = true
			}
			continue
		}

		d, err := parseWeekday(part)
		if err != nil {
			return nil, err
		}
		days[d] = true
	}

	if len(days) == 0 {
		return nil, fmt.Errorf("empty working days %q", spec)
	}
	return days, nil
}

func parseWeekday(s string) (int, error) {
	d, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || d < 1 || d > 7 {
		return 0, fmt.Errorf("invalid weekday %q", s)
	}
	return d, nil
}

// ParseHoursRange parses "HH:MM-HH:MM" into open/close minutes of day.
func ParseHoursRange(spec string) (openMin, closeMin int, err error) {
	from, to, ok := strings.Cut(spec, "-")
	if !ok {
		return 0, 0, fmt.Errorf("invalid hours range %q", spec)
	}

	openMin, err = MinutesOfDay(strings.TrimSpace(from))
	if err != nil {
		return 0, 0, err
	}
	closeMin, err = MinutesOfDay(strings.TrimSpace(to))
	if err != nil {
		return 0, 0, err
	}
	if closeMin <= openMin {
		return 0, 0, fmt.Errorf("invalid hours range %q", spec)
	}
	return openMin, closeMin, nil
}
