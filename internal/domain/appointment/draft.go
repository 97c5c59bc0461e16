package appointment

import "github.com/fsanztor01/TrimTime/internal/httperr"

// ===============================
// Booking Draft
// ===============================

// Draft is the in-progress service/barber/date/time selection. It is a plain
// value owned by the caller between workflow calls; nothing in the core holds
// it.
type Draft struct {
	ServiceID string `json:"service_id"`
	BarberID  string `json:"barber_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	Time      string `json:"time"` // HH:MM

	// Set when rescheduling: the appointment this draft replaces.
	OriginalAppointmentID string `json:"original_appointment_id,omitempty"`
}

// The 4-step linear booking flow.
const (
	StepSelectService  = 1
	StepSelectBarber   = 2
	StepSelectDateTime = 3
	StepConfirm        = 4
)

// Advance validates the current step's required fields and returns the next
// step. A ValidationError names the missing field and the flow stays put.
func Advance(d Draft, step int) (int, error) {
	switch step {
	case StepSelectService:
		if d.ServiceID == "" {
			return step, httperr.ErrValidation("service")
		}
	case StepSelectBarber:
		if d.BarberID == "" {
			return step, httperr.ErrValidation("barber")
		}
	case StepSelectDateTime:
		if d.Date == "" {
			return step, httperr.ErrValidation("date")
		}
		if d.Time == "" {
			return step, httperr.ErrValidation("time")
		}
	case StepConfirm:
		return StepConfirm, nil
	default:
		return step, httperr.ErrBusiness("invalid_step")
	}

	return step + 1, nil
}

// Retreat is always permitted while step > 1; no validation.
func Retreat(step int) int {
	if step > StepSelectService {
		return step - 1
	}
	return StepSelectService
}

// ValidateForConfirm runs every step's validation, used before writing.
func ValidateForConfirm(d Draft) error {
	for step := StepSelectService; step < StepConfirm; step++ {
		if _, err := Advance(d, step); err != nil {
			return err
		}
	}
	return nil
}
