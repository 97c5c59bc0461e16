package appointment

import "github.com/fsanztor01/TrimTime/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCanceled  Status = "canceled"
)

// Transitions are monotonic: pending -> confirmed -> completed, or
// {pending, confirmed} -> canceled. Completed and canceled are terminal.

func InitialStatus() Status {
	return StatusPending
}

func CanConfirm(current Status) error {
	if current != StatusPending {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanCancel(current Status) error {
	if current != StatusPending && current != StatusConfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanSoftDelete: only terminal appointments may be hidden; the record is kept
// for statistics.
func CanSoftDelete(current Status) error {
	if current != StatusCompleted && current != StatusCanceled {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// BlocksSlot reports whether an appointment in this status occupies its time
// interval for conflict detection.
func BlocksSlot(current Status) bool {
	return current != StatusCanceled
}
