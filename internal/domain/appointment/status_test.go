package appointment

import (
	"testing"
	"time"

	"github.com/fsanztor01/TrimTime/internal/httperr"
	"github.com/fsanztor01/TrimTime/internal/models"
)

func TestStatusLifecycle(t *testing.T) {
	ap := &models.Appointment{Status: string(InitialStatus())}
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	if err := Confirm(ap); err != nil {
		t.Fatalf("confirm pending: %v", err)
	}
	if ap.Status != string(StatusConfirmed) {
		t.Fatalf("expected confirmed, got %s", ap.Status)
	}

	if err := Complete(ap, now); err != nil {
		t.Fatalf("complete confirmed: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Fatalf("expected completed, got %s", ap.Status)
	}
	if ap.CompletedAt == nil || !ap.CompletedAt.Equal(now) {
		t.Fatalf("expected CompletedAt stamped")
	}
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	for _, terminal := range []Status{StatusCompleted, StatusCanceled} {
		ap := &models.Appointment{Status: string(terminal)}

		if err := Confirm(ap); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("confirm from %s: expected business error, got %v", terminal, err)
		}
		if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("complete from %s: expected business error, got %v", terminal, err)
		}
		if err := Cancel(ap, now); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("cancel from %s: expected business error, got %v", terminal, err)
		}
		if ap.Status != string(terminal) {
			t.Fatalf("terminal status %s must not change, got %s", terminal, ap.Status)
		}
	}
}

func TestCompleteRequiresConfirmed(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusPending)}
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	if err := Complete(ap, now); !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected business error completing pending, got %v", err)
	}
}

func TestCancelStampsTimestamp(t *testing.T) {
	ap := &models.Appointment{Status: string(StatusConfirmed)}
	now := time.Date(2026, 9, 7, 12, 0, 0, 0, time.UTC)

	if err := Cancel(ap, now); err != nil {
		t.Fatalf("cancel confirmed: %v", err)
	}
	if ap.CanceledAt == nil || !ap.CanceledAt.Equal(now) {
		t.Fatalf("expected CanceledAt stamped")
	}
}

func TestSoftDeleteOnlyTerminal(t *testing.T) {
	for _, active := range []Status{StatusPending, StatusConfirmed} {
		ap := &models.Appointment{Status: string(active)}
		if err := SoftDelete(ap); !httperr.IsBusiness(err, "invalid_state") {
			t.Fatalf("soft delete from %s: expected business error, got %v", active, err)
		}
	}

	ap := &models.Appointment{Status: string(StatusCompleted)}
	if err := SoftDelete(ap); err != nil {
		t.Fatalf("soft delete completed: %v", err)
	}
	if !ap.Deleted {
		t.Fatalf("expected Deleted set")
	}
}

func TestBlocksSlot(t *testing.T) {
	if BlocksSlot(StatusCanceled) {
		t.Fatalf("canceled must not block")
	}
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted} {
		if !BlocksSlot(s) {
			t.Fatalf("%s must block its slot", s)
		}
	}
}
