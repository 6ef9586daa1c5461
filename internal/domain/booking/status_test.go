package booking

import (
	"testing"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		check   func(Status) error
		allowed map[Status]bool
	}{
		{
			name:    "confirm only from pending",
			check:   CanConfirm,
			allowed: map[Status]bool{StatusPending: true},
		},
		{
			name:    "cancel from pending or confirmed",
			check:   CanCancel,
			allowed: map[Status]bool{StatusPending: true, StatusConfirmed: true},
		},
		{
			name:    "complete only from confirmed",
			check:   CanComplete,
			allowed: map[Status]bool{StatusConfirmed: true},
		},
	}

	all := []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, s := range all {
				err := tt.check(s)
				if tt.allowed[s] && err != nil {
					t.Errorf("from %q: unexpected error %v", s, err)
				}
				if !tt.allowed[s] && err == nil {
					t.Errorf("from %q: expected invalid_state", s)
				}
			}
		})
	}
}

func TestConfirmStampsTimestamp(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	rv := &models.Reservation{Status: string(StatusPending)}
	if err := Confirm(rv, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rv.Status != string(StatusConfirmed) {
		t.Errorf("status = %q, want confirmed", rv.Status)
	}
	if rv.ConfirmedAt == nil || !rv.ConfirmedAt.Equal(now) {
		t.Errorf("confirmed_at = %v, want %v", rv.ConfirmedAt, now)
	}

	// already confirmed: second confirm must fail
	if err := Confirm(rv, now); err == nil {
		t.Fatal("confirming twice should fail")
	}
}

func TestCancelAndComplete(t *testing.T) {
	now := time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)

	rv := &models.Reservation{Status: string(StatusConfirmed)}
	if err := Complete(rv, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rv.CompletedAt == nil {
		t.Error("completed_at should be stamped")
	}

	rv = &models.Reservation{Status: string(StatusPending)}
	if err := Cancel(rv, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rv.Status != string(StatusCancelled) || rv.CancelledAt == nil {
		t.Errorf("cancel left status %q, cancelled_at %v", rv.Status, rv.CancelledAt)
	}

	rv = &models.Reservation{Status: string(StatusCompleted)}
	if err := Cancel(rv, now); err == nil {
		t.Fatal("cancelling a completed reservation should fail")
	}
}
