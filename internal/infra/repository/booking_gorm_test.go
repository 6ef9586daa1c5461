package repository

import (
	"errors"
	"testing"

	"gorm.io/gorm"

	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
)

func TestTranslateReservationWriteError(t *testing.T) {
	if err := translateReservationWriteError(nil); err != nil {
		t.Fatalf("nil should pass through, got %v", err)
	}

	err := translateReservationWriteError(gorm.ErrDuplicatedKey)
	if !httperr.IsBusiness(err, "slot_conflict") {
		t.Fatalf("duplicate key = %v, want slot_conflict", err)
	}

	// wrapped duplicates still count
	wrapped := translateReservationWriteError(
		errors.Join(errors.New("insert reservations"), gorm.ErrDuplicatedKey),
	)
	if !httperr.IsBusiness(wrapped, "slot_conflict") {
		t.Fatalf("wrapped duplicate key = %v, want slot_conflict", wrapped)
	}

	other := errors.New("connection reset")
	if got := translateReservationWriteError(other); !errors.Is(got, other) {
		t.Fatalf("unrelated error rewritten: %v", got)
	}
}
