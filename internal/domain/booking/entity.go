package booking

import (
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Confirm(rv *models.Reservation, now time.Time) error {
	if err := CanConfirm(Status(rv.Status)); err != nil {
		return err
	}

	rv.Status = string(StatusConfirmed)
	rv.ConfirmedAt = &now
	return nil
}

func Cancel(rv *models.Reservation, now time.Time) error {
	if err := CanCancel(Status(rv.Status)); err != nil {
		return err
	}

	rv.Status = string(StatusCancelled)
	rv.CancelledAt = &now
	return nil
}

func Complete(rv *models.Reservation, now time.Time) error {
	if err := CanComplete(Status(rv.Status)); err != nil {
		return err
	}

	rv.Status = string(StatusCompleted)
	rv.CompletedAt = &now
	return nil
}
