package booking

import (
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

// SlotTaken reports whether an existing reservation occupies the exact slot.
// The reservations are expected to be pre-filtered to the target date and to
// occupying statuses (pending/confirmed).
//
// Matching is by slot-string equality only; a reservation does not shadow
// the following slots of its service duration. Known gap, kept as shipped:
// changing it to interval overlap needs a product decision first.
func SlotTaken(slot string, reservations []models.Reservation) bool {
	for _, rv := range reservations {
		if rv.TimeSlot == slot {
			return true
		}
	}
	return false
}

// InBusyInterval reports whether the instant falls inside any external busy
// range. Ranges are half-open: start inclusive, end exclusive.
func InBusyInterval(instant time.Time, busy []BusyInterval) bool {
	for _, b := range busy {
		if !instant.Before(b.Start) && instant.Before(b.End) {
			return true
		}
	}
	return false
}

// SlotAvailable decides whether one candidate slot on the given date is
// still bookable. Pure function over its inputs; either check alone excludes
// the slot.
func SlotAvailable(
	date time.Time,
	slot string,
	reservations []models.Reservation,
	busy []BusyInterval,
) bool {

	if SlotTaken(slot, reservations) {
		return false
	}

	instant, ok := SlotInstant(date, slot)
	if !ok {
		return false
	}

	return !InBusyInterval(instant, busy)
}
