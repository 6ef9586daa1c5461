package booking

import "time"

// SlotStep is the grid the whole system books on. Windows expand into
// candidates every 30 minutes and reservations store their start on the
// same grid.
const SlotStep = 30 * time.Minute

// SlotLayout is the wall-clock format of a candidate slot.
const SlotLayout = "15:04"

type AvailabilityInput struct {
	StudioID  uint
	ServiceID uint
	Date      time.Time

	// RequestTag is echoed back untouched so the caller can discard
	// responses that no longer match its current selection.
	RequestTag string
}

type AvailabilityResult struct {
	RequestTag string   `json:"request_tag"`
	Date       string   `json:"date"`
	Slots      []string `json:"slots"`

	// Degraded is set when the external calendar could not be reached and
	// the slots were resolved from schedule and reservation data alone.
	Degraded bool `json:"degraded"`
}

// BusyInterval is an opaque block imported from an external calendar.
// Treated as a half-open range [Start, End).
type BusyInterval struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}
