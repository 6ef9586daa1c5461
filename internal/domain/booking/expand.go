package booking

import (
	"sort"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

// SlotInstant anchors a HH:MM slot string on the given calendar date, in the
// date's location. A malformed slot yields the zero time and false.
func SlotInstant(date time.Time, slot string) (time.Time, bool) {
	t, err := time.Parse(SlotLayout, slot)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		t.Hour(), t.Minute(), 0, 0,
		date.Location(),
	), true
}

// ExpandWindows turns the active recurring windows of one weekday into the
// candidate slot strings for the given date: every SlotStep from each
// window's start, while strictly before its end. A window whose span is not
// a multiple of the step truncates the final partial slot.
//
// Candidates from overlapping windows are de-duplicated; the result is
// sorted ascending (lexicographic order is chronological for zero-padded
// HH:MM).
func ExpandWindows(date time.Time, windows []models.AvailabilityWindow) []string {
	seen := make(map[string]struct{})

	for _, w := range windows {
		if !w.Active {
			continue
		}

		start, ok := SlotInstant(date, w.StartTime)
		if !ok {
			continue
		}
		end, ok := SlotInstant(date, w.EndTime)
		if !ok || !end.After(start) {
			continue
		}

		for cur := start; cur.Before(end); cur = cur.Add(SlotStep) {
			seen[cur.Format(SlotLayout)] = struct{}{}
		}
	}

	slots := make([]string, 0, len(seen))
	for s := range seen {
		slots = append(slots, s)
	}
	sort.Strings(slots)

	return slots
}
