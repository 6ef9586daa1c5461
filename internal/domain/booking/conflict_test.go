package booking

import (
	"reflect"
	"testing"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

func TestSlotTaken(t *testing.T) {
	reservations := []models.Reservation{
		{TimeSlot: "10:00", Status: "pending"},
		{TimeSlot: "15:30", Status: "confirmed"},
	}

	if !SlotTaken("10:00", reservations) {
		t.Error("10:00 should be taken")
	}
	if !SlotTaken("15:30", reservations) {
		t.Error("15:30 should be taken")
	}
	if SlotTaken("10:30", reservations) {
		t.Error("10:30 should be free")
	}
	if SlotTaken("10:00", nil) {
		t.Error("no reservations, nothing is taken")
	}
}

func TestInBusyIntervalHalfOpen(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Lisbon")
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, loc)
	}

	busy := []BusyInterval{{Start: at(14, 0), End: at(15, 0)}}

	tests := []struct {
		instant time.Time
		want    bool
	}{
		{at(13, 30), false},
		{at(14, 0), true},  // start inclusive
		{at(14, 30), true},
		{at(15, 0), false}, // end exclusive
		{at(15, 30), false},
	}

	for _, tt := range tests {
		if got := InBusyInterval(tt.instant, busy); got != tt.want {
			t.Errorf("InBusyInterval(%s) = %v, want %v",
				tt.instant.Format("15:04"), got, tt.want)
		}
	}
}

func TestSlotAvailable(t *testing.T) {
	date := monday()
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, date.Location())
	}

	reservations := []models.Reservation{{TimeSlot: "10:00", Status: "confirmed"}}
	busy := []BusyInterval{{Start: at(9, 30), End: at(10, 30)}}

	if SlotAvailable(date, "10:00", reservations, nil) {
		t.Error("reserved slot should not be available")
	}
	if SlotAvailable(date, "09:30", nil, busy) {
		t.Error("slot inside a busy interval should not be available")
	}
	if !SlotAvailable(date, "10:30", nil, busy) {
		t.Error("slot at busy-interval end should be available")
	}
	if !SlotAvailable(date, "09:00", reservations, busy) {
		t.Error("slot before busy interval and without reservation should be available")
	}
	if SlotAvailable(date, "garbage", nil, nil) {
		t.Error("malformed slot should never be available")
	}
}

// Full pass: windows expanded, then filtered by reservations and busy data.
func TestWindowsFilteredByConflicts(t *testing.T) {
	date := monday()
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, date.Location())
	}

	windows := []models.AvailabilityWindow{window("09:00", "11:00")}
	reservations := []models.Reservation{{TimeSlot: "10:00", Status: "pending"}}
	busy := []BusyInterval{{Start: at(9, 30), End: at(10, 30)}}

	var got []string
	for _, slot := range ExpandWindows(date, windows) {
		if SlotAvailable(date, slot, reservations, busy) {
			got = append(got, slot)
		}
	}

	want := []string{"09:00", "10:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("available slots = %v, want %v", got, want)
	}
}

func TestCancelledReservationDoesNotBlock(t *testing.T) {
	// The repository filters by OccupyingStatuses before the domain sees the
	// rows; this pins the status set itself.
	statuses := OccupyingStatuses()

	want := map[Status]bool{StatusPending: true, StatusConfirmed: true}
	if len(statuses) != len(want) {
		t.Fatalf("OccupyingStatuses() = %v", statuses)
	}
	for _, s := range statuses {
		if !want[s] {
			t.Fatalf("unexpected occupying status %q", s)
		}
	}
}
