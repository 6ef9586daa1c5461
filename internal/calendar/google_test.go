package calendar

import (
	"testing"
	"time"

	gcal "google.golang.org/api/calendar/v3"
)

func TestEventInterval(t *testing.T) {
	loc, _ := time.LoadLocation("Europe/Lisbon")

	t.Run("timed event", func(t *testing.T) {
		ev := &gcal.Event{
			Start: &gcal.EventDateTime{DateTime: "2026-03-02T14:00:00Z"},
			End:   &gcal.EventDateTime{DateTime: "2026-03-02T15:00:00Z"},
		}

		iv, ok := eventInterval(ev, loc)
		if !ok {
			t.Fatal("expected ok")
		}
		if !iv.Start.Equal(time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)) {
			t.Errorf("start = %v", iv.Start)
		}
		if !iv.End.Equal(time.Date(2026, 3, 2, 15, 0, 0, 0, time.UTC)) {
			t.Errorf("end = %v", iv.End)
		}
	})

	t.Run("all-day event blocks the local day", func(t *testing.T) {
		ev := &gcal.Event{
			Start: &gcal.EventDateTime{Date: "2026-03-02"},
			End:   &gcal.EventDateTime{Date: "2026-03-03"},
		}

		iv, ok := eventInterval(ev, loc)
		if !ok {
			t.Fatal("expected ok")
		}
		if !iv.Start.Equal(time.Date(2026, 3, 2, 0, 0, 0, 0, loc)) {
			t.Errorf("start = %v", iv.Start)
		}
		if !iv.End.Equal(time.Date(2026, 3, 3, 0, 0, 0, 0, loc)) {
			t.Errorf("end = %v", iv.End)
		}
	})

	t.Run("missing times", func(t *testing.T) {
		if _, ok := eventInterval(&gcal.Event{}, loc); ok {
			t.Error("event without start/end must be skipped")
		}
		ev := &gcal.Event{
			Start: &gcal.EventDateTime{DateTime: "2026-03-02T14:00:00Z"},
			End:   &gcal.EventDateTime{},
		}
		if _, ok := eventInterval(ev, loc); ok {
			t.Error("event without end must be skipped")
		}
	})

	t.Run("inverted interval", func(t *testing.T) {
		ev := &gcal.Event{
			Start: &gcal.EventDateTime{DateTime: "2026-03-02T15:00:00Z"},
			End:   &gcal.EventDateTime{DateTime: "2026-03-02T14:00:00Z"},
		}
		if _, ok := eventInterval(ev, loc); ok {
			t.Error("inverted interval must be skipped")
		}
	})
}
