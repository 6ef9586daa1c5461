package booking

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

// ======================================================
// FAKES
// ======================================================

type fakeRepo struct {
	windows      []models.AvailabilityWindow
	reservations []models.Reservation

	windowsErr      error
	reservationsErr error
	serviceErr      error
	assertErr       error
	createErr       error
	calendarID      string

	created *models.Reservation
}

func (f *fakeRepo) GetStudioByID(ctx context.Context, id uint) (*models.Studio, error) {
	return &models.Studio{ID: id, Timezone: "Europe/Lisbon", CalendarID: f.calendarID}, nil
}

func (f *fakeRepo) GetStudioBySlug(ctx context.Context, slug string) (*models.Studio, error) {
	return &models.Studio{ID: 1, Slug: slug, Timezone: "Europe/Lisbon"}, nil
}

func (f *fakeRepo) GetService(ctx context.Context, studioID, serviceID uint) (*models.Service, error) {
	if f.serviceErr != nil {
		return nil, f.serviceErr
	}
	return &models.Service{ID: serviceID, StudioID: studioID, DurationMin: 30}, nil
}

func (f *fakeRepo) GetOrCreateClient(ctx context.Context, studioID uint, name, phone, email string) (*models.Client, error) {
	return &models.Client{ID: 1, StudioID: studioID, Name: name}, nil
}

func (f *fakeRepo) GetWindowsForWeekday(ctx context.Context, studioID uint, weekday int, serviceID uint) ([]models.AvailabilityWindow, error) {
	if f.windowsErr != nil {
		return nil, f.windowsErr
	}
	return f.windows, nil
}

func (f *fakeRepo) ListReservationsForDate(ctx context.Context, studioID uint, date time.Time, statuses []domain.Status) ([]models.Reservation, error) {
	if f.reservationsErr != nil {
		return nil, f.reservationsErr
	}
	return f.reservations, nil
}

func (f *fakeRepo) CreateReservation(ctx context.Context, rv *models.Reservation) error {
	if f.createErr != nil {
		return f.createErr
	}
	rv.ID = 1
	f.created = rv
	return nil
}

func (f *fakeRepo) AssertSlotFree(ctx context.Context, studioID uint, date time.Time, slot string) error {
	return f.assertErr
}

func (f *fakeRepo) GetReservationForStudio(ctx context.Context, reservationID, studioID uint) (*models.Reservation, error) {
	return nil, errors.New("not found")
}

func (f *fakeRepo) UpdateReservation(ctx context.Context, rv *models.Reservation) error {
	return nil
}

func (f *fakeRepo) ListReservationsForPeriod(ctx context.Context, studioID uint, start, end time.Time) ([]models.Reservation, error) {
	return nil, nil
}

var _ domain.Repository = (*fakeRepo)(nil)

type fakeBusySource struct {
	intervals []domain.BusyInterval
	err       error

	gotCalendarID string
}

func (f *fakeBusySource) FetchBusyIntervals(ctx context.Context, calendarID string, start, end time.Time) ([]domain.BusyInterval, error) {
	f.gotCalendarID = calendarID
	if f.err != nil {
		return nil, f.err
	}
	return f.intervals, nil
}

// ======================================================
// TESTS
// ======================================================

func testDate() time.Time {
	loc, _ := time.LoadLocation("Europe/Lisbon")
	// 2026-03-02 is a Monday
	return time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
}

func testWindows() []models.AvailabilityWindow {
	return []models.AvailabilityWindow{
		{Weekday: 1, StartTime: "09:00", EndTime: "11:00", Active: true},
	}
}

func TestResolveAvailability(t *testing.T) {
	date := testDate()

	uc := NewResolveAvailability(&fakeRepo{windows: testWindows()}, nil)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}
	if got.Degraded {
		t.Error("result should not be degraded without a busy source")
	}
	if got.RequestTag == "" {
		t.Error("a request tag should be generated when none is supplied")
	}
	if got.Date != "2026-03-02" {
		t.Errorf("date = %q, want 2026-03-02", got.Date)
	}
}

func TestResolveAvailabilityFiltersConflicts(t *testing.T) {
	date := testDate()
	at := func(h, m int) time.Time {
		return time.Date(2026, 3, 2, h, m, 0, 0, date.Location())
	}

	repo := &fakeRepo{
		windows:      testWindows(),
		reservations: []models.Reservation{{TimeSlot: "09:00", Status: "confirmed"}},
	}
	busy := &fakeBusySource{
		intervals: []domain.BusyInterval{{Start: at(10, 0), End: at(10, 30)}},
	}

	uc := NewResolveAvailability(repo, busy)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID:  1,
		ServiceID: 1,
		Date:      date,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"09:30", "10:30"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}
	if got.Degraded {
		t.Error("a successful busy fetch must not mark the result degraded")
	}
}

func TestResolveAvailabilityUsesStudioCalendar(t *testing.T) {
	repo := &fakeRepo{windows: testWindows(), calendarID: "bookings@lotus.example"}
	busy := &fakeBusySource{}

	uc := NewResolveAvailability(repo, busy)

	if _, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID: 1, ServiceID: 1, Date: testDate(),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if busy.gotCalendarID != "bookings@lotus.example" {
		t.Fatalf("busy source queried calendar %q, want the studio's", busy.gotCalendarID)
	}
}

func TestResolveAvailabilityEchoesRequestTag(t *testing.T) {
	uc := NewResolveAvailability(&fakeRepo{windows: testWindows()}, nil)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID:   1,
		ServiceID:  1,
		Date:       testDate(),
		RequestTag: "tag-42",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.RequestTag != "tag-42" {
		t.Fatalf("request tag = %q, want tag-42", got.RequestTag)
	}
}

func TestResolveAvailabilityIdempotent(t *testing.T) {
	repo := &fakeRepo{windows: testWindows()}
	uc := NewResolveAvailability(repo, nil)

	in := domain.AvailabilityInput{StudioID: 1, ServiceID: 1, Date: testDate()}

	first, err := uc.Execute(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 5; i++ {
		got, err := uc.Execute(context.Background(), in)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(got.Slots, first.Slots) {
			t.Fatalf("run %d slots differ: %v vs %v", i, got.Slots, first.Slots)
		}
	}
}

func TestResolveAvailabilityBusyFailureDegrades(t *testing.T) {
	repo := &fakeRepo{windows: testWindows()}
	busy := &fakeBusySource{err: domain.ErrCalendarUnavailable}

	uc := NewResolveAvailability(repo, busy)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID:  1,
		ServiceID: 1,
		Date:      testDate(),
	})
	if err != nil {
		t.Fatalf("busy failure must not surface as an error, got %v", err)
	}
	if !got.Degraded {
		t.Error("busy failure should mark the result degraded")
	}

	want := []string{"09:00", "09:30", "10:00", "10:30"}
	if !reflect.DeepEqual(got.Slots, want) {
		t.Fatalf("slots = %v, want %v", got.Slots, want)
	}
}

func TestResolveAvailabilitySourceFailures(t *testing.T) {
	t.Run("windows unavailable", func(t *testing.T) {
		repo := &fakeRepo{windowsErr: errors.New("db down")}
		uc := NewResolveAvailability(repo, nil)

		_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
			StudioID: 1, ServiceID: 1, Date: testDate(),
		})
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			t.Fatalf("err = %v, want ErrSourceUnavailable", err)
		}
	})

	t.Run("reservations unavailable", func(t *testing.T) {
		repo := &fakeRepo{windows: testWindows(), reservationsErr: errors.New("db down")}
		uc := NewResolveAvailability(repo, nil)

		_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
			StudioID: 1, ServiceID: 1, Date: testDate(),
		})
		if !errors.Is(err, domain.ErrSourceUnavailable) {
			t.Fatalf("err = %v, want ErrSourceUnavailable", err)
		}
	})
}

func TestResolveAvailabilityZeroDate(t *testing.T) {
	uc := NewResolveAvailability(&fakeRepo{}, nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{StudioID: 1, ServiceID: 1})
	if err == nil {
		t.Fatal("expected an error for a zero date")
	}
}

func TestResolveAvailabilityUnknownService(t *testing.T) {
	uc := NewResolveAvailability(&fakeRepo{serviceErr: errors.New("not found")}, nil)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID: 1, ServiceID: 99, Date: testDate(),
	})
	if err == nil {
		t.Fatal("expected an error for an unknown service")
	}
}

func TestResolveAvailabilityNoWindows(t *testing.T) {
	uc := NewResolveAvailability(&fakeRepo{}, nil)

	got, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		StudioID: 1, ServiceID: 1, Date: testDate(),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Slots) != 0 {
		t.Fatalf("slots = %v, want empty", got.Slots)
	}
}
