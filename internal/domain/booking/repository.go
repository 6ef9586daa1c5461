package booking

import (
	"context"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type Repository interface {
	// -------- Studio --------
	GetStudioByID(
		ctx context.Context,
		id uint,
	) (*models.Studio, error)

	GetStudioBySlug(
		ctx context.Context,
		slug string,
	) (*models.Studio, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		studioID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		studioID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	// -------- Availability sources --------

	// GetWindowsForWeekday returns the active windows matching the weekday,
	// both studio-wide windows (nil service id) and windows scoped to the
	// given service.
	GetWindowsForWeekday(
		ctx context.Context,
		studioID uint,
		weekday int,
		serviceID uint,
	) ([]models.AvailabilityWindow, error)

	// ListReservationsForDate returns reservations on the calendar date with
	// status in the given set. Callers resolving availability pass
	// OccupyingStatuses() so cancelled and completed bookings never block.
	ListReservationsForDate(
		ctx context.Context,
		studioID uint,
		date time.Time,
		statuses []Status,
	) ([]models.Reservation, error)

	// -------- Reservation (create / conflict) --------
	CreateReservation(
		ctx context.Context,
		rv *models.Reservation,
	) error

	// AssertSlotFree re-validates at write time that no pending/confirmed
	// reservation holds the slot. Returns a slot_conflict business error on
	// a collision.
	AssertSlotFree(
		ctx context.Context,
		studioID uint,
		date time.Time,
		slot string,
	) error

	// -------- Reservation (state change) --------
	GetReservationForStudio(
		ctx context.Context,
		reservationID uint,
		studioID uint,
	) (*models.Reservation, error)

	UpdateReservation(
		ctx context.Context,
		rv *models.Reservation,
	) error

	ListReservationsForPeriod(
		ctx context.Context,
		studioID uint,
		start time.Time,
		end time.Time,
	) ([]models.Reservation, error)
}

// BusySource is the read contract of the external calendar. Implementations
// fetch fresh on every call; results are never cached beyond the query.
// calendarID selects the studio's connected calendar; an empty id falls back
// to the implementation's default.
type BusySource interface {
	FetchBusyIntervals(
		ctx context.Context,
		calendarID string,
		start time.Time,
		end time.Time,
	) ([]BusyInterval, error)
}
