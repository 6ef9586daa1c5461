package booking

import (
	"context"
	"time"

	"github.com/LotusWellness01/spa-scheduler/internal/audit"
	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateReservationInput struct {
	StudioID  uint
	ServiceID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	Date  string // YYYY-MM-DD
	Time  string // HH:MM, on the 30-minute grid
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateReservation {
	return &CreateReservation{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute books a slot. The resolver only promised the slot was free when it
// was asked; the slot is re-validated here at write time and a concurrent
// booking surfaces as slot_conflict.
func (uc *CreateReservation) Execute(
	ctx context.Context,
	in CreateReservationInput,
) (*models.Reservation, error) {

	studio, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		loc,
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	if start.Minute()%30 != 0 {
		return nil, httperr.ErrBusiness("off_grid_time")
	}

	minAdvance := studio.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(studio.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	if _, err := uc.repo.GetService(ctx, in.StudioID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	date := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, loc)
	slot := start.Format(domain.SlotLayout)

	windows, err := uc.repo.GetWindowsForWeekday(
		ctx,
		in.StudioID,
		int(date.Weekday()),
		in.ServiceID,
	)
	if err != nil {
		return nil, err
	}

	if !slotInSchedule(date, slot, windows) {
		return nil, httperr.ErrBusiness("outside_schedule")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.StudioID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AssertSlotFree(ctx, in.StudioID, date, slot); err != nil {
		return nil, err
	}

	rv := &models.Reservation{
		StudioID:  in.StudioID,
		ServiceID: in.ServiceID,
		ClientID:  client.ID,
		Date:      date,
		TimeSlot:  slot,
		Status:    string(domain.InitialStatus()),
		Notes:     in.Notes,
	}

	if err := uc.repo.CreateReservation(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: in.StudioID,
		Action:   "reservation_created",
		Entity:   "reservation",
		EntityID: &rv.ID,
	})

	return rv, nil
}

func slotInSchedule(date time.Time, slot string, windows []models.AvailabilityWindow) bool {
	for _, s := range domain.ExpandWindows(date, windows) {
		if s == slot {
			return true
		}
	}
	return false
}
