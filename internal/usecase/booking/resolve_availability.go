package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
)

type ResolveAvailability struct {
	repo domain.Repository
	busy domain.BusySource
}

func NewResolveAvailability(
	repo domain.Repository,
	busy domain.BusySource,
) *ResolveAvailability {
	return &ResolveAvailability{
		repo: repo,
		busy: busy,
	}
}

// Execute resolves the bookable slots for one service on one date.
//
// The three sources have no data dependency on each other and are fetched
// concurrently. Window or reservation failures surface as
// domain.ErrSourceUnavailable; a busy-interval failure only degrades the
// result, it never blocks bookings.
func (uc *ResolveAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailabilityResult, error) {

	if in.Date.IsZero() {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	studio, err := uc.repo.GetStudioByID(ctx, in.StudioID)
	if err != nil {
		return nil, httperr.ErrBusiness("studio_not_found")
	}

	if _, err := uc.repo.GetService(ctx, in.StudioID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	weekday := int(in.Date.Weekday())

	loc := in.Date.Location()
	monthStart := time.Date(in.Date.Year(), in.Date.Month(), 1, 0, 0, 0, 0, loc)
	monthEnd := monthStart.AddDate(0, 1, 0)

	var (
		windows      []models.AvailabilityWindow
		reservations []models.Reservation
		busy         []domain.BusyInterval
		degraded     bool
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		windows, err = uc.repo.GetWindowsForWeekday(
			gctx,
			in.StudioID,
			weekday,
			in.ServiceID,
		)
		if err != nil {
			return fmt.Errorf("%w: recurring windows: %v", domain.ErrSourceUnavailable, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		reservations, err = uc.repo.ListReservationsForDate(
			gctx,
			in.StudioID,
			in.Date,
			domain.OccupyingStatuses(),
		)
		if err != nil {
			return fmt.Errorf("%w: reservations: %v", domain.ErrSourceUnavailable, err)
		}
		return nil
	})

	g.Go(func() error {
		if uc.busy == nil {
			return nil
		}
		intervals, err := uc.busy.FetchBusyIntervals(gctx, studio.CalendarID, monthStart, monthEnd)
		if err != nil {
			// Soft-fail: the overlay is non-authoritative.
			degraded = true
			zap.L().Warn("external calendar fetch failed, resolving without busy data",
				zap.Uint("studio_id", in.StudioID),
				zap.Error(err),
			)
			return nil
		}
		busy = intervals
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	candidates := domain.ExpandWindows(in.Date, windows)

	slots := make([]string, 0, len(candidates))
	for _, slot := range candidates {
		if domain.SlotAvailable(in.Date, slot, reservations, busy) {
			slots = append(slots, slot)
		}
	}

	tag := in.RequestTag
	if tag == "" {
		tag = uuid.NewString()
	}

	return &domain.AvailabilityResult{
		RequestTag: tag,
		Date:       in.Date.Format("2006-01-02"),
		Slots:      slots,
		Degraded:   degraded,
	}, nil
}
