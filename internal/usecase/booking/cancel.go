package booking

import (
	"context"

	"github.com/LotusWellness01/spa-scheduler/internal/audit"
	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/httperr"
	"github.com/LotusWellness01/spa-scheduler/internal/models"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelReservation) Execute(
	ctx context.Context,
	studioID uint,
	userID uint,
	reservationID uint,
) (*models.Reservation, error) {

	studio, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	rv, err := uc.repo.GetReservationForStudio(ctx, reservationID, studioID)
	if err != nil {
		return nil, httperr.ErrBusiness("reservation_not_found")
	}

	now := timezone.NowIn(studio.Timezone)
	if err := domain.Cancel(rv, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateReservation(ctx, rv); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		StudioID: studioID,
		UserID:   &userID,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: &rv.ID,
	})

	return rv, nil
}
