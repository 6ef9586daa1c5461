package booking

import (
	"context"
	"time"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/dto"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

type ListReservationsByMonth struct {
	repo domain.Repository
}

func NewListReservationsByMonth(
	repo domain.Repository,
) *ListReservationsByMonth {
	return &ListReservationsByMonth{
		repo: repo,
	}
}

func (uc *ListReservationsByMonth) Execute(
	ctx context.Context,
	studioID uint,
	year int,
	month int,
) ([]dto.ReservationListDTO, error) {

	studio, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	reservations, err := uc.repo.ListReservationsForPeriod(
		ctx,
		studioID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.ReservationListDTO, 0, len(reservations))
	for _, rv := range reservations {
		out = append(out, dto.ReservationListDTO{
			ID:          rv.ID,
			Date:        rv.Date,
			TimeSlot:    rv.TimeSlot,
			Status:      rv.Status,
			ClientName:  rv.Client.Name,
			ServiceName: rv.Service.Name,
		})
	}

	return out, nil
}
