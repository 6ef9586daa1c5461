package booking

import (
	"context"
	"time"

	domain "github.com/LotusWellness01/spa-scheduler/internal/domain/booking"
	"github.com/LotusWellness01/spa-scheduler/internal/dto"
	"github.com/LotusWellness01/spa-scheduler/internal/timezone"
)

type ListReservationsByDate struct {
	repo domain.Repository
}

func NewListReservationsByDate(
	repo domain.Repository,
) *ListReservationsByDate {
	return &ListReservationsByDate{
		repo: repo,
	}
}

func (uc *ListReservationsByDate) Execute(
	ctx context.Context,
	studioID uint,
	date time.Time,
) ([]dto.ReservationListDTO, error) {

	studio, err := uc.repo.GetStudioByID(ctx, studioID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(studio.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

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
