package booking

import (
	"context"
	"time"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/dto"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

type ListBookingsByDay struct {
	repo domain.Repository
}

func NewListBookingsByDay(repo domain.Repository) *ListBookingsByDay {
	return &ListBookingsByDay{repo: repo}
}

func (uc *ListBookingsByDay) Execute(
	ctx context.Context,
	barbershopID uint,
	date time.Time,
) ([]dto.BookingListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	bookings, err := uc.repo.ListBookingsForPeriod(ctx, barbershopID, start, end)
	if err != nil {
		return nil, err
	}

	out := make([]dto.BookingListDTO, 0, len(bookings))
	for _, bk := range bookings {
		out = append(out, dto.BookingListDTO{
			ID:          bk.ID,
			PublicID:    bk.PublicID,
			ScheduledAt: bk.ScheduledAt,
			Slot:        domain.TimeOfDayOf(bk.ScheduledAt.In(loc)).String(),
			UserID:      bk.UserID,
			ServiceName: bk.Service.Name,
		})
	}

	return out, nil
}
