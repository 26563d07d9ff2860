package booking

import (
	"context"
	"time"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/dto"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

type ListBookingsByMonth struct {
	repo domain.Repository
}

func NewListBookingsByMonth(repo domain.Repository) *ListBookingsByMonth {
	return &ListBookingsByMonth{repo: repo}
}

// Execute lista os agendamentos do mês (backing do calendário do dono).
func (uc *ListBookingsByMonth) Execute(
	ctx context.Context,
	barbershopID uint,
	month string, // YYYY-MM
) ([]dto.BookingListDTO, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, barbershopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start, err := time.ParseInLocation("2006-01", month, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_month")
	}
	end := start.AddDate(0, 1, 0)

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
