package booking

import (
	"context"
	"time"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

// AvailabilityCache é o cache opcional de slots livres por (barbearia, dia).
type AvailabilityCache interface {
	Get(ctx context.Context, barbershopID uint, date string) ([]string, bool)
	Set(ctx context.Context, barbershopID uint, date string, slots []string)
	Invalidate(ctx context.Context, barbershopID uint, date string)
}

type GetAvailability struct {
	repo  domain.Repository
	cache AvailabilityCache
}

func NewGetAvailability(repo domain.Repository, cache AvailabilityCache) *GetAvailability {
	return &GetAvailability{repo: repo, cache: cache}
}

// Execute devolve os slots ainda livres do dia, em ordem ascendente.
// Lista vazia é um resultado válido (dia lotado ou sem expediente útil).
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]string, error) {

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	loc := timezone.Location(shop.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// A granularidade é da barbearia, não do serviço, então o cache é
	// por (barbearia, dia).
	if uc.cache != nil {
		if slots, ok := uc.cache.Get(ctx, shop.ID, in.Date); ok {
			return slots, nil
		}
	}

	policy, err := domain.PolicyOf(shop)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)
	candidates := domain.GenerateSlots(day, policy, now)

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		shop.ID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	// timestamps do banco chegam em UTC; a comparação de slot é local
	for i := range bookings {
		bookings[i].ScheduledAt = bookings[i].ScheduledAt.In(loc)
	}

	free := domain.FilterAvailable(candidates, bookings)

	out := make([]string, 0, len(free))
	for _, s := range free {
		out = append(out, s.String())
	}

	if uc.cache != nil {
		uc.cache.Set(ctx, shop.ID, in.Date, out)
	}

	return out, nil
}
