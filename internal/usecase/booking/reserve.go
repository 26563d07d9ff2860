package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/claudiolibanez/fullstack-week-barber/internal/audit"
	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type ReserveInput struct {
	BarbershopID uint
	ServiceID    uint
	UserID       string

	Date string // YYYY-MM-DD
	Time string // HH:mm
}

// ======================================================
// USE CASE
// ======================================================

// Reserve é o coordenador da reserva: valida a requisição, reconfere a
// disponibilidade contra uma leitura fresca e só então grava. A janela
// entre a conferência e a gravação continua coberta pelo índice único
// do banco; em corrida, exatamente um concorrente confirma.
type Reserve struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	cache AvailabilityCache

	commitTimeout time.Duration
}

func NewReserve(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
	cache AvailabilityCache,
) *Reserve {
	return &Reserve{
		repo:          repo,
		audit:         auditDispatcher,
		cache:         cache,
		commitTimeout: 5 * time.Second,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Reserve) Execute(
	ctx context.Context,
	in ReserveInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// Validação (sem efeitos colaterais)
	// --------------------------------------------------
	if in.BarbershopID == 0 || in.ServiceID == 0 ||
		in.UserID == "" || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	shop, err := uc.repo.GetBarbershopByID(ctx, in.BarbershopID)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetService(ctx, in.BarbershopID, in.ServiceID); err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	policy, err := domain.PolicyOf(shop)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	day, err := time.ParseInLocation("2006-01-02", in.Date, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	slot, err := domain.ParseTimeOfDay(in.Time)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_request")
	}

	// Antecedência mínima (padrão: só a partir de amanhã)
	now := timezone.NowIn(shop.Timezone)
	if day.Before(policy.EarliestDay(now)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	// --------------------------------------------------
	// Conferência (releitura imediatamente antes do commit)
	// --------------------------------------------------
	candidates := domain.GenerateSlots(day, policy, now)
	if !domain.ContainsSlot(candidates, slot) {
		return nil, httperr.ErrBusiness("invalid_slot")
	}

	bookings, err := uc.repo.ListBookingsForDay(
		ctx,
		shop.ID,
		day,
		day.Add(24*time.Hour),
	)
	if err != nil {
		return nil, err
	}

	for i := range bookings {
		bookings[i].ScheduledAt = bookings[i].ScheduledAt.In(loc)
	}

	free := domain.FilterAvailable(candidates, bookings)
	if !domain.ContainsSlot(free, slot) {
		uc.dispatchConflict(shop.ID, in, slot)
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// Commit (único ponto com efeito colateral)
	// --------------------------------------------------
	bk := &models.Booking{
		PublicID:     uuid.NewString(),
		BarbershopID: shop.ID,
		ServiceID:    in.ServiceID,
		UserID:       in.UserID,
		ScheduledAt:  slot.At(day),
	}

	cctx, cancel := context.WithTimeout(ctx, uc.commitTimeout)
	defer cancel()

	if err := uc.repo.CreateBooking(cctx, bk); err != nil {
		if httperr.IsBusiness(err, "slot_taken") {
			// perdeu a corrida para outro cliente
			uc.dispatchConflict(shop.ID, in, slot)
			return nil, err
		}

		if errors.Is(err, context.DeadlineExceeded) {
			// transitório: o chamador pode repetir a tentativa inteira
			return nil, httperr.ErrBusiness("unavailable")
		}

		return nil, err
	}

	if uc.cache != nil {
		uc.cache.Invalidate(ctx, shop.ID, in.Date)
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			BarbershopID: shop.ID,
			UserID:       in.UserID,
			Action:       "booking_created",
			Entity:       "booking",
			EntityID:     &bk.ID,
		})
	}

	return bk, nil
}

func (uc *Reserve) dispatchConflict(shopID uint, in ReserveInput, slot domain.TimeOfDay) {
	if uc.audit == nil {
		return
	}

	uc.audit.Dispatch(audit.Event{
		BarbershopID: shopID,
		UserID:       in.UserID,
		Action:       "booking_conflict",
		Entity:       "booking",
		Metadata: map[string]any{
			"date": in.Date,
			"slot": slot.String(),
		},
	})
}
