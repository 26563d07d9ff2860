package booking

import (
	"context"
	"time"

	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

type Repository interface {
	// -------- Barbershop --------
	GetBarbershopByID(
		ctx context.Context,
		id uint,
	) (*models.Barbershop, error)

	GetBarbershopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Barbershop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		barbershopID uint,
		serviceID uint,
	) (*models.Service, error)

	// -------- Booking (leitura) --------
	ListBookingsForDay(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForPeriod(
		ctx context.Context,
		barbershopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Booking, error)

	ListBookingsForUser(
		ctx context.Context,
		userID string,
	) ([]models.Booking, error)

	// -------- Booking (escrita) --------
	//
	// CreateBooking é o único ponto de mutação. A unicidade de
	// (barbershop_id, scheduled_at) é garantida pelo índice único do
	// banco; concorrentes perdedores recebem erro "slot_taken".
	CreateBooking(
		ctx context.Context,
		bk *models.Booking,
	) error
}
