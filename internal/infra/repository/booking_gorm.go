package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

const pgUniqueViolation = "23505"

type BookingGormRepository struct {
	db *gorm.DB
}

func NewBookingGormRepository(db *gorm.DB) *BookingGormRepository {
	return &BookingGormRepository{db: db}
}

// --------------------------------------------------
// Barbershop
// --------------------------------------------------

func (r *BookingGormRepository) GetBarbershopByID(
	ctx context.Context,
	id uint,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).First(&shop, id).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

func (r *BookingGormRepository) GetBarbershopBySlug(
	ctx context.Context,
	slug string,
) (*models.Barbershop, error) {

	var shop models.Barbershop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *BookingGormRepository) GetService(
	ctx context.Context,
	barbershopID uint,
	serviceID uint,
) (*models.Service, error) {

	var service models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND barbershop_id = ? AND active = true", serviceID, barbershopID).
		First(&service).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

// --------------------------------------------------
// Booking (leitura)
// --------------------------------------------------

func (r *BookingGormRepository) ListBookingsForDay(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking
	if err := r.db.WithContext(ctx).
		Select("id", "barbershop_id", "scheduled_at").
		Where(
			"barbershop_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			barbershopID, start, end,
		).
		Order("scheduled_at ASC").
		Find(&bookings).Error; err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForPeriod(
	ctx context.Context,
	barbershopID uint,
	start time.Time,
	end time.Time,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Service").
		Where(
			"barbershop_id = ? AND scheduled_at >= ? AND scheduled_at < ?",
			barbershopID,
			start,
			end,
		).
		Order("scheduled_at ASC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *BookingGormRepository) ListBookingsForUser(
	ctx context.Context,
	userID string,
) ([]models.Booking, error) {

	var bookings []models.Booking

	err := r.db.WithContext(ctx).
		Preload("Service").
		Preload("Barbershop").
		Where("user_id = ?", userID).
		Order("scheduled_at DESC").
		Find(&bookings).Error

	if err != nil {
		return nil, err
	}

	return bookings, nil
}

// --------------------------------------------------
// Booking (escrita)
// --------------------------------------------------

// CreateBooking delega a unicidade de (barbershop_id, scheduled_at) ao
// índice único do Postgres. Check-then-insert na aplicação seria sujeito
// a corrida; aqui o perdedor recebe 23505 e devolvemos "slot_taken".
func (r *BookingGormRepository) CreateBooking(
	ctx context.Context,
	bk *models.Booking,
) error {

	if err := r.db.WithContext(ctx).Create(bk).Error; err != nil {
		if isUniqueViolation(err) {
			return httperr.ErrBusiness("slot_taken")
		}
		return err
	}

	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// Compile-time check
var _ domain.Repository = (*BookingGormRepository)(nil)
