package models

import "time"

type Booking struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	PublicID string `gorm:"size:36;uniqueIndex" json:"public_id"`

	BarbershopID uint       `gorm:"uniqueIndex:idx_bookings_shop_slot" json:"barbershop_id"`
	Barbershop   Barbershop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barbershop"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	// Identificador do usuário autenticado (emitido pelo provedor de identidade)
	UserID string `gorm:"size:64;index;not null" json:"user_id"`

	// Início do slot, granularidade de minuto. O índice único composto
	// (barbershop_id, scheduled_at) é o que impede double-booking.
	ScheduledAt time.Time `gorm:"uniqueIndex:idx_bookings_shop_slot;not null" json:"scheduled_at"`

	CreatedAt time.Time `json:"created_at"`
}
