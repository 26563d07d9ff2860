package models

import "time"

type Service struct {
	ID           uint `gorm:"primaryKey" json:"id"`
	BarbershopID uint `gorm:"index" json:"barbershop_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:255" json:"description"`

	// Preço em centavos (valor monetário de ponto fixo)
	PriceCents int64 `json:"price_cents"`

	ImageURL string `gorm:"size:255" json:"image_url"`
	Category string `gorm:"size:50" json:"category"`
	Active   bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
