package models

import "time"

type Barbershop struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	ImageURL string `gorm:"size:255" json:"image_url"`
	Timezone string `gorm:"size:50" json:"timezone"`

	// Política de agenda: expediente + granularidade dos slots
	OpeningTime string `gorm:"size:5;default:'09:00'" json:"opening_time"`
	ClosingTime string `gorm:"size:5;default:'21:00'" json:"closing_time"`
	SlotMinutes int    `gorm:"default:45" json:"slot_minutes"`

	// Antecedência mínima em dias (1 = só a partir de amanhã)
	MinAdvanceDays int `gorm:"default:1" json:"min_advance_days"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
