package dto

import "time"

type BookingListDTO struct {
	ID          uint      `json:"id"`
	PublicID    string    `json:"public_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Slot        string    `json:"slot"`
	UserID      string    `json:"user_id"`
	ServiceName string    `json:"service_name"`
}
