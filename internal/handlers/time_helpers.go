package handlers

import (
	"time"

	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
	"github.com/claudiolibanez/fullstack-week-barber/internal/timezone"
)

// resolve o fuso oficial da barbearia
func locationFromShop(shop *models.Barbershop) *time.Location {
	return timezone.Location(shop.Timezone)
}

func parseDateInShop(shop *models.Barbershop, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromShop(shop),
	)
}
