package booking

import "github.com/claudiolibanez/fullstack-week-barber/internal/models"

type AvailabilityInput struct {
	BarbershopID uint
	ServiceID    uint
	Date         string // YYYY-MM-DD
}

// FilterAvailable remove da sequência de candidatos os slots cujo horário
// (hora + minuto) coincide com um agendamento existente. A ordem ascendente
// dos candidatos é preservada.
func FilterAvailable(slots []TimeOfDay, bookings []models.Booking) []TimeOfDay {
	taken := make(map[TimeOfDay]bool, len(bookings))
	for _, b := range bookings {
		taken[TimeOfDayOf(b.ScheduledAt)] = true
	}

	free := []TimeOfDay{}
	for _, s := range slots {
		if !taken[s] {
			free = append(free, s)
		}
	}

	return free
}

// ContainsSlot verifica se um horário pertence à sequência de slots.
func ContainsSlot(slots []TimeOfDay, slot TimeOfDay) bool {
	for _, s := range slots {
		if s == slot {
			return true
		}
	}
	return false
}
