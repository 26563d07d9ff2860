package booking

import (
	"time"

	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

// ===============================
// Política de agenda
// ===============================

// HoursPolicy define expediente e granularidade dos slots de uma barbearia.
type HoursPolicy struct {
	Opens       TimeOfDay
	Closes      TimeOfDay
	SlotMinutes int

	// MinAdvanceDays: 1 = agendamentos só a partir de amanhã
	MinAdvanceDays int
}

func PolicyOf(shop *models.Barbershop) (HoursPolicy, error) {
	opens, err := ParseTimeOfDay(shop.OpeningTime)
	if err != nil {
		return HoursPolicy{}, httperr.ErrBusiness("invalid_policy")
	}

	closes, err := ParseTimeOfDay(shop.ClosingTime)
	if err != nil {
		return HoursPolicy{}, httperr.ErrBusiness("invalid_policy")
	}

	if shop.SlotMinutes <= 0 || !opens.Before(closes) {
		return HoursPolicy{}, httperr.ErrBusiness("invalid_policy")
	}

	minAdvance := shop.MinAdvanceDays
	if minAdvance <= 0 {
		minAdvance = 1
	}

	return HoursPolicy{
		Opens:          opens,
		Closes:         closes,
		SlotMinutes:    shop.SlotMinutes,
		MinAdvanceDays: minAdvance,
	}, nil
}

// EarliestDay devolve o primeiro dia agendável (meia-noite local).
func (p HoursPolicy) EarliestDay(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return day.AddDate(0, 0, p.MinAdvanceDays)
}

// GenerateSlots produz a sequência ordenada de slots candidatos do dia.
//
// Os slots vão da abertura (inclusive) até o fechamento (exclusive), de
// SlotMinutes em SlotMinutes. Um slot cujo intervalo ultrapassaria o
// fechamento nunca é emitido. Para o dia corrente, slots já passados
// são omitidos.
func GenerateSlots(day time.Time, policy HoursPolicy, now time.Time) []TimeOfDay {
	if policy.SlotMinutes <= 0 || !policy.Opens.Before(policy.Closes) {
		return []TimeOfDay{}
	}

	sameDay := day.Year() == now.Year() &&
		day.Month() == now.Month() &&
		day.Day() == now.Day()

	slots := []TimeOfDay{}
	for m := policy.Opens.TotalMinutes(); m+policy.SlotMinutes <= policy.Closes.TotalMinutes(); m += policy.SlotMinutes {
		slot := TimeOfDay{Hour: m / 60, Minute: m % 60}

		if sameDay && !slot.At(day).After(now) {
			continue
		}

		slots = append(slots, slot)
	}

	return slots
}
