package booking

import (
	"fmt"
	"time"

	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
)

// ===============================
// TimeOfDay
// ===============================

// TimeOfDay é um horário "de parede" (hora + minuto), sem data.
type TimeOfDay struct {
	Hour   int
	Minute int
}

func ParseTimeOfDay(hm string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", hm)
	if err != nil {
		return TimeOfDay{}, httperr.ErrBusiness("invalid_time")
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// TotalMinutes conta minutos desde a meia-noite (ordenação e passo do gerador).
func (t TimeOfDay) TotalMinutes() int {
	return t.Hour*60 + t.Minute
}

func (t TimeOfDay) Before(o TimeOfDay) bool {
	return t.TotalMinutes() < o.TotalMinutes()
}

// At ancora o horário no dia informado, no mesmo fuso do dia.
func (t TimeOfDay) At(day time.Time) time.Time {
	return time.Date(
		day.Year(), day.Month(), day.Day(),
		t.Hour, t.Minute, 0, 0,
		day.Location(),
	)
}
