package booking

import (
	"testing"
	"time"

	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

func bookingAt(day time.Time, hm string) models.Booking {
	tod, _ := ParseTimeOfDay(hm)
	return models.Booking{ScheduledAt: tod.At(day)}
}

func TestFilterAvailable_ExcludesBooked(t *testing.T) {
	policy := mustPolicy(t, "09:00", "12:00", 60)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, policy, now)
	busy := []models.Booking{bookingAt(day, "10:00")}

	free := FilterAvailable(slots, busy)

	got := slotStrings(free)
	want := []string{"09:00", "11:00"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFilterAvailable_SetEquality(t *testing.T) {
	// exclui exatamente os slots presentes em bookings, nada além
	policy := mustPolicy(t, "08:00", "18:00", 30)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, policy, now)

	busyTimes := []string{"08:30", "12:00", "17:30"}
	busy := make([]models.Booking, 0, len(busyTimes))
	busySet := make(map[string]bool)
	for _, hm := range busyTimes {
		busy = append(busy, bookingAt(day, hm))
		busySet[hm] = true
	}

	free := FilterAvailable(slots, busy)

	if len(free) != len(slots)-len(busy) {
		t.Fatalf("expected %d free slots, got %d", len(slots)-len(busy), len(free))
	}
	for _, s := range free {
		if busySet[s.String()] {
			t.Fatalf("booked slot %s leaked into result", s)
		}
	}
}

func TestFilterAvailable_AllTaken(t *testing.T) {
	policy := mustPolicy(t, "09:00", "11:00", 60)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, policy, now)
	busy := []models.Booking{bookingAt(day, "09:00"), bookingAt(day, "10:00")}

	free := FilterAvailable(slots, busy)
	if free == nil {
		t.Fatal("expected empty (non-nil) result")
	}
	if len(free) != 0 {
		t.Fatalf("expected no free slots, got %v", slotStrings(free))
	}
}

func TestFilterAvailable_PreservesOrder(t *testing.T) {
	policy := mustPolicy(t, "09:00", "15:00", 45)
	day := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 9, 1, 8, 0, 0, 0, time.UTC)

	slots := GenerateSlots(day, policy, now)
	busy := []models.Booking{bookingAt(day, "10:30")}

	free := FilterAvailable(slots, busy)
	for i := 1; i < len(free); i++ {
		if !free[i-1].Before(free[i]) {
			t.Fatalf("order broken at %d: %s then %s", i, free[i-1], free[i])
		}
	}
}

func TestContainsSlot(t *testing.T) {
	slots := []TimeOfDay{{Hour: 9}, {Hour: 10}, {Hour: 11}}

	if !ContainsSlot(slots, TimeOfDay{Hour: 10}) {
		t.Fatal("expected 10:00 to be found")
	}
	if ContainsSlot(slots, TimeOfDay{Hour: 10, Minute: 30}) {
		t.Fatal("10:30 should not be found")
	}
}
