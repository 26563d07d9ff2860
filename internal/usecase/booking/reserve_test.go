package booking

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	domain "github.com/claudiolibanez/fullstack-week-barber/internal/domain/booking"
	"github.com/claudiolibanez/fullstack-week-barber/internal/httperr"
	"github.com/claudiolibanez/fullstack-week-barber/internal/models"
)

// ======================================================
// MOCK STORE
// ======================================================

// mockStore reproduz o contrato do repositório real: CreateBooking é
// atômico e rejeita slot duplicado por (barbershop_id, scheduled_at).
type mockStore struct {
	mu       sync.Mutex
	shop     models.Barbershop
	service  models.Service
	bookings []models.Booking
	nextID   uint

	blockCreate bool // segura o create até o contexto expirar
}

func newMockStore() *mockStore {
	return &mockStore{
		shop: models.Barbershop{
			ID:             1,
			Name:           "Vintage Barber",
			Slug:           "vintage-barber",
			Timezone:       "UTC",
			OpeningTime:    "09:00",
			ClosingTime:    "12:00",
			SlotMinutes:    60,
			MinAdvanceDays: 1,
		},
		service: models.Service{
			ID:           7,
			BarbershopID: 1,
			Name:         "Corte de cabelo",
			PriceCents:   5000,
			Active:       true,
		},
	}
}

func (m *mockStore) GetBarbershopByID(_ context.Context, id uint) (*models.Barbershop, error) {
	if id != m.shop.ID {
		return nil, fmt.Errorf("record not found")
	}
	shop := m.shop
	return &shop, nil
}

func (m *mockStore) GetBarbershopBySlug(_ context.Context, slug string) (*models.Barbershop, error) {
	if slug != m.shop.Slug {
		return nil, fmt.Errorf("record not found")
	}
	shop := m.shop
	return &shop, nil
}

func (m *mockStore) GetService(_ context.Context, barbershopID, serviceID uint) (*models.Service, error) {
	if barbershopID != m.service.BarbershopID || serviceID != m.service.ID {
		return nil, fmt.Errorf("record not found")
	}
	svc := m.service
	return &svc, nil
}

func (m *mockStore) ListBookingsForDay(_ context.Context, barbershopID uint, start, end time.Time) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if b.BarbershopID == barbershopID &&
			!b.ScheduledAt.Before(start) && b.ScheduledAt.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockStore) ListBookingsForPeriod(ctx context.Context, barbershopID uint, start, end time.Time) ([]models.Booking, error) {
	return m.ListBookingsForDay(ctx, barbershopID, start, end)
}

func (m *mockStore) ListBookingsForUser(_ context.Context, userID string) ([]models.Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []models.Booking
	for _, b := range m.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockStore) CreateBooking(ctx context.Context, bk *models.Booking) error {
	if m.blockCreate {
		<-ctx.Done()
		return ctx.Err()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, b := range m.bookings {
		if b.BarbershopID == bk.BarbershopID && b.ScheduledAt.Equal(bk.ScheduledAt) {
			return httperr.ErrBusiness("slot_taken")
		}
	}

	m.nextID++
	bk.ID = m.nextID
	bk.CreatedAt = time.Now()
	m.bookings = append(m.bookings, *bk)
	return nil
}

var _ domain.Repository = (*mockStore)(nil)

// ======================================================
// FAKE CACHE
// ======================================================

type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]string
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]string{}}
}

func (f *fakeCache) key(id uint, date string) string { return fmt.Sprintf("%d:%s", id, date) }

func (f *fakeCache) Get(_ context.Context, id uint, date string) ([]string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots, ok := f.entries[f.key(id, date)]
	return slots, ok
}

func (f *fakeCache) Set(_ context.Context, id uint, date string, slots []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries[f.key(id, date)] = slots
}

func (f *fakeCache) Invalidate(_ context.Context, id uint, date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.entries, f.key(id, date))
	f.invalidated = append(f.invalidated, f.key(id, date))
}

// ======================================================
// HELPERS
// ======================================================

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func validInput() ReserveInput {
	return ReserveInput{
		BarbershopID: 1,
		ServiceID:    7,
		UserID:       "user-123",
		Date:         futureDate(2),
		Time:         "09:00",
	}
}

// ======================================================
// RESERVE
// ======================================================

func TestReserve_Success(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	bk, err := uc.Execute(context.Background(), validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bk.PublicID == "" {
		t.Fatal("expected a public id")
	}
	if bk.UserID != "user-123" {
		t.Fatalf("expected user-123, got %s", bk.UserID)
	}
	if bk.ScheduledAt.Hour() != 9 || bk.ScheduledAt.Minute() != 0 {
		t.Fatalf("expected 09:00, got %s", bk.ScheduledAt)
	}
}

func TestReserve_SameSlotConcurrent(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	const attempts = 2
	errs := make(chan error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			in := validInput()
			in.UserID = fmt.Sprintf("user-%d", n)
			_, err := uc.Execute(context.Background(), in)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)

	confirmed, taken := 0, 0
	for err := range errs {
		switch {
		case err == nil:
			confirmed++
		case httperr.IsBusiness(err, "slot_taken"):
			taken++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if confirmed != 1 || taken != 1 {
		t.Fatalf("expected exactly 1 confirmed and 1 slot_taken, got %d/%d", confirmed, taken)
	}

	// o slot disputado some da disponibilidade
	avail := NewGetAvailability(store, nil)
	slots, err := avail.Execute(context.Background(), domain.AvailabilityInput{
		BarbershopID: 1,
		ServiceID:    7,
		Date:         futureDate(2),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, s := range slots {
		if s == "09:00" {
			t.Fatal("09:00 still listed as available after being booked")
		}
	}
}

func TestReserve_SlotOutsideSequence(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	in := validInput()
	in.Time = "09:30" // granularidade é 60min

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_slot") {
		t.Fatalf("expected invalid_slot, got %v", err)
	}
}

func TestReserve_TooSoon(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	in := validInput()
	in.Date = futureDate(0) // hoje; política exige a partir de amanhã

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "too_soon") {
		t.Fatalf("expected too_soon, got %v", err)
	}
}

func TestReserve_MissingFields(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	cases := []func(*ReserveInput){
		func(in *ReserveInput) { in.UserID = "" },
		func(in *ReserveInput) { in.Date = "" },
		func(in *ReserveInput) { in.Time = "" },
		func(in *ReserveInput) { in.ServiceID = 0 },
	}

	for i, mutate := range cases {
		in := validInput()
		mutate(&in)

		_, err := uc.Execute(context.Background(), in)
		if !httperr.IsBusiness(err, "invalid_request") {
			t.Fatalf("case %d: expected invalid_request, got %v", i, err)
		}
	}
}

func TestReserve_InvalidDateFormat(t *testing.T) {
	store := newMockStore()
	uc := NewReserve(store, nil, nil)

	in := validInput()
	in.Date = "10/09/2026"

	_, err := uc.Execute(context.Background(), in)
	if !httperr.IsBusiness(err, "invalid_request") {
		t.Fatalf("expected invalid_request, got %v", err)
	}
}

func TestReserve_StorageTimeout(t *testing.T) {
	store := newMockStore()
	store.blockCreate = true

	uc := NewReserve(store, nil, nil)
	uc.commitTimeout = 20 * time.Millisecond

	_, err := uc.Execute(context.Background(), validInput())
	if !httperr.IsBusiness(err, "unavailable") {
		t.Fatalf("expected unavailable, got %v", err)
	}
}

func TestReserve_InvalidatesCache(t *testing.T) {
	store := newMockStore()
	cache := newFakeCache()
	uc := NewReserve(store, nil, cache)

	in := validInput()
	cache.Set(context.Background(), 1, in.Date, []string{"09:00", "10:00", "11:00"})

	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, ok := cache.Get(context.Background(), 1, in.Date); ok {
		t.Fatal("expected day cache to be invalidated after commit")
	}
}
