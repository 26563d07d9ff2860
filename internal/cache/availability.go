package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Availability guarda, por (barbearia, dia), a lista de slots livres já
// calculada. Best-effort: qualquer erro do Redis degrada para leitura
// direta do banco, nunca falha a requisição.
type Availability struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewAvailability(addr string) *Availability {
	if addr == "" {
		return nil
	}

	return &Availability{
		rdb: redis.NewClient(&redis.Options{Addr: addr}),
		ttl: 30 * time.Second,
	}
}

func key(barbershopID uint, date string) string {
	return fmt.Sprintf("avail:%d:%s", barbershopID, date)
}

func (a *Availability) Get(ctx context.Context, barbershopID uint, date string) ([]string, bool) {
	raw, err := a.rdb.Get(ctx, key(barbershopID, date)).Result()
	if err != nil {
		return nil, false
	}

	var slots []string
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (a *Availability) Set(ctx context.Context, barbershopID uint, date string, slots []string) {
	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	a.rdb.Set(ctx, key(barbershopID, date), raw, a.ttl)
}

func (a *Availability) Invalidate(ctx context.Context, barbershopID uint, date string) {
	a.rdb.Del(ctx, key(barbershopID, date))
}
