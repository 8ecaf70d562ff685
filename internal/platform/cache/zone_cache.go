package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/stallchain/internal/core/domain"
	portsrepo "github.com/SscSPs/stallchain/internal/core/ports/repositories"
	"github.com/SscSPs/stallchain/internal/middleware"
	"github.com/redis/go-redis/v9"
)

const zoneKeyPrefix = "stallchain:zone:"

// ZoneRepository is a read-through cache in front of the delivery zone store.
// Zones are read on every delivery order, so lookups by ID are served from
// Redis. Writes go to the store first and then evict the cached copy.
// Redis failures fall back to the store.
type ZoneRepository struct {
	next   portsrepo.DeliveryZoneRepositoryFacade
	client *redis.Client
	ttl    time.Duration
}

var _ portsrepo.DeliveryZoneRepositoryFacade = (*ZoneRepository)(nil)

// NewZoneRepository wraps next with a cache that keeps entries for ttl.
func NewZoneRepository(next portsrepo.DeliveryZoneRepositoryFacade, client *redis.Client, ttl time.Duration) *ZoneRepository {
	return &ZoneRepository{next: next, client: client, ttl: ttl}
}

func zoneKey(id string) string {
	return zoneKeyPrefix + id
}

func (r *ZoneRepository) FindByID(ctx context.Context, id string) (*domain.DeliveryZone, error) {
	raw, err := r.client.Get(ctx, zoneKey(id)).Bytes()
	if err == nil {
		var zone domain.DeliveryZone
		if err := json.Unmarshal(raw, &zone); err == nil {
			return &zone, nil
		}
		middleware.GetLoggerFromCtx(ctx).Warn("Dropping unreadable cached zone", slog.String("zone_id", id))
	} else if !errors.Is(err, redis.Nil) {
		middleware.GetLoggerFromCtx(ctx).Warn("Zone cache read failed", slog.String("zone_id", id), slog.String("error", err.Error()))
	}

	zone, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(zone); err == nil {
		if err := r.client.Set(ctx, zoneKey(id), raw, r.ttl).Err(); err != nil {
			middleware.GetLoggerFromCtx(ctx).Warn("Zone cache write failed", slog.String("zone_id", id), slog.String("error", err.Error()))
		}
	}
	return zone, nil
}

// List is not cached; listings are filtered and paged per request.
func (r *ZoneRepository) List(ctx context.Context, filter portsrepo.ListFilter) ([]domain.DeliveryZone, error) {
	return r.next.List(ctx, filter)
}

func (r *ZoneRepository) Save(ctx context.Context, zone domain.DeliveryZone) error {
	return r.next.Save(ctx, zone)
}

func (r *ZoneRepository) Update(ctx context.Context, zone domain.DeliveryZone) error {
	if err := r.next.Update(ctx, zone); err != nil {
		return err
	}
	r.evict(ctx, zone.ZoneID)
	return nil
}

func (r *ZoneRepository) evict(ctx context.Context, id string) {
	if err := r.client.Del(ctx, zoneKey(id)).Err(); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Zone cache eviction failed", slog.String("zone_id", id), slog.String("error", err.Error()))
	}
}
