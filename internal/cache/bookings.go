package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	domain "github.com/bookwise/booking-calendar/internal/domain/booking"
	"github.com/bookwise/booking-calendar/internal/models"
)

const (
	listKeyPrefix   = "bookings:list:"
	detailKeyPrefix = "bookings:detail:"

	// Mutations invalidate explicitly; the TTL only bounds staleness if
	// an invalidation is ever missed.
	defaultTTL = 5 * time.Minute
)

// RedisBookingCache keeps booking lists keyed by their filter and single
// bookings keyed by id. Every operation is best-effort: a dead Redis
// degrades to the database, it never fails a request.
type RedisBookingCache struct {
	client *redis.Client
	log    *zap.Logger
	ttl    time.Duration
}

func NewRedisBookingCache(client *redis.Client, log *zap.Logger) *RedisBookingCache {
	return &RedisBookingCache{
		client: client,
		log:    log,
		ttl:    defaultTTL,
	}
}

// ListKey builds a deterministic key from a filter, one cache entry per
// distinct view of the list.
func (c *RedisBookingCache) ListKey(filter domain.ListFilter) string {
	parts := []string{
		filter.StartDate,
		filter.EndDate,
		filter.Status,
		filter.Search,
		filter.SortBy,
	}
	return listKeyPrefix + strings.Join(parts, ":")
}

func detailKey(id string) string {
	return fmt.Sprintf("%s%s", detailKeyPrefix, id)
}

// --------------------------------------------------
// Lists
// --------------------------------------------------

func (c *RedisBookingCache) GetList(ctx context.Context, key string) ([]models.Booking, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("booking cache read failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}

	var bookings []models.Booking
	if err := json.Unmarshal([]byte(val), &bookings); err != nil {
		c.log.Warn("booking cache entry corrupt", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return bookings, true
}

func (c *RedisBookingCache) SetList(ctx context.Context, key string, bookings []models.Booking) {
	data, err := json.Marshal(bookings)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		c.log.Warn("booking cache write failed", zap.String("key", key), zap.Error(err))
	}
}

// InvalidateLists drops every list entry; the next read of any view
// refetches from the store.
func (c *RedisBookingCache) InvalidateLists(ctx context.Context) {
	keys, err := c.client.Keys(ctx, listKeyPrefix+"*").Result()
	if err != nil {
		c.log.Warn("booking cache invalidation failed", zap.Error(err))
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Warn("booking cache invalidation failed", zap.Error(err))
	}
}

// --------------------------------------------------
// Details
// --------------------------------------------------

func (c *RedisBookingCache) GetDetail(ctx context.Context, id string) (*models.Booking, bool) {
	val, err := c.client.Get(ctx, detailKey(id)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("booking cache read failed", zap.String("id", id), zap.Error(err))
		}
		return nil, false
	}

	var b models.Booking
	if err := json.Unmarshal([]byte(val), &b); err != nil {
		return nil, false
	}
	return &b, true
}

func (c *RedisBookingCache) SetDetail(ctx context.Context, b *models.Booking) {
	data, err := json.Marshal(b)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, detailKey(b.ID), data, c.ttl).Err(); err != nil {
		c.log.Warn("booking cache write failed", zap.String("id", b.ID), zap.Error(err))
	}
}

func (c *RedisBookingCache) DeleteDetail(ctx context.Context, id string) {
	if err := c.client.Del(ctx, detailKey(id)).Err(); err != nil {
		c.log.Warn("booking cache delete failed", zap.String("id", id), zap.Error(err))
	}
}
