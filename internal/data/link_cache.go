package data

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/redis/go-redis/v9"
)

const linkCachePrefix = "link:"

// LinkCache caches lookups by short code. Implementations treat every
// failure as a miss; the database stays authoritative.
type LinkCache interface {
	// Get returns nil, nil on a miss.
	Get(ctx context.Context, code domain.ShortCode) (*domain.Link, error)
	Set(ctx context.Context, link *domain.Link) error
	Invalidate(ctx context.Context, code domain.ShortCode) error
}

var (
	_ LinkCache = (*RedisLinkCache)(nil)
	_ LinkCache = (*noopLinkCache)(nil)
)

// RedisLinkCache implements LinkCache using Redis.
type RedisLinkCache struct {
	rdb *redis.Client
	ttl time.Duration
	now func() time.Time
	log *log.Helper
}

// NewRedisLinkCache returns a no-op cache when redis is not configured.
func NewRedisLinkCache(d *Data, c *conf.Data, logger log.Logger) LinkCache {
	if d.Redis() == nil {
		return &noopLinkCache{}
	}
	ttl := defaultCacheTTL
	if c != nil && c.Redis != nil && c.Redis.CacheTTL.Duration > 0 {
		ttl = c.Redis.CacheTTL.Duration
	}
	return &RedisLinkCache{
		rdb: d.Redis(),
		ttl: ttl,
		now: time.Now,
		log: log.NewHelper(logger),
	}
}

type cachedLink struct {
	ID          string    `json:"id"`
	ShortCode   string    `json:"short_code"`
	OriginalURL string    `json:"original_url"`
	Clicks      int64     `json:"clicks"`
	CreatedAt   time.Time `json:"created_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func (c *RedisLinkCache) cacheKey(code string) string {
	return linkCachePrefix + code
}

func (c *RedisLinkCache) Get(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	data, err := c.rdb.Get(ctx, c.cacheKey(code.String())).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.log.WithContext(ctx).Warnf("failed to get link from cache: %v", err)
		}
		return nil, nil
	}

	var cached cachedLink
	if err := json.Unmarshal(data, &cached); err != nil {
		c.log.WithContext(ctx).Warnf("failed to unmarshal cached link: %v", err)
		return nil, nil
	}

	sc, err := domain.NewShortCode(cached.ShortCode)
	if err != nil {
		return nil, nil
	}
	ou, err := domain.NewOriginalURL(cached.OriginalURL)
	if err != nil {
		return nil, nil
	}

	return domain.ReconstructLink(cached.ID, sc, ou, cached.Clicks, cached.CreatedAt, cached.ExpiresAt), nil
}

// Set caches link until the earlier of the cache ttl and the link's expiry.
// Expired links are not cached.
func (c *RedisLinkCache) Set(ctx context.Context, link *domain.Link) error {
	ttl := min(c.ttl, link.TTLAt(c.now()))
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(cachedLink{
		ID:          link.ID(),
		ShortCode:   link.ShortCode().String(),
		OriginalURL: link.OriginalURL().String(),
		Clicks:      link.Clicks(),
		CreatedAt:   link.CreatedAt(),
		ExpiresAt:   link.ExpiresAt(),
	})
	if err != nil {
		c.log.WithContext(ctx).Warnf("failed to marshal link for cache: %v", err)
		return nil
	}

	if err := c.rdb.Set(ctx, c.cacheKey(link.ShortCode().String()), data, ttl).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("failed to cache link: %v", err)
	}
	return nil
}

func (c *RedisLinkCache) Invalidate(ctx context.Context, code domain.ShortCode) error {
	if err := c.rdb.Del(ctx, c.cacheKey(code.String())).Err(); err != nil {
		c.log.WithContext(ctx).Warnf("failed to invalidate link cache: %v", err)
	}
	return nil
}

type noopLinkCache struct{}

func (noopLinkCache) Get(context.Context, domain.ShortCode) (*domain.Link, error) { return nil, nil }
func (noopLinkCache) Set(context.Context, *domain.Link) error                     { return nil }
func (noopLinkCache) Invalidate(context.Context, domain.ShortCode) error          { return nil }
