package data

import (
	"context"
	"time"

	"go-shortlink/internal/domain"
)

var _ domain.LinkRepository = (*CachedLinkRepository)(nil)

// CachedLinkRepository puts a LinkCache in front of the lookup path.
//
// Only FindByShortCode reads from the cache. A cached entry can carry a stale
// click count, but its code, destination and expiry never change, and every
// write that could make it wrong invalidates it.
type CachedLinkRepository struct {
	repo  *linkRepo
	cache LinkCache
}

func NewCachedLinkRepository(repo *linkRepo, cache LinkCache) domain.LinkRepository {
	return &CachedLinkRepository{
		repo:  repo,
		cache: cache,
	}
}

func (r *CachedLinkRepository) Insert(ctx context.Context, link *domain.Link) error {
	if err := r.repo.Insert(ctx, link); err != nil {
		return err
	}
	_ = r.cache.Set(ctx, link)
	return nil
}

func (r *CachedLinkRepository) FindByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	if cached, err := r.cache.Get(ctx, code); err == nil && cached != nil {
		return cached, nil
	}

	link, err := r.repo.FindByShortCode(ctx, code)
	if err != nil || link == nil {
		return link, err
	}

	_ = r.cache.Set(ctx, link)
	return link, nil
}

func (r *CachedLinkRepository) IncrementClicks(ctx context.Context, id string) (*domain.Link, error) {
	link, err := r.repo.IncrementClicks(ctx, id)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Invalidate(ctx, link.ShortCode())
	return link, nil
}

func (r *CachedLinkRepository) DeleteByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	link, err := r.repo.DeleteByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}

	_ = r.cache.Invalidate(ctx, code)
	return link, nil
}

// ListLive is not cached.
func (r *CachedLinkRepository) ListLive(ctx context.Context, now time.Time) ([]*domain.Link, error) {
	return r.repo.ListLive(ctx, now)
}

// PurgeExpired is not cached; the cache ttl never outlives a link's expiry.
func (r *CachedLinkRepository) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	return r.repo.PurgeExpired(ctx, now)
}
