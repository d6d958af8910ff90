package biz

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"

	"github.com/go-kratos/kratos/v2/log"
)

const (
	DefaultTTL           = 10 * time.Minute
	DefaultMaxAttempts   = 10
	DefaultNotifyTimeout = 2 * time.Second
)

// EventPublisher is the notification sink. Publish may fail or be slow; the
// usecase never waits on it inside a request.
type EventPublisher interface {
	Publish(ctx context.Context, e event.Event) error
}

// LinkUsecase implements shortening, redirecting and link management.
type LinkUsecase struct {
	repo   domain.LinkRepository
	events EventPublisher
	log    *log.Helper

	baseURL       string
	codeLength    int
	ttl           time.Duration
	maxAttempts   int
	notifyTimeout time.Duration

	now      func() time.Time
	generate func(length int) (domain.ShortCode, error)
}

func NewLinkUsecase(c *conf.Link, repo domain.LinkRepository, events EventPublisher, logger log.Logger) *LinkUsecase {
	uc := &LinkUsecase{
		repo:          repo,
		events:        events,
		log:           log.NewHelper(log.With(logger, "module", "biz/link")),
		codeLength:    domain.DefaultShortCodeLength,
		ttl:           DefaultTTL,
		maxAttempts:   DefaultMaxAttempts,
		notifyTimeout: DefaultNotifyTimeout,
		now:           time.Now,
		generate:      domain.GenerateShortCode,
	}
	if c == nil {
		return uc
	}
	uc.baseURL = strings.TrimRight(c.BaseURL, "/")
	if c.CodeLength > 0 {
		uc.codeLength = c.CodeLength
	}
	if c.TTL.Duration > 0 {
		uc.ttl = c.TTL.Duration
	}
	if c.MaxAttempts > 0 {
		uc.maxAttempts = c.MaxAttempts
	}
	if c.NotifyTimeout.Duration > 0 {
		uc.notifyTimeout = c.NotifyTimeout.Duration
	}
	return uc
}

// Shorten stores rawURL under a freshly generated code. Collisions with live
// links are retried with a new code up to maxAttempts times.
func (uc *LinkUsecase) Shorten(ctx context.Context, rawURL string) (*domain.Link, error) {
	originalURL, err := domain.NewOriginalURL(rawURL)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= uc.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		code, err := uc.generate(uc.codeLength)
		if err != nil {
			return nil, fmt.Errorf("generate short code: %w", err)
		}

		link, err := domain.NewLink(code, originalURL, uc.now(), uc.ttl)
		if err != nil {
			return nil, err
		}

		err = uc.repo.Insert(ctx, link)
		if err == nil {
			uc.log.WithContext(ctx).Infof("shortened %s as %s", originalURL.Host(), code)
			uc.publish(ctx, event.NewLinkCreated(link.Snapshot()))
			return link, nil
		}
		if !errors.Is(err, domain.ErrShortCodeConflict) {
			return nil, err
		}
		uc.log.WithContext(ctx).Debugf("short code %s taken (attempt %d/%d)", code, attempt, uc.maxAttempts)
	}

	uc.log.WithContext(ctx).Errorf("no free short code after %d attempts", uc.maxAttempts)
	return nil, fmt.Errorf("%w after %d attempts", domain.ErrExhaustedRetries, uc.maxAttempts)
}

// Redirect resolves code to its destination and counts the click.
// Codes that cannot have been issued resolve to ErrLinkNotFound.
func (uc *LinkUsecase) Redirect(ctx context.Context, rawCode string) (string, error) {
	code, err := domain.NewShortCode(rawCode)
	if err != nil {
		return "", domain.ErrLinkNotFound
	}

	link, err := uc.repo.FindByShortCode(ctx, code)
	if err != nil {
		return "", err
	}
	if link == nil {
		return "", domain.ErrLinkNotFound
	}
	if err := link.CheckRedirect(uc.now()); err != nil {
		return "", err
	}

	updated, err := uc.repo.IncrementClicks(ctx, link.ID())
	if err != nil {
		return "", err
	}

	uc.publish(ctx, event.NewLinkClicked(updated.Snapshot()))
	return updated.OriginalURL().String(), nil
}

// Remove deletes the link holding code, expired or not.
func (uc *LinkUsecase) Remove(ctx context.Context, rawCode string) (*domain.Link, error) {
	code, err := domain.NewShortCode(rawCode)
	if err != nil {
		return nil, domain.ErrLinkNotFound
	}

	link, err := uc.repo.DeleteByShortCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if link == nil {
		return nil, domain.ErrLinkNotFound
	}

	uc.log.WithContext(ctx).Infof("removed link %s", code)
	uc.publish(ctx, event.NewLinkDeleted(link.ID(), code.String()))
	return link, nil
}

// List returns the live links, newest first.
func (uc *LinkUsecase) List(ctx context.Context) ([]*domain.Link, error) {
	return uc.repo.ListLive(ctx, uc.now())
}

// PurgeExpired physically removes every expired link.
func (uc *LinkUsecase) PurgeExpired(ctx context.Context) (int, error) {
	n, err := uc.repo.PurgeExpired(ctx, uc.now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		uc.publish(ctx, event.NewLinkPurged(n))
	}
	return n, nil
}

// ShortURL is the public address of code.
func (uc *LinkUsecase) ShortURL(code domain.ShortCode) string {
	return uc.baseURL + "/api/" + code.String()
}

// publish notifies the sink from a separate goroutine with a context that
// outlives the request but not notifyTimeout. Failures are only logged.
func (uc *LinkUsecase) publish(ctx context.Context, e event.Event) {
	if uc.events == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), uc.notifyTimeout)
	go func() {
		defer cancel()
		if err := uc.events.Publish(ctx, e); err != nil {
			uc.log.WithContext(ctx).Warnf("failed to publish %s for %s: %v", e.EventName(), e.AggregateID(), err)
		}
	}()
}
