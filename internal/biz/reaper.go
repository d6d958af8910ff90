package biz

import (
	"context"
	"sync"
	"time"

	"go-shortlink/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/transport"
)

const DefaultReapInterval = time.Minute

var _ transport.Server = (*Reaper)(nil)

// Reaper periodically purges expired links. It runs as a kratos server so
// the app starts and stops it with the transports.
type Reaper struct {
	uc       *LinkUsecase
	interval time.Duration
	log      *log.Helper

	stopOnce sync.Once
	done     chan struct{}
}

func NewReaper(c *conf.Link, uc *LinkUsecase, logger log.Logger) *Reaper {
	interval := DefaultReapInterval
	if c != nil && c.ReapInterval.Duration > 0 {
		interval = c.ReapInterval.Duration
	}
	return &Reaper{
		uc:       uc,
		interval: interval,
		log:      log.NewHelper(log.With(logger, "module", "biz/reaper")),
		done:     make(chan struct{}),
	}
}

// Start blocks, sweeping every interval until ctx ends or Stop is called.
func (r *Reaper) Start(ctx context.Context) error {
	r.log.Infof("[Reaper] purging expired links every %s", r.interval)
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-r.done:
			return nil
		case <-ticker.C:
			r.Reap(ctx)
		}
	}
}

func (r *Reaper) Stop(context.Context) error {
	r.stopOnce.Do(func() { close(r.done) })
	r.log.Info("[Reaper] stopped")
	return nil
}

// Reap runs one sweep. Errors are logged and retried on the next tick.
func (r *Reaper) Reap(ctx context.Context) {
	n, err := r.uc.PurgeExpired(ctx)
	if err != nil {
		r.log.WithContext(ctx).Errorf("[Reaper] purge failed: %v", err)
		return
	}
	if n > 0 {
		r.log.WithContext(ctx).Infof("[Reaper] purged %d expired links", n)
	}
}
