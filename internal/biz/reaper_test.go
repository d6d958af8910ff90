package biz

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaper_PurgesOnTick(t *testing.T) {
	ctx := context.Background()
	repo := newMemoryLinkRepo()
	uc, clock := newTestUsecase(repo, nil)
	link, err := uc.Shorten(ctx, "https://example.com")
	require.NoError(t, err)
	clock.Set(testStart.Add(time.Hour))

	reaper := NewReaper(&conf.Link{ReapInterval: conf.Duration{Duration: 10 * time.Millisecond}}, uc, log.DefaultLogger)
	errCh := make(chan error, 1)
	go func() { errCh <- reaper.Start(ctx) }()

	assert.Eventually(t, func() bool {
		found, _ := repo.FindByShortCode(ctx, link.ShortCode())
		return found == nil
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, reaper.Stop(ctx))
	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper did not stop")
	}
	// Stop is idempotent.
	assert.NoError(t, reaper.Stop(ctx))
}

func TestReaper_StopsWithContext(t *testing.T) {
	uc, _ := newTestUsecase(newMemoryLinkRepo(), nil)
	reaper := NewReaper(nil, uc, log.DefaultLogger)
	assert.Equal(t, DefaultReapInterval, reaper.interval)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- reaper.Start(ctx) }()
	cancel()

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reaper ignored context cancellation")
	}
}

func TestReaper_ReapSurvivesStoreFailure(t *testing.T) {
	repo := newMemoryLinkRepo()
	repo.err = fmt.Errorf("purge: %w", domain.ErrStoreUnavailable)
	uc, _ := newTestUsecase(repo, nil)
	reaper := NewReaper(nil, uc, log.DefaultLogger)

	assert.NotPanics(t, func() { reaper.Reap(context.Background()) })
}
