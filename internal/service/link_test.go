package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/conf"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/mocks"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestService(repo domain.LinkRepository, c *conf.Link) *LinkService {
	if c == nil {
		c = &conf.Link{BaseURL: "http://short.test"}
	}
	uc := biz.NewLinkUsecase(c, repo, nil, log.DefaultLogger)
	return NewLinkService(uc, log.DefaultLogger)
}

func mustLink(t *testing.T, code, rawURL string, createdAt time.Time) *domain.Link {
	t.Helper()
	sc, err := domain.NewShortCode(code)
	require.NoError(t, err)
	ou, err := domain.NewOriginalURL(rawURL)
	require.NoError(t, err)
	l, err := domain.NewLink(sc, ou, createdAt, 10*time.Minute)
	require.NoError(t, err)
	return l
}

func withClicks(l *domain.Link, clicks int64) *domain.Link {
	return domain.ReconstructLink(l.ID(), l.ShortCode(), l.OriginalURL(), clicks, l.CreatedAt(), l.ExpiresAt())
}

func assertKratosError(t *testing.T, err error, code int, reason string) {
	t.Helper()
	require.Error(t, err)
	se := kerrors.FromError(err)
	assert.Equal(t, int32(code), se.Code)
	assert.Equal(t, reason, se.Reason)
}

func TestLinkService_Shorten(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.AnythingOfType("*domain.Link")).Return(nil)
	svc := newTestService(repo, nil)

	// Act
	reply, err := svc.Shorten(context.Background(), &ShortenRequest{URLOriginal: "https://example.com"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "URL shortened successfully", reply.Message)
	assert.Len(t, reply.URLShort, domain.DefaultShortCodeLength)
	assert.Equal(t, "http://short.test/api/"+reply.URLShort, reply.ShortURL)
	assert.Equal(t, "https://example.com", reply.URLOriginal)
	assert.Zero(t, reply.Clicks)
	assert.Equal(t, 10*time.Minute, reply.ExpireDate.Sub(reply.CreationDate))
	assert.NotEmpty(t, reply.ID)
}

func TestLinkService_Shorten_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"not a url", "invalid-url"},
		{"unsupported scheme", "ftp://example.com/file"},
		{"no scheme", "example.com"},
		{"too long", "https://example.com/" + strings.Repeat("a", domain.MaxOriginalURLLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewLinkRepository(t)
			svc := newTestService(repo, nil)

			_, err := svc.Shorten(context.Background(), &ShortenRequest{URLOriginal: tt.url})

			assertKratosError(t, err, 400, ReasonInvalidURL)
		})
	}
}

func TestLinkService_Shorten_Exhausted(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(domain.ErrShortCodeConflict).Times(3)
	svc := newTestService(repo, &conf.Link{MaxAttempts: 3})

	// Act
	_, err := svc.Shorten(context.Background(), &ShortenRequest{URLOriginal: "https://example.com"})

	// Assert
	assertKratosError(t, err, 503, ReasonCodesExhausted)
}

func TestLinkService_Shorten_StoreUnavailable(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).
		Return(fmt.Errorf("insert link: %w", domain.ErrStoreUnavailable)).Once()
	svc := newTestService(repo, nil)

	_, err := svc.Shorten(context.Background(), &ShortenRequest{URLOriginal: "https://example.com"})

	assertKratosError(t, err, 500, ReasonStoreUnavailable)
}

func TestLinkService_Redirect(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	link := mustLink(t, "abc123", "https://example.com/page", time.Now())
	repo.EXPECT().FindByShortCode(mock.Anything, link.ShortCode()).Return(link, nil)
	repo.EXPECT().IncrementClicks(mock.Anything, link.ID()).Return(withClicks(link, 1), nil)
	svc := newTestService(repo, nil)

	// Act
	url, err := svc.Redirect(context.Background(), "abc123")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/page", url)
}

func TestLinkService_Redirect_NotFound(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	sc, _ := domain.NewShortCode("nothere")
	repo.EXPECT().FindByShortCode(mock.Anything, sc).Return(nil, nil)
	svc := newTestService(repo, nil)

	_, err := svc.Redirect(context.Background(), "nothere")

	assertKratosError(t, err, 404, ReasonLinkNotFound)
}

func TestLinkService_Redirect_MalformedCode(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	svc := newTestService(repo, nil)

	_, err := svc.Redirect(context.Background(), "no-such-code!")

	assertKratosError(t, err, 404, ReasonLinkNotFound)
}

func TestLinkService_Redirect_Expired(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	link := mustLink(t, "old123", "https://example.com", time.Now().Add(-20*time.Minute))
	repo.EXPECT().FindByShortCode(mock.Anything, link.ShortCode()).Return(link, nil)
	svc := newTestService(repo, nil)

	// Act
	_, err := svc.Redirect(context.Background(), "old123")

	// Assert
	assertKratosError(t, err, 410, ReasonLinkExpired)
	repo.AssertNotCalled(t, "IncrementClicks", mock.Anything, mock.Anything)
}

func TestLinkService_Redirect_StoreUnavailable(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().FindByShortCode(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("find link: %w", domain.ErrStoreUnavailable))
	svc := newTestService(repo, nil)

	_, err := svc.Redirect(context.Background(), "abc123")

	assertKratosError(t, err, 500, ReasonStoreUnavailable)
}

func TestLinkService_Redirect_StoreTimeout(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().FindByShortCode(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("find link: %w: %w", domain.ErrStoreUnavailable, context.DeadlineExceeded))
	svc := newTestService(repo, nil)

	_, err := svc.Redirect(context.Background(), "abc123")

	assertKratosError(t, err, 500, ReasonStoreUnavailable)
}

func TestLinkService_Redirect_ClientGone(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		code   int
		reason string
	}{
		{name: "request canceled", err: context.Canceled, code: 499, reason: "CANCELED"},
		{name: "bare deadline", err: context.DeadlineExceeded, code: 500, reason: "INTERNAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewLinkRepository(t)
			repo.EXPECT().FindByShortCode(mock.Anything, mock.Anything).Return(nil, tt.err)
			svc := newTestService(repo, nil)

			_, err := svc.Redirect(context.Background(), "abc123")

			assertKratosError(t, err, tt.code, tt.reason)
		})
	}
}

func TestLinkService_Remove(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	link := mustLink(t, "gone12", "https://example.com", time.Now())
	repo.EXPECT().DeleteByShortCode(mock.Anything, link.ShortCode()).Return(link, nil)
	svc := newTestService(repo, nil)

	// Act
	reply, err := svc.Remove(context.Background(), "gone12")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "URL deleted successfully", reply.Message)
	assert.Equal(t, "gone12", reply.Link.URLShort)
	assert.Equal(t, link.ID(), reply.Link.ID)
}

func TestLinkService_Remove_NotFound(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().DeleteByShortCode(mock.Anything, mock.Anything).Return(nil, nil)
	svc := newTestService(repo, nil)

	_, err := svc.Remove(context.Background(), "nothere")

	assertKratosError(t, err, 404, ReasonLinkNotFound)
}

func TestLinkService_List(t *testing.T) {
	// Arrange
	repo := mocks.NewLinkRepository(t)
	now := time.Now()
	newer := withClicks(mustLink(t, "newer1", "https://example.com/b", now), 4)
	older := mustLink(t, "older1", "https://example.com/a", now.Add(-time.Minute))
	repo.EXPECT().ListLive(mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*domain.Link{newer, older}, nil)
	svc := newTestService(repo, nil)

	// Act
	replies, err := svc.List(context.Background())

	// Assert
	require.NoError(t, err)
	require.Len(t, replies, 2)
	assert.Equal(t, "newer1", replies[0].URLShort)
	assert.Equal(t, int64(4), replies[0].Clicks)
	assert.Equal(t, "older1", replies[1].URLShort)
	assert.Equal(t, "http://short.test/api/older1", replies[1].ShortURL)
}

func TestLinkService_List_Empty(t *testing.T) {
	repo := mocks.NewLinkRepository(t)
	repo.EXPECT().ListLive(mock.Anything, mock.Anything).Return(nil, nil)
	svc := newTestService(repo, nil)

	replies, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, replies)
}
