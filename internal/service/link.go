package service

import (
	"context"
	"errors"
	"time"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/domain"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/samber/lo"
)

const (
	ReasonInvalidURL       = "INVALID_URL"
	ReasonLinkNotFound     = "LINK_NOT_FOUND"
	ReasonLinkExpired      = "LINK_EXPIRED"
	ReasonCodesExhausted   = "SHORT_CODE_EXHAUSTED"
	ReasonStoreUnavailable = "STORE_UNAVAILABLE"
)

const (
	msgShortened = "URL shortened successfully"
	msgDeleted   = "URL deleted successfully"
)

type ShortenRequest struct {
	URLOriginal string `json:"url_original"`
}

func (r *ShortenRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.URLOriginal,
			validation.Required,
			validation.Length(1, domain.MaxOriginalURLLength),
			domain.HTTPURL,
		),
	)
}

// LinkReply is the JSON shape of a link shared by every endpoint and the
// live feed.
type LinkReply struct {
	ID           string    `json:"id"`
	URLShort     string    `json:"url_short"`
	ShortURL     string    `json:"short_url"`
	URLOriginal  string    `json:"url_original"`
	Clicks       int64     `json:"clicks"`
	CreationDate time.Time `json:"creationDate"`
	ExpireDate   time.Time `json:"expireDate"`
}

type ShortenReply struct {
	LinkReply
	Message string `json:"message"`
}

type RemoveReply struct {
	Message string    `json:"message"`
	Link    LinkReply `json:"link"`
}

type LinkService struct {
	uc  *biz.LinkUsecase
	log *log.Helper
}

func NewLinkService(uc *biz.LinkUsecase, logger log.Logger) *LinkService {
	return &LinkService{
		uc:  uc,
		log: log.NewHelper(log.With(logger, "module", "service/link")),
	}
}

func (s *LinkService) Shorten(ctx context.Context, req *ShortenRequest) (*ShortenReply, error) {
	if err := req.Validate(); err != nil {
		return nil, kerrors.BadRequest(ReasonInvalidURL, err.Error())
	}

	link, err := s.uc.Shorten(ctx, req.URLOriginal)
	if err != nil {
		return nil, s.toError(ctx, err)
	}

	return &ShortenReply{
		LinkReply: s.toReply(link),
		Message:   msgShortened,
	}, nil
}

// Redirect returns the destination of code, counting the click.
func (s *LinkService) Redirect(ctx context.Context, code string) (string, error) {
	url, err := s.uc.Redirect(ctx, code)
	if err != nil {
		return "", s.toError(ctx, err)
	}
	return url, nil
}

func (s *LinkService) Remove(ctx context.Context, code string) (*RemoveReply, error) {
	link, err := s.uc.Remove(ctx, code)
	if err != nil {
		return nil, s.toError(ctx, err)
	}

	return &RemoveReply{
		Message: msgDeleted,
		Link:    s.toReply(link),
	}, nil
}

func (s *LinkService) List(ctx context.Context) ([]LinkReply, error) {
	links, err := s.uc.List(ctx)
	if err != nil {
		return nil, s.toError(ctx, err)
	}

	return lo.Map(links, func(l *domain.Link, _ int) LinkReply {
		return s.toReply(l)
	}), nil
}

func (s *LinkService) toReply(l *domain.Link) LinkReply {
	return LinkReply{
		ID:           l.ID(),
		URLShort:     l.ShortCode().String(),
		ShortURL:     s.uc.ShortURL(l.ShortCode()),
		URLOriginal:  l.OriginalURL().String(),
		Clicks:       l.Clicks(),
		CreationDate: l.CreatedAt(),
		ExpireDate:   l.ExpiresAt(),
	}
}

// toError maps domain failures onto kratos errors so the HTTP encoder can
// pick the status code.
func (s *LinkService) toError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidURL):
		return kerrors.BadRequest(ReasonInvalidURL, err.Error())
	case errors.Is(err, domain.ErrLinkNotFound):
		return kerrors.NotFound(ReasonLinkNotFound, "short link not found")
	case errors.Is(err, domain.ErrLinkExpired):
		return kerrors.New(410, ReasonLinkExpired, "short link has expired")
	case errors.Is(err, domain.ErrExhaustedRetries):
		return kerrors.ServiceUnavailable(ReasonCodesExhausted, "could not allocate a short code, try again")
	case errors.Is(err, domain.ErrStoreUnavailable):
		// A store timeout wraps DeadlineExceeded too; it is still our failure.
		s.log.WithContext(ctx).Errorf("store failure: %v", err)
		return kerrors.InternalServer(ReasonStoreUnavailable, "storage is unavailable").WithCause(err)
	case errors.Is(err, context.Canceled):
		return kerrors.ClientClosed("CANCELED", err.Error())
	default:
		s.log.WithContext(ctx).Errorf("request failed: %v", err)
		return kerrors.InternalServer("INTERNAL", "internal error").WithCause(err)
	}
}
