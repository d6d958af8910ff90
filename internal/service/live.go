package service

import (
	"context"
	nethttp "net/http"
	"sync"
	"time"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/domain"
	"go-shortlink/internal/domain/event"
	"go-shortlink/internal/infra/eventbus"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/go-kratos/kratos/v2/log"
)

const (
	clickUpdatedEvent = "clickUpdated"

	feedBufferSize   = 16
	feedWriteTimeout = 5 * time.Second
)

var (
	_ eventbus.EventHandler = (*ClickFeed)(nil)
	_ nethttp.Handler       = (*ClickFeed)(nil)
)

// ClickUpdate is the message pushed to live clients after each redirect.
type ClickUpdate struct {
	Event string    `json:"event"`
	Link  LinkReply `json:"link"`
}

type feedClient struct {
	updates chan ClickUpdate
}

// ClickFeed fans link.clicked events out to websocket clients. Delivery is
// at-most-once: a client that falls behind loses updates and nothing is
// replayed on reconnect.
type ClickFeed struct {
	uc  *biz.LinkUsecase
	log *log.Helper

	mu      sync.Mutex
	clients map[*feedClient]struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func NewClickFeed(uc *biz.LinkUsecase, logger log.Logger) *ClickFeed {
	return &ClickFeed{
		uc:      uc,
		log:     log.NewHelper(log.With(logger, "module", "service/live")),
		clients: make(map[*feedClient]struct{}),
		done:    make(chan struct{}),
	}
}

func (f *ClickFeed) HandlerName() string {
	return "click_feed"
}

func (f *ClickFeed) EventName() string {
	return event.LinkClickedName
}

func (f *ClickFeed) Handle(ctx context.Context, envelope *eventbus.EventEnvelope) error {
	var evt event.LinkClicked
	if err := envelope.Decode(&evt); err != nil {
		return err
	}
	f.broadcast(ClickUpdate{Event: clickUpdatedEvent, Link: f.fromSnapshot(evt.Link)})
	return nil
}

func (f *ClickFeed) broadcast(update ClickUpdate) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for c := range f.clients {
		select {
		case c.updates <- update:
		default:
			f.log.Warnf("live client lagging, dropped update for %s", update.Link.URLShort)
		}
	}
}

func (f *ClickFeed) fromSnapshot(s event.LinkSnapshot) LinkReply {
	reply := LinkReply{
		ID:           s.ID,
		URLShort:     s.ShortCode,
		URLOriginal:  s.OriginalURL,
		Clicks:       s.Clicks,
		CreationDate: s.CreatedAt,
		ExpireDate:   s.ExpiresAt,
	}
	if code, err := domain.NewShortCode(s.ShortCode); err == nil {
		reply.ShortURL = f.uc.ShortURL(code)
	}
	return reply
}

// ServeHTTP upgrades the request and streams updates until the client goes
// away or the feed is closed.
func (f *ClickFeed) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		f.log.WithContext(r.Context()).Warnf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.CloseNow()

	// The server's request timeout must not end a long-lived stream.
	ctx := conn.CloseRead(context.WithoutCancel(r.Context()))

	c := f.subscribe()
	defer f.unsubscribe(c)

	for {
		select {
		case <-ctx.Done():
			return
		case <-f.done:
			conn.Close(websocket.StatusGoingAway, "server shutting down")
			return
		case update := <-c.updates:
			wctx, cancel := context.WithTimeout(ctx, feedWriteTimeout)
			err := wsjson.Write(wctx, conn, update)
			cancel()
			if err != nil {
				f.log.Debugf("live client write failed: %v", err)
				return
			}
		}
	}
}

func (f *ClickFeed) subscribe() *feedClient {
	c := &feedClient{updates: make(chan ClickUpdate, feedBufferSize)}
	f.mu.Lock()
	f.clients[c] = struct{}{}
	n := len(f.clients)
	f.mu.Unlock()
	f.log.Infof("live client connected (%d total)", n)
	return c
}

func (f *ClickFeed) unsubscribe(c *feedClient) {
	f.mu.Lock()
	delete(f.clients, c)
	n := len(f.clients)
	f.mu.Unlock()
	f.log.Infof("live client disconnected (%d total)", n)
}

// Subscribers reports the number of connected clients.
func (f *ClickFeed) Subscribers() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.clients)
}

// Close disconnects every client. The HTTP server does not track hijacked
// connections, so this has to run on shutdown.
func (f *ClickFeed) Close() {
	f.closeOnce.Do(func() { close(f.done) })
}
