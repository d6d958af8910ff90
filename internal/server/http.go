package server

import (
	nethttp "net/http"

	"go-shortlink/internal/conf"
	"go-shortlink/internal/service"

	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/logging"
	"github.com/go-kratos/kratos/v2/middleware/recovery"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/gorilla/handlers"
)

// NewHTTPServer new an HTTP server.
func NewHTTPServer(c *conf.Server, links *service.LinkService, feed *service.ClickFeed, logger log.Logger) *http.Server {
	var opts = []http.ServerOption{
		http.Filter(
			corsFilter(c),
			service.ListPathFilter,
		),
		http.Middleware(
			recovery.Recovery(),
			logging.Server(logger),
		),
	}
	if c != nil && c.HTTP != nil {
		if c.HTTP.Network != "" {
			opts = append(opts, http.Network(c.HTTP.Network))
		}
		if c.HTTP.Addr != "" {
			opts = append(opts, http.Address(c.HTTP.Addr))
		}
		if c.HTTP.Timeout.Duration > 0 {
			opts = append(opts, http.Timeout(c.HTTP.Timeout.Duration))
		}
	}
	srv := http.NewServer(opts...)
	service.RegisterLinkHTTPServer(srv, links)

	// Websocket upgrades bypass the kratos middleware chain.
	srv.Handle("/live", feed)

	return srv
}

// corsFilter answers preflight requests before routing, so OPTIONS never
// reaches the link handlers.
func corsFilter(c *conf.Server) http.FilterFunc {
	origins := []string{"*"}
	if c != nil && c.CORS != nil && len(c.CORS.AllowedOrigins) > 0 {
		origins = c.CORS.AllowedOrigins
	}
	return handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)
}
