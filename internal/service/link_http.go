package service

import (
	"context"
	nethttp "net/http"

	khttp "github.com/go-kratos/kratos/v2/transport/http"
)

const (
	OperationLinkShorten  = "/shortlink.v1.Link/Shorten"
	OperationLinkRedirect = "/shortlink.v1.Link/Redirect"
	OperationLinkRemove   = "/shortlink.v1.Link/Remove"
	OperationLinkList     = "/shortlink.v1.Link/List"
)

// LinkHTTPServer is the set of operations exposed under /api.
type LinkHTTPServer interface {
	Shorten(context.Context, *ShortenRequest) (*ShortenReply, error)
	Redirect(context.Context, string) (string, error)
	Remove(context.Context, string) (*RemoveReply, error)
	List(context.Context) ([]LinkReply, error)
}

func RegisterLinkHTTPServer(s *khttp.Server, srv LinkHTTPServer) {
	r := s.Route("/")
	r.POST("/api/shorten", _Link_Shorten0_HTTP_Handler(srv))
	r.GET("/api/{url_short}", _Link_Redirect0_HTTP_Handler(srv))
	r.DELETE("/api/{url_short}", _Link_Remove0_HTTP_Handler(srv))
	// Route cleans paths, so the listing lives at /api and ListPathFilter
	// maps /api/ onto it.
	r.GET("/api", _Link_List0_HTTP_Handler(srv))
}

// ListPathFilter serves the link listing at /api/ as well as /api. It must be
// installed with khttp.Filter, which runs before the router redirects /api/.
func ListPathFilter(next nethttp.Handler) nethttp.Handler {
	return nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.URL.Path == "/api/" {
			r = r.Clone(r.Context())
			r.URL.Path = "/api"
			r.URL.RawPath = ""
		}
		next.ServeHTTP(w, r)
	})
}

func _Link_Shorten0_HTTP_Handler(srv LinkHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		var in ShortenRequest
		if err := ctx.Bind(&in); err != nil {
			return err
		}
		khttp.SetOperation(ctx, OperationLinkShorten)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Shorten(ctx, req.(*ShortenRequest))
		})
		out, err := h(ctx, &in)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusCreated, out.(*ShortenReply))
	}
}

func _Link_Redirect0_HTTP_Handler(srv LinkHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		code := ctx.Vars().Get("url_short")
		khttp.SetOperation(ctx, OperationLinkRedirect)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Redirect(ctx, req.(string))
		})
		out, err := h(ctx, code)
		if err != nil {
			return err
		}
		nethttp.Redirect(ctx.Response(), ctx.Request(), out.(string), nethttp.StatusFound)
		return nil
	}
}

func _Link_Remove0_HTTP_Handler(srv LinkHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		code := ctx.Vars().Get("url_short")
		khttp.SetOperation(ctx, OperationLinkRemove)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.Remove(ctx, req.(string))
		})
		out, err := h(ctx, code)
		if err != nil {
			return err
		}
		return ctx.JSON(nethttp.StatusOK, out.(*RemoveReply))
	}
}

func _Link_List0_HTTP_Handler(srv LinkHTTPServer) func(ctx khttp.Context) error {
	return func(ctx khttp.Context) error {
		khttp.SetOperation(ctx, OperationLinkList)
		h := ctx.Middleware(func(ctx context.Context, req interface{}) (interface{}, error) {
			return srv.List(ctx)
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		links := out.([]LinkReply)
		if links == nil {
			links = []LinkReply{}
		}
		return ctx.JSON(nethttp.StatusOK, links)
	}
}
