package main

import (
	"context"
	"flag"
	"os"

	"go-shortlink/internal/biz"
	"go-shortlink/internal/conf"
	"go-shortlink/internal/infra/eventbus"
	"go-shortlink/internal/infra/logging"
	"go-shortlink/internal/service"

	"github.com/go-kratos/kratos/v2"
	"github.com/go-kratos/kratos/v2/config"
	"github.com/go-kratos/kratos/v2/config/env"
	"github.com/go-kratos/kratos/v2/config/file"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/go-kratos/kratos/v2/middleware/tracing"
	"github.com/go-kratos/kratos/v2/transport/grpc"
	"github.com/go-kratos/kratos/v2/transport/http"
	"github.com/joho/godotenv"

	_ "go.uber.org/automaxprocs"
)

// go build -ldflags "-X main.Version=x.y.z"
var (
	// Name is the name of the compiled software.
	Name = "shortlink"
	// Version is the version of the compiled software.
	Version string
	// flagconf is the config flag.
	flagconf string
	// flagenv is the dotenv flag.
	flagenv string

	id, _ = os.Hostname()
)

func init() {
	flag.StringVar(&flagconf, "conf", "../../configs", "config path, eg: -conf config.yaml")
	flag.StringVar(&flagenv, "env", ".env", "optional dotenv file loaded before the config")
}

func newApp(
	logger log.Logger,
	gs *grpc.Server,
	hs *http.Server,
	reaper *biz.Reaper,
	eventBus *eventbus.EventBus,
	router *eventbus.Router,
	feed *service.ClickFeed,
) *kratos.App {
	biz.RegisterEventHandlers(router, logger, feed)
	helper := log.NewHelper(logger)

	return kratos.New(
		kratos.ID(id),
		kratos.Name(Name),
		kratos.Version(Version),
		kratos.Metadata(map[string]string{}),
		kratos.Logger(logger),
		kratos.Server(
			gs,
			hs,
			reaper,
		),
		kratos.BeforeStart(func(ctx context.Context) error {
			go func() {
				if err := router.Run(ctx); err != nil {
					helper.Errorf("event router error: %v", err)
				}
			}()
			// Events published before the handlers subscribe would be lost.
			select {
			case <-router.Running():
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		}),
		kratos.BeforeStop(func(ctx context.Context) error {
			feed.Close()
			if err := router.Close(); err != nil {
				helper.Errorf("failed to close router: %v", err)
			}
			if err := eventBus.Close(); err != nil {
				helper.Errorf("failed to close event bus: %v", err)
			}
			return nil
		}),
	)
}

func main() {
	flag.Parse()
	if err := godotenv.Load(flagenv); err != nil && !os.IsNotExist(err) {
		panic(err)
	}

	c := config.New(
		config.WithSource(
			file.NewSource(flagconf),
			env.NewSource("SHORTLINK_"),
		),
	)
	defer c.Close()

	if err := c.Load(); err != nil {
		panic(err)
	}

	var bc conf.Bootstrap
	if err := c.Scan(&bc); err != nil {
		panic(err)
	}

	zl, err := logging.NewZapLogger(bc.Log)
	if err != nil {
		panic(err)
	}
	defer zl.Sync()

	logger := log.With(zl,
		"ts", log.DefaultTimestamp,
		"caller", log.DefaultCaller,
		"service.id", id,
		"service.name", Name,
		"service.version", Version,
		"trace.id", tracing.TraceID(),
		"span.id", tracing.SpanID(),
	)

	app, cleanup, err := wireApp(bc.Server, bc.Data, bc.Link, logger)
	if err != nil {
		panic(err)
	}
	defer cleanup()

	// start and wait for stop signal
	if err := app.Run(); err != nil {
		panic(err)
	}
}
