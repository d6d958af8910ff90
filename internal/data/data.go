package data

import (
	"context"
	"fmt"
	"time"

	"go-shortlink/internal/conf"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/go-kratos/kratos/v2/log"
	"github.com/google/wire"
	"github.com/redis/go-redis/v9"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ProviderSet is data providers.
var ProviderSet = wire.NewSet(NewData, NewLinkRepo, NewRedisLinkCache, NewCachedLinkRepository)

const (
	defaultDriver    = dialect.SQLite
	defaultSource    = "file:shortlink.db?cache=shared&_fk=1"
	defaultOpTimeout = 2 * time.Second
	defaultCacheTTL  = 10 * time.Minute
)

// Data holds the database driver and the optional redis client.
type Data struct {
	db        *entsql.Driver
	rdb       *redis.Client
	opTimeout time.Duration
	log       *log.Helper
}

// NewData opens the database, runs the migration and connects to redis when
// an address is configured.
func NewData(c *conf.Data, logger log.Logger) (*Data, func(), error) {
	helper := log.NewHelper(logger)

	driver, source, opTimeout := defaultDriver, defaultSource, defaultOpTimeout
	maxOpen := 0
	if c != nil && c.Database != nil {
		if c.Database.Driver != "" {
			driver = c.Database.Driver
		}
		if c.Database.Source != "" {
			source = c.Database.Source
		}
		if c.Database.Timeout.Duration > 0 {
			opTimeout = c.Database.Timeout.Duration
		}
		maxOpen = c.Database.MaxOpenConns
	}

	switch driver {
	case dialect.SQLite, dialect.Postgres:
	default:
		return nil, nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	drv, err := entsql.Open(driver, source)
	if err != nil {
		return nil, nil, fmt.Errorf("failed opening connection to %s: %w", driver, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := Migrate(ctx, drv); err != nil {
		_ = drv.Close()
		return nil, nil, fmt.Errorf("failed creating schema resources: %w", err)
	}

	if driver == dialect.SQLite {
		// One connection serialises writers and keeps a shared in-memory database alive.
		drv.DB().SetMaxOpenConns(1)
	} else if maxOpen > 0 {
		drv.DB().SetMaxOpenConns(maxOpen)
	}

	var rdb *redis.Client
	if c != nil && c.Redis != nil && c.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:         c.Redis.Addr,
			Password:     c.Redis.Password,
			DB:           c.Redis.DB,
			ReadTimeout:  c.Redis.ReadTimeout.Duration,
			WriteTimeout: c.Redis.WriteTimeout.Duration,
		})
	}

	d := &Data{
		db:        drv,
		rdb:       rdb,
		opTimeout: opTimeout,
		log:       helper,
	}

	cleanup := func() {
		helper.Info("closing the data resources")
		if err := d.db.Close(); err != nil {
			helper.Error(err)
		}
		if d.rdb != nil {
			if err := d.rdb.Close(); err != nil {
				helper.Error(err)
			}
		}
	}

	return d, cleanup, nil
}

// Redis returns the redis client, or nil when caching is disabled.
func (d *Data) Redis() *redis.Client {
	return d.rdb
}

func (d *Data) sqlDialect() string {
	return d.db.Dialect()
}

func (d *Data) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, d.opTimeout)
}
