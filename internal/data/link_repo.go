package data

import (
	"context"
	stdsql "database/sql"
	"errors"
	"fmt"
	"time"

	"go-shortlink/internal/domain"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/go-kratos/kratos/v2/log"
)

var _ domain.LinkRepository = (*linkRepo)(nil)

// linkRepo implements domain.LinkRepository on top of ent's SQL builders.
type linkRepo struct {
	data *Data
	log  *log.Helper
}

// NewLinkRepo creates the SQL-backed link repository.
func NewLinkRepo(data *Data, logger log.Logger) *linkRepo {
	return &linkRepo{
		data: data,
		log:  log.NewHelper(logger),
	}
}

func (r *linkRepo) builder() *entsql.DialectBuilder {
	return entsql.Dialect(r.data.sqlDialect())
}

// Insert reclaims an expired holder of the same code and inserts link in one
// transaction. The unique index on short_code arbitrates concurrent inserts.
func (r *linkRepo) Insert(ctx context.Context, link *domain.Link) error {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	b := r.builder()
	err := r.data.withTx(ctx, func(tx dialect.Tx) error {
		query, args := b.Delete(linksTable).
			Where(entsql.And(
				entsql.EQ(columnShortCode, link.ShortCode().String()),
				entsql.LTE(columnExpiresAt, link.CreatedAt()),
			)).
			Query()
		var res stdsql.Result
		if err := tx.Exec(ctx, query, args, &res); err != nil {
			return err
		}
		if n, err := res.RowsAffected(); err == nil && n > 0 {
			r.log.WithContext(ctx).Debugf("reclaimed expired short code %s", link.ShortCode())
		}

		query, args = b.Insert(linksTable).
			Columns(linkColumns...).
			Values(
				link.ID(),
				link.ShortCode().String(),
				link.OriginalURL().String(),
				link.Clicks(),
				link.CreatedAt().UTC(),
				link.ExpiresAt().UTC(),
			).
			Query()
		return tx.Exec(ctx, query, args, nil)
	})
	if err != nil {
		if sqlgraph.IsUniqueConstraintError(err) {
			return domain.ErrShortCodeConflict
		}
		return storeError("insert link", err)
	}
	return nil
}

func (r *linkRepo) FindByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	links, err := r.query(ctx, r.data.db, r.builder().
		Select(linkColumns...).
		From(r.builder().Table(linksTable)).
		Where(entsql.EQ(columnShortCode, code.String())))
	if err != nil {
		return nil, storeError("find link", err)
	}
	if len(links) == 0 {
		return nil, nil
	}
	return links[0], nil
}

// IncrementClicks performs clicks = clicks + 1 at the database and reads the
// row back inside the same transaction.
func (r *linkRepo) IncrementClicks(ctx context.Context, id string) (*domain.Link, error) {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	b := r.builder()
	var updated *domain.Link
	err := r.data.withTx(ctx, func(tx dialect.Tx) error {
		query, args := b.Update(linksTable).
			Add(columnClicks, 1).
			Where(entsql.EQ(columnID, id)).
			Query()
		var res stdsql.Result
		if err := tx.Exec(ctx, query, args, &res); err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if n == 0 {
			return domain.ErrLinkNotFound
		}

		links, err := r.query(ctx, tx, b.
			Select(linkColumns...).
			From(b.Table(linksTable)).
			Where(entsql.EQ(columnID, id)))
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return domain.ErrLinkNotFound
		}
		updated = links[0]
		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrLinkNotFound) {
			return nil, err
		}
		return nil, storeError("increment clicks", err)
	}
	return updated, nil
}

func (r *linkRepo) DeleteByShortCode(ctx context.Context, code domain.ShortCode) (*domain.Link, error) {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	b := r.builder()
	var deleted *domain.Link
	err := r.data.withTx(ctx, func(tx dialect.Tx) error {
		links, err := r.query(ctx, tx, b.
			Select(linkColumns...).
			From(b.Table(linksTable)).
			Where(entsql.EQ(columnShortCode, code.String())))
		if err != nil {
			return err
		}
		if len(links) == 0 {
			return nil
		}

		query, args := b.Delete(linksTable).
			Where(entsql.EQ(columnID, links[0].ID())).
			Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			return err
		}
		deleted = links[0]
		return nil
	})
	if err != nil {
		return nil, storeError("delete link", err)
	}
	return deleted, nil
}

func (r *linkRepo) ListLive(ctx context.Context, now time.Time) ([]*domain.Link, error) {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	b := r.builder()
	t := b.Table(linksTable)
	links, err := r.query(ctx, r.data.db, b.
		Select(linkColumns...).
		From(t).
		Where(entsql.GT(columnExpiresAt, now.UTC())).
		OrderBy(entsql.Desc(t.C(columnCreatedAt))))
	if err != nil {
		return nil, storeError("list links", err)
	}
	return links, nil
}

func (r *linkRepo) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	ctx, cancel := r.data.withTimeout(ctx)
	defer cancel()

	query, args := r.builder().Delete(linksTable).
		Where(entsql.LTE(columnExpiresAt, now.UTC())).
		Query()
	var res stdsql.Result
	if err := r.data.db.Exec(ctx, query, args, &res); err != nil {
		return 0, storeError("purge expired links", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, storeError("purge expired links", err)
	}
	return int(n), nil
}

// query runs a select on q (the driver or an open transaction) and maps the rows.
func (r *linkRepo) query(ctx context.Context, q dialect.ExecQuerier, sel *entsql.Selector) ([]*domain.Link, error) {
	query, args := sel.Query()
	var rows entsql.Rows
	if err := q.Query(ctx, query, args, &rows); err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []linkRecord
	for rows.Next() {
		var rec linkRecord
		if err := rows.Scan(&rec.ID, &rec.ShortCode, &rec.OriginalURL, &rec.Clicks, &rec.CreatedAt, &rec.ExpiresAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	links := make([]*domain.Link, 0, len(records))
	for _, rec := range records {
		link, err := rec.toDomain()
		if err != nil {
			r.log.WithContext(ctx).Warnf("skipping unreadable link %s: %v", rec.ID, err)
			continue
		}
		links = append(links, link)
	}
	return links, nil
}

// linkRecord is a row of the links table.
type linkRecord struct {
	ID          string
	ShortCode   string
	OriginalURL string
	Clicks      int64
	CreatedAt   time.Time
	ExpiresAt   time.Time
}

func (rec linkRecord) toDomain() (*domain.Link, error) {
	sc, err := domain.NewShortCode(rec.ShortCode)
	if err != nil {
		return nil, err
	}
	ou, err := domain.NewOriginalURL(rec.OriginalURL)
	if err != nil {
		return nil, err
	}
	return domain.ReconstructLink(rec.ID, sc, ou, rec.Clicks, rec.CreatedAt, rec.ExpiresAt), nil
}

// storeError marks a driver failure as ErrStoreUnavailable while keeping the cause.
func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
}
