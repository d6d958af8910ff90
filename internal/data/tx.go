package data

import (
	"context"

	"entgo.io/ent/dialect"
)

// withTx runs fn inside a transaction, committing on success and rolling
// back on error or panic.
func (d *Data) withTx(ctx context.Context, fn func(tx dialect.Tx) error) error {
	tx, err := d.db.Tx(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			d.log.WithContext(ctx).Errorf("rollback failed: %v", rbErr)
		}
		return err
	}

	return tx.Commit()
}
