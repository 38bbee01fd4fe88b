package seed

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/beheryahmed1991/subscription-tracker/internal/category"
	"github.com/beheryahmed1991/subscription-tracker/internal/db"
	"github.com/beheryahmed1991/subscription-tracker/internal/subscription"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

// SQLTransactor binds the category repository and the subscription service
// to one PostgreSQL transaction.
type SQLTransactor struct {
	db  *sql.DB
	now func() time.Time
}

func NewSQLTransactor(database *sql.DB, now func() time.Time) *SQLTransactor {
	return &SQLTransactor{db: database, now: now}
}

// InTx locks the owner's row first so concurrent seeds of one user run one
// after the other and the second sees the first one's categories.
func (t *SQLTransactor) InTx(ctx context.Context, owner user.User, fn func(Stores) error) error {
	return db.WithTx(ctx, t.db, func(tx *sql.Tx) error {
		const lock = `SELECT id FROM users WHERE id = $1 FOR UPDATE`
		if _, err := tx.ExecContext(ctx, lock, owner.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		return fn(Stores{
			Categories:    category.NewRepository(tx),
			Subscriptions: subscription.NewService(subscription.NewRepository(tx), t.now),
		})
	})
}
