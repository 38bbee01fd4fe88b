// Package exchange stores per-user currency conversion rates.
package exchange

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
)

// Rate converts one unit of Base into Rate units of Target.
type Rate struct {
	ID        int64     `json:"id"`
	Base      string    `json:"base"`
	Target    string    `json:"target"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"-"`
}

// Store is the persistence contract used by the handler.
type Store interface {
	List(ctx context.Context, userID uuid.UUID) ([]Rate, error)
	Upsert(ctx context.Context, userID uuid.UUID, base, target string, rate float64) (Rate, error)
}

// Repository handles persistence for exchange rates.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]Rate, error) {
	const query = `
		SELECT id, base, target, rate, updated_at
		FROM exchange_rates
		WHERE user_id = $1
		ORDER BY base, target`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list exchange rates: %w", err)
	}
	defer rows.Close()

	rates := []Rate{}
	for rows.Next() {
		var rate Rate
		if err := rows.Scan(&rate.ID, &rate.Base, &rate.Target, &rate.Rate, &rate.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan exchange rate: %w", err)
		}
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchange rates: %w", err)
	}
	return rates, nil
}

// Upsert stores rate for base to target, replacing any previous value.
func (r *Repository) Upsert(ctx context.Context, userID uuid.UUID, base, target string, rate float64) (Rate, error) {
	const query = `
		INSERT INTO exchange_rates (user_id, base, target, rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, base, target)
		DO UPDATE SET rate = EXCLUDED.rate, updated_at = now()
		RETURNING id, base, target, rate, updated_at`

	var out Rate
	if err := r.db.QueryRowContext(ctx, query, userID, base, target, rate).Scan(
		&out.ID,
		&out.Base,
		&out.Target,
		&out.Rate,
		&out.UpdatedAt,
	); err != nil {
		return Rate{}, fmt.Errorf("upsert exchange rate: %w", err)
	}
	return out, nil
}

// Table builds the rate lookup the cost engine converts with.
func Table(rates []Rate) billing.RateTable {
	table := billing.RateTable{}
	for _, r := range rates {
		table.Set(r.Base, r.Target, r.Rate)
	}
	return table
}
