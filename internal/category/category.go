// Package category reads category records for grouping spend.
package category

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
	"github.com/beheryahmed1991/subscription-tracker/internal/db"
)

// Category groups subscriptions for the per-category rollup.
type Category struct {
	ID     int64     `json:"id"`
	UserID uuid.UUID `json:"-"`
	Name   string    `json:"name"`
	Color  string    `json:"color"`
}

// Repository handles persistence for categories.
type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) *Repository {
	return &Repository{db: conn}
}

func (r *Repository) List(ctx context.Context, userID uuid.UUID) ([]Category, error) {
	const query = `
		SELECT id, user_id, name, color
		FROM categories
		WHERE user_id = $1
		ORDER BY name ASC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var cats []Category
	for rows.Next() {
		var c Category
		if err := rows.Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		cats = append(cats, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return cats, nil
}

// Count returns how many categories userID owns.
func (r *Repository) Count(ctx context.Context, userID uuid.UUID) (int, error) {
	const query = `SELECT COUNT(*) FROM categories WHERE user_id = $1`

	var n int
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count categories: %w", err)
	}
	return n, nil
}

func (r *Repository) Create(ctx context.Context, userID uuid.UUID, name, color string) (Category, error) {
	const query = `
		INSERT INTO categories (user_id, name, color)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, name, color`

	var c Category
	if err := r.db.QueryRowContext(ctx, query, userID, name, color).Scan(&c.ID, &c.UserID, &c.Name, &c.Color); err != nil {
		return Category{}, fmt.Errorf("insert category: %w", err)
	}
	return c, nil
}

// Lookup indexes cats for the billing rollup.
func Lookup(cats []Category) billing.CategoryLookup {
	index := make(map[int64]billing.Category, len(cats))
	for _, c := range cats {
		index[c.ID] = billing.Category{Name: c.Name, Color: c.Color}
	}
	return func(id int64) (billing.Category, bool) {
		c, ok := index[id]
		return c, ok
	}
}
