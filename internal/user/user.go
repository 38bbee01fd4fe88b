// Package user provides the single demo account every request runs as.
package user

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// User is the owner of subscriptions, categories and exchange rates.
type User struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	DefaultCurrency string    `json:"default_currency"`
	CreatedAt       time.Time `json:"created_at"`
}

// Repository handles persistence for users.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureDemo returns the user called username, creating it with currency as
// its default when it does not exist yet.
func (r *Repository) EnsureDemo(ctx context.Context, username, currency string) (User, error) {
	const query = `
		INSERT INTO users (username, default_currency)
		VALUES ($1, $2)
		ON CONFLICT (username) DO UPDATE SET username = EXCLUDED.username
		RETURNING id, username, default_currency, created_at`

	var u User
	if err := r.db.QueryRowContext(ctx, query, username, currency).Scan(
		&u.ID,
		&u.Username,
		&u.DefaultCurrency,
		&u.CreatedAt,
	); err != nil {
		return User{}, fmt.Errorf("ensure demo user: %w", err)
	}
	return u, nil
}
