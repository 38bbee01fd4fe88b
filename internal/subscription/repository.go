package subscription

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/db"
)

const selectColumns = `id, user_id, category_id, name, icon, logo_url, color,
		price, currency, frequency, cycle, start_date,
		trial_enabled, trial_price, trial_use_main_cycle, trial_frequency, trial_cycle, trial_end_date,
		notify_enabled, remind_value, remind_unit, disabled, created_at, updated_at`

// Store is the persistence contract the service depends on.
type Store interface {
	Create(context.Context, Subscription) (Subscription, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (Subscription, error)
	List(context.Context, ListFilter) ([]Subscription, error)
	Update(context.Context, Subscription) (Subscription, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Repository handles persistence for subscriptions.
type Repository struct {
	db db.DBTX
}

func NewRepository(conn db.DBTX) *Repository {
	return &Repository{db: conn}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubscription(row rowScanner) (Subscription, error) {
	var sub Subscription
	err := row.Scan(
		&sub.ID,
		&sub.UserID,
		&sub.CategoryID,
		&sub.Name,
		&sub.Icon,
		&sub.LogoURL,
		&sub.Color,
		&sub.Price,
		&sub.Currency,
		&sub.Frequency,
		&sub.Cycle,
		&sub.StartDate,
		&sub.TrialEnabled,
		&sub.TrialPrice,
		&sub.TrialUseMainCycle,
		&sub.TrialFrequency,
		&sub.TrialCycle,
		&sub.TrialEndDate,
		&sub.NotifyEnabled,
		&sub.RemindValue,
		&sub.RemindUnit,
		&sub.Disabled,
		&sub.CreatedAt,
		&sub.UpdatedAt,
	)
	return sub, err
}

func writeArgs(sub Subscription) []any {
	return []any{
		sub.CategoryID,
		sub.Name,
		sub.Icon,
		sub.LogoURL,
		sub.Color,
		sub.Price,
		sub.Currency,
		sub.Frequency,
		sub.Cycle,
		sub.StartDate,
		sub.TrialEnabled,
		sub.TrialPrice,
		sub.TrialUseMainCycle,
		sub.TrialFrequency,
		sub.TrialCycle,
		sub.TrialEndDate,
		sub.NotifyEnabled,
		sub.RemindValue,
		sub.RemindUnit,
		sub.Disabled,
	}
}

func (r *Repository) Create(ctx context.Context, sub Subscription) (Subscription, error) {
	query := `
		INSERT INTO subscriptions (user_id, category_id, name, icon, logo_url, color,
			price, currency, frequency, cycle, start_date,
			trial_enabled, trial_price, trial_use_main_cycle, trial_frequency, trial_cycle, trial_end_date,
			notify_enabled, remind_value, remind_unit, disabled)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING ` + selectColumns

	args := append([]any{sub.UserID}, writeArgs(sub)...)
	created, err := scanSubscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return Subscription{}, fmt.Errorf("insert subscription: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, userID, id uuid.UUID) (Subscription, error) {
	query := `SELECT ` + selectColumns + `
		FROM subscriptions
		WHERE id = $1 AND user_id = $2`

	sub, err := scanSubscription(r.db.QueryRowContext(ctx, query, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return Subscription{}, err
		}
		return Subscription{}, fmt.Errorf("select subscription: %w", err)
	}
	return sub, nil
}

func (r *Repository) List(ctx context.Context, filter ListFilter) ([]Subscription, error) {
	args := []any{filter.UserID}
	where := []string{"user_id = $1"}

	if filter.CategoryID != nil {
		args = append(args, *filter.CategoryID)
		where = append(where, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if filter.ExcludeDisabled {
		where = append(where, "NOT disabled")
	}

	query := `SELECT ` + selectColumns + `
		FROM subscriptions
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list subscriptions: %w", err)
	}
	defer rows.Close()

	subs := []Subscription{}
	for rows.Next() {
		sub, err := scanSubscription(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		subs = append(subs, sub)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}

	return subs, nil
}

func (r *Repository) Update(ctx context.Context, sub Subscription) (Subscription, error) {
	query := `
		UPDATE subscriptions
		SET category_id = $1, name = $2, icon = $3, logo_url = $4, color = $5,
			price = $6, currency = $7, frequency = $8, cycle = $9, start_date = $10,
			trial_enabled = $11, trial_price = $12, trial_use_main_cycle = $13,
			trial_frequency = $14, trial_cycle = $15, trial_end_date = $16,
			notify_enabled = $17, remind_value = $18, remind_unit = $19, disabled = $20,
			updated_at = now()
		WHERE id = $21 AND user_id = $22
		RETURNING ` + selectColumns

	args := append(writeArgs(sub), sub.ID, sub.UserID)
	updated, err := scanSubscription(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return Subscription{}, err
		}
		return Subscription{}, fmt.Errorf("update subscription: %w", err)
	}
	return updated, nil
}

func (r *Repository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	const query = `DELETE FROM subscriptions WHERE id = $1 AND user_id = $2`
	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("delete subscription: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rows affected: %w", err)
	}
	if rows == 0 {
		return sql.ErrNoRows
	}
	return nil
}
