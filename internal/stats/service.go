// Package stats feeds stored records through the billing engine.
package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
	"github.com/beheryahmed1991/subscription-tracker/internal/category"
	"github.com/beheryahmed1991/subscription-tracker/internal/exchange"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

// SubscriptionSource yields the enabled subscriptions of a user.
type SubscriptionSource interface {
	Active(ctx context.Context, owner user.User, categoryID *int64) ([]billing.Subscription, error)
}

// RateSource yields the stored exchange rates of a user.
type RateSource interface {
	List(ctx context.Context, userID uuid.UUID) ([]exchange.Rate, error)
}

// CategorySource yields the categories of a user.
type CategorySource interface {
	List(ctx context.Context, userID uuid.UUID) ([]category.Category, error)
}

// Query selects what a report covers.
type Query struct {
	Period     billing.PeriodKind
	CategoryID *int64
	// Currency overrides the user's default reporting currency when set.
	Currency string
	Today    time.Time
}

type Service struct {
	subs  SubscriptionSource
	rates RateSource
	cats  CategorySource
}

func NewService(subs SubscriptionSource, rates RateSource, cats CategorySource) *Service {
	return &Service{subs: subs, rates: rates, cats: cats}
}

// Summary returns the period total with a per-subscription breakdown.
func (s *Service) Summary(ctx context.Context, owner user.User, q Query) (billing.Summary, error) {
	subs, req, err := s.load(ctx, owner, q.CategoryID, q)
	if err != nil {
		return billing.Summary{}, err
	}
	summary, err := billing.Summarize(subs, req)
	if err != nil {
		return billing.Summary{}, fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}

// ByCategory returns the per-category rollup. The category filter of q is
// ignored; every category is reported.
func (s *Service) ByCategory(ctx context.Context, owner user.User, q Query) (billing.CategorySummary, error) {
	subs, req, err := s.load(ctx, owner, nil, q)
	if err != nil {
		return billing.CategorySummary{}, err
	}

	cats, err := s.cats.List(ctx, owner.ID)
	if err != nil {
		return billing.CategorySummary{}, err
	}
	req.Categories = category.Lookup(cats)

	summary, err := billing.SummarizeByCategory(subs, req)
	if err != nil {
		return billing.CategorySummary{}, fmt.Errorf("summarize by category: %w", err)
	}
	return summary, nil
}

func (s *Service) load(ctx context.Context, owner user.User, categoryID *int64, q Query) ([]billing.Subscription, billing.Request, error) {
	subs, err := s.subs.Active(ctx, owner, categoryID)
	if err != nil {
		return nil, billing.Request{}, err
	}
	rates, err := s.rates.List(ctx, owner.ID)
	if err != nil {
		return nil, billing.Request{}, err
	}

	target := q.Currency
	if target == "" {
		target = owner.DefaultCurrency
	}
	return subs, billing.Request{
		Period:   q.Period,
		Today:    q.Today,
		Currency: target,
		Rates:    exchange.Table(rates).Lookup,
	}, nil
}
