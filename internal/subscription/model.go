package subscription

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
)

const (
	defaultName  = "Unnamed"
	defaultIcon  = "💡"
	defaultColor = "#6b7280"
	remindDays   = "days"
	layoutDate   = "2006-01-02"
)

// Subscription mirrors the database schema for the subscriptions table.
type Subscription struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	CategoryID *int64

	Name    string
	Icon    string
	LogoURL *string
	Color   string

	Price     decimal.Decimal
	Currency  string
	Frequency int
	Cycle     string
	StartDate time.Time

	TrialEnabled      bool
	TrialPrice        decimal.NullDecimal
	TrialUseMainCycle bool
	TrialFrequency    *int
	TrialCycle        *string
	TrialEndDate      *time.Time

	NotifyEnabled bool
	RemindValue   *int
	RemindUnit    *string

	Disabled  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ToBilling returns the view of s used by the cost engine.
func (s Subscription) ToBilling() billing.Subscription {
	out := billing.Subscription{
		ID:           s.ID.String(),
		Name:         s.Name,
		Color:        s.Color,
		CategoryID:   s.CategoryID,
		Price:        s.Price.InexactFloat64(),
		Currency:     s.Currency,
		Frequency:    s.Frequency,
		Cycle:        billing.PeriodKind(s.Cycle),
		StartDate:    s.StartDate,
		TrialEnabled: s.TrialEnabled,
		TrialEndDate: s.TrialEndDate,
		Disabled:     s.Disabled,
	}
	if s.TrialPrice.Valid {
		price := s.TrialPrice.Decimal.InexactFloat64()
		out.TrialPrice = &price
	}
	return out
}

// ListFilter narrows List results.
type ListFilter struct {
	UserID          uuid.UUID
	CategoryID      *int64
	ExcludeDisabled bool
}

// Input is the request body for create and update calls. Nil fields are
// left alone by a partial update and reset to defaults by a full one.
type Input struct {
	Name       *string  `json:"name" binding:"omitempty,max=120"`
	Icon       *string  `json:"icon"`
	LogoURL    *string  `json:"logo_url" binding:"omitempty,max=512"`
	Color      *string  `json:"color" binding:"omitempty,hexcolor"`
	CategoryID *int64   `json:"category_id"`
	Price      *float64 `json:"price" binding:"omitempty,min=0"`
	Currency   *string  `json:"currency" binding:"omitempty,currency"`
	Frequency  *int     `json:"frequency" binding:"omitempty,min=1"`
	Cycle      *string  `json:"cycle" binding:"omitempty,period"`
	StartDate  *string  `json:"start_date"`

	TrialEnabled      *bool    `json:"trial_enabled"`
	TrialPrice        *float64 `json:"trial_price" binding:"omitempty,min=0"`
	TrialUseMainCycle *bool    `json:"trial_use_main_cycle"`
	TrialFrequency    *int     `json:"trial_frequency" binding:"omitempty,min=1"`
	TrialCycle        *string  `json:"trial_cycle" binding:"omitempty,period"`
	TrialEndDate      *string  `json:"trial_end_date"`

	NotifyEnabled *bool   `json:"notify_enabled"`
	RemindValue   *int    `json:"remind_value" binding:"omitempty,min=1,max=6"`
	RemindUnit    *string `json:"remind_unit" binding:"omitempty,oneof=days weeks"`
	Disabled      *bool   `json:"disabled"`
}

// View is the JSON representation returned by the API.
type View struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Icon           string    `json:"icon"`
	LogoURL        *string   `json:"logo_url"`
	Color          string    `json:"color"`
	Price          float64   `json:"price"`
	Currency       string    `json:"currency"`
	CurrencySymbol string    `json:"currency_symbol"`
	Frequency      int       `json:"frequency"`
	Cycle          string    `json:"cycle"`
	PeriodLabel    string    `json:"period_label"`
	CategoryID     *int64    `json:"category_id"`
	Disabled       bool      `json:"disabled"`
	DisplayPrice   float64   `json:"display_price"`
	TrialActive    bool      `json:"trial_active"`

	*Detail
}

// Detail holds the fields only returned for a single subscription.
type Detail struct {
	StartDate         string   `json:"start_date"`
	TrialEnabled      bool     `json:"trial_enabled"`
	TrialPrice        *float64 `json:"trial_price"`
	TrialUseMainCycle bool     `json:"trial_use_main_cycle"`
	TrialFrequency    *int     `json:"trial_frequency"`
	TrialCycle        *string  `json:"trial_cycle"`
	TrialEndDate      *string  `json:"trial_end_date"`
	NotifyEnabled     bool     `json:"notify_enabled"`
	RemindValue       *int     `json:"remind_value"`
	RemindUnit        *string  `json:"remind_unit"`
}
