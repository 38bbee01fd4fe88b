package subscription

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/beheryahmed1991/subscription-tracker/internal/billing"
	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
	"github.com/beheryahmed1991/subscription-tracker/internal/user"
)

// ValidationError reports input that passed binding but cannot be applied.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Service defines the business operations exposed to handlers.
type Service interface {
	Create(context.Context, user.User, Input) (Subscription, error)
	GetByID(context.Context, user.User, uuid.UUID) (Subscription, error)
	List(ctx context.Context, owner user.User, categoryID *int64) ([]Subscription, error)
	Replace(context.Context, user.User, uuid.UUID, Input) (Subscription, error)
	Patch(context.Context, user.User, uuid.UUID, Input) (Subscription, error)
	Delete(context.Context, user.User, uuid.UUID) error
	Active(ctx context.Context, owner user.User, categoryID *int64) ([]billing.Subscription, error)
}

type service struct {
	repo Store
	now  func() time.Time
}

// NewService creates a Service backed by the provided repository.
func NewService(repo Store, now func() time.Time) Service {
	if now == nil {
		now = time.Now
	}
	return &service{repo: repo, now: now}
}

func (s *service) Create(ctx context.Context, owner user.User, in Input) (Subscription, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return Subscription{}, &ValidationError{Field: "name", Message: "is required"}
	}
	if in.Price == nil {
		return Subscription{}, &ValidationError{Field: "price", Message: "is required"}
	}

	sub := Subscription{UserID: owner.ID}
	if err := apply(&sub, in, owner.DefaultCurrency, false, s.now()); err != nil {
		return Subscription{}, err
	}
	return s.repo.Create(ctx, sub)
}

func (s *service) GetByID(ctx context.Context, owner user.User, id uuid.UUID) (Subscription, error) {
	return s.repo.GetByID(ctx, owner.ID, id)
}

func (s *service) List(ctx context.Context, owner user.User, categoryID *int64) ([]Subscription, error) {
	return s.repo.List(ctx, ListFilter{UserID: owner.ID, CategoryID: categoryID})
}

func (s *service) Replace(ctx context.Context, owner user.User, id uuid.UUID, in Input) (Subscription, error) {
	return s.update(ctx, owner, id, in, false)
}

func (s *service) Patch(ctx context.Context, owner user.User, id uuid.UUID, in Input) (Subscription, error) {
	return s.update(ctx, owner, id, in, true)
}

func (s *service) update(ctx context.Context, owner user.User, id uuid.UUID, in Input, partial bool) (Subscription, error) {
	sub, err := s.repo.GetByID(ctx, owner.ID, id)
	if err != nil {
		return Subscription{}, err
	}
	if err := apply(&sub, in, owner.DefaultCurrency, partial, s.now()); err != nil {
		return Subscription{}, err
	}
	return s.repo.Update(ctx, sub)
}

func (s *service) Delete(ctx context.Context, owner user.User, id uuid.UUID) error {
	return s.repo.Delete(ctx, owner.ID, id)
}

// Active returns the enabled subscriptions of owner in the form the cost
// engine consumes.
func (s *service) Active(ctx context.Context, owner user.User, categoryID *int64) ([]billing.Subscription, error) {
	subs, err := s.repo.List(ctx, ListFilter{UserID: owner.ID, CategoryID: categoryID, ExcludeDisabled: true})
	if err != nil {
		return nil, err
	}
	out := make([]billing.Subscription, 0, len(subs))
	for _, sub := range subs {
		out = append(out, sub.ToBilling())
	}
	return out, nil
}

// apply copies in onto sub. With partial set only non-nil fields are
// applied; otherwise missing fields fall back to defaults.
func apply(sub *Subscription, in Input, defaultCurrency string, partial bool, today time.Time) error {
	should := func(present bool) bool { return !partial || present }

	if should(in.Name != nil) {
		sub.Name = defaultName
		if in.Name != nil && strings.TrimSpace(*in.Name) != "" {
			sub.Name = strings.TrimSpace(*in.Name)
		}
	}
	if should(in.Icon != nil) {
		sub.Icon = stringOr(in.Icon, defaultIcon)
	}
	if should(in.LogoURL != nil) {
		sub.LogoURL = nil
		if in.LogoURL != nil && strings.TrimSpace(*in.LogoURL) != "" {
			cleaned := strings.TrimSpace(*in.LogoURL)
			sub.LogoURL = &cleaned
		}
	}
	if should(in.Color != nil) {
		sub.Color = stringOr(in.Color, defaultColor)
	}
	if should(in.CategoryID != nil) {
		sub.CategoryID = nil
		if in.CategoryID != nil && *in.CategoryID > 0 {
			id := *in.CategoryID
			sub.CategoryID = &id
		}
	}
	if should(in.Price != nil) {
		sub.Price = decimal.Zero
		if in.Price != nil {
			sub.Price = decimal.NewFromFloat(*in.Price)
		}
	}
	if should(in.Currency != nil) {
		sub.Currency = currency.Normalize(stringOr(in.Currency, defaultCurrency))
	}
	if should(in.Frequency != nil) {
		sub.Frequency = 1
		if in.Frequency != nil && *in.Frequency > 0 {
			sub.Frequency = *in.Frequency
		}
	}
	if should(in.Cycle != nil) {
		sub.Cycle = string(billing.ParsePeriod(stringOr(in.Cycle, "")))
	}
	if in.StartDate != nil && strings.TrimSpace(*in.StartDate) != "" {
		start, err := parseDate(*in.StartDate, "start_date")
		if err != nil {
			return err
		}
		sub.StartDate = start
	} else if !partial {
		y, m, d := today.Date()
		sub.StartDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	if should(in.TrialEnabled != nil) {
		sub.TrialEnabled = in.TrialEnabled != nil && *in.TrialEnabled
	}
	if should(in.TrialPrice != nil) {
		sub.TrialPrice = decimal.NullDecimal{}
		if in.TrialPrice != nil {
			sub.TrialPrice = decimal.NewNullDecimal(decimal.NewFromFloat(*in.TrialPrice))
		}
	}
	if should(in.TrialUseMainCycle != nil) {
		sub.TrialUseMainCycle = in.TrialUseMainCycle == nil || *in.TrialUseMainCycle
	}
	if should(in.TrialFrequency != nil) {
		sub.TrialFrequency = in.TrialFrequency
	}
	if should(in.TrialCycle != nil) {
		sub.TrialCycle = nil
		if in.TrialCycle != nil && *in.TrialCycle != "" {
			cycle := string(billing.ParsePeriod(*in.TrialCycle))
			sub.TrialCycle = &cycle
		}
	}
	if should(in.TrialEndDate != nil) {
		sub.TrialEndDate = nil
		if in.TrialEndDate != nil && strings.TrimSpace(*in.TrialEndDate) != "" {
			end, err := parseDate(*in.TrialEndDate, "trial_end_date")
			if err != nil {
				return err
			}
			sub.TrialEndDate = &end
		}
	}

	if should(in.NotifyEnabled != nil) {
		sub.NotifyEnabled = in.NotifyEnabled != nil && *in.NotifyEnabled
	}
	if should(in.RemindValue != nil) {
		sub.RemindValue = in.RemindValue
	}
	if should(in.RemindUnit != nil) {
		sub.RemindUnit = nil
		if in.RemindUnit != nil && *in.RemindUnit != "" {
			unit := *in.RemindUnit
			sub.RemindUnit = &unit
		}
	}
	if should(in.Disabled != nil) {
		sub.Disabled = in.Disabled != nil && *in.Disabled
	}

	if !sub.TrialEnabled {
		sub.TrialPrice = decimal.NullDecimal{}
		sub.TrialFrequency = nil
		sub.TrialCycle = nil
		sub.TrialEndDate = nil
	} else if sub.TrialUseMainCycle {
		sub.TrialFrequency = nil
		sub.TrialCycle = nil
	}

	if !sub.NotifyEnabled {
		sub.RemindValue = nil
		sub.RemindUnit = nil
	} else {
		if sub.RemindValue == nil {
			one := 1
			sub.RemindValue = &one
		}
		if sub.RemindUnit == nil {
			unit := remindDays
			sub.RemindUnit = &unit
		}
	}

	return nil
}

func stringOr(v *string, fallback string) string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return fallback
	}
	return strings.TrimSpace(*v)
}

func parseDate(value, field string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(layoutDate, value); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		y, m, d := t.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, &ValidationError{Field: field, Message: "date must be in YYYY-MM-DD format"}
}
