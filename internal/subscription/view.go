package subscription

import (
	"fmt"
	"strings"
	"time"

	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
)

var (
	singularLabels = map[string]string{
		"day":     "1 DAY",
		"week":    "1 WEEK",
		"month":   "1 MONTH",
		"quarter": "1 QUARTER",
		"year":    "1 YEAR",
	}
	pluralUnits = map[string]string{
		"day":     "DAYS",
		"week":    "WEEKS",
		"month":   "MONTHS",
		"quarter": "QUARTERS",
		"year":    "YEARS",
	}
)

// PeriodLabel renders a cycle like "1 MONTH" or "3 WEEKS".
func PeriodLabel(frequency int, cycle string) string {
	unit := strings.ToLower(cycle)
	if frequency == 1 {
		if label, ok := singularLabels[unit]; ok {
			return label
		}
		return "1 " + strings.ToUpper(unit)
	}
	suffix, ok := pluralUnits[unit]
	if !ok {
		suffix = strings.ToUpper(unit) + "S"
	}
	return fmt.Sprintf("%d %s", frequency, suffix)
}

// NewView renders sub for the API. Detail fields are included when detail is set.
func NewView(sub Subscription, detail bool, today time.Time) View {
	core := sub.ToBilling()
	v := View{
		ID:             sub.ID,
		Name:           sub.Name,
		Icon:           sub.Icon,
		LogoURL:        sub.LogoURL,
		Color:          sub.Color,
		Price:          core.Price,
		Currency:       sub.Currency,
		CurrencySymbol: currency.Symbol(sub.Currency),
		Frequency:      sub.Frequency,
		Cycle:          sub.Cycle,
		PeriodLabel:    PeriodLabel(sub.Frequency, sub.Cycle),
		CategoryID:     sub.CategoryID,
		Disabled:       sub.Disabled,
		DisplayPrice:   core.CurrentPrice(today),
		TrialActive:    core.TrialActive(today),
	}
	if !detail {
		return v
	}

	v.Detail = &Detail{
		StartDate:         sub.StartDate.Format(layoutDate),
		TrialEnabled:      sub.TrialEnabled,
		TrialPrice:        core.TrialPrice,
		TrialUseMainCycle: sub.TrialUseMainCycle,
		TrialFrequency:    sub.TrialFrequency,
		TrialCycle:        sub.TrialCycle,
		NotifyEnabled:     sub.NotifyEnabled,
		RemindValue:       sub.RemindValue,
		RemindUnit:        sub.RemindUnit,
	}
	if sub.TrialEndDate != nil {
		end := sub.TrialEndDate.Format(layoutDate)
		v.Detail.TrialEndDate = &end
	}
	return v
}
