package billing

import (
	"errors"
	"math"
	"time"
)

// ErrInvalidCycle is returned when a subscription resolves to a billing cycle
// that is not a positive number of days.
var ErrInvalidCycle = errors.New("billing: cycle length must be positive")

// Subscription is the read-only view of a stored subscription that the cost
// engine works with.
type Subscription struct {
	ID         string
	Name       string
	Color      string
	CategoryID *int64

	Price     float64
	Currency  string
	Frequency int
	Cycle     PeriodKind
	StartDate time.Time

	TrialEnabled bool
	TrialPrice   *float64
	TrialEndDate *time.Time

	Disabled bool
}

// HasTrial reports whether trial pricing is configured at all.
func (s Subscription) HasTrial() bool {
	return s.TrialEnabled && s.TrialPrice != nil
}

// TrialActive reports whether the trial price applies on the given day.
// An open-ended trial never expires.
func (s Subscription) TrialActive(today time.Time) bool {
	if !s.HasTrial() {
		return false
	}
	if s.TrialEndDate != nil && truncateDay(*s.TrialEndDate).Before(truncateDay(today)) {
		return false
	}
	return true
}

// CurrentPrice is the per-cycle price charged on the given day.
func (s Subscription) CurrentPrice(today time.Time) float64 {
	if s.TrialActive(today) {
		return *s.TrialPrice
	}
	return s.Price
}

// NormalizedCost returns the part of the subscription's cost that falls into
// the window [today, today+DaysInPeriod(period)).
//
// When no trial boundary falls inside the window the per-cycle price is
// prorated per day. When the trial ends inside the window the charges are
// counted one billing event at a time, so that N trial cycles and M regular
// cycles are summed as they would actually be billed.
func NormalizedCost(sub Subscription, period PeriodKind, today time.Time) (float64, error) {
	cycleDays := CycleLengthDays(sub.Frequency, sub.Cycle)
	periodDays := DaysInPeriod(period)
	prorate := func(amount float64) float64 {
		return amount / cycleDays * periodDays
	}

	if !sub.HasTrial() {
		return prorate(sub.Price), nil
	}
	trialPrice := *sub.TrialPrice
	if sub.TrialEndDate == nil {
		return prorate(trialPrice), nil
	}

	windowStart := truncateDay(today)
	windowEnd := addDays(windowStart, periodDays)
	trialEnd := truncateDay(*sub.TrialEndDate)

	switch {
	case trialEnd.Before(windowStart):
		return prorate(sub.Price), nil
	case !trialEnd.Before(windowEnd):
		return prorate(trialPrice), nil
	}

	return countCharges(sub, cycleDays, windowStart, windowEnd, trialEnd)
}

// countCharges sums the discrete billing events of sub that fall inside
// [windowStart, windowEnd). Events dated on or before trialEnd are charged at
// the trial price.
func countCharges(sub Subscription, cycleDays float64, windowStart, windowEnd, trialEnd time.Time) (float64, error) {
	if !(cycleDays > 0) || math.IsInf(cycleDays, 0) {
		return 0, ErrInvalidCycle
	}

	first := truncateDay(sub.StartDate)
	k := 0
	if first.Before(windowStart) {
		elapsed := float64(windowStart.Sub(first) / (24 * time.Hour))
		k = int(math.Floor(elapsed / cycleDays))
		for chargeDate(first, k, cycleDays).Before(windowStart) {
			k++
		}
	}

	total := 0.0
	for date := chargeDate(first, k, cycleDays); date.Before(windowEnd); date = chargeDate(first, k, cycleDays) {
		if date.After(trialEnd) {
			total += sub.Price
		} else {
			total += *sub.TrialPrice
		}
		k++
	}
	return total, nil
}

// chargeDate is the k-th billing date. It is always measured from the first
// charge so fractional cycle lengths do not accumulate rounding drift.
func chargeDate(first time.Time, k int, cycleDays float64) time.Time {
	return addDays(first, float64(k)*cycleDays)
}

func addDays(t time.Time, days float64) time.Time {
	return t.AddDate(0, 0, int(math.Floor(days)))
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
