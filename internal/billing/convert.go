package billing

import "strings"

// RateLookup returns the factor converting base into target, if one is known.
type RateLookup func(base, target string) (float64, bool)

// CurrencyPair is a directed conversion from Base to Target.
type CurrencyPair struct {
	Base   string
	Target string
}

// RateTable is an in-memory RateLookup keyed by upper-case currency pairs.
type RateTable map[CurrencyPair]float64

// Set records a rate for base to target.
func (t RateTable) Set(base, target string, rate float64) {
	t[CurrencyPair{Base: strings.ToUpper(base), Target: strings.ToUpper(target)}] = rate
}

// Lookup implements RateLookup.
func (t RateTable) Lookup(base, target string) (float64, bool) {
	rate, ok := t[CurrencyPair{Base: strings.ToUpper(base), Target: strings.ToUpper(target)}]
	return rate, ok
}

// Convert turns amount from source into target currency. Without a known rate
// the amount is returned unchanged.
func Convert(amount float64, source, target string, rates RateLookup) float64 {
	source = strings.ToUpper(source)
	target = strings.ToUpper(target)
	if source == target || rates == nil {
		return amount
	}
	if rate, ok := rates(source, target); ok {
		return amount * rate
	}
	return amount
}
