package billing

import "strings"

// PeriodKind names a calendar unit used both for billing cycles and for
// reporting periods.
type PeriodKind string

const (
	PeriodDay     PeriodKind = "day"
	PeriodWeek    PeriodKind = "week"
	PeriodMonth   PeriodKind = "month"
	PeriodQuarter PeriodKind = "quarter"
	PeriodYear    PeriodKind = "year"
)

// Average Gregorian lengths. A real calendar is never simulated.
var daysPerPeriod = map[PeriodKind]float64{
	PeriodDay:     1,
	PeriodWeek:    7,
	PeriodMonth:   30.4375,
	PeriodQuarter: 91.3125,
	PeriodYear:    365.25,
}

// ParsePeriod maps user input to a PeriodKind. Anything unrecognized is a month.
func ParsePeriod(value string) PeriodKind {
	p := PeriodKind(strings.ToLower(strings.TrimSpace(value)))
	if _, ok := daysPerPeriod[p]; ok {
		return p
	}
	return PeriodMonth
}

// Valid reports whether p is one of the known units.
func (p PeriodKind) Valid() bool {
	_, ok := daysPerPeriod[p]
	return ok
}

// DaysInPeriod returns the canonical day length of p, defaulting to a month.
func DaysInPeriod(p PeriodKind) float64 {
	if days, ok := daysPerPeriod[p]; ok {
		return days
	}
	return daysPerPeriod[PeriodMonth]
}

// CycleLengthDays returns the length of one billing cycle of frequency units.
func CycleLengthDays(frequency int, unit PeriodKind) float64 {
	if frequency < 1 {
		frequency = 1
	}
	return DaysInPeriod(unit) * float64(frequency)
}
