package billing

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/beheryahmed1991/subscription-tracker/internal/currency"
)

const (
	uncategorizedName = "Uncategorized"
	defaultColor      = "#6b7280"
)

// Category is the display data of a category used by the rollup.
type Category struct {
	Name  string
	Color string
}

// CategoryLookup resolves a category id to its display data.
type CategoryLookup func(id int64) (Category, bool)

// Request carries everything an aggregation needs besides the subscriptions.
// Subscriptions passed alongside it must already be filtered (disabled ones
// removed, optional category restriction applied).
type Request struct {
	Period     PeriodKind
	Today      time.Time
	Currency   string
	Rates      RateLookup
	Categories CategoryLookup
}

func (r Request) today() time.Time {
	if r.Today.IsZero() {
		return time.Now()
	}
	return r.Today
}

// Line is one subscription's contribution to a Summary.
type Line struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	CategoryID *int64  `json:"category_id"`
	Color      string  `json:"color"`
	Value      float64 `json:"value"`
}

// Summary is the grand total for a period with a per-subscription breakdown.
type Summary struct {
	Currency       string     `json:"currency"`
	CurrencySymbol string     `json:"currency_symbol"`
	Period         PeriodKind `json:"period"`
	Total          float64    `json:"total"`
	Breakdown      []Line     `json:"breakdown"`
}

// CategoryItem is the total of one category for a period.
type CategoryItem struct {
	CategoryID int64   `json:"category_id"`
	Name       string  `json:"name"`
	Color      string  `json:"color"`
	Value      float64 `json:"value"`
}

// CategorySummary is the per-category rollup for a period.
type CategorySummary struct {
	Currency       string         `json:"currency"`
	CurrencySymbol string         `json:"currency_symbol"`
	Period         PeriodKind     `json:"period"`
	Items          []CategoryItem `json:"items"`
}

// Amount is one subscription's normalized cost in the request currency.
func Amount(sub Subscription, req Request) (float64, error) {
	cost, err := NormalizedCost(sub, req.Period, req.today())
	if err != nil {
		return 0, fmt.Errorf("normalize %q: %w", sub.Name, err)
	}
	return Convert(cost, sub.Currency, req.Currency, req.Rates), nil
}

// Summarize totals subs over the requested period. The total is rounded once
// from the unrounded amounts and each breakdown line is rounded on its own, so
// the lines need not add up to the total exactly.
func Summarize(subs []Subscription, req Request) (Summary, error) {
	target := strings.ToUpper(req.Currency)
	req.Currency = target

	total := 0.0
	breakdown := make([]Line, 0, len(subs))
	for _, sub := range subs {
		amount, err := Amount(sub, req)
		if err != nil {
			return Summary{}, err
		}
		total += amount
		breakdown = append(breakdown, Line{
			ID:         sub.ID,
			Name:       sub.Name,
			CategoryID: sub.CategoryID,
			Color:      sub.Color,
			Value:      Round2(amount),
		})
	}

	return Summary{
		Currency:       target,
		CurrencySymbol: currency.Symbol(target),
		Period:         req.Period,
		Total:          Round2(total),
		Breakdown:      breakdown,
	}, nil
}

// SummarizeByCategory groups subs by category. Subscriptions without a
// category fall into key 0. Items keep the order in which their category was
// first seen.
func SummarizeByCategory(subs []Subscription, req Request) (CategorySummary, error) {
	target := strings.ToUpper(req.Currency)
	req.Currency = target

	type group struct {
		value float64
		color string
	}
	groups := make(map[int64]*group)
	var order []int64

	for _, sub := range subs {
		amount, err := Amount(sub, req)
		if err != nil {
			return CategorySummary{}, err
		}

		var key int64
		if sub.CategoryID != nil {
			key = *sub.CategoryID
		}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
			order = append(order, key)
		}
		g.value += amount
		if g.color == "" {
			g.color = sub.Color
		}
	}

	items := make([]CategoryItem, 0, len(order))
	for _, key := range order {
		g := groups[key]
		item := CategoryItem{
			CategoryID: key,
			Name:       uncategorizedName,
			Color:      g.color,
			Value:      Round2(g.value),
		}
		if req.Categories != nil {
			if cat, ok := req.Categories(key); ok {
				item.Name = cat.Name
				if cat.Color != "" {
					item.Color = cat.Color
				}
			}
		}
		if item.Color == "" {
			item.Color = defaultColor
		}
		items = append(items, item)
	}

	return CategorySummary{
		Currency:       target,
		CurrencySymbol: currency.Symbol(target),
		Period:         req.Period,
		Items:          items,
	}, nil
}

// Round2 rounds v to cents. The exact binary value is rounded, and exact
// ties go to the even cent, so 2.675 (stored as 2.67499...) gives 2.67 and
// 0.125 gives 0.12.
func Round2(v float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 2, 64), 64)
	if err != nil {
		return v
	}
	return r
}
