// Package query derives the displayed expense list from the raw collection
// and the current view settings. It is pure: inputs are never mutated and
// the result is always a fresh slice.
package query

import (
	"sort"
	"strings"
	"time"

	"github.com/ayumu-h/kakeibo/internal/model"
)

// Derive applies, in this fixed order: period filter, category filter,
// text search, sort. Reordering the stages changes results.
func Derive(expenses []model.Expense, settings model.Settings, now time.Time) []model.Expense {
	out := make([]model.Expense, 0, len(expenses))

	monthPrefix := periodPrefix(settings.Filters.Period, now)
	queryLower := strings.ToLower(settings.Filters.SearchQuery)

	for _, e := range expenses {
		if monthPrefix != "" && !strings.HasPrefix(e.Date, monthPrefix) {
			continue
		}
		if c := settings.Filters.Category; c != model.CategoryFilterAll && c != "" && e.Category != c {
			continue
		}
		if queryLower != "" && !matchesQuery(e, queryLower) {
			continue
		}
		out = append(out, e)
	}

	sortExpenses(out, settings.Sort)
	return out
}

// Total sums the amounts of the given expenses.
func Total(expenses []model.Expense) int {
	total := 0
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// periodPrefix returns the YYYY-MM prefix dates must carry to pass the
// period filter, or "" when everything passes.
func periodPrefix(period string, now time.Time) string {
	switch period {
	case model.PeriodThisMonth:
		return now.Format("2006-01")
	case model.PeriodLastMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return first.AddDate(0, -1, 0).Format("2006-01")
	default:
		return ""
	}
}

// matchesQuery reports whether the lowercased query is a substring of the
// expense's category display name or memo.
func matchesQuery(e model.Expense, queryLower string) bool {
	category := model.LookupCategory(e.Category)
	return strings.Contains(strings.ToLower(category.Name), queryLower) ||
		strings.Contains(strings.ToLower(e.Memo), queryLower)
}

// sortExpenses orders the slice by the requested key and direction. The
// direction inverts the primary comparison only; ties always resolve by
// CreatedAt descending, so same-key entries show newest first regardless
// of direction. This yields a deterministic total order.
func sortExpenses(expenses []model.Expense, s model.Sort) {
	sort.SliceStable(expenses, func(i, j int) bool {
		a, b := expenses[i], expenses[j]
		cmp := comparePrimary(a, b, s.Key)
		if s.Direction == model.SortDesc {
			cmp = -cmp
		}
		if cmp == 0 {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return cmp < 0
	})
}

func comparePrimary(a, b model.Expense, key string) int {
	switch key {
	case model.SortByAmount:
		return a.Amount - b.Amount
	case model.SortByCategory:
		return model.LookupCategory(a.Category).Order - model.LookupCategory(b.Category).Order
	default:
		// Dates are fixed-width YYYY-MM-DD, so lexicographic order is
		// chronological order.
		return strings.Compare(a.Date, b.Date)
	}
}
