// Package engine implements the financial derivation engine: pure,
// read-only computations that turn a snapshot of transactions,
// categories and budget configuration into every numeric view the app
// displays.
//
// Nothing in this package touches the database or the system clock.
// The reference time is always an injected "now", and "local" always
// means the location carried by that time value.
package engine

import (
	"strings"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Totals holds income and expense sums over a transaction subset.
// The two sums are kept separate on purpose: netting them is a
// presentation concern (see Stats.Balance).
type Totals struct {
	Income  decimal.Decimal `json:"income" example:"1500"`
	Expense decimal.Decimal `json:"expense" example:"500"`
}

// Aggregate sums the transactions matching the predicate, keeping
// income and expense apart.
func Aggregate(transactions []models.Transaction, match func(models.Transaction) bool) Totals {
	totals := Totals{Income: decimal.Zero, Expense: decimal.Zero}

	for _, t := range transactions {
		if match != nil && !match(t) {
			continue
		}

		switch t.Type {
		case models.TypeIncome:
			totals.Income = totals.Income.Add(t.Amount)
		case models.TypeExpense:
			totals.Expense = totals.Expense.Add(t.Amount)
		}
	}

	return totals
}

// Stats are the scalar rollups the dashboard is built from, computed
// in a single pass over the full transaction history.
type Stats struct {
	MonthlyIncome  decimal.Decimal `json:"monthlyIncome" example:"1500"`
	MonthlyExpense decimal.Decimal `json:"monthlyExpense" example:"500"`
	TodayExpense   decimal.Decimal `json:"todayExpense" example:"500"`
	TotalIncome    decimal.Decimal `json:"totalIncome" example:"1500"`
	TotalExpense   decimal.Decimal `json:"totalExpense" example:"500"`

	// Current-month expense per category ID. Only used for budget
	// alert evaluation, which requires the category to still exist.
	CategoryExpenses map[uuid.UUID]decimal.Decimal `json:"-"`
}

// Collect computes the dashboard rollups. "Today" and "this month"
// are decided by local-day and local-month keys of now, in now's
// location.
func Collect(transactions []models.Transaction, now time.Time) Stats {
	today := types.DayOf(now)
	month := types.MonthOf(now)

	stats := Stats{
		MonthlyIncome:    decimal.Zero,
		MonthlyExpense:   decimal.Zero,
		TodayExpense:     decimal.Zero,
		TotalIncome:      decimal.Zero,
		TotalExpense:     decimal.Zero,
		CategoryExpenses: make(map[uuid.UUID]decimal.Decimal),
	}

	for _, t := range transactions {
		inMonth := month.Contains(t.Date)

		if t.Type == models.TypeIncome {
			stats.TotalIncome = stats.TotalIncome.Add(t.Amount)
			if inMonth {
				stats.MonthlyIncome = stats.MonthlyIncome.Add(t.Amount)
			}
			continue
		}

		stats.TotalExpense = stats.TotalExpense.Add(t.Amount)
		if inMonth {
			stats.MonthlyExpense = stats.MonthlyExpense.Add(t.Amount)
			stats.CategoryExpenses[t.CategoryID] = stats.CategoryExpenses[t.CategoryID].Add(t.Amount)
		}
		if today.Contains(t.Date) {
			stats.TodayExpense = stats.TodayExpense.Add(t.Amount)
		}
	}

	return stats
}

// Balance is the all-time income minus the all-time expense.
func (s Stats) Balance() decimal.Decimal {
	return s.TotalIncome.Sub(s.TotalExpense)
}

// CategoryShare is one entry of the all-time category breakdown.
type CategoryShare struct {
	CategoryID uuid.UUID       `json:"categoryId"` // Nil UUID for the "Other" bucket
	Name       string          `json:"name" example:"Groceries"`
	Icon       string          `json:"icon" example:"🛒"`
	Color      string          `json:"color" example:"#10B981"`
	Amount     decimal.Decimal `json:"amount" example:"500"`
	Share      decimal.Decimal `json:"share" example:"83.33"` // Percent of the all-time expense total
}

// FallbackShareName is the bucket deleted-category spend is grouped
// into so that it never disappears from the breakdown.
const FallbackShareName = "Other"

// Breakdown groups all-time expenses by resolved category name,
// attributing spend on deleted categories to the "Other" bucket.
// Output is ordered by amount descending, ties broken by category ID
// ascending so that the result is deterministic.
func Breakdown(transactions []models.Transaction, categories []models.Category) []CategoryShare {
	index := indexCategories(categories)

	grouped := make(map[string]*CategoryShare)
	total := decimal.Zero

	for _, t := range transactions {
		if t.Type != models.TypeExpense {
			continue
		}

		name := FallbackShareName
		var category models.Category
		if c, ok := index[t.CategoryID]; ok {
			category = c
			name = c.Name
		}

		share, ok := grouped[name]
		if !ok {
			share = &CategoryShare{
				CategoryID: category.ID,
				Name:       name,
				Icon:       category.Icon,
				Color:      category.Color,
				Amount:     decimal.Zero,
			}
			grouped[name] = share
		}

		share.Amount = share.Amount.Add(t.Amount)
		total = total.Add(t.Amount)
	}

	breakdown := make([]CategoryShare, 0, len(grouped))
	for _, share := range grouped {
		if total.IsPositive() {
			share.Share = share.Amount.Div(total).Mul(decimal.NewFromInt(100))
		} else {
			share.Share = decimal.Zero
		}
		breakdown = append(breakdown, *share)
	}

	slices.SortStableFunc(breakdown, func(a, b CategoryShare) int {
		if cmp := b.Amount.Cmp(a.Amount); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.CategoryID.String(), b.CategoryID.String())
	})

	return breakdown
}

// MonthlySavings sums the savings recorded for a month key.
func MonthlySavings(savings []models.Saving, month types.Month) decimal.Decimal {
	total := decimal.Zero

	for _, s := range savings {
		if s.Month.Equal(month) {
			total = total.Add(s.Amount)
		}
	}

	return total
}

// indexCategories builds the ID lookup used everywhere a transaction's
// category reference has to be resolved. Missing entries are expected
// and handled by the callers.
func indexCategories(categories []models.Category) map[uuid.UUID]models.Category {
	index := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	return index
}
