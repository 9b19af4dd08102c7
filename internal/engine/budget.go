package engine

import (
	"strings"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
)

// Tier classifies budget usage for display.
type Tier string

const (
	TierOK       Tier = "OK"
	TierWarning  Tier = "WARNING"  // usage >= 80%
	TierExceeded Tier = "EXCEEDED" // usage >= 100%
)

var (
	warningThreshold  = decimal.NewFromInt(80)
	exceededThreshold = decimal.NewFromInt(100)
	hundred           = decimal.NewFromInt(100)
)

// LimitStatus is the state of one spending tracker (daily or monthly).
type LimitStatus struct {
	Spent   decimal.Decimal `json:"spent" example:"500"`
	Limit   decimal.Decimal `json:"limit" example:"400"`
	Usage   decimal.Decimal `json:"usage" example:"125"` // Percent. 0 when the tracker is disabled.
	Enabled bool            `json:"enabled" example:"true"`
	Tier    Tier            `json:"tier" example:"EXCEEDED"`
	Overrun decimal.Decimal `json:"overrun" example:"100"` // Amount over the limit, 0 unless exceeded
}

// DailyStatus evaluates today's spending against the daily limit.
// Exceeding the daily limit holds until the local day changes, which
// happens naturally: the status is recomputed from TodayExpense and
// that rolls over with the day key.
func DailyStatus(stats Stats, budget models.Budget) LimitStatus {
	return limitStatus(stats.TodayExpense, budget.DailyLimit)
}

// MonthlyStatus evaluates the current month's spending against the
// monthly goal.
func MonthlyStatus(stats Stats, budget models.Budget) LimitStatus {
	return limitStatus(stats.MonthlyExpense, budget.TotalMonthly)
}

// limitStatus computes a usage percentage with the zero-limit guard: a
// limit of 0 means the tracker is disabled and the usage is 0, never a
// division by zero.
func limitStatus(spent, limit decimal.Decimal) LimitStatus {
	status := LimitStatus{
		Spent:   spent,
		Limit:   limit,
		Usage:   decimal.Zero,
		Overrun: decimal.Zero,
		Tier:    TierOK,
	}

	if !limit.IsPositive() {
		return status
	}

	status.Enabled = true
	status.Usage = spent.Div(limit).Mul(hundred)

	switch {
	case status.Usage.GreaterThanOrEqual(exceededThreshold):
		status.Tier = TierExceeded
		status.Overrun = spent.Sub(limit)
	case status.Usage.GreaterThanOrEqual(warningThreshold):
		status.Tier = TierWarning
	}

	return status
}

// CategoryAlert is one entry of the critical-category set.
type CategoryAlert struct {
	Category models.Category `json:"category"`
	Spent    decimal.Decimal `json:"spent" example:"500"`
	Usage    decimal.Decimal `json:"usage" example:"83.33"` // Percent of the category budget
	Exceeded bool            `json:"exceeded" example:"false"`
}

// CategoryAlerts returns the critical set: every category with a
// positive budget whose current-month usage is at or above the warning
// threshold. Categories without a budget never alert. The set is
// sorted by usage descending, ties broken by category ID ascending.
func CategoryAlerts(stats Stats, categories []models.Category) []CategoryAlert {
	alerts := make([]CategoryAlert, 0)

	for _, c := range categories {
		if !c.Budget.IsPositive() {
			continue
		}

		spent := stats.CategoryExpenses[c.ID]
		usage := spent.Div(c.Budget).Mul(hundred)

		if usage.LessThan(warningThreshold) {
			continue
		}

		alerts = append(alerts, CategoryAlert{
			Category: c,
			Spent:    spent,
			Usage:    usage,
			Exceeded: usage.GreaterThanOrEqual(exceededThreshold),
		})
	}

	slices.SortStableFunc(alerts, func(a, b CategoryAlert) int {
		if cmp := b.Usage.Cmp(a.Usage); cmp != 0 {
			return cmp
		}
		return strings.Compare(a.Category.ID.String(), b.Category.ID.String())
	})

	return alerts
}
