package engine

import (
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/shopspring/decimal"
)

// Intensity is the visual weight of a calendar cell, a step function
// of the day's expense total.
type Intensity int

const (
	IntensityNone Intensity = iota
	IntensityLow
	IntensityMedium
	IntensityHigh
)

var (
	intensityHigh   = decimal.NewFromInt(5000)
	intensityMedium = decimal.NewFromInt(2000)
)

// ExpenseIntensity maps a day's expense total to its cell intensity.
// The thresholds are a presentation choice; the mapping must stay
// monotonic in the expense total.
func ExpenseIntensity(expense decimal.Decimal) Intensity {
	switch {
	case expense.GreaterThan(intensityHigh):
		return IntensityHigh
	case expense.GreaterThan(intensityMedium):
		return IntensityMedium
	case expense.IsPositive():
		return IntensityLow
	}

	return IntensityNone
}

// CalendarDay is one cell of the month grid.
type CalendarDay struct {
	Day       types.Day       `json:"day" example:"2024-03-01"`
	Income    decimal.Decimal `json:"income" example:"1500"`
	Expense   decimal.Decimal `json:"expense" example:"500"`
	Intensity Intensity       `json:"intensity" example:"1"`
}

// MonthDays lists the days of a month by iterating from day 1 until
// the month rolls over, in the month's location.
func MonthDays(month types.Month) []types.Day {
	days := make([]types.Day, 0, 31)

	for day := month.FirstDay(); day.Month().Equal(month); day = day.AddDate(1) {
		days = append(days, day)
	}

	return days
}

// LeadingBlanks returns the number of blank cells before day 1 in a
// 7-column grid starting on Sunday. It is a pure function of the first
// day's weekday (Sunday = 0).
func LeadingBlanks(month types.Month) int {
	return int(month.FirstDay().Weekday())
}

// MonthGrid aggregates every day of the month for grid rendering.
func MonthGrid(transactions []models.Transaction, month types.Month) []CalendarDay {
	days := MonthDays(month)
	grid := make([]CalendarDay, 0, len(days))

	for _, day := range days {
		detail := CollectDay(transactions, day)
		grid = append(grid, CalendarDay{
			Day:       day,
			Income:    detail.Income,
			Expense:   detail.Expense,
			Intensity: ExpenseIntensity(detail.Expense),
		})
	}

	return grid
}

// DayDetail is the aggregate for a single selected day, including the
// transactions that fall on it.
type DayDetail struct {
	Day          types.Day            `json:"day" example:"2024-03-01"`
	Income       decimal.Decimal      `json:"income" example:"1500"`
	Expense      decimal.Decimal      `json:"expense" example:"500"`
	Transactions []models.Transaction `json:"transactions"`
}

// CollectDay aggregates the transactions whose local-day key matches
// the given day.
func CollectDay(transactions []models.Transaction, day types.Day) DayDetail {
	detail := DayDetail{
		Day:          day,
		Income:       decimal.Zero,
		Expense:      decimal.Zero,
		Transactions: make([]models.Transaction, 0),
	}

	for _, t := range transactions {
		if !day.Contains(t.Date) {
			continue
		}

		detail.Transactions = append(detail.Transactions, t)

		switch t.Type {
		case models.TypeIncome:
			detail.Income = detail.Income.Add(t.Amount)
		case models.TypeExpense:
			detail.Expense = detail.Expense.Add(t.Amount)
		}
	}

	return detail
}
