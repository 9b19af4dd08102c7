package engine

import (
	"fmt"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/shopspring/decimal"
)

// Granularity selects the bucket size of a trend series.
type Granularity string

const (
	GranularityDaily   Granularity = "Daily"
	GranularityWeekly  Granularity = "Weekly"
	GranularityMonthly Granularity = "Monthly"
)

// Bucket counts per granularity. A series always has exactly this
// many points, zero-filled where no transaction matches.
const (
	DailyBuckets   = 7
	WeeklyBuckets  = 4
	MonthlyBuckets = 6
)

// SeriesPoint is one bucket of a trend series.
type SeriesPoint struct {
	Label  string          `json:"label" example:"Fri"`
	Amount decimal.Decimal `json:"amount" example:"500"`
}

// ErrGranularityInvalid is returned for granularities other than
// Daily, Weekly and Monthly.
var ErrGranularityInvalid = fmt.Errorf("granularity must be one of %q, %q, %q", GranularityDaily, GranularityWeekly, GranularityMonthly)

// BuildSeries returns the expense trend, oldest bucket first, ending
// at now. Income never contributes to a trend series.
//
// Daily and monthly buckets use local-day and local-month keys of the
// transaction date. Weekly buckets test the raw instant against the
// bucket range (start <= t <= end): the weekly boundary is sharper
// than the daily one. That asymmetry is inherited behavior, keep it.
func BuildSeries(transactions []models.Transaction, granularity Granularity, now time.Time) ([]SeriesPoint, error) {
	switch granularity {
	case GranularityDaily:
		return dailySeries(transactions, now), nil
	case GranularityWeekly:
		return weeklySeries(transactions, now), nil
	case GranularityMonthly:
		return monthlySeries(transactions, now), nil
	}

	return nil, ErrGranularityInvalid
}

func dailySeries(transactions []models.Transaction, now time.Time) []SeriesPoint {
	series := make([]SeriesPoint, 0, DailyBuckets)

	for i := DailyBuckets - 1; i >= 0; i-- {
		day := types.DayOf(now).AddDate(-i)

		totals := Aggregate(transactions, func(t models.Transaction) bool {
			return day.Contains(t.Date)
		})

		series = append(series, SeriesPoint{
			Label:  day.Start().Format("Mon"),
			Amount: totals.Expense,
		})
	}

	return series
}

func weeklySeries(transactions []models.Transaction, now time.Time) []SeriesPoint {
	series := make([]SeriesPoint, 0, WeeklyBuckets)

	for i := WeeklyBuckets - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -7*i)
		start := end.AddDate(0, 0, -7)

		totals := Aggregate(transactions, func(t models.Transaction) bool {
			return !t.Date.Before(start) && !t.Date.After(end)
		})

		series = append(series, SeriesPoint{
			Label:  fmt.Sprintf("W%d", WeeklyBuckets-i),
			Amount: totals.Expense,
		})
	}

	return series
}

func monthlySeries(transactions []models.Transaction, now time.Time) []SeriesPoint {
	series := make([]SeriesPoint, 0, MonthlyBuckets)

	for i := MonthlyBuckets - 1; i >= 0; i-- {
		month := types.MonthOf(now).AddDate(0, -i)

		totals := Aggregate(transactions, func(t models.Transaction) bool {
			return month.Contains(t.Date)
		})

		series = append(series, SeriesPoint{
			Label:  time.Time(month).Format("Jan"),
			Amount: totals.Expense,
		})
	}

	return series
}
