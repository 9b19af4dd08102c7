package v1_test

import (
	"net/http"
	"time"

	v1 "github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/controllers/v1"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/engine"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDashboardOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestDashboardEmpty() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.True(suite.T(), response.Data.Balance.IsZero())
	assert.Empty(suite.T(), response.Data.Alerts)
	assert.Empty(suite.T(), response.Data.Recent)
	assert.False(suite.T(), response.Data.DailyStatus.Enabled)
	assert.False(suite.T(), response.Data.MonthlyStatus.Enabled)
}

// TestDashboardPinned verifies the dashboard for a fixed reference time.
func (suite *TestSuiteStandard) TestDashboardPinned() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(500),
		Type:   models.TypeExpense,
		Date:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(1500),
		Type:   models.TypeIncome,
		Date:   time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC),
	})
	_ = createTestSaving(suite.T(), v1.SavingEditable{
		Amount: decimal.NewFromInt(1000),
		Month:  types.NewMonth(2024, 3),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?now=2024-03-01T12:00:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	data := response.Data
	require.NotNil(suite.T(), data)
	assert.True(suite.T(), data.Balance.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), data.MonthlyIncome.Equal(decimal.NewFromInt(1500)))
	assert.True(suite.T(), data.MonthlyExpense.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), data.TodayExpense.Equal(decimal.NewFromInt(500)))
	assert.True(suite.T(), data.MonthlySavings.Equal(decimal.NewFromInt(1000)))
	assert.Len(suite.T(), data.Recent, 2)
}

// TestDashboardTrackers verifies the daily and monthly tracker tiers.
func (suite *TestSuiteStandard) TestDashboardTrackers() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/budget", map[string]any{
		"totalMonthly": 1000,
		"dailyLimit":   400,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(500),
		Type:   models.TypeExpense,
		Date:   time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?now=2024-03-01T12:00:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	daily := response.Data.DailyStatus
	assert.True(suite.T(), daily.Enabled)
	assert.Equal(suite.T(), engine.TierExceeded, daily.Tier)
	assert.True(suite.T(), daily.Usage.Equal(decimal.NewFromInt(125)))
	assert.True(suite.T(), daily.Overrun.Equal(decimal.NewFromInt(100)))

	monthly := response.Data.MonthlyStatus
	assert.True(suite.T(), monthly.Enabled)
	assert.Equal(suite.T(), engine.TierOK, monthly.Tier)
	assert.True(suite.T(), monthly.Usage.Equal(decimal.NewFromInt(50)))
}

// TestDashboardAlerts verifies the critical category set.
func (suite *TestSuiteStandard) TestDashboardAlerts() {
	watched := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Budget: decimal.NewFromInt(600)})
	unbudgeted := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(500),
		CategoryID: watched.Data.ID,
		Date:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(9000),
		CategoryID: unbudgeted.Data.ID,
		Date:       time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?now=2024-03-01T12:00:00Z", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DashboardResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data.Alerts, 1)
	alert := response.Data.Alerts[0]
	assert.Equal(suite.T(), watched.Data.ID, alert.Category.ID)
	assert.Equal(suite.T(), "83.33", alert.Usage.String())
	assert.False(suite.T(), alert.Exceeded)
}

func (suite *TestSuiteStandard) TestDashboardInvalidNow() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard?now=yesterday", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDashboardDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/dashboard", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
