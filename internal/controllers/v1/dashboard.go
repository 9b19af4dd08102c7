package v1

import (
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/engine"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// statsCache memoizes the dashboard derivation between requests. It is
// shared with the analytics endpoint, both derive from the same stats.
var statsCache engine.StatsCache

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsDashboard)
	r.GET("", GetDashboard)
}

// recentTransactionCount is the number of transactions shown on the dashboard.
const recentTransactionCount = 5

type Dashboard struct {
	Balance        decimal.Decimal        `json:"balance" example:"1000"`        // All-time income minus all-time expense
	MonthlyIncome  decimal.Decimal        `json:"monthlyIncome" example:"1500"`  // Income in the current local month
	MonthlyExpense decimal.Decimal        `json:"monthlyExpense" example:"500"`  // Expense in the current local month
	TodayExpense   decimal.Decimal        `json:"todayExpense" example:"500"`    // Expense on the current local day
	MonthlySavings decimal.Decimal        `json:"monthlySavings" example:"1000"` // Savings recorded for the current local month
	DailyStatus    engine.LimitStatus     `json:"dailyStatus"`                   // Today's spending against the daily limit
	MonthlyStatus  engine.LimitStatus     `json:"monthlyStatus"`                 // This month's spending against the monthly goal
	Alerts         []engine.CategoryAlert `json:"alerts"`                        // Categories at or above the warning threshold
	Recent         []Transaction          `json:"recent"`                        // The newest transactions
}

type DashboardResponse struct {
	Error *string    `json:"error" example:"the now query parameter must be a valid RFC3339 timestamp"` // The error, if any occurred
	Data  *Dashboard `json:"data"`                                                                      // The dashboard aggregate
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get dashboard
// @Description	Returns the dashboard aggregate: balance, month and day totals, tracker statuses, category alerts and the newest transactions
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	DashboardResponse
// @Failure		400	{object}	DashboardResponse
// @Failure		500	{object}	DashboardResponse
// @Router			/v1/dashboard [get]
// @Param			now	query	string	false	"Reference time as RFC3339 timestamp. Its zone offset decides the local day and month. Defaults to the server clock."
func GetDashboard(c *gin.Context) {
	now, err := parseNow(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DashboardResponse{
			Error: &e,
		})
		return
	}

	transactions, err := loadTransactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	categories, err := loadCategories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	budget, err := models.FetchBudget(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	var savings []models.Saving
	err = models.DB.Find(&savings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DashboardResponse{
			Error: &e,
		})
		return
	}

	stats := statsCache.Collect(transactions, now)

	// Newest transactions for the activity list
	index := indexCategories(categories)
	recent := make([]Transaction, 0, recentTransactionCount)
	for i := len(transactions) - 1; i >= 0 && len(recent) < recentTransactionCount; i-- {
		recent = append(recent, newTransaction(transactions[i], index))
	}

	data := Dashboard{
		Balance:        stats.Balance(),
		MonthlyIncome:  stats.MonthlyIncome,
		MonthlyExpense: stats.MonthlyExpense,
		TodayExpense:   stats.TodayExpense,
		MonthlySavings: engine.MonthlySavings(savings, types.MonthOf(now)),
		DailyStatus:    engine.DailyStatus(stats, budget),
		MonthlyStatus:  engine.MonthlyStatus(stats, budget),
		Alerts:         engine.CategoryAlerts(stats, categories),
		Recent:         recent,
	}

	c.JSON(http.StatusOK, DashboardResponse{Data: &data})
}
