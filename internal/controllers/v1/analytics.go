package v1

import (
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/engine"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterAnalyticsRoutes registers the routes for analytics with
// the RouterGroup that is passed.
func RegisterAnalyticsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsAnalytics)
	r.GET("", GetAnalytics)
}

type Analytics struct {
	Range        engine.Granularity     `json:"range" example:"Daily"`      // The granularity the series was built with
	Series       []engine.SeriesPoint   `json:"series"`                     // Expense trend, oldest bucket first
	Breakdown    []engine.CategoryShare `json:"breakdown"`                  // Expense per category, largest first
	TotalIncome  decimal.Decimal        `json:"totalIncome" example:"1500"` // All-time income
	TotalExpense decimal.Decimal        `json:"totalExpense" example:"500"` // All-time expense
	Balance      decimal.Decimal        `json:"balance" example:"1000"`     // All-time income minus all-time expense
}

type AnalyticsResponse struct {
	Error *string    `json:"error" example:"granularity must be one of \"Daily\", \"Weekly\", \"Monthly\""` // The error, if any occurred
	Data  *Analytics `json:"data"`                                                                          // The analytics aggregate
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Analytics
// @Success		204
// @Router			/v1/analytics [options]
func OptionsAnalytics(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get analytics
// @Description	Returns the expense trend for the requested range, the category breakdown and the all-time totals
// @Tags			Analytics
// @Produce		json
// @Success		200	{object}	AnalyticsResponse
// @Failure		400	{object}	AnalyticsResponse
// @Failure		500	{object}	AnalyticsResponse
// @Router			/v1/analytics [get]
// @Param			range	query	string	false	"Granularity of the trend series, one of Daily, Weekly, Monthly. Defaults to Daily."
// @Param			now		query	string	false	"Reference time as RFC3339 timestamp. Its zone offset decides the local day and month. Defaults to the server clock."
func GetAnalytics(c *gin.Context) {
	now, err := parseNow(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
			Error: &e,
		})
		return
	}

	granularity := engine.Granularity(c.DefaultQuery("range", string(engine.GranularityDaily)))

	transactions, err := loadTransactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{
			Error: &e,
		})
		return
	}

	categories, err := loadCategories()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AnalyticsResponse{
			Error: &e,
		})
		return
	}

	series, err := engine.BuildSeries(transactions, granularity, now)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, AnalyticsResponse{
			Error: &e,
		})
		return
	}

	stats := statsCache.Collect(transactions, now)

	data := Analytics{
		Range:        granularity,
		Series:       series,
		Breakdown:    engine.Breakdown(transactions, categories),
		TotalIncome:  stats.TotalIncome,
		TotalExpense: stats.TotalExpense,
		Balance:      stats.Balance(),
	}

	c.JSON(http.StatusOK, AnalyticsResponse{Data: &data})
}
