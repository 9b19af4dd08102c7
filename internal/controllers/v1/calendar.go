package v1

import (
	"net/http"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/engine"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterCalendarRoutes registers the routes for the calendar with
// the RouterGroup that is passed.
func RegisterCalendarRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsCalendar)
	r.GET("", GetCalendar)

	r.OPTIONS("/day", OptionsCalendarDay)
	r.GET("/day", GetCalendarDay)
}

type Calendar struct {
	Month         types.Month          `json:"month" example:"2024-03"`  // The month the grid was built for
	LeadingBlanks int                  `json:"leadingBlanks" example:"5"` // Blank cells before day 1, weekday of day 1 with Sunday = 0
	Days          []engine.CalendarDay `json:"days"`                      // One cell per day of the month
}

type CalendarResponse struct {
	Error *string   `json:"error" example:"the month query parameter must have the format YYYY-MM"` // The error, if any occurred
	Data  *Calendar `json:"data"`                                                                   // The calendar grid
}

type CalendarDayResponse struct {
	Error *string           `json:"error" example:"the day query parameter must have the format YYYY-MM-DD"` // The error, if any occurred
	Data  *engine.DayDetail `json:"data"`                                                                    // The aggregate for the selected day
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar [options]
func OptionsCalendar(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Calendar
// @Success		204
// @Router			/v1/calendar/day [options]
func OptionsCalendarDay(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get calendar
// @Description	Returns one cell per day of the month with income, expense and spending intensity, plus the number of leading blank cells for a Sunday-first grid
// @Tags			Calendar
// @Produce		json
// @Success		200	{object}	CalendarResponse
// @Failure		400	{object}	CalendarResponse
// @Failure		500	{object}	CalendarResponse
// @Router			/v1/calendar [get]
// @Param			month	query	string	false	"The month to build the grid for, format YYYY-MM. Defaults to the current local month."
// @Param			now		query	string	false	"Reference time as RFC3339 timestamp, used when month is not set. Defaults to the server clock."
func GetCalendar(c *gin.Context) {
	month, err := parseMonthParam(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CalendarResponse{
			Error: &e,
		})
		return
	}

	transactions, err := loadTransactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarResponse{
			Error: &e,
		})
		return
	}

	data := Calendar{
		Month:         month,
		LeadingBlanks: engine.LeadingBlanks(month),
		Days:          engine.MonthGrid(transactions, month),
	}

	c.JSON(http.StatusOK, CalendarResponse{Data: &data})
}

// @Summary		Get calendar day
// @Description	Returns the income and expense totals and the transactions of a single day
// @Tags			Calendar
// @Produce		json
// @Success		200	{object}	CalendarDayResponse
// @Failure		400	{object}	CalendarDayResponse
// @Failure		500	{object}	CalendarDayResponse
// @Router			/v1/calendar/day [get]
// @Param			day	query	string	true	"The day to aggregate, format YYYY-MM-DD, interpreted in the zone of the now parameter"
// @Param			now	query	string	false	"Reference time as RFC3339 timestamp. Its zone offset decides the day boundaries. Defaults to the server clock."
func GetCalendarDay(c *gin.Context) {
	now, err := parseNow(c)
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, CalendarDayResponse{
			Error: &e,
		})
		return
	}

	day, err := types.ParseDay(c.Query("day"), now.Location())
	if err != nil {
		e := errDayInvalid.Error()
		c.JSON(http.StatusBadRequest, CalendarDayResponse{
			Error: &e,
		})
		return
	}

	transactions, err := loadTransactions()
	if err != nil {
		e := err.Error()
		c.JSON(status(err), CalendarDayResponse{
			Error: &e,
		})
		return
	}

	data := engine.CollectDay(transactions, day)
	c.JSON(http.StatusOK, CalendarDayResponse{Data: &data})
}

// parseMonthParam returns the month for the calendar grid: the month
// query parameter if set, the local month of now otherwise. The month
// is built in the zone of now so that the grid keys days by the same
// boundaries as the day detail.
func parseMonthParam(c *gin.Context) (types.Month, error) {
	now, err := parseNow(c)
	if err != nil {
		return types.Month(time.Time{}), err
	}

	if param := c.Query("month"); param != "" {
		month, err := types.ParseMonthInLocation(param, now.Location())
		if err != nil {
			return types.Month(time.Time{}), errMonthInvalid
		}
		return month, nil
	}

	return types.MonthOf(now), nil
}
