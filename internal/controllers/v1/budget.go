package v1

import (
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterBudgetRoutes registers the routes for the budget singleton
// with the RouterGroup that is passed.
func RegisterBudgetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsBudget)
	r.GET("", GetBudget)
	r.PATCH("", UpdateBudget)
}

type BudgetEditable struct {
	TotalMonthly decimal.Decimal `json:"totalMonthly" example:"20000" minimum:"0" default:"0"` // Monthly spending goal, 0 = disabled
	DailyLimit   decimal.Decimal `json:"dailyLimit" example:"400" minimum:"0" default:"0"`     // Daily spending limit, 0 = disabled
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetEditable) model() models.Budget {
	return models.Budget{
		TotalMonthly: editable.TotalMonthly,
		DailyLimit:   editable.DailyLimit,
	}
}

// Budget is the API representation of the budget configuration.
type Budget struct {
	models.DefaultModel
	BudgetEditable
}

func newBudget(model models.Budget) Budget {
	return Budget{
		DefaultModel: model.DefaultModel,
		BudgetEditable: BudgetEditable{
			TotalMonthly: model.TotalMonthly,
			DailyLimit:   model.DailyLimit,
		},
	}
}

type BudgetResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  *Budget `json:"data"`                                                          // The budget configuration
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget
// @Success		204
// @Router			/v1/budget [options]
func OptionsBudget(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Get budget
// @Description	Returns the budget configuration. There is exactly one, it is created on first access.
// @Tags			Budget
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Router			/v1/budget [get]
func GetBudget(c *gin.Context) {
	budget, err := models.FetchBudget(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}

// @Summary		Update budget
// @Description	Updates the budget configuration. Only values to be updated need to be specified.
// @Tags			Budget
// @Accept			json
// @Produce		json
// @Success		200		{object}	BudgetResponse
// @Failure		400		{object}	BudgetResponse
// @Failure		500		{object}	BudgetResponse
// @Param			budget	body		BudgetEditable	true	"Budget"
// @Router			/v1/budget [patch]
func UpdateBudget(c *gin.Context) {
	budget, err := models.FetchBudget(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, BudgetEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	var update BudgetEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&budget).Select("", updateFields...).Updates(update.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &e,
		})
		return
	}

	data := newBudget(budget)
	c.JSON(http.StatusOK, BudgetResponse{Data: &data})
}
