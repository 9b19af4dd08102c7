package v1

import (
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/gin-gonic/gin"
)

// ResetScope selects what a reset deletes.
type ResetScope string

const (
	ScopeAll        ResetScope = "ALL"        // Everything, including savings and settings
	ScopeExpenses   ResetScope = "EXPENSES"   // All expense transactions
	ScopeIncome     ResetScope = "INCOME"     // All income transactions
	ScopeCategories ResetScope = "CATEGORIES" // All categories, transactions keep their dangling reference
	ScopeBalance    ResetScope = "BALANCE"    // All transactions of both types
)

// resetConfirmation is the phrase that must be sent to confirm a reset.
const resetConfirmation = "yes-please-delete-everything"

// RegisterResetRoutes registers the route for resets with
// the RouterGroup that is passed.
func RegisterResetRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsReset)
	r.POST("", CreateReset)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Reset
// @Success		204
// @Router			/v1/reset [options]
func OptionsReset(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Reset data
// @Description	Permanently deletes the resources selected by the scope
// @Tags			Reset
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			scope	query		string	false	"What to delete, one of ALL, EXPENSES, INCOME, CATEGORIES, BALANCE. Defaults to ALL."
// @Param			confirm	query		string	false	"Confirmation. Must have the value 'yes-please-delete-everything'"
// @Router			/v1/reset [post]
func CreateReset(c *gin.Context) {
	var params struct {
		Scope   ResetScope `form:"scope"`
		Confirm string     `form:"confirm"`
	}

	err := c.Bind(&params)
	if err != nil || params.Confirm != resetConfirmation {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errResetConfirmation.Error(),
		})
		return
	}

	if params.Scope == "" {
		params.Scope = ScopeAll
	}

	// Use a transaction so that we can roll back if errors happen
	tx := models.DB.Begin()

	switch params.Scope {
	case ScopeAll:
		for _, model := range []any{&models.Transaction{}, &models.Category{}, &models.Saving{}, &models.Budget{}, &models.Settings{}} {
			err = tx.Where("1 = 1").Delete(model).Error
			if err != nil {
				break
			}
		}
	case ScopeExpenses:
		err = tx.Where("type = ?", models.TypeExpense).Delete(&models.Transaction{}).Error
	case ScopeIncome:
		err = tx.Where("type = ?", models.TypeIncome).Delete(&models.Transaction{}).Error
	case ScopeCategories:
		err = tx.Where("1 = 1").Delete(&models.Category{}).Error
	case ScopeBalance:
		err = tx.Where("1 = 1").Delete(&models.Transaction{}).Error
	default:
		tx.Rollback()
		c.JSON(http.StatusBadRequest, httpError{
			Error: errResetScopeInvalid.Error(),
		})
		return
	}

	if err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, httpError{
			Error: err.Error(),
		})
		return
	}

	tx.Commit()
	c.JSON(http.StatusNoContent, nil)
}
