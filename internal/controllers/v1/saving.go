package v1

import (
	"net/http"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// RegisterSavingRoutes registers the routes for savings with
// the RouterGroup that is passed.
func RegisterSavingRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsSavings)
		r.GET("", GetSavings)
		r.POST("", CreateSaving)
	}

	// Saving with ID
	{
		r.OPTIONS("/:id", OptionsSavingDetail)
		r.DELETE("/:id", DeleteSaving)
	}
}

type SavingEditable struct {
	Amount decimal.Decimal `json:"amount" example:"1000" minimum:"0.00000001"` // The amount set aside
	Month  types.Month     `json:"month" example:"2024-03"`                    // The month the saving belongs to. Defaults to the month of the date.
	Note   string          `json:"note" example:"Eid fund" default:""`         // A note
	Date   time.Time       `json:"date" example:"2024-03-01T10:00:00Z"`        // When the saving was recorded. Defaults to the current time.
}

// model returns the database resource for the API representation of the editable fields
func (editable SavingEditable) model() models.Saving {
	return models.Saving{
		Amount: editable.Amount,
		Month:  editable.Month,
		Note:   editable.Note,
		Date:   editable.Date,
	}
}

// Saving is the API representation of a saving entry.
type Saving struct {
	models.DefaultModel
	SavingEditable
}

func newSaving(model models.Saving) Saving {
	return Saving{
		DefaultModel: model.DefaultModel,
		SavingEditable: SavingEditable{
			Amount: model.Amount,
			Month:  model.Month,
			Note:   model.Note,
			Date:   model.Date,
		},
	}
}

type SavingListResponse struct {
	Data  []Saving         `json:"data"`                                                          // List of savings
	Error *string          `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Total *decimal.Decimal `json:"total" example:"1500"`                                          // Sum over the returned savings
}

type SavingResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this saving
	Data  *Saving `json:"data"`                                                          // The Saving data, if the request was successful
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Router			/v1/savings [options]
func OptionsSavings(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Savings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings/{id} [options]
func OptionsSavingDetail(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var saving models.Saving
	err = models.DB.First(&saving, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	httputil.OptionsDelete(c)
}

// @Summary		Get savings
// @Description	Returns savings, optionally restricted to one month, with their sum
// @Tags			Savings
// @Produce		json
// @Success		200	{object}	SavingListResponse
// @Failure		400	{object}	SavingListResponse
// @Failure		500	{object}	SavingListResponse
// @Router			/v1/savings [get]
// @Param			month	query	string	false	"Only return savings for this month, format YYYY-MM"
func GetSavings(c *gin.Context) {
	var savings []models.Saving
	err := models.DB.Order("datetime(savings.date) DESC").Find(&savings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingListResponse{
			Error: &e,
		})
		return
	}

	if param := c.Query("month"); param != "" {
		month, err := types.ParseMonth(param)
		if err != nil {
			e := errMonthInvalid.Error()
			c.JSON(http.StatusBadRequest, SavingListResponse{
				Error: &e,
			})
			return
		}

		matched := make([]models.Saving, 0, len(savings))
		for _, saving := range savings {
			if saving.Month.Equal(month) {
				matched = append(matched, saving)
			}
		}
		savings = matched
	}

	total := decimal.Zero
	data := make([]Saving, 0, len(savings))
	for _, saving := range savings {
		total = total.Add(saving.Amount)
		data = append(data, newSaving(saving))
	}

	c.JSON(http.StatusOK, SavingListResponse{
		Data:  data,
		Total: &total,
	})
}

// @Summary		Create saving
// @Description	Creates a new saving entry
// @Tags			Savings
// @Produce		json
// @Success		201		{object}	SavingResponse
// @Failure		400		{object}	SavingResponse
// @Failure		500		{object}	SavingResponse
// @Param			saving	body		SavingEditable	true	"Saving"
// @Router			/v1/savings [post]
func CreateSaving(c *gin.Context) {
	var editable SavingEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &e,
		})
		return
	}

	// Default the month to the month of the date
	if editable.Month.IsZero() && !editable.Date.IsZero() {
		editable.Month = types.MonthOf(editable.Date)
	}

	saving := editable.model()
	err = models.DB.Create(&saving).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SavingResponse{
			Error: &e,
		})
		return
	}

	data := newSaving(saving)
	c.JSON(http.StatusCreated, SavingResponse{Data: &data})
}

// @Summary		Delete saving
// @Description	Deletes a saving entry
// @Tags			Savings
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/savings/{id} [delete]
func DeleteSaving(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var saving models.Saving
	err = models.DB.First(&saving, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.DB.Delete(&saving).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
