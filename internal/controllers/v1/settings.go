package v1

import (
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/gin-gonic/gin"
)

// RegisterSettingsRoutes registers the routes for settings with
// the RouterGroup that is passed.
func RegisterSettingsRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsSettings)
	r.GET("", GetSettings)
	r.PATCH("", UpdateSettings)

	r.OPTIONS("/pin", OptionsSettingsPin)
	r.POST("/pin", VerifyPin)
}

type SettingsEditable struct {
	// A four digit string sets the PIN, an empty string removes it.
	Pin *string `json:"pin" example:"1234"`

	SelectedMonth types.Month `json:"selectedMonth" example:"2024-03"` // The month selected for the savings view
}

// Settings is the API representation of the settings. The PIN itself
// is never returned, only whether one is set.
type Settings struct {
	models.DefaultModel
	SelectedMonth types.Month `json:"selectedMonth" example:"2024-03"`
	PinSet        bool        `json:"pinSet" example:"true"`
}

func newSettings(model models.Settings) Settings {
	return Settings{
		DefaultModel:  model.DefaultModel,
		SelectedMonth: model.SelectedMonth,
		PinSet:        model.PinSet(),
	}
}

type SettingsResponse struct {
	Error *string   `json:"error" example:"the PIN must be a string of exactly 4 digits"` // The error, if any occurred
	Data  *Settings `json:"data"`                                                         // The settings
}

type PinVerification struct {
	Pin string `json:"pin" example:"1234"` // The PIN to check
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings [options]
func OptionsSettings(c *gin.Context) {
	httputil.OptionsGetPatch(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Settings
// @Success		204
// @Router			/v1/settings/pin [options]
func OptionsSettingsPin(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Get settings
// @Description	Returns the settings. There is exactly one resource, it is created on first access.
// @Tags			Settings
// @Produce		json
// @Success		200	{object}	SettingsResponse
// @Failure		500	{object}	SettingsResponse
// @Router			/v1/settings [get]
func GetSettings(c *gin.Context) {
	settings, err := models.FetchSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Update settings
// @Description	Updates the settings. Only values to be updated need to be specified. Setting the pin field to an empty string removes the PIN.
// @Tags			Settings
// @Accept			json
// @Produce		json
// @Success		200			{object}	SettingsResponse
// @Failure		400			{object}	SettingsResponse
// @Failure		500			{object}	SettingsResponse
// @Param			settings	body		SettingsEditable	true	"Settings"
// @Router			/v1/settings [patch]
func UpdateSettings(c *gin.Context) {
	settings, err := models.FetchSettings(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	var update SettingsEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	if update.Pin != nil {
		settings.Pin = *update.Pin
	}

	if !update.SelectedMonth.IsZero() {
		settings.SelectedMonth = update.SelectedMonth
	}

	err = models.DB.Save(&settings).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SettingsResponse{
			Error: &e,
		})
		return
	}

	data := newSettings(settings)
	c.JSON(http.StatusOK, SettingsResponse{Data: &data})
}

// @Summary		Verify PIN
// @Description	Checks a PIN against the configured one. Returns 204 when it matches.
// @Tags			Settings
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		401	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			pin	body		PinVerification	true	"PIN"
// @Router			/v1/settings/pin [post]
func VerifyPin(c *gin.Context) {
	settings, err := models.FetchSettings(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var verification PinVerification
	err = httputil.BindData(c, &verification)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	if !settings.PinSet() {
		c.JSON(http.StatusBadRequest, httpError{
			Error: errPinNotSet.Error(),
		})
		return
	}

	if verification.Pin != settings.Pin {
		c.JSON(http.StatusUnauthorized, httpError{
			Error: errPinIncorrect.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
