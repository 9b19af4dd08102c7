package v1

import (
	"net/http"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/httputil"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/gin-gonic/gin"
)

var backendVersion string

// RegisterExportRoutes registers the route for the backup export with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup, version string) {
	backendVersion = version

	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

// RegisterImportRoutes registers the route for the backup import with
// the RouterGroup that is passed.
func RegisterImportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsImport)
	r.POST("", CreateImport)
}

// Backup is the document the export produces and the import accepts.
// The PIN is not part of it, a restored instance starts unlocked.
type Backup struct {
	Version      string       `json:"version"`      // The version of the backend the export was made with
	CreationTime time.Time    `json:"creationTime"` // Time the export was created
	Data         models.State `json:"data"`         // The full application state
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backup
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Backup
// @Success		204
// @Router			/v1/import [options]
func OptionsImport(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Export all data
// @Description	Returns the full application state as one JSON document
// @Tags			Backup
// @Produce		json
// @Success		200	{object}	Backup
// @Failure		500	{object}	httpError
// @Router			/v1/export [get]
func GetExport(c *gin.Context) {
	state, err := models.LoadState(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="expense-tracker-backup.json"`)
	c.JSON(http.StatusOK, Backup{
		Version:      backendVersion,
		CreationTime: time.Now(),
		Data:         state,
	})
}

// @Summary		Import all data
// @Description	Replaces the full application state with the posted backup. A failed import leaves the previous state untouched.
// @Tags			Backup
// @Accept			json
// @Success		204
// @Failure		400		{object}	httpError
// @Failure		500		{object}	httpError
// @Param			backup	body		Backup	true	"Backup"
// @Router			/v1/import [post]
func CreateImport(c *gin.Context) {
	var backup Backup
	err := httputil.BindData(c, &backup)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	err = models.RestoreState(models.DB, backup.Data)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
