package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

type SummaryResponse struct {
	Data  *models.Summary `json:"data"`  // The summary
	Error *string         `json:"error"` // The error, if any occurred
}

// RegisterSummaryRoutes registers the routes for the summary with
// the RouterGroup that is passed.
func RegisterSummaryRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/summary", OptionsSummary)
		r.GET("/summary", GetSummary)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Summary
// @Success		204
// @Router			/api/summary [options]
func OptionsSummary(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Budget summary
// @Description	Returns the aggregate totals and the per-program breakdown
// @Tags			Summary
// @Produce		json
// @Success		200	{object}	SummaryResponse
// @Failure		500	{object}	SummaryResponse
// @Router			/api/summary [get]
func GetSummary(c *gin.Context) {
	summary, err := models.Summarize(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), SummaryResponse{
			Error: &e,
		})
		return
	}

	c.JSON(http.StatusOK, SummaryResponse{Data: &summary})
}
