package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

func RegisterAPIRoutes(r *gin.RouterGroup) {
	r.GET("", GetAPI)
	r.OPTIONS("", OptionsAPI)
}

type APIResponse struct {
	Links APILinks `json:"links"` // Links for the API
}

type APILinks struct {
	Funds         string `json:"funds" example:"https://example.com/api/funds"`                 // URL of Fund collection endpoint
	Agencies      string `json:"agencies" example:"https://example.com/api/agencies"`           // URL of Agency collection endpoint
	Programs      string `json:"programs" example:"https://example.com/api/programs"`           // URL of Program collection endpoint
	Allocations   string `json:"allocations" example:"https://example.com/api/allocations"`     // URL of Allocation collection endpoint
	Disbursements string `json:"disbursements" example:"https://example.com/api/disbursements"` // URL of Disbursement collection endpoint
	Summary       string `json:"summary" example:"https://example.com/api/summary"`             // URL of the summary endpoint
	Export        string `json:"export" example:"https://example.com/api/export"`               // URL of the export endpoint
}

// GetAPI returns the link list for the API
//
//	@Summary		API
//	@Description	Returns general information about the API
//	@Tags			API
//	@Success		200	{object}	APIResponse
//	@Router			/api [get]
func GetAPI(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, APIResponse{
		Links: APILinks{
			Funds:         url + "/api/funds",
			Agencies:      url + "/api/agencies",
			Programs:      url + "/api/programs",
			Allocations:   url + "/api/allocations",
			Disbursements: url + "/api/disbursements",
			Summary:       url + "/api/summary",
			Export:        url + "/api/export",
		},
	})
}

// OptionsAPI returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			API
//	@Success		204
//	@Router			/api [options]
func OptionsAPI(c *gin.Context) {
	httputil.OptionsGet(c)
}
