package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

func RegisterAgencyRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/agencies", OptionsAgencies)
		r.GET("/agencies", GetAgencies)
	}
	{
		r.OPTIONS("/agency", OptionsAgency)
		r.POST("/agency", CreateAgency)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Agencies
// @Success		204
// @Router			/api/agencies [options]
func OptionsAgencies(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Agencies
// @Success		204
// @Router			/api/agency [options]
func OptionsAgency(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create agency
// @Description	Creates a new agency
// @Tags			Agencies
// @Produce		json
// @Success		201		{object}	AgencyResponse
// @Failure		400		{object}	AgencyResponse
// @Failure		500		{object}	AgencyResponse
// @Param			agency	body		AgencyEditable	true	"Agency"
// @Router			/api/agency [post]
func CreateAgency(c *gin.Context) {
	var editable AgencyEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AgencyResponse{
			Error: &e,
		})
		return
	}

	agency := editable.model()
	err = models.DB.Create(&agency).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AgencyResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAgency(agency)
	c.JSON(http.StatusCreated, AgencyResponse{Data: &apiResource})
}

// @Summary		List agencies
// @Description	Returns a list of agencies
// @Tags			Agencies
// @Produce		json
// @Success		200	{object}	AgencyListResponse
// @Failure		500	{object}	AgencyListResponse
// @Router			/api/agencies [get]
func GetAgencies(c *gin.Context) {
	var agencies []models.Agency

	err := models.DB.Order("created_at ASC, code ASC").Find(&agencies).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AgencyListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Agency, 0, len(agencies))
	for _, agency := range agencies {
		data = append(data, newAgency(agency))
	}

	c.JSON(http.StatusOK, AgencyListResponse{Data: data})
}
