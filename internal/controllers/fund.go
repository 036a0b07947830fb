package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

func RegisterFundRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/funds", OptionsFunds)
		r.GET("/funds", GetFunds)
	}
	{
		r.OPTIONS("/fund", OptionsFund)
		r.POST("/fund", CreateFund)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funds
// @Success		204
// @Router			/api/funds [options]
func OptionsFunds(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Funds
// @Success		204
// @Router			/api/fund [options]
func OptionsFund(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create fund
// @Description	Creates a new fund
// @Tags			Funds
// @Produce		json
// @Success		201		{object}	FundResponse
// @Failure		400		{object}	FundResponse
// @Failure		500		{object}	FundResponse
// @Param			fund	body		FundEditable	true	"Fund"
// @Router			/api/fund [post]
func CreateFund(c *gin.Context) {
	var editable FundEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FundResponse{
			Error: &e,
		})
		return
	}

	fund := editable.model()
	err = models.DB.Create(&fund).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FundResponse{
			Error: &e,
		})
		return
	}

	apiResource := newFund(fund)
	c.JSON(http.StatusCreated, FundResponse{Data: &apiResource})
}

// @Summary		List funds
// @Description	Returns a list of funds
// @Tags			Funds
// @Produce		json
// @Success		200	{object}	FundListResponse
// @Failure		500	{object}	FundListResponse
// @Router			/api/funds [get]
func GetFunds(c *gin.Context) {
	var funds []models.Fund

	err := models.DB.Order("created_at ASC, code ASC").Find(&funds).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), FundListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Fund, 0, len(funds))
	for _, fund := range funds {
		data = append(data, newFund(fund))
	}

	c.JSON(http.StatusOK, FundListResponse{Data: data})
}
