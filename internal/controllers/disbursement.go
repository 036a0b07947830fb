package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
	"github.com/ryanuber/go-glob"
)

func RegisterDisbursementRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/disbursements", OptionsDisbursements)
		r.GET("/disbursements", GetDisbursements)
	}
	{
		r.OPTIONS("/disbursement", OptionsDisbursement)
		r.POST("/disbursement", CreateDisbursement)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Disbursements
// @Success		204
// @Router			/api/disbursements [options]
func OptionsDisbursements(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Disbursements
// @Success		204
// @Router			/api/disbursement [options]
func OptionsDisbursement(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create disbursement
// @Description	Creates a new disbursement. The referenced allocation must exist.
// @Tags			Disbursements
// @Produce		json
// @Success		201				{object}	DisbursementResponse
// @Failure		400				{object}	DisbursementResponse
// @Failure		404				{object}	DisbursementResponse
// @Failure		500				{object}	DisbursementResponse
// @Param			disbursement	body		DisbursementEditable	true	"Disbursement"
// @Router			/api/disbursement [post]
func CreateDisbursement(c *gin.Context) {
	var editable DisbursementEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DisbursementResponse{
			Error: &e,
		})
		return
	}

	disbursement := editable.model()
	err = models.DB.Create(&disbursement).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DisbursementResponse{
			Error: &e,
		})
		return
	}

	apiResource := newDisbursement(disbursement)
	c.JSON(http.StatusCreated, DisbursementResponse{Data: &apiResource})
}

// @Summary		List disbursements
// @Description	Returns a list of disbursements
// @Tags			Disbursements
// @Produce		json
// @Success		200			{object}	DisbursementListResponse
// @Failure		400			{object}	DisbursementListResponse
// @Failure		500			{object}	DisbursementListResponse
// @Param			recipient	query		string	false	"Filter by recipient. Supports the wildcard *."
// @Router			/api/disbursements [get]
func GetDisbursements(c *gin.Context) {
	var filter DisbursementQueryFilter

	if err := c.Bind(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, DisbursementListResponse{
			Error: &e,
		})
		return
	}

	var disbursements []models.Disbursement

	err := models.DB.Order("created_at ASC, id ASC").Find(&disbursements).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DisbursementListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Disbursement, 0, len(disbursements))
	for _, disbursement := range disbursements {
		if filter.Recipient != "" && !glob.Glob(filter.Recipient, disbursement.Recipient) {
			continue
		}

		data = append(data, newDisbursement(disbursement))
	}

	c.JSON(http.StatusOK, DisbursementListResponse{Data: data})
}
