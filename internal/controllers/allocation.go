package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

func RegisterAllocationRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/allocations", OptionsAllocations)
		r.GET("/allocations", GetAllocations)
	}
	{
		r.OPTIONS("/allocation", OptionsAllocation)
		r.POST("/allocation", CreateAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/api/allocations [options]
func OptionsAllocations(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Allocations
// @Success		204
// @Router			/api/allocation [options]
func OptionsAllocation(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create allocation
// @Description	Creates a new allocation. The referenced program must exist.
// @Tags			Allocations
// @Produce		json
// @Success		201			{object}	AllocationResponse
// @Failure		400			{object}	AllocationResponse
// @Failure		404			{object}	AllocationResponse
// @Failure		500			{object}	AllocationResponse
// @Param			allocation	body		AllocationEditable	true	"Allocation"
// @Router			/api/allocation [post]
func CreateAllocation(c *gin.Context) {
	var editable AllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	allocation := editable.model()
	err = models.DB.Create(&allocation).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationResponse{
			Error: &e,
		})
		return
	}

	apiResource := newAllocation(allocation)
	c.JSON(http.StatusCreated, AllocationResponse{Data: &apiResource})
}

// @Summary		List allocations
// @Description	Returns a list of allocations
// @Tags			Allocations
// @Produce		json
// @Success		200	{object}	AllocationListResponse
// @Failure		500	{object}	AllocationListResponse
// @Router			/api/allocations [get]
func GetAllocations(c *gin.Context) {
	var allocations []models.Allocation

	err := models.DB.Order("created_at ASC, id ASC").Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), AllocationListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Allocation, 0, len(allocations))
	for _, allocation := range allocations {
		data = append(data, newAllocation(allocation))
	}

	c.JSON(http.StatusOK, AllocationListResponse{Data: data})
}
