package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openfiscal/backend/internal/httputil"
	"github.com/openfiscal/backend/internal/models"
)

func RegisterProgramRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("/programs", OptionsPrograms)
		r.GET("/programs", GetPrograms)
	}
	{
		r.OPTIONS("/program", OptionsProgram)
		r.POST("/program", CreateProgram)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Programs
// @Success		204
// @Router			/api/programs [options]
func OptionsPrograms(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Programs
// @Success		204
// @Router			/api/program [options]
func OptionsProgram(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Create program
// @Description	Creates a new program. The referenced fund and agency must exist.
// @Tags			Programs
// @Produce		json
// @Success		201		{object}	ProgramResponse
// @Failure		400		{object}	ProgramResponse
// @Failure		404		{object}	ProgramResponse
// @Failure		500		{object}	ProgramResponse
// @Param			program	body		ProgramEditable	true	"Program"
// @Router			/api/program [post]
func CreateProgram(c *gin.Context) {
	var editable ProgramEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProgramResponse{
			Error: &e,
		})
		return
	}

	program := editable.model()
	err = models.DB.Create(&program).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProgramResponse{
			Error: &e,
		})
		return
	}

	apiResource := newProgram(program)
	c.JSON(http.StatusCreated, ProgramResponse{Data: &apiResource})
}

// @Summary		List programs
// @Description	Returns a list of programs
// @Tags			Programs
// @Produce		json
// @Success		200	{object}	ProgramListResponse
// @Failure		500	{object}	ProgramListResponse
// @Router			/api/programs [get]
func GetPrograms(c *gin.Context) {
	var programs []models.Program

	err := models.DB.Order("created_at ASC, code ASC").Find(&programs).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ProgramListResponse{
			Error: &e,
		})
		return
	}

	// Transform resources to their API representation
	data := make([]Program, 0, len(programs))
	for _, program := range programs {
		data = append(data, newProgram(program))
	}

	c.JSON(http.StatusOK, ProgramListResponse{Data: data})
}
