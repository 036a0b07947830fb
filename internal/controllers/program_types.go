package controllers

import (
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
)

type ProgramEditable struct {
	Code            string       `json:"code" example:"EDU-K12" default:""`                                                                                // Unique code of the program
	Name            string       `json:"name" example:"K-12 Education" default:""`                                                                         // Name of the program
	FundCode        string       `json:"fundCode" example:"GF-2025" default:""`                                                                            // Code of the fund the program is financed from
	AgencyCode      string       `json:"agencyCode" example:"DOE" default:""`                                                                              // Code of the agency administering the program
	AllocatedAmount types.Amount `json:"allocatedAmount" example:"120000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Planned amount for the program
	Description     string       `json:"description" example:"Primary and secondary school funding" default:""`                                            // Description of the program
}

// model returns the database resource for the API representation of the editable fields
func (editable ProgramEditable) model() models.Program {
	return models.Program{
		Code:            editable.Code,
		Name:            editable.Name,
		FundCode:        editable.FundCode,
		AgencyCode:      editable.AgencyCode,
		AllocatedAmount: editable.AllocatedAmount,
		Description:     editable.Description,
	}
}

type Program struct {
	models.Timestamps
	ProgramEditable
}

// newProgram returns the API representation of the resource
func newProgram(model models.Program) Program {
	return Program{
		Timestamps: model.Timestamps,
		ProgramEditable: ProgramEditable{
			Code:            model.Code,
			Name:            model.Name,
			FundCode:        model.FundCode,
			AgencyCode:      model.AgencyCode,
			AllocatedAmount: model.AllocatedAmount,
			Description:     model.Description,
		},
	}
}

type ProgramListResponse struct {
	Data  []Program `json:"data"`                                                // List of resources
	Error *string   `json:"error" example:"you must set a code for the program"` // The error, if any occurred
}

type ProgramResponse struct {
	Error *string  `json:"error" example:"you must set a code for the program"` // The error, if any occurred
	Data  *Program `json:"data"`                                                // The resource
}
