package controllers

import (
	"github.com/openfiscal/backend/internal/models"
)

type AgencyEditable struct {
	Code        string `json:"code" example:"DOE" default:""`                                 // Unique code of the agency
	Name        string `json:"name" example:"Department of Education" default:""`             // Name of the agency
	Description string `json:"description" example:"Administers public schooling" default:""` // Description of the agency
}

// model returns the database resource for the API representation of the editable fields
func (editable AgencyEditable) model() models.Agency {
	return models.Agency{
		Code:        editable.Code,
		Name:        editable.Name,
		Description: editable.Description,
	}
}

type Agency struct {
	models.Timestamps
	AgencyEditable
}

// newAgency returns the API representation of the resource
func newAgency(model models.Agency) Agency {
	return Agency{
		Timestamps: model.Timestamps,
		AgencyEditable: AgencyEditable{
			Code:        model.Code,
			Name:        model.Name,
			Description: model.Description,
		},
	}
}

type AgencyListResponse struct {
	Data  []Agency `json:"data"`                                               // List of resources
	Error *string  `json:"error" example:"you must set a code for the agency"` // The error, if any occurred
}

type AgencyResponse struct {
	Error *string `json:"error" example:"you must set a code for the agency"` // The error, if any occurred
	Data  *Agency `json:"data"`                                               // The resource
}
