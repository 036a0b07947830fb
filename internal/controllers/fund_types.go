package controllers

import (
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
)

type FundEditable struct {
	Code        string       `json:"code" example:"GF-2025" default:""`                                                                             // Unique code of the fund
	Name        string       `json:"name" example:"General Fund" default:""`                                                                        // Name of the fund
	FiscalYear  int          `json:"fiscalYear" example:"2025" default:"0"`                                                                         // Fiscal year the fund is budgeted for
	TotalBudget types.Amount `json:"totalBudget" example:"5000000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Total budget of the fund
	Description string       `json:"description" example:"Main operating fund of the municipality" default:""`                                      // Description of the fund
}

// model returns the database resource for the API representation of the editable fields
func (editable FundEditable) model() models.Fund {
	return models.Fund{
		Code:        editable.Code,
		Name:        editable.Name,
		FiscalYear:  editable.FiscalYear,
		TotalBudget: editable.TotalBudget,
		Description: editable.Description,
	}
}

type Fund struct {
	models.Timestamps
	FundEditable
}

// newFund returns the API representation of the resource
func newFund(model models.Fund) Fund {
	return Fund{
		Timestamps: model.Timestamps,
		FundEditable: FundEditable{
			Code:        model.Code,
			Name:        model.Name,
			FiscalYear:  model.FiscalYear,
			TotalBudget: model.TotalBudget,
			Description: model.Description,
		},
	}
}

type FundListResponse struct {
	Data  []Fund  `json:"data"`                                             // List of resources
	Error *string `json:"error" example:"you must set a code for the fund"` // The error, if any occurred
}

type FundResponse struct {
	Error *string `json:"error" example:"you must set a code for the fund"` // The error, if any occurred
	Data  *Fund   `json:"data"`                                             // The resource
}
