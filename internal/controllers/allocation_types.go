package controllers

import (
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
)

type AllocationEditable struct {
	ProgramCode    string                  `json:"programCode" example:"EDU-K12" default:""`                                                                // Code of the program the money is allocated to
	Amount         types.Amount            `json:"amount" example:"163.17" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Allocated amount
	AllocationDate types.Date              `json:"allocationDate" example:"2025-07-01"`                                                                     // Day the allocation was granted. Defaults to the current day.
	Status         models.AllocationStatus `json:"status" example:"approved" default:"pending" enums:"approved,pending,rejected"`                           // Status of the allocation
	Notes          string                  `json:"notes" example:"First quarterly tranche" default:""`                                                      // Notes about the allocation
}

// model returns the database resource for the API representation of the editable fields
func (editable AllocationEditable) model() models.Allocation {
	return models.Allocation{
		ProgramCode:    editable.ProgramCode,
		Amount:         editable.Amount,
		AllocationDate: editable.AllocationDate,
		Status:         editable.Status,
		Notes:          editable.Notes,
	}
}

type Allocation struct {
	models.DefaultModel
	AllocationEditable
}

// newAllocation returns the API representation of the resource
func newAllocation(model models.Allocation) Allocation {
	return Allocation{
		DefaultModel: model.DefaultModel,
		AllocationEditable: AllocationEditable{
			ProgramCode:    model.ProgramCode,
			Amount:         model.Amount,
			AllocationDate: model.AllocationDate,
			Status:         model.Status,
			Notes:          model.Notes,
		},
	}
}

type AllocationListResponse struct {
	Data  []Allocation `json:"data"`                                                           // List of resources
	Error *string      `json:"error" example:"you must set a program code for the allocation"` // The error, if any occurred
}

type AllocationResponse struct {
	Error *string     `json:"error" example:"you must set a program code for the allocation"` // The error, if any occurred
	Data  *Allocation `json:"data"`                                                           // The resource
}
