package controllers

import (
	"github.com/google/uuid"
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
)

type DisbursementEditable struct {
	AllocationID     uuid.UUID                 `json:"allocationId" example:"6f2f6c5a-7e1b-4a3e-9d27-1b0d2c5e8f9a"`                                            // ID of the allocation the money is paid out from
	Amount           types.Amount              `json:"amount" example:"52.38" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001" default:"0"` // Disbursed amount
	DisbursementDate types.Date                `json:"disbursementDate" example:"2025-07-15"`                                                                  // Day the payment was made. Defaults to the current day.
	Recipient        string                    `json:"recipient" example:"Acme School District" default:""`                                                    // Recipient of the payment
	Status           models.DisbursementStatus `json:"status" example:"sent" default:"scheduled" enums:"sent,scheduled,failed"`                                // Status of the disbursement
	Notes            string                    `json:"notes" example:"Invoice 2025-0117" default:""`                                                           // Notes about the disbursement
}

// model returns the database resource for the API representation of the editable fields
func (editable DisbursementEditable) model() models.Disbursement {
	return models.Disbursement{
		AllocationID:     editable.AllocationID,
		Amount:           editable.Amount,
		DisbursementDate: editable.DisbursementDate,
		Recipient:        editable.Recipient,
		Status:           editable.Status,
		Notes:            editable.Notes,
	}
}

type Disbursement struct {
	models.DefaultModel
	DisbursementEditable
}

// newDisbursement returns the API representation of the resource
func newDisbursement(model models.Disbursement) Disbursement {
	return Disbursement{
		DefaultModel: model.DefaultModel,
		DisbursementEditable: DisbursementEditable{
			AllocationID:     model.AllocationID,
			Amount:           model.Amount,
			DisbursementDate: model.DisbursementDate,
			Recipient:        model.Recipient,
			Status:           model.Status,
			Notes:            model.Notes,
		},
	}
}

type DisbursementListResponse struct {
	Data  []Disbursement `json:"data"`                                                               // List of resources
	Error *string        `json:"error" example:"you must set an allocation ID for the disbursement"` // The error, if any occurred
}

type DisbursementResponse struct {
	Error *string       `json:"error" example:"you must set an allocation ID for the disbursement"` // The error, if any occurred
	Data  *Disbursement `json:"data"`                                                               // The resource
}

type DisbursementQueryFilter struct {
	Recipient string `form:"recipient"` // Filter by recipient, supports the wildcard *
}
