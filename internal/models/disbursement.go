package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/openfiscal/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// DisbursementStatus is the payment state of a disbursement.
type DisbursementStatus string

const (
	DisbursementStatusSent      DisbursementStatus = "sent"
	DisbursementStatusScheduled DisbursementStatus = "scheduled"
	DisbursementStatusFailed    DisbursementStatus = "failed"
)

// Disbursement represents an actual payment event against a specific allocation.
type Disbursement struct {
	DefaultModel
	Allocation       Allocation `json:"-"`
	AllocationID     uuid.UUID
	Amount           types.Amount `gorm:"type:DECIMAL(20,8)"`
	DisbursementDate types.Date
	Recipient        string
	Status           DisbursementStatus
	Notes            string
}

var (
	ErrDisbursementAllocationIDMissing = fmt.Errorf("%w an allocation ID for the disbursement", ErrMissingField)
	ErrDisbursementAmountNegative      = fmt.Errorf("the amount of a disbursement %w", ErrAmountNegative)
	ErrDisbursementStatusInvalid       = errors.New("the disbursement status must be one of sent, scheduled, failed")
)

// BeforeSave validates the disbursement.
//
// An unset status defaults to scheduled, an unset date to today.
func (d *Disbursement) BeforeSave(_ *gorm.DB) error {
	d.Recipient = strings.TrimSpace(d.Recipient)
	d.Notes = strings.TrimSpace(d.Notes)

	if d.AllocationID == uuid.Nil {
		return ErrDisbursementAllocationIDMissing
	}

	if d.Amount.IsNegative() {
		return ErrDisbursementAmountNegative
	}

	if d.Status == "" {
		d.Status = DisbursementStatusScheduled
	}

	if !slices.Contains([]DisbursementStatus{DisbursementStatusSent, DisbursementStatusScheduled, DisbursementStatusFailed}, d.Status) {
		return ErrDisbursementStatusInvalid
	}

	if d.DisbursementDate.IsZero() {
		d.DisbursementDate = types.Today()
	}

	return nil
}

func (d *Disbursement) BeforeCreate(tx *gorm.DB) error {
	_ = d.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Disbursement)
	return d.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (d *Disbursement) checkIntegrity(tx *gorm.DB, toSave Disbursement) error {
	return tx.First(&Allocation{}, toSave.AllocationID).Error
}

// Returns all disbursements on this instance for export
func (Disbursement) Export() (json.RawMessage, error) {
	var disbursements []Disbursement
	err := DB.Find(&disbursements).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&disbursements)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
