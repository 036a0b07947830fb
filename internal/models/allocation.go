package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/openfiscal/backend/internal/types"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// AllocationStatus is the approval state of an allocation.
type AllocationStatus string

const (
	AllocationStatusApproved AllocationStatus = "approved"
	AllocationStatusPending  AllocationStatus = "pending"
	AllocationStatusRejected AllocationStatus = "rejected"
)

// Allocation represents an obligation of money from a program's budget.
type Allocation struct {
	DefaultModel
	Program        Program `json:"-" gorm:"foreignKey:ProgramCode;references:Code"`
	ProgramCode    string
	Amount         types.Amount `gorm:"type:DECIMAL(20,8)"`
	AllocationDate types.Date
	Status         AllocationStatus
	Notes          string
}

var (
	ErrAllocationProgramCodeMissing = fmt.Errorf("%w a program code for the allocation", ErrMissingField)
	ErrAllocationAmountNegative     = fmt.Errorf("the amount of an allocation %w", ErrAmountNegative)
	ErrAllocationStatusInvalid      = errors.New("the allocation status must be one of approved, pending, rejected")
)

// BeforeSave validates the allocation.
//
// An unset status defaults to pending, an unset date to today.
func (a *Allocation) BeforeSave(_ *gorm.DB) error {
	a.ProgramCode = strings.TrimSpace(a.ProgramCode)
	a.Notes = strings.TrimSpace(a.Notes)

	if a.ProgramCode == "" {
		return ErrAllocationProgramCodeMissing
	}

	if a.Amount.IsNegative() {
		return ErrAllocationAmountNegative
	}

	if a.Status == "" {
		a.Status = AllocationStatusPending
	}

	if !slices.Contains([]AllocationStatus{AllocationStatusApproved, AllocationStatusPending, AllocationStatusRejected}, a.Status) {
		return ErrAllocationStatusInvalid
	}

	if a.AllocationDate.IsZero() {
		a.AllocationDate = types.Today()
	}

	return nil
}

func (a *Allocation) BeforeCreate(tx *gorm.DB) error {
	_ = a.DefaultModel.BeforeCreate(tx)

	toSave := tx.Statement.Dest.(*Allocation)
	return a.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (a *Allocation) checkIntegrity(tx *gorm.DB, toSave Allocation) error {
	return tx.First(&Program{}, "code = ?", toSave.ProgramCode).Error
}

// Returns all allocations on this instance for export
func (Allocation) Export() (json.RawMessage, error) {
	var allocations []Allocation
	err := DB.Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&allocations)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
