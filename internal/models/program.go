package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openfiscal/backend/internal/types"
	"gorm.io/gorm"
)

// Program represents a spending initiative tied to exactly one fund
// and one agency.
type Program struct {
	Timestamps
	Code            string `gorm:"primaryKey"`
	Name            string
	Fund            Fund `json:"-" gorm:"foreignKey:FundCode;references:Code"`
	FundCode        string
	Agency          Agency `json:"-" gorm:"foreignKey:AgencyCode;references:Code"`
	AgencyCode      string
	AllocatedAmount types.Amount `gorm:"type:DECIMAL(20,8)"` // The nominal amount declared for the program
	Description     string
}

var (
	ErrProgramCodeMissing    = fmt.Errorf("%w a code for the program", ErrMissingField)
	ErrProgramNameMissing    = fmt.Errorf("%w a name for the program", ErrMissingField)
	ErrProgramAmountNegative = fmt.Errorf("the allocated amount of a program %w", ErrAmountNegative)
	ErrProgramCodeNotUnique  = fmt.Errorf("the program code %w", ErrNotUnique)
)

// BeforeSave validates the program.
//
// It trims whitespace from all strings and checks the
// required fields before the amount.
func (p *Program) BeforeSave(_ *gorm.DB) error {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	p.FundCode = strings.TrimSpace(p.FundCode)
	p.AgencyCode = strings.TrimSpace(p.AgencyCode)
	p.Description = strings.TrimSpace(p.Description)

	if p.Code == "" {
		return ErrProgramCodeMissing
	}

	if p.Name == "" {
		return ErrProgramNameMissing
	}

	if p.AllocatedAmount.IsNegative() {
		return ErrProgramAmountNegative
	}

	return nil
}

func (p *Program) BeforeCreate(tx *gorm.DB) error {
	toSave := tx.Statement.Dest.(*Program)
	return p.checkIntegrity(tx, *toSave)
}

// checkIntegrity verifies references to other resources
func (p *Program) checkIntegrity(tx *gorm.DB, toSave Program) error {
	err := tx.First(&Fund{}, "code = ?", toSave.FundCode).Error
	if err != nil {
		return err
	}

	return tx.First(&Agency{}, "code = ?", toSave.AgencyCode).Error
}

// Returns all programs on this instance for export
func (Program) Export() (json.RawMessage, error) {
	var programs []Program
	err := DB.Find(&programs).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&programs)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
