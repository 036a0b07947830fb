package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/openfiscal/backend/internal/types"
	"gorm.io/gorm"
)

// Fund represents a budget pool for a fiscal year, e.g. the general fund.
type Fund struct {
	Timestamps
	Code        string `gorm:"primaryKey"`
	Name        string
	FiscalYear  int
	TotalBudget types.Amount `gorm:"type:DECIMAL(20,8)"` // The total ceiling of the fund
	Description string
}

var (
	ErrFundCodeMissing    = fmt.Errorf("%w a code for the fund", ErrMissingField)
	ErrFundNameMissing    = fmt.Errorf("%w a name for the fund", ErrMissingField)
	ErrFundBudgetNegative = fmt.Errorf("the total budget of a fund %w", ErrAmountNegative)
	ErrFundCodeNotUnique  = fmt.Errorf("the fund code %w", ErrNotUnique)
)

// BeforeSave validates the fund.
//
// It trims whitespace from all strings and checks the
// required fields before the amount.
func (f *Fund) BeforeSave(_ *gorm.DB) error {
	f.Code = strings.TrimSpace(f.Code)
	f.Name = strings.TrimSpace(f.Name)
	f.Description = strings.TrimSpace(f.Description)

	if f.Code == "" {
		return ErrFundCodeMissing
	}

	if f.Name == "" {
		return ErrFundNameMissing
	}

	if f.TotalBudget.IsNegative() {
		return ErrFundBudgetNegative
	}

	return nil
}

// Returns all funds on this instance for export
func (Fund) Export() (json.RawMessage, error) {
	var funds []Fund
	err := DB.Find(&funds).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&funds)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
