package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// Agency represents an organizational owner of programs,
// independent of the funds financing them.
type Agency struct {
	Timestamps
	Code        string `gorm:"primaryKey"`
	Name        string
	Description string
}

var (
	ErrAgencyCodeMissing   = fmt.Errorf("%w a code for the agency", ErrMissingField)
	ErrAgencyNameMissing   = fmt.Errorf("%w a name for the agency", ErrMissingField)
	ErrAgencyCodeNotUnique = fmt.Errorf("the agency code %w", ErrNotUnique)
)

// BeforeSave validates the agency and trims whitespace from all strings
func (a *Agency) BeforeSave(_ *gorm.DB) error {
	a.Code = strings.TrimSpace(a.Code)
	a.Name = strings.TrimSpace(a.Name)
	a.Description = strings.TrimSpace(a.Description)

	if a.Code == "" {
		return ErrAgencyCodeMissing
	}

	if a.Name == "" {
		return ErrAgencyNameMissing
	}

	return nil
}

// Returns all agencies on this instance for export
func (Agency) Export() (json.RawMessage, error) {
	var agencies []Agency
	err := DB.Find(&agencies).Error
	if err != nil {
		return nil, err
	}

	j, err := json.Marshal(&agencies)
	if err != nil {
		return json.RawMessage{}, err
	}
	return json.RawMessage(j), nil
}
