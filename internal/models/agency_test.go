package models_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/openfiscal/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAgencyTrimWhitespace() {
	code := " DOE \t"
	name := "  Department of Education  "
	description := " Some more whitespace in the description    "

	agency := suite.createTestAgency(models.Agency{
		Code:        code,
		Name:        name,
		Description: description,
	})

	assert.Equal(suite.T(), strings.TrimSpace(code), agency.Code)
	assert.Equal(suite.T(), strings.TrimSpace(name), agency.Name)
	assert.Equal(suite.T(), strings.TrimSpace(description), agency.Description)
}

func (suite *TestSuiteStandard) TestAgencyCreate() {
	tests := []struct {
		name   string
		agency models.Agency
		err    error
	}{
		{
			"No code",
			models.Agency{Name: "Department of Education"},
			models.ErrAgencyCodeMissing,
		},
		{
			"No name",
			models.Agency{Code: "DOE"},
			models.ErrAgencyNameMissing,
		},
		{
			"Whitespace only code",
			models.Agency{Code: "  \t ", Name: "Department of Education"},
			models.ErrAgencyCodeMissing,
		},
		{
			"Valid",
			models.Agency{Code: "DOE", Name: "Department of Education"},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.agency).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

// TestAgencyDuplicateCode ensures that two agencies cannot share a code.
func (suite *TestSuiteStandard) TestAgencyDuplicateCode() {
	_ = suite.createTestAgency(models.Agency{Code: "TestAgencyDuplicateCode"})

	agency := models.Agency{
		Code: "TestAgencyDuplicateCode",
		Name: "Second agency with the same code",
	}
	err := models.DB.Create(&agency).Error
	assert.ErrorIs(suite.T(), err, models.ErrAgencyCodeNotUnique, "Error is: %s", err)
}

func (suite *TestSuiteStandard) TestAgencyExport() {
	t := suite.T()

	for i := range 2 {
		_ = suite.createTestAgency(models.Agency{Code: fmt.Sprint(i)})
	}

	raw, err := models.Agency{}.Export()
	if err != nil {
		require.Fail(t, "agency export failed", err)
	}

	var agencies []models.Agency
	err = json.Unmarshal(raw, &agencies)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, agencies, 2, "Number of agencies in export is wrong")
}
