package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestAllocationTrimWhitespace() {
	_, _, program := suite.createTestHierarchy()

	notes := " Quarterly tranche    "

	allocation := suite.createTestAllocation(models.Allocation{
		ProgramCode: " " + program.Code + "\t",
		Amount:      types.AmountFromFloat(100),
		Notes:       notes,
	})

	assert.Equal(suite.T(), program.Code, allocation.ProgramCode)
	assert.Equal(suite.T(), strings.TrimSpace(notes), allocation.Notes)
}

func (suite *TestSuiteStandard) TestAllocationCreate() {
	_, _, program := suite.createTestHierarchy()

	tests := []struct {
		name       string
		allocation models.Allocation
		err        error
	}{
		{
			"No program code",
			models.Allocation{Amount: types.AmountFromFloat(100)},
			models.ErrAllocationProgramCodeMissing,
		},
		{
			"Negative amount",
			models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(-100)},
			models.ErrAllocationAmountNegative,
		},
		{
			"Invalid status",
			models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(100), Status: "revoked"},
			models.ErrAllocationStatusInvalid,
		},
		{
			"Program does not exist",
			models.Allocation{ProgramCode: "NOT-A-PROGRAM", Amount: types.AmountFromFloat(100)},
			models.ErrResourceNotFound,
		},
		{
			"Valid",
			models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(100), Status: models.AllocationStatusApproved},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.allocation).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestAllocationDefaults() {
	_, _, program := suite.createTestHierarchy()

	allocation := suite.createTestAllocation(models.Allocation{
		ProgramCode: program.Code,
		Amount:      types.AmountFromFloat(250),
	})

	assert.Equal(suite.T(), models.AllocationStatusPending, allocation.Status, "Status does not default to pending")
	assert.True(suite.T(), allocation.AllocationDate.Equal(types.Today()), "Allocation date does not default to today: %s", allocation.AllocationDate)
	assert.NotZero(suite.T(), allocation.ID, "ID was not set on create")
}

// TestAllocationZeroAmount verifies that an allocation without an amount
// is stored with an amount of 0.
func (suite *TestSuiteStandard) TestAllocationZeroAmount() {
	_, _, program := suite.createTestHierarchy()

	allocation := suite.createTestAllocation(models.Allocation{
		ProgramCode: program.Code,
	})

	assert.True(suite.T(), allocation.Amount.IsZero(), "Amount is not zero when unset: %s", allocation.Amount)
}

func (suite *TestSuiteStandard) TestAllocationExport() {
	t := suite.T()

	_, _, program := suite.createTestHierarchy()

	for range 2 {
		_ = suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(17)})
	}

	raw, err := models.Allocation{}.Export()
	if err != nil {
		require.Fail(t, "allocation export failed", err)
	}

	var allocations []models.Allocation
	err = json.Unmarshal(raw, &allocations)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, allocations, 2, "Number of allocations in export is wrong")
}
