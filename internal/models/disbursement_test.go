package models_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestDisbursementTrimWhitespace() {
	_, _, program := suite.createTestHierarchy()
	allocation := suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(1000)})

	recipient := " Acme School District \t"
	notes := " First payment    "

	disbursement := suite.createTestDisbursement(models.Disbursement{
		AllocationID: allocation.ID,
		Amount:       types.AmountFromFloat(100),
		Recipient:    recipient,
		Notes:        notes,
	})

	assert.Equal(suite.T(), strings.TrimSpace(recipient), disbursement.Recipient)
	assert.Equal(suite.T(), strings.TrimSpace(notes), disbursement.Notes)
}

func (suite *TestSuiteStandard) TestDisbursementCreate() {
	_, _, program := suite.createTestHierarchy()
	allocation := suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(1000)})

	tests := []struct {
		name         string
		disbursement models.Disbursement
		err          error
	}{
		{
			"No allocation ID",
			models.Disbursement{Amount: types.AmountFromFloat(100)},
			models.ErrDisbursementAllocationIDMissing,
		},
		{
			"Negative amount",
			models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(-100)},
			models.ErrDisbursementAmountNegative,
		},
		{
			"Invalid status",
			models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(100), Status: "bounced"},
			models.ErrDisbursementStatusInvalid,
		},
		{
			"Allocation does not exist",
			models.Disbursement{AllocationID: uuid.New(), Amount: types.AmountFromFloat(100)},
			models.ErrResourceNotFound,
		},
		{
			"Valid",
			models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(100), Status: models.DisbursementStatusSent},
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.disbursement).Error
			assert.ErrorIs(t, err, tt.err, "Error is: %s", err)
		})
	}
}

func (suite *TestSuiteStandard) TestDisbursementDefaults() {
	_, _, program := suite.createTestHierarchy()
	allocation := suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(1000)})

	disbursement := suite.createTestDisbursement(models.Disbursement{
		AllocationID: allocation.ID,
		Amount:       types.AmountFromFloat(250),
	})

	assert.Equal(suite.T(), models.DisbursementStatusScheduled, disbursement.Status, "Status does not default to scheduled")
	assert.True(suite.T(), disbursement.DisbursementDate.Equal(types.Today()), "Disbursement date does not default to today: %s", disbursement.DisbursementDate)
	assert.NotZero(suite.T(), disbursement.ID, "ID was not set on create")
}

func (suite *TestSuiteStandard) TestDisbursementExport() {
	t := suite.T()

	_, _, program := suite.createTestHierarchy()
	allocation := suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(1000)})

	for range 2 {
		_ = suite.createTestDisbursement(models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(17)})
	}

	raw, err := models.Disbursement{}.Export()
	if err != nil {
		require.Fail(t, "disbursement export failed", err)
	}

	var disbursements []models.Disbursement
	err = json.Unmarshal(raw, &disbursements)
	if err != nil {
		require.Fail(t, "JSON could not be unmarshaled", err)
	}

	require.Len(t, disbursements, 2, "Number of disbursements in export is wrong")
}
