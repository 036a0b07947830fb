package models_test

import (
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSummarizeEmpty() {
	summary, err := models.Summarize(models.DB)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(0), summary.TotalFunds)
	assert.True(suite.T(), summary.TotalBudget.IsZero(), "Total budget is not zero: %s", summary.TotalBudget)
	assert.True(suite.T(), summary.TotalAllocated.IsZero(), "Total allocated is not zero: %s", summary.TotalAllocated)
	assert.True(suite.T(), summary.TotalDisbursed.IsZero(), "Total disbursed is not zero: %s", summary.TotalDisbursed)
	assert.Len(suite.T(), summary.ByProgram, 0)
}

func (suite *TestSuiteStandard) TestSummarize() {
	fund := suite.createTestFund(models.Fund{Code: "GF", TotalBudget: types.AmountFromFloat(1000)})
	_ = suite.createTestFund(models.Fund{Code: "CF", TotalBudget: types.AmountFromFloat(2500)})
	agency := suite.createTestAgency(models.Agency{})

	k12 := suite.createTestProgram(models.Program{Code: "EDU-K12", FundCode: fund.Code, AgencyCode: agency.Code})
	roads := suite.createTestProgram(models.Program{Code: "INF-ROADS", FundCode: fund.Code, AgencyCode: agency.Code})

	_ = suite.createTestAllocation(models.Allocation{ProgramCode: k12.Code, Amount: types.AmountFromFloat(100)})
	_ = suite.createTestAllocation(models.Allocation{ProgramCode: k12.Code, Amount: types.AmountFromFloat(50)})
	allocation := suite.createTestAllocation(models.Allocation{ProgramCode: roads.Code, Amount: types.AmountFromFloat(30)})

	_ = suite.createTestDisbursement(models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(10)})
	_ = suite.createTestDisbursement(models.Disbursement{AllocationID: allocation.ID, Amount: types.AmountFromFloat(5)})

	summary, err := models.Summarize(models.DB)
	require.Nil(suite.T(), err)

	assert.Equal(suite.T(), int64(2), summary.TotalFunds)
	assert.True(suite.T(), summary.TotalBudget.Equal(types.AmountFromFloat(3500).Decimal), "Total budget is wrong: %s", summary.TotalBudget)
	assert.True(suite.T(), summary.TotalAllocated.Equal(types.AmountFromFloat(180).Decimal), "Total allocated is wrong: %s", summary.TotalAllocated)
	assert.True(suite.T(), summary.TotalDisbursed.Equal(types.AmountFromFloat(15).Decimal), "Total disbursed is wrong: %s", summary.TotalDisbursed)

	require.Len(suite.T(), summary.ByProgram, 2)
	assert.Equal(suite.T(), "EDU-K12", summary.ByProgram[0].ProgramCode)
	assert.True(suite.T(), summary.ByProgram[0].Allocated.Equal(types.AmountFromFloat(150).Decimal), "Allocated sum for EDU-K12 is wrong: %s", summary.ByProgram[0].Allocated)
	assert.Equal(suite.T(), "INF-ROADS", summary.ByProgram[1].ProgramCode)
	assert.True(suite.T(), summary.ByProgram[1].Allocated.Equal(types.AmountFromFloat(30).Decimal), "Allocated sum for INF-ROADS is wrong: %s", summary.ByProgram[1].Allocated)
}

// TestSummarizeAllStatuses verifies that allocations count toward the
// allocated total no matter their status.
func (suite *TestSuiteStandard) TestSummarizeAllStatuses() {
	_, _, program := suite.createTestHierarchy()

	_ = suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(100), Status: models.AllocationStatusApproved})
	_ = suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(40), Status: models.AllocationStatusRejected})

	summary, err := models.Summarize(models.DB)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), summary.TotalAllocated.Equal(types.AmountFromFloat(140).Decimal), "Total allocated is wrong: %s", summary.TotalAllocated)
}

// TestSummarizeOrder verifies the ordering of the per-program breakdown:
// descending by allocated amount, ties broken by program code.
func (suite *TestSuiteStandard) TestSummarizeOrder() {
	fund := suite.createTestFund(models.Fund{})
	agency := suite.createTestAgency(models.Agency{})

	for _, code := range []string{"ZED", "ALPHA", "MID"} {
		program := suite.createTestProgram(models.Program{Code: code, FundCode: fund.Code, AgencyCode: agency.Code})
		_ = suite.createTestAllocation(models.Allocation{ProgramCode: program.Code, Amount: types.AmountFromFloat(100)})
	}

	big := suite.createTestProgram(models.Program{Code: "BIG", FundCode: fund.Code, AgencyCode: agency.Code})
	_ = suite.createTestAllocation(models.Allocation{ProgramCode: big.Code, Amount: types.AmountFromFloat(500)})

	summary, err := models.Summarize(models.DB)
	require.Nil(suite.T(), err)

	require.Len(suite.T(), summary.ByProgram, 4)

	codes := make([]string, 0, len(summary.ByProgram))
	for _, p := range summary.ByProgram {
		codes = append(codes, p.ProgramCode)
	}
	assert.Equal(suite.T(), []string{"BIG", "ALPHA", "MID", "ZED"}, codes)
}

func (suite *TestSuiteStandard) TestSummarizeDBFail() {
	suite.CloseDB()

	_, err := models.Summarize(models.DB)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
