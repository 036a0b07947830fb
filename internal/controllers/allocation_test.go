package controllers_test

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/openfiscal/backend/internal/controllers"
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/internal/types"
	"github.com/openfiscal/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAllocation(t *testing.T, a controllers.AllocationEditable, expectedStatus ...int) controllers.AllocationResponse {
	if a.ProgramCode == "" {
		a.ProgramCode = createTestProgram(t, controllers.ProgramEditable{Name: "Program for allocation testing"}).Data.Code
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/api/allocation", a)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var allocation controllers.AllocationResponse
	test.DecodeResponse(t, &r, &allocation)

	return allocation
}

// TestAllocationsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestAllocationsDBClosed() {
	p := createTestProgram(suite.T(), controllers.ProgramEditable{})

	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestAllocation(t, controllers.AllocationEditable{ProgramCode: p.Data.Code}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/api/allocations", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response controllers.AllocationListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}

// TestAllocationsCreate verifies that all fields of an allocation are
// persisted and returned on creation.
func (suite *TestSuiteStandard) TestAllocationsCreate() {
	program := createTestProgram(suite.T(), controllers.ProgramEditable{Code: "EDU-K12"})

	allocation := createTestAllocation(suite.T(), controllers.AllocationEditable{
		ProgramCode:    program.Data.Code,
		Amount:         types.AmountFromFloat(163.17),
		AllocationDate: types.NewDate(2025, 7, 1),
		Status:         models.AllocationStatusApproved,
		Notes:          "First quarterly tranche",
	})

	data := allocation.Data
	require.NotNil(suite.T(), data)

	assert.NotEqual(suite.T(), uuid.Nil, data.ID)
	assert.Equal(suite.T(), "EDU-K12", data.ProgramCode)
	assert.True(suite.T(), data.Amount.Equal(decimal.NewFromFloat(163.17)), "Amount is not 163.17, is %s", data.Amount)
	assert.True(suite.T(), data.AllocationDate.Equal(types.NewDate(2025, 7, 1)), "Allocation date is not 2025-07-01, is %s", data.AllocationDate)
	assert.Equal(suite.T(), models.AllocationStatusApproved, data.Status)
	assert.Equal(suite.T(), "First quarterly tranche", data.Notes)
}

// TestAllocationsCreateDefaults verifies that the status of an allocation
// defaults to pending and the allocation date to the current day.
func (suite *TestSuiteStandard) TestAllocationsCreateDefaults() {
	allocation := createTestAllocation(suite.T(), controllers.AllocationEditable{
		Amount: types.AmountFromFloat(1000),
	})

	data := allocation.Data
	require.NotNil(suite.T(), data)

	assert.Equal(suite.T(), models.AllocationStatusPending, data.Status)
	assert.True(suite.T(), data.AllocationDate.Equal(types.Today()), "Allocation date is not today, is %s", data.AllocationDate)
}

func (suite *TestSuiteStandard) TestAllocationsCreateFails() {
	p := createTestProgram(suite.T(), controllers.ProgramEditable{})

	tests := []struct {
		name     string
		body     any
		status   int                                                  // expected HTTP status
		testFunc func(t *testing.T, a controllers.AllocationResponse) // tests to perform against the response
	}{
		{
			"Broken Body", `{ "notes": 2 }`, http.StatusBadRequest,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "json: cannot unmarshal number into Go struct field AllocationEditable.notes of type string", *a.Error)
			},
		},
		{
			"No body", "", http.StatusBadRequest,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "the request body must not be empty", *a.Error)
			},
		},
		{
			"No program code",
			controllers.AllocationEditable{Amount: types.AmountFromFloat(500)},
			http.StatusBadRequest,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "you must set a program code for the allocation", *a.Error)
			},
		},
		{
			"Unknown program",
			controllers.AllocationEditable{ProgramCode: uuid.NewString()},
			http.StatusNotFound,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "there is no program matching your query", *a.Error)
			},
		},
		{
			"Negative amount",
			controllers.AllocationEditable{ProgramCode: p.Data.Code, Amount: types.AmountFromFloat(-1)},
			http.StatusBadRequest,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "the amount of an allocation must not be negative", *a.Error)
			},
		},
		{
			"Invalid status",
			controllers.AllocationEditable{ProgramCode: p.Data.Code, Status: "spent"},
			http.StatusBadRequest,
			func(t *testing.T, a controllers.AllocationResponse) {
				assert.Equal(t, "the allocation status must be one of approved, pending, rejected", *a.Error)
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/api/allocation", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			var a controllers.AllocationResponse
			test.DecodeResponse(t, &r, &a)

			if tt.testFunc != nil {
				tt.testFunc(t, a)
			}
		})
	}
}

// TestAllocationsGetSorted verifies that allocations are returned in the
// order they were created in.
func (suite *TestSuiteStandard) TestAllocationsGetSorted() {
	p := createTestProgram(suite.T(), controllers.ProgramEditable{})

	a1 := createTestAllocation(suite.T(), controllers.AllocationEditable{ProgramCode: p.Data.Code, Notes: "Created first"})
	a2 := createTestAllocation(suite.T(), controllers.AllocationEditable{ProgramCode: p.Data.Code, Notes: "Created second"})
	a3 := createTestAllocation(suite.T(), controllers.AllocationEditable{ProgramCode: p.Data.Code, Notes: "Created third"})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/api/allocations", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations controllers.AllocationListResponse
	test.DecodeResponse(suite.T(), &r, &allocations)

	require.Len(suite.T(), allocations.Data, 3, "Allocation list has wrong length")

	assert.Equal(suite.T(), a1.Data.ID, allocations.Data[0].ID)
	assert.Equal(suite.T(), a2.Data.ID, allocations.Data[1].ID)
	assert.Equal(suite.T(), a3.Data.ID, allocations.Data[2].ID)
}
