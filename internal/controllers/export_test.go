package controllers_test

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/openfiscal/backend/internal/controllers"
	"github.com/openfiscal/backend/internal/models"
	"github.com/openfiscal/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExport verifies that the export works correctly
//
// Thorough checks are only executed for the non-data fields since
// the data fields are populated by the Export() methods of the models
func (suite *TestSuiteStandard) TestExport() {
	t := suite.T()

	f := createTestFund(t, controllers.FundEditable{})
	a := createTestAgency(t, controllers.AgencyEditable{})

	recorder := test.Request(t, http.MethodGet, "http://example.com/api/export", "")
	test.AssertHTTPStatus(t, &recorder, http.StatusOK)

	var response controllers.ExportResponse
	test.DecodeResponse(t, &recorder, &response)

	// Verify the version and clacks fields
	assert.Equal(t, "GNU Terry Pratchett", response.Clacks)
	assert.Equal(t, "0.0.0", response.Version)

	// Fuzzy by nature, rethink the assertion if it ever turns flaky
	now := time.Now()
	difference := response.CreationTime.Sub(now).Seconds()
	assert.Less(t, difference, float64(1))

	// Only check the shape of the data fields here, the contents are
	// covered by the Export() tests of the models
	assert.Len(t, response.Data, len(models.Registry), "Number of models in export does not match registry")

	// CreatedAt check for fund
	var funds []models.Fund
	require.Nil(t, json.Unmarshal(response.Data["Fund"], &funds))
	require.Len(t, funds, 1, "Number of funds in export must be 1")
	assert.Equal(t, f.Data.CreatedAt, funds[0].CreatedAt)

	// CreatedAt check for agency
	var agencies []models.Agency
	require.Nil(t, json.Unmarshal(response.Data["Agency"], &agencies))
	require.Len(t, agencies, 1, "Number of agencies in export must be 1")
	assert.Equal(t, a.Data.CreatedAt, agencies[0].CreatedAt)
}
