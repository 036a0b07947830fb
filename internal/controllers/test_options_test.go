package controllers_test

import (
	"net/http"
	"testing"

	"github.com/openfiscal/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/api", "OPTIONS, GET"},
		{"http://example.com/api/agencies", "OPTIONS, GET"},
		{"http://example.com/api/agency", "OPTIONS, POST"},
		{"http://example.com/api/allocation", "OPTIONS, POST"},
		{"http://example.com/api/allocations", "OPTIONS, GET"},
		{"http://example.com/api/disbursement", "OPTIONS, POST"},
		{"http://example.com/api/disbursements", "OPTIONS, GET"},
		{"http://example.com/api/export", "OPTIONS, GET"},
		{"http://example.com/api/fund", "OPTIONS, POST"},
		{"http://example.com/api/funds", "OPTIONS, GET"},
		{"http://example.com/api/program", "OPTIONS, POST"},
		{"http://example.com/api/programs", "OPTIONS, GET"},
		{"http://example.com/api/summary", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(suite.T(), http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, recorder.Header().Get("allow"), tt.response)
		})
	}
}
