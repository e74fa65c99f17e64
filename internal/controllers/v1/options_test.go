package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/ngo-ledger/backend/test"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestOptionsHeaderResources() {
	optionsHeaderTests := []struct {
		path     string
		response string
	}{
		{"http://example.com/v1", "OPTIONS, GET"},
		{"http://example.com/v1/donors", "OPTIONS, GET, POST"},
		{"http://example.com/v1/projects", "OPTIONS, GET, POST"},
		{"http://example.com/v1/budget-allocations", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions", "OPTIONS, GET, POST"},
		{"http://example.com/v1/transactions/export", "OPTIONS, GET"},
		{"http://example.com/v1/foreign-donation-reports", "OPTIONS, GET"},
		{"http://example.com/v1/dashboard/foreign-donations", "OPTIONS, GET"},
		{"http://example.com/v1/dashboard/statistics", "OPTIONS, GET"},
	}

	for _, tt := range optionsHeaderTests {
		suite.T().Run(tt.path, func(t *testing.T) {
			recorder := test.Request(t, http.MethodOptions, tt.path, "")

			assert.Equal(t, http.StatusNoContent, recorder.Code)
			assert.Equal(t, tt.response, recorder.Header().Get("allow"))
		})
	}
}

// TestOptionsHeaderDetail verifies OPTIONS requests for single resources.
func (suite *TestSuiteStandard) TestOptionsHeaderDetail() {
	donation := createTestForeignDonation(suite.T(), types.Today())
	allocation := createTestBudgetAllocation(suite.T(), v1.BudgetAllocationEditable{})
	report := getTestForeignDonationReport(suite.T(), donation.Data.ID)

	tests := []struct {
		name     string
		path     string
		status   int
		response string
	}{
		{"Donor", fmt.Sprintf("donors/%s", *donation.Data.DonorID), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Project", fmt.Sprintf("projects/%s", *donation.Data.ProjectID), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Budget allocation", fmt.Sprintf("budget-allocations/%s", allocation.Data.ID), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Budget allocation adjust", fmt.Sprintf("budget-allocations/%s/adjust", allocation.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"Transaction", fmt.Sprintf("transactions/%s", donation.Data.ID), http.StatusNoContent, "OPTIONS, GET, PATCH, DELETE"},
		{"Transaction verify", fmt.Sprintf("transactions/%s/verify", donation.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"Transaction report", fmt.Sprintf("transactions/%s/foreign-donation-report", donation.Data.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Report", fmt.Sprintf("foreign-donation-reports/%s", report.Data.ID), http.StatusNoContent, "OPTIONS, GET"},
		{"Report letter", fmt.Sprintf("foreign-donation-reports/%s/letter", report.Data.ID), http.StatusNoContent, "OPTIONS, GET, POST"},
		{"Report journal", fmt.Sprintf("foreign-donation-reports/%s/journal-publication", report.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"Report advance", fmt.Sprintf("foreign-donation-reports/%s/advance", report.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"Report force", fmt.Sprintf("foreign-donation-reports/%s/force-status", report.Data.ID), http.StatusNoContent, "OPTIONS, POST"},
		{"No donor with this ID", fmt.Sprintf("donors/%s", uuid.New()), http.StatusNotFound, ""},
		{"No report with this ID", fmt.Sprintf("foreign-donation-reports/%s/letter", uuid.New()), http.StatusNotFound, ""},
		{"Not a valid UUID", "transactions/NotParseableAsUUID", http.StatusBadRequest, ""},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodOptions, "http://example.com/v1/"+tt.path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, tt.response, r.Header().Get("allow"))
			}
		})
	}
}
