package v1_test

import (
	"net/http"

	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/test"
)

func (suite *TestSuiteStandard) TestRoot() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.Response
	test.DecodeResponse(suite.T(), &r, &response)

	suite.Assert().Equal("http://example.com/v1/donors", response.Links.Donors)
	suite.Assert().Equal("http://example.com/v1/projects", response.Links.Projects)
	suite.Assert().Equal("http://example.com/v1/budget-allocations", response.Links.BudgetAllocations)
	suite.Assert().Equal("http://example.com/v1/transactions", response.Links.Transactions)
	suite.Assert().Equal("http://example.com/v1/foreign-donation-reports", response.Links.ForeignDonationReports)
	suite.Assert().Equal("http://example.com/v1/dashboard", response.Links.Dashboard)
}
