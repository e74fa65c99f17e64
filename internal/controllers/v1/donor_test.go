package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/ngo-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestDonor(t *testing.T, donor v1.DonorEditable, expectedStatus ...int) v1.DonorResponse {
	if donor.Name == "" {
		donor.Name = uuid.New().String()
	}

	body := []v1.DonorEditable{
		donor,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/donors", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var d v1.DonorCreateResponse
	test.DecodeResponse(t, &r, &d)

	if r.Code == http.StatusCreated {
		return d.Data[0]
	}

	return v1.DonorResponse{}
}

// TestDonorsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestDonorsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestDonor(t, v1.DonorEditable{Name: "Fondation Horizon"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/donors", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.DonorListResponse
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

// TestDonorsGetSingle verifies that requests for the resource endpoints are
// handled correctly.
func (suite *TestSuiteStandard) TestDonorsGetSingle() {
	d := createTestDonor(suite.T(), v1.DonorEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing donor", d.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No donor with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (positive number)", "23", http.StatusBadRequest, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No donor with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE No donor with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/donors/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

// TestDonorsGetTotalDonations verifies that a single donor contains the sum
// of their verified donations.
func (suite *TestSuiteStandard) TestDonorsGetTotalDonations() {
	donor := createTestDonor(suite.T(), v1.DonorEditable{Name: "Fondation Horizon"})
	project := createTestProject(suite.T(), v1.ProjectEditable{})

	for _, amount := range []int64{200, 150, 1000} {
		createTestTransaction(suite.T(), v1.TransactionEditable{
			Type:      models.TypeIncome,
			Category:  models.CategoryDonation,
			Amount:    decimal.NewFromInt(amount),
			DonorID:   &donor.Data.ID,
			ProjectID: &project.Data.ID,
		})
	}

	// Only the first two donations are verified
	list := getTestTransactions(suite.T(), fmt.Sprintf("donor=%s", donor.Data.ID))
	for _, transaction := range list.Data {
		if !transaction.Amount.Equal(decimal.NewFromInt(1000)) {
			verifyTestTransaction(suite.T(), transaction.ID, v1.TransactionVerification{Decision: models.DecisionApprove})
		}
	}

	r := test.Request(suite.T(), http.MethodGet, donor.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data.TotalDonations)
	suite.Assert().True(decimal.NewFromInt(350).Equal(*response.Data.TotalDonations), "Total donations are %s", response.Data.TotalDonations)
	suite.Assert().Equal(models.DonorExternal, response.Data.Classification)
}

func (suite *TestSuiteStandard) TestDonorsGetFilter() {
	createTestDonor(suite.T(), v1.DonorEditable{
		Name:  "Fondation Horizon",
		Email: "contact@horizon.example",
		TaxID: "1234567/A",
	})

	createTestDonor(suite.T(), v1.DonorEditable{
		Name:        "Anonymous supporter",
		IsAnonymous: true,
	})

	createTestDonor(suite.T(), v1.DonorEditable{
		Name:     "Leila Trabelsi",
		IsMember: true,
		MemberID: "M-0042",
	})

	createTestDonor(suite.T(), v1.DonorEditable{
		Name:       "Staff collection",
		IsInternal: true,
		Archived:   true,
	})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 4},
		{"Name contains", "name=horizon", 1},
		{"Name glob", "name=*o*", 3},
		{"Name glob no match", "name=x*", 0},
		{"Email", "email=contact@horizon.example", 1},
		{"Tax ID", "taxId=1234567/A", 1},
		{"Anonymous", "isAnonymous=true", 1},
		{"Not anonymous", "isAnonymous=false", 3},
		{"Archived", "archived=true", 1},
		{"Member", "classification=member", 1},
		{"Internal", "classification=internal", 1},
		{"External", "classification=external", 2},
		{"Offset", "offset=3", 1},
		{"Limit", "limit=2", 2},
		{"Limit and offset", "limit=2&offset=3", 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.DonorListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/donors?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
			assert.Equal(t, tt.len, re.Pagination.Count)
		})
	}
}

func (suite *TestSuiteStandard) TestDonorsGetFilterErrors() {
	tests := []struct {
		name  string
		query string
	}{
		{"Invalid classification", "classification=partner"},
		{"Invalid offset", "offset=-1"},
		{"Invalid boolean", "archived=maybe"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/donors?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestDonorsCreate() {
	tests := []struct {
		name     string
		donors   []v1.DonorEditable
		status   int
		failures int
	}{
		{
			"All successful",
			[]v1.DonorEditable{
				{Name: "Fondation Horizon"},
				{Name: "Leila Trabelsi", IsMember: true, MemberID: "M-0042"},
			},
			http.StatusCreated,
			0,
		},
		{
			"Second fails",
			[]v1.DonorEditable{
				{Name: "Fondation Horizon"},
				{Name: "Leila Trabelsi", IsMember: true},
			},
			http.StatusBadRequest,
			1,
		},
		{
			"Member and internal",
			[]v1.DonorEditable{
				{Name: "Confused", IsMember: true, IsInternal: true, MemberID: "M-1"},
			},
			http.StatusBadRequest,
			1,
		},
		{
			"Empty name",
			[]v1.DonorEditable{
				{Name: "   "},
			},
			http.StatusBadRequest,
			1,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/donors", tt.donors)
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.DonorCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, len(tt.donors))

			failures := 0
			for _, d := range response.Data {
				if d.Error != nil {
					failures++
					assert.Nil(t, d.Data)
				}
			}
			assert.Equal(t, tt.failures, failures)
		})
	}
}

func (suite *TestSuiteStandard) TestDonorsCreateBrokenBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/donors", `[{ "name": 2 }]`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestDonorsUpdate() {
	d := createTestDonor(suite.T(), v1.DonorEditable{
		Name:    "Fondation Horizon",
		Address: "12 Rue de Marseille, Tunis",
	})

	tests := []struct {
		name   string
		body   any
		status int
		check  func(t *testing.T, donor v1.Donor)
	}{
		{
			"Only note",
			map[string]any{"note": "Yearly supporter"},
			http.StatusOK,
			func(t *testing.T, donor v1.Donor) {
				assert.Equal(t, "Yearly supporter", donor.Note)
				assert.Equal(t, "Fondation Horizon", donor.Name, "Fields not in the body must not change")
				assert.Equal(t, "12 Rue de Marseille, Tunis", donor.Address)
			},
		},
		{
			"Becomes member",
			map[string]any{"isMember": true, "memberId": "M-0100"},
			http.StatusOK,
			func(t *testing.T, donor v1.Donor) {
				assert.Equal(t, models.DonorMember, donor.Classification)
			},
		},
		{
			"Internal and member",
			map[string]any{"isInternal": true},
			http.StatusBadRequest,
			nil,
		},
		{
			"Empty name",
			map[string]any{"name": ""},
			http.StatusBadRequest,
			nil,
		},
		{
			"Broken body",
			`{ "name": 2 }`,
			http.StatusBadRequest,
			nil,
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, d.Data.Links.Self, tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.check != nil {
				var response v1.DonorResponse
				test.DecodeResponse(t, &r, &response)
				tt.check(t, *response.Data)
			}
		})
	}
}

// TestDonorsUpdateWithReports verifies that donors with foreign donation
// reports keep their classification.
func (suite *TestSuiteStandard) TestDonorsUpdateWithReports() {
	donation := createTestForeignDonation(suite.T(), types.Today())
	getTestForeignDonationReport(suite.T(), donation.Data.ID)

	url := fmt.Sprintf("http://example.com/v1/donors/%s", *donation.Data.DonorID)

	r := test.Request(suite.T(), http.MethodPatch, url, map[string]any{"isMember": true, "memberId": "M-0200"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"isInternal": true})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	r = test.Request(suite.T(), http.MethodPatch, url, map[string]any{"note": "Yearly supporter"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.DonorResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.DonorExternal, response.Data.Classification)
	suite.Assert().Equal("Yearly supporter", response.Data.Note)
}

func (suite *TestSuiteStandard) TestDonorsDelete() {
	d := createTestDonor(suite.T(), v1.DonorEditable{})

	r := test.Request(suite.T(), http.MethodDelete, d.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, d.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestDonorsDeleteReferenced verifies that donors with transactions cannot be deleted.
func (suite *TestSuiteStandard) TestDonorsDeleteReferenced() {
	donation := createTestForeignDonation(suite.T(), types.Today())

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/donors/%s", *donation.Data.DonorID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrStillReferenced.Error(), response.Error)
}
