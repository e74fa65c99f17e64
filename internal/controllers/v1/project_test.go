package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProject(t *testing.T, project v1.ProjectEditable, expectedStatus ...int) v1.ProjectResponse {
	if project.Name == "" {
		project.Name = uuid.New().String()
	}

	body := []v1.ProjectEditable{
		project,
	}

	// Default to 201 Created as expected status
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusCreated)
	}

	r := test.Request(t, http.MethodPost, "http://example.com/v1/projects", body)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var p v1.ProjectCreateResponse
	test.DecodeResponse(t, &r, &p)

	if r.Code == http.StatusCreated {
		return p.Data[0]
	}

	return v1.ProjectResponse{}
}

// TestProjectsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestProjectsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestProject(t, v1.ProjectEditable{Name: "School garden"}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/projects", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.ProjectListResponse
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

func (suite *TestSuiteStandard) TestProjectsGetSingle() {
	p := createTestProject(suite.T(), v1.ProjectEditable{})

	tests := []struct {
		name   string
		id     string
		status int
		method string
	}{
		{"GET Existing project", p.Data.ID.String(), http.StatusOK, http.MethodGet},
		{"GET No project with this ID", uuid.New().String(), http.StatusNotFound, http.MethodGet},
		{"GET Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodGet},
		{"PATCH No project with this ID", uuid.New().String(), http.StatusNotFound, http.MethodPatch},
		{"PATCH Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodPatch},
		{"DELETE No project with this ID", uuid.New().String(), http.StatusNotFound, http.MethodDelete},
		{"DELETE Invalid ID (string)", "notaUUID", http.StatusBadRequest, http.MethodDelete},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, tt.method, fmt.Sprintf("http://example.com/v1/projects/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsGetFilter() {
	createTestProject(suite.T(), v1.ProjectEditable{Name: "School garden"})
	createTestProject(suite.T(), v1.ProjectEditable{Name: "Water wells"})
	createTestProject(suite.T(), v1.ProjectEditable{Name: "Garden tools"})

	tests := []struct {
		name  string
		query string
		len   int
	}{
		{"All", "", 3},
		{"Name contains", "name=garden", 2},
		{"Name glob", "name=water*", 1},
		{"Name glob suffix", "name=*garden", 1},
		{"Limit", "limit=1", 1},
		{"Offset", "offset=2", 1},
		{"Offset behind the end", "offset=5", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			var re v1.ProjectListResponse
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/projects?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)
			test.DecodeResponse(t, &r, &re)

			assert.Equal(t, tt.len, len(re.Data), "Request ID: %s", r.Result().Header.Get("x-request-id"))
		})
	}
}

// TestProjectsCreateWithBudget verifies that a project created with a
// budget gets its initial budget allocation.
func (suite *TestSuiteStandard) TestProjectsCreateWithBudget() {
	p := createTestProject(suite.T(), v1.ProjectEditable{
		Name:   "School garden",
		Budget: decimal.NewFromInt(12000),
	})

	r := test.Request(suite.T(), http.MethodGet, p.Data.Links.BudgetAllocations, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var allocations v1.BudgetAllocationListResponse
	test.DecodeResponse(suite.T(), &r, &allocations)

	require.Len(suite.T(), allocations.Data, 1)
	suite.Assert().True(decimal.NewFromInt(12000).Equal(allocations.Data[0].AllocatedAmount))
	suite.Assert().True(allocations.Data[0].UsedAmount.IsZero())
	suite.Assert().Equal(p.Data.ID, allocations.Data[0].ProjectID)
}

func (suite *TestSuiteStandard) TestProjectsCreateFails() {
	createTestProject(suite.T(), v1.ProjectEditable{Name: "School garden"})

	tests := []struct {
		name    string
		project v1.ProjectEditable
	}{
		{"Duplicate name", v1.ProjectEditable{Name: "School garden"}},
		{"Empty name", v1.ProjectEditable{Name: " "}},
		{"Negative budget", v1.ProjectEditable{Name: "Water wells", Budget: decimal.NewFromInt(-1)}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/projects", []v1.ProjectEditable{tt.project})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var response v1.ProjectCreateResponse
			test.DecodeResponse(t, &r, &response)
			require.Len(t, response.Data, 1)
			assert.NotNil(t, response.Data[0].Error)
		})
	}
}

func (suite *TestSuiteStandard) TestProjectsUpdate() {
	createTestProject(suite.T(), v1.ProjectEditable{Name: "Water wells"})
	p := createTestProject(suite.T(), v1.ProjectEditable{
		Name:   "School garden",
		Budget: decimal.NewFromInt(500),
	})

	r := test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{
		"note":   "Run with the parents' association",
		"budget": "900",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ProjectResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal("School garden", response.Data.Name)
	suite.Assert().Equal("Run with the parents' association", response.Data.Note)
	suite.Assert().True(decimal.NewFromInt(500).Equal(response.Data.Budget), "The budget must not change on updates")

	r = test.Request(suite.T(), http.MethodPatch, p.Data.Links.Self, map[string]any{"name": "Water wells"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Equal(models.ErrProjectNameNotUnique.Error(), *response.Error)
}

func (suite *TestSuiteStandard) TestProjectsDelete() {
	p := createTestProject(suite.T(), v1.ProjectEditable{})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestProjectsDeleteReferenced verifies that projects with budget
// allocations cannot be deleted.
func (suite *TestSuiteStandard) TestProjectsDeleteReferenced() {
	p := createTestProject(suite.T(), v1.ProjectEditable{Budget: decimal.NewFromInt(100)})

	r := test.Request(suite.T(), http.MethodDelete, p.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusConflict)
}
