package v1_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	v1 "github.com/ngo-ledger/backend/internal/controllers/v1"
	"github.com/ngo-ledger/backend/internal/documents"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/ngo-ledger/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errGeneratorDown = errors.New("document service unavailable")

// failingGenerator fails every document generation.
type failingGenerator struct{}

func (failingGenerator) GenerateLetter(_ context.Context, _ documents.ReportContext) (string, error) {
	return "", errGeneratorDown
}

func (failingGenerator) GenerateJournalText(_ context.Context, _ documents.ReportContext) (string, error) {
	return "", errGeneratorDown
}

func (failingGenerator) Open(handle string) (io.ReadCloser, error) {
	return nil, fmt.Errorf("%w: %s", documents.ErrInvalidHandle, handle)
}

// getTestForeignDonationReport returns the report of a foreign donation,
// creating it if needed.
func getTestForeignDonationReport(t *testing.T, transactionID uuid.UUID) v1.ForeignDonationReportResponse {
	r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s/foreign-donation-report", transactionID), "")
	test.AssertHTTPStatus(t, &r, http.StatusOK)

	var response v1.ForeignDonationReportResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

// updateTestReportStatus posts a status update to the action endpoint of a report.
func updateTestReportStatus(t *testing.T, report v1.ForeignDonationReport, action string, update v1.ReportStatusUpdate, expectedStatus ...int) v1.ForeignDonationReportResponse {
	if len(expectedStatus) == 0 {
		expectedStatus = append(expectedStatus, http.StatusOK)
	}

	r := test.Request(t, http.MethodPost, fmt.Sprintf("%s/%s", report.Links.Self, action), update)
	test.AssertHTTPStatus(t, &r, expectedStatus...)

	var response v1.ForeignDonationReportResponse
	test.DecodeResponse(t, &r, &response)
	return response
}

func (suite *TestSuiteStandard) TestForeignDonationReportsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/foreign-donation-reports", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)

	var response v1.ForeignDonationReportListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(*response.Error, models.ErrGeneral.Error())
}

func (suite *TestSuiteStandard) TestForeignDonationReportsGetSingle() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID)

	tests := []struct {
		name   string
		id     string
		status int
	}{
		{"Existing report", report.Data.ID.String(), http.StatusOK},
		{"No report with this ID", uuid.New().String(), http.StatusNotFound},
		{"Invalid ID", "notaUUID", http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/foreign-donation-reports/%s", tt.id), "")
			test.AssertHTTPStatus(t, &r, tt.status)

			var response v1.ForeignDonationReportResponse
			test.DecodeResponse(t, &r, &response)
			if tt.status == http.StatusOK {
				assert.Equal(t, report.Data.ID, response.Data.ID)
				assert.Equal(t, models.ReportingPeriod, response.Data.DaysUntilDeadline)
				assert.Equal(t, models.SeverityNormal, response.Data.Severity)
				assert.False(t, response.Data.LetterGenerated)
			} else {
				assert.NotNil(t, response.Error)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestForeignDonationReportsGetFilter() {
	today := types.Today()
	normal := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), today).Data.ID)
	near := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), today.AddDays(-27)).Data.ID)
	overdue := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), today.AddDays(-40)).Data.ID)

	// Not in any list of reports since no report has been requested yet
	createTestForeignDonation(suite.T(), today)

	updateTestReportStatus(suite.T(), *normal.Data, "advance", v1.ReportStatusUpdate{Status: models.ReportSent})

	tests := []struct {
		name  string
		query string
		ids   []uuid.UUID
	}{
		{"All, closest deadline first", "", []uuid.UUID{overdue.Data.ID, near.Data.ID, normal.Data.ID}},
		{"Pending", "status=pending", []uuid.UUID{overdue.Data.ID, near.Data.ID}},
		{"Sent", "status=sent", []uuid.UUID{normal.Data.ID}},
		{"Completed", "status=completed", []uuid.UUID{}},
		{"Overdue", "severity=overdue", []uuid.UUID{overdue.Data.ID}},
		{"Near deadline", "severity=near-deadline", []uuid.UUID{near.Data.ID}},
		{"Normal", "severity=normal", []uuid.UUID{normal.Data.ID}},
		{"Limit", "limit=1", []uuid.UUID{overdue.Data.ID}},
		{"Offset", "offset=2", []uuid.UUID{normal.Data.ID}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/foreign-donation-reports?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.ForeignDonationReportListResponse
			test.DecodeResponse(t, &r, &response)

			ids := make([]uuid.UUID, 0, len(response.Data))
			for _, report := range response.Data {
				ids = append(ids, report.ID)
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	suite.T().Run("Invalid status", func(t *testing.T) {
		r := test.Request(t, http.MethodGet, "http://example.com/v1/foreign-donation-reports?status=archived", "")
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})
}

func (suite *TestSuiteStandard) TestForeignDonationReportsLetter() {
	donation := createTestForeignDonation(suite.T(), types.NewDate(2024, 1, 15))
	report := getTestForeignDonationReport(suite.T(), donation.Data.ID)

	r := test.Request(suite.T(), http.MethodGet, report.Data.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodPost, report.Data.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForeignDonationReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().True(response.Data.LetterGenerated)
	suite.Assert().Equal(models.ReportPending, response.Data.Status, "Generating the letter must not change the status")

	r = test.Request(suite.T(), http.MethodGet, report.Data.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	suite.Assert().Contains(r.Header().Get("Content-Type"), "text/plain")
	suite.Assert().Contains(r.Header().Get("Content-Disposition"), fmt.Sprintf("%s.txt", report.Data.ID))
	suite.Assert().Contains(r.Body.String(), report.Data.DonorName)
	suite.Assert().Contains(r.Body.String(), test.Organization.Name)
	suite.Assert().Contains(r.Body.String(), "15/01/2024")

	suite.T().Run("No report with this ID", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/foreign-donation-reports/%s/letter", uuid.New()), "")
		test.AssertHTTPStatus(t, &r, http.StatusNotFound)
	})
}

// TestForeignDonationReportsGeneratorFailure verifies that failures of the
// document generator are reported and do not change the report.
func (suite *TestSuiteStandard) TestForeignDonationReportsGeneratorFailure() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID)

	for _, link := range []string{report.Data.Links.Letter, report.Data.Links.JournalPublication} {
		suite.T().Run(link, func(t *testing.T) {
			r := test.RequestWithGenerator(t, failingGenerator{}, http.MethodPost, link, "")
			test.AssertHTTPStatus(t, &r, http.StatusBadGateway)

			var response v1.ForeignDonationReportResponse
			test.DecodeResponse(t, &r, &response)
			assert.Contains(t, *response.Error, errGeneratorDown.Error())
		})
	}

	r := test.Request(suite.T(), http.MethodGet, report.Data.Links.Self, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForeignDonationReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().False(response.Data.LetterGenerated)
	suite.Assert().Empty(response.Data.JournalPublicationText)
	suite.Assert().Equal(report.Data.UpdatedAt, response.Data.UpdatedAt)
}

func (suite *TestSuiteStandard) TestForeignDonationReportsJournalPublication() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID)

	r := test.Request(suite.T(), http.MethodPost, report.Data.Links.JournalPublication, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.ForeignDonationReportResponse
	test.DecodeResponse(suite.T(), &r, &response)
	suite.Assert().Contains(response.Data.JournalPublicationText, test.Organization.Name)
	suite.Assert().Equal(models.ReportPending, response.Data.Status)
}

// TestForeignDonationReportsLifecycle walks a report from pending to completed.
func (suite *TestSuiteStandard) TestForeignDonationReportsLifecycle() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID).Data

	sent := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{
		Status: models.ReportSent,
		Note:   ptr("Sent by registered mail"),
	})
	suite.Require().NotNil(sent.Data.SentDate)
	suite.Assert().Equal(types.Today(), *sent.Data.SentDate)
	suite.Assert().Equal("Sent by registered mail", sent.Data.Note)

	back := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{Status: models.ReportPending}, http.StatusConflict)
	suite.Assert().Contains(*back.Error, "current status is 'sent'")

	invalid := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{Status: "archived"}, http.StatusBadRequest)
	suite.Assert().Contains(invalid.Fields, "status")

	missing := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{Status: models.ReportCompleted}, http.StatusBadRequest)
	suite.Assert().Len(missing.Fields, 4)
	for _, field := range []string{"letterGenerated", "journalPublicationText", "journalPublicationReference", "journalPublicationDate"} {
		suite.Assert().Contains(missing.Fields, field)
	}

	r := test.Request(suite.T(), http.MethodPost, report.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, report.Links.JournalPublication, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// Still missing the publication metadata
	missing = updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{Status: models.ReportCompleted}, http.StatusBadRequest)
	suite.Assert().Len(missing.Fields, 2)

	acknowledged := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{
		Status:                      models.ReportAcknowledged,
		JournalPublicationReference: ptr("La Presse, p. 12"),
	})
	suite.Assert().Equal(models.ReportAcknowledged, acknowledged.Data.Status)

	completed := updateTestReportStatus(suite.T(), *report, "advance", v1.ReportStatusUpdate{
		Status:                 models.ReportCompleted,
		JournalPublicationDate: ptr(types.Today()),
	})
	suite.Assert().Equal(models.ReportCompleted, completed.Data.Status)
	suite.Assert().Equal(models.SeverityNone, completed.Data.Severity)
	suite.Assert().Equal("La Presse, p. 12", completed.Data.JournalPublicationReference)
	suite.Assert().Equal(*sent.Data.SentDate, *completed.Data.SentDate, "The sent date must not change")

	suite.T().Run("No report with this ID", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/foreign-donation-reports/%s/advance", uuid.New()), v1.ReportStatusUpdate{Status: models.ReportSent})
		test.AssertHTTPStatus(t, &r, http.StatusNotFound)
	})

	suite.T().Run("Broken body", func(t *testing.T) {
		r := test.Request(t, http.MethodPost, fmt.Sprintf("%s/advance", report.Links.Self), `{ "status": 3 }`)
		test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
	})
}

// TestForeignDonationReportsForceStatus verifies that forced transitions
// ignore the order of statuses and the requirements for completion.
func (suite *TestSuiteStandard) TestForeignDonationReportsForceStatus() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID).Data

	completed := updateTestReportStatus(suite.T(), *report, "force-status", v1.ReportStatusUpdate{Status: models.ReportCompleted})
	suite.Assert().Equal(models.ReportCompleted, completed.Data.Status)
	suite.Assert().False(completed.Data.LetterGenerated)

	pending := updateTestReportStatus(suite.T(), *report, "force-status", v1.ReportStatusUpdate{Status: models.ReportPending})
	suite.Assert().Equal(models.ReportPending, pending.Data.Status)

	updateTestReportStatus(suite.T(), *report, "force-status", v1.ReportStatusUpdate{Status: "lost"}, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestForeignDonationReportsLetterMissingFile() {
	report := getTestForeignDonationReport(suite.T(), createTestForeignDonation(suite.T(), types.Today()).Data.ID)

	r := test.Request(suite.T(), http.MethodPost, report.Data.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	// The failing generator does not know any letters
	r = test.RequestWithGenerator(suite.T(), failingGenerator{}, http.MethodGet, report.Data.Links.Letter, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	var response struct {
		Error string `json:"error"`
	}
	test.DecodeResponse(suite.T(), &r, &response)
	require.Contains(suite.T(), response.Error, documents.ErrInvalidHandle.Error())
}
