package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

type ForeignDonationReportLinks struct {
	Self               string `json:"self" example:"https://example.com/api/v1/foreign-donation-reports/5ab2b5f5-7f67-4f61-8d0e-1c2f3e4d5a6b"`                                   // The report itself
	Transaction        string `json:"transaction" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                                        // The foreign donation
	Letter             string `json:"letter" example:"https://example.com/api/v1/foreign-donation-reports/5ab2b5f5-7f67-4f61-8d0e-1c2f3e4d5a6b/letter"`                          // Generate (POST) or download (GET) the letter
	JournalPublication string `json:"journalPublication" example:"https://example.com/api/v1/foreign-donation-reports/5ab2b5f5-7f67-4f61-8d0e-1c2f3e4d5a6b/journal-publication"` // Generate the journal publication text
	Advance            string `json:"advance" example:"https://example.com/api/v1/foreign-donation-reports/5ab2b5f5-7f67-4f61-8d0e-1c2f3e4d5a6b/advance"`                        // Advance the status
}

// ForeignDonationReport is the API representation of a ForeignDonationReport.
type ForeignDonationReport struct {
	models.DefaultModel
	TransactionID               uuid.UUID           `json:"transactionId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`              // ID of the foreign donation
	Status                      models.ReportStatus `json:"status" example:"pending"`                                                  // Status of the disclosure
	ReportingDeadline           types.Date          `json:"reportingDeadline" example:"2024-04-03"`                                    // The disclosure must be completed until this date
	DaysUntilDeadline           int                 `json:"daysUntilDeadline" example:"12"`                                            // Days until the deadline. Negative when overdue
	Severity                    models.Severity     `json:"severity" example:"normal"`                                                 // How urgent the report is. Empty for completed reports
	Amount                      decimal.Decimal     `json:"amount" example:"1500"`                                                     // Amount of the donation
	DonorName                   string              `json:"donorName" example:"Fondation Horizon"`                                     // Name of the donor
	LetterGenerated             bool                `json:"letterGenerated" example:"true"`                                            // Has the letter been generated?
	JournalPublicationText      string              `json:"journalPublicationText" example:"Conformément à la loi, l'association ..."` // Text for the journal publication
	JournalPublicationReference string              `json:"journalPublicationReference" example:"La Presse, p. 12"`                    // Where the text was published
	JournalPublicationDate      *types.Date         `json:"journalPublicationDate" example:"2024-03-20"`                               // When the text was published
	SentDate                    *types.Date         `json:"sentDate" example:"2024-03-08"`                                             // When the letter was sent
	Note                        string              `json:"note" example:"Sent by registered mail"`                                    // A note

	Links ForeignDonationReportLinks `json:"links"`
}

// datePtr returns nil for the zero date.
func datePtr(d types.Date) *types.Date {
	if d.IsZero() {
		return nil
	}
	return &d
}

// newForeignDonationReport returns the API representation of the resource.
//
// The transaction and its donor must be loaded.
func newForeignDonationReport(c *gin.Context, model models.ForeignDonationReport) ForeignDonationReport {
	url := c.GetString(string(models.DBContextURL))
	today := types.Today()

	return ForeignDonationReport{
		DefaultModel:                model.DefaultModel,
		TransactionID:               model.TransactionID,
		Status:                      model.Status,
		ReportingDeadline:           model.ReportingDeadline,
		DaysUntilDeadline:           model.DaysUntilDeadline(today),
		Severity:                    model.Severity(today),
		Amount:                      model.Transaction.Amount,
		DonorName:                   model.Transaction.Donor.Name,
		LetterGenerated:             model.LetterGenerated,
		JournalPublicationText:      model.JournalPublicationText,
		JournalPublicationReference: model.JournalPublicationReference,
		JournalPublicationDate:      datePtr(model.JournalPublicationDate),
		SentDate:                    datePtr(model.SentDate),
		Note:                        model.Note,
		Links: ForeignDonationReportLinks{
			Self:               fmt.Sprintf("%s/v1/foreign-donation-reports/%s", url, model.ID),
			Transaction:        fmt.Sprintf("%s/v1/transactions/%s", url, model.TransactionID),
			Letter:             fmt.Sprintf("%s/v1/foreign-donation-reports/%s/letter", url, model.ID),
			JournalPublication: fmt.Sprintf("%s/v1/foreign-donation-reports/%s/journal-publication", url, model.ID),
			Advance:            fmt.Sprintf("%s/v1/foreign-donation-reports/%s/advance", url, model.ID),
		},
	}
}

type ForeignDonationReportListResponse struct {
	Data       []ForeignDonationReport `json:"data"`                                                          // List of reports
	Error      *string                 `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination             `json:"pagination"`                                                    // Pagination information
}

type ForeignDonationReportResponse struct {
	Error  *string                `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Fields map[string]string      `json:"fields,omitempty"`                                              // Violated constraints per field, for validation errors
	Data   *ForeignDonationReport `json:"data"`                                                          // The report
}

// newForeignDonationReportError returns the response for an error.
func newForeignDonationReportError(err error) ForeignDonationReportResponse {
	e := newHTTPError(err)
	return ForeignDonationReportResponse{
		Error:  &e.Error,
		Fields: e.Fields,
	}
}

// ReportStatusUpdate sets the status of a report and its publication metadata.
// Fields that are not set are not changed.
type ReportStatusUpdate struct {
	Status                      models.ReportStatus `json:"status" example:"completed"`                                 // The new status
	JournalPublicationText      *string             `json:"journalPublicationText" example:"Conformément à la loi ..."` // Text for the journal publication
	JournalPublicationReference *string             `json:"journalPublicationReference" example:"La Presse, p. 12"`     // Where the text was published
	JournalPublicationDate      *types.Date         `json:"journalPublicationDate" example:"2024-03-20"`                // When the text was published
	Note                        *string             `json:"note" example:"Acknowledged by phone"`                       // A note
}

func (u ReportStatusUpdate) model() models.StatusUpdate {
	return models.StatusUpdate{
		Status:                      u.Status,
		JournalPublicationText:      u.JournalPublicationText,
		JournalPublicationReference: u.JournalPublicationReference,
		JournalPublicationDate:      u.JournalPublicationDate,
		Note:                        u.Note,
	}
}

type ForeignDonationReportQueryFilter struct {
	Status   models.ReportStatus `form:"status"`                       // Status of the report
	Severity models.Severity     `form:"severity" filterField:"false"` // Severity of the report
	Offset   uint                `form:"offset" filterField:"false"`   // The offset of the first report returned. Defaults to 0.
	Limit    int                 `form:"limit" filterField:"false"`    // Maximum number of reports to return. Defaults to 50.
}
