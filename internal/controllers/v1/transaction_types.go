package v1

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	ledger_uuid "github.com/ngo-ledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Type     models.TransactionType `json:"type" example:"income"`       // Income or expense
	Category models.Category        `json:"category" example:"donation"` // Category. Must be valid for the type

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"1500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Description        string     `json:"description" example:"Support for the school garden"`               // Description
	Date               types.Date `json:"date" example:"2024-03-04"`                                         // Date of the transaction. Defaults to today
	ReferenceNumber    string     `json:"referenceNumber" example:"VIR-2024-0113" default:""`                // Reference of the receipt or bank statement
	ProjectID          *uuid.UUID `json:"projectId" example:"1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"`          // ID of the project
	DonorID            *uuid.UUID `json:"donorId" example:"c7b3e1f0-4a8e-4c5f-9ad0-8e2f4a6d4b55"`            // ID of the donor. Required for donations, ignored for membership fees
	BudgetAllocationID *uuid.UUID `json:"budgetAllocationId" example:"d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b"` // ID of the budget allocation. Only for expenses
	RecipientName      string     `json:"recipientName" example:"Pépinière du Lac" default:""`               // Recipient of an expense
	RecipientNotes     string     `json:"recipientNotes" example:"Invoice 2024/77" default:""`               // Notes on the recipient of an expense
	IsProjectWide      bool       `json:"isProjectWide" example:"false" default:"false"`                     // Does the expense apply to the whole project? Requires a project and a budget allocation for verification
	Document           string     `json:"document" example:"receipts/2024/0113.pdf" default:""`              // Reference to the attached document
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Type:               editable.Type,
		Category:           editable.Category,
		Amount:             editable.Amount,
		Description:        editable.Description,
		Date:               editable.Date,
		ReferenceNumber:    editable.ReferenceNumber,
		ProjectID:          editable.ProjectID,
		DonorID:            editable.DonorID,
		BudgetAllocationID: editable.BudgetAllocationID,
		RecipientName:      editable.RecipientName,
		RecipientNotes:     editable.RecipientNotes,
		IsProjectWide:      editable.IsProjectWide,
		Document:           editable.Document,
	}
}

type TransactionLinks struct {
	Self                  string `json:"self" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673"`                                          // The transaction itself
	Verify                string `json:"verify" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/verify"`                                 // Endpoint to verify the transaction
	ForeignDonationReport string `json:"foreignDonationReport" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/foreign-donation-report"` // The foreign donation report. Only set for foreign donations
}

// Transaction is the API representation of a Transaction.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Status            models.TransactionStatus `json:"status" example:"pending"`                           // Verification status
	ReviewerID        string                   `json:"reviewerId" example:"treasurer"`                     // Who verified or rejected the transaction
	VerifiedAt        *time.Time               `json:"verifiedAt" example:"2024-03-06T09:12:44.491514Z"`   // When the transaction was verified or rejected
	VerificationNotes string                   `json:"verificationNotes" example:"Checked bank statement"` // Notes of the reviewer
	IsForeignDonation bool                     `json:"isForeignDonation" example:"true"`                   // Is the transaction a foreign donation that needs to be disclosed?
	Links             TransactionLinks         `json:"links"`
}

// newTransaction returns the API representation of the resource.
//
// The donor of the transaction must be loaded.
func newTransaction(c *gin.Context, model models.Transaction) Transaction {
	url := c.GetString(string(models.DBContextURL))

	t := Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Type:               model.Type,
			Category:           model.Category,
			Amount:             model.Amount,
			Description:        model.Description,
			Date:               model.Date,
			ReferenceNumber:    model.ReferenceNumber,
			ProjectID:          model.ProjectID,
			DonorID:            model.DonorID,
			BudgetAllocationID: model.BudgetAllocationID,
			RecipientName:      model.RecipientName,
			RecipientNotes:     model.RecipientNotes,
			IsProjectWide:      model.IsProjectWide,
			Document:           model.Document,
		},
		Status:            model.Status,
		ReviewerID:        model.ReviewerID,
		VerifiedAt:        model.VerifiedAt,
		VerificationNotes: model.VerificationNotes,
		IsForeignDonation: models.IsForeignDonation(model),
		Links: TransactionLinks{
			Self:   fmt.Sprintf("%s/v1/transactions/%s", url, model.ID),
			Verify: fmt.Sprintf("%s/v1/transactions/%s/verify", url, model.ID),
		},
	}

	if t.IsForeignDonation {
		t.Links.ForeignDonationReport = fmt.Sprintf("%s/v1/transactions/%s/foreign-donation-report", url, model.ID)
	}

	return t
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionCreateResponse struct {
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []TransactionResponse `json:"data"`                                                          // List of created Transactions
}

func (t *TransactionCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	t.Data = append(t.Data, TransactionResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if creation was successful
}

// TransactionVerification is the decision of a reviewer on a pending transaction.
type TransactionVerification struct {
	Decision                  models.Decision `json:"decision" example:"approve"`                                        // Approve or reject
	ReviewerID                string          `json:"reviewerId" example:"treasurer"`                                    // Who takes the decision
	Notes                     string          `json:"notes" example:"Checked bank statement" default:""`                 // Notes on the decision
	BudgetAllocationID        *uuid.UUID      `json:"budgetAllocationId" example:"d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b"` // Budget allocation to consume for expenses that do not reference one yet
	OverrideInsufficientFunds bool            `json:"overrideInsufficientFunds" example:"false" default:"false"`         // Approve even if the budget allocation does not have enough remaining funds
}

func (v TransactionVerification) model() models.Verification {
	return models.Verification{
		Decision:           v.Decision,
		ReviewerID:         v.ReviewerID,
		Notes:              v.Notes,
		BudgetAllocationID: v.BudgetAllocationID,
	}
}

type TransactionVerificationResponse struct {
	Error   *string                          `json:"error" example:"the budget allocation does not have enough remaining funds"` // The error, if any occurred
	Data    *Transaction                     `json:"data"`                                                                       // The verified transaction
	Warning *models.InsufficientFundsWarning `json:"warning"`                                                                    // Set if the budget allocation was overdrawn, or would be overdrawn without an override
}

type TransactionQueryFilter struct {
	FromDate           types.Date               `form:"fromDate" filterField:"false"`          // From this date
	UntilDate          types.Date               `form:"untilDate" filterField:"false"`         // Until this date
	Amount             decimal.Decimal          `form:"amount"`                                // Exact amount
	AmountLessOrEqual  decimal.Decimal          `form:"amountLessOrEqual" filterField:"false"` // Amount less than or equal to this
	AmountMoreOrEqual  decimal.Decimal          `form:"amountMoreOrEqual" filterField:"false"` // Amount more than or equal to this
	Description        string                   `form:"description" filterField:"false"`       // Glob pattern the description must match. Case insensitive
	Type               models.TransactionType   `form:"type"`                                  // Income or expense
	Category           models.Category          `form:"category"`                              // Category
	Status             models.TransactionStatus `form:"status"`                                // Verification status
	ProjectID          ledger_uuid.UUID         `form:"project"`                               // ID of the project
	DonorID            ledger_uuid.UUID         `form:"donor"`                                 // ID of the donor
	BudgetAllocationID ledger_uuid.UUID         `form:"budgetAllocation"`                      // ID of the budget allocation
	IsProjectWide      bool                     `form:"isProjectWide"`                         // Is the expense project-wide?
	ForeignDonation    bool                     `form:"foreignDonation" filterField:"false"`   // Is the transaction a foreign donation?
	Offset             uint                     `form:"offset" filterField:"false"`            // The offset of the first Transaction returned. Defaults to 0.
	Limit              int                      `form:"limit" filterField:"false"`             // Maximum number of transactions to return. Defaults to 50.
}

func (f TransactionQueryFilter) model() models.Transaction {
	// This does not set the string, date and amount range fields since
	// they are handled in the controller function
	return models.Transaction{
		Amount:             f.Amount,
		Type:               f.Type,
		Category:           f.Category,
		Status:             f.Status,
		ProjectID:          f.ProjectID.Ptr(),
		DonorID:            f.DonorID.Ptr(),
		BudgetAllocationID: f.BudgetAllocationID.Ptr(),
		IsProjectWide:      f.IsProjectWide,
	}
}
