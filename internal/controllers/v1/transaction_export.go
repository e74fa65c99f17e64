package v1

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
)

var exportHeader = []string{
	"id",
	"date",
	"type",
	"category",
	"amount",
	"description",
	"referenceNumber",
	"project",
	"donor",
	"recipient",
	"status",
	"reviewer",
	"verifiedAt",
	"foreignDonation",
}

// exportRecord returns the CSV record for a transaction.
//
// Project and donor must be loaded.
func exportRecord(t models.Transaction) []string {
	var verifiedAt string
	if t.VerifiedAt != nil {
		verifiedAt = t.VerifiedAt.Format(time.RFC3339)
	}

	return []string{
		t.ID.String(),
		t.Date.String(),
		string(t.Type),
		string(t.Category),
		t.Amount.String(),
		t.Description,
		t.ReferenceNumber,
		t.Project.Name,
		t.Donor.Name,
		t.RecipientName,
		string(t.Status),
		t.ReviewerID,
		verifiedAt,
		strconv.FormatBool(models.IsForeignDonation(t)),
	}
}

// @Summary		Export transactions
// @Description	Exports all transactions matching the filter as CSV. Offset and limit are ignored.
// @Tags			Transactions
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Router			/v1/transactions/export [get]
// @Param			fromDate			query	string						false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate			query	string						false	"Transactions before and at this date, YYYY-MM-DD"
// @Param			description			query	string						false	"Glob pattern for the description. Case insensitive"
// @Param			type				query	models.TransactionType		false	"Filter by type"
// @Param			category			query	models.Category				false	"Filter by category"
// @Param			status				query	models.TransactionStatus	false	"Filter by verification status"
// @Param			project				query	string						false	"Filter by project ID"
// @Param			donor				query	string						false	"Filter by donor ID"
// @Param			foreignDonation		query	bool						false	"Is the transaction a foreign donation?"
func ExportTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		c.JSON(http.StatusBadRequest, newHTTPError(err))
		return
	}

	transactions, err := findTransactions(c, filter)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"transactions-%s.csv\"", types.Today()))
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	records := make([][]string, 0, len(transactions)+1)
	records = append(records, exportHeader)
	for _, t := range transactions {
		records = append(records, exportRecord(t))
	}

	// The status is already sent, errors can only be logged
	if err := w.WriteAll(records); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Err(err).Msg("transaction export")
	}
}
