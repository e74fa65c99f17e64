package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
	"golang.org/x/exp/slices"
)

// RegisterTransactionRoutes registers the routes for transactions with
// the RouterGroup that is passed.
func RegisterTransactionRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsTransactions)
		r.GET("", GetTransactions)
		r.POST("", CreateTransactions)
		r.OPTIONS("/export", OptionsTransactionExport)
		r.GET("/export", ExportTransactions)
	}

	// Transaction with ID
	{
		r.OPTIONS("/:id", OptionsTransactionDetail)
		r.GET("/:id", GetTransaction)
		r.PATCH("/:id", UpdateTransaction)
		r.DELETE("/:id", DeleteTransaction)
		r.OPTIONS("/:id/verify", OptionsTransactionVerify)
		r.POST("/:id/verify", VerifyTransaction)
		r.OPTIONS("/:id/foreign-donation-report", OptionsTransactionForeignDonationReport)
		r.GET("/:id/foreign-donation-report", GetTransactionForeignDonationReport)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/transactions/export [options]
func OptionsTransactionExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [options]
func OptionsTransactionDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/verify [options]
func OptionsTransactionVerify(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{}, httputil.OptionsPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/foreign-donation-report [options]
func OptionsTransactionForeignDonationReport(c *gin.Context) {
	resourceOptionsDetail(c, models.Transaction{}, httputil.OptionsGet)
}

// @Summary		Get transaction
// @Description	Returns a specific transaction
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionResponse
// @Failure		400	{object}	TransactionResponse
// @Failure		404	{object}	TransactionResponse
// @Failure		500	{object}	TransactionResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [get]
func GetTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := models.GetTransaction(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// findTransactions returns all transactions matching the filter, newest first.
func findTransactions(c *gin.Context, filter TransactionQueryFilter) ([]models.Transaction, error) {
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	if filter.Type != "" && filter.Type != models.TypeIncome && filter.Type != models.TypeExpense {
		return nil, errTransactionTypeInvalid
	}

	if filter.Status != "" && !slices.Contains([]models.TransactionStatus{models.StatusPending, models.StatusVerified, models.StatusRejected}, filter.Status) {
		return nil, errTransactionStatusInvalid
	}

	model := filter.model()
	q := models.DB.
		Preload("Donor").
		Preload("Project").
		Order("transactions.date DESC, transactions.created_at DESC").
		Where(&model, queryFields...)

	if !filter.FromDate.IsZero() {
		q = q.Where("transactions.date >= ?", filter.FromDate)
	}

	if !filter.UntilDate.IsZero() {
		q = q.Where("transactions.date <= ?", filter.UntilDate)
	}

	if !filter.AmountLessOrEqual.IsZero() {
		q = q.Where("transactions.amount <= ?", filter.AmountLessOrEqual)
	}

	if !filter.AmountMoreOrEqual.IsZero() {
		q = q.Where("transactions.amount >= ?", filter.AmountMoreOrEqual)
	}

	var transactions []models.Transaction
	err := q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if filter.Description != "" && !matches(filter.Description, t.Description) {
			continue
		}

		if slices.Contains(setFields, "ForeignDonation") && models.IsForeignDonation(t) != filter.ForeignDonation {
			continue
		}

		filtered = append(filtered, t)
	}

	return filtered, nil
}

// @Summary		Get transactions
// @Description	Returns a list of transactions
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Router			/v1/transactions [get]
// @Param			fromDate			query	string						false	"Transactions at and after this date, YYYY-MM-DD"
// @Param			untilDate			query	string						false	"Transactions before and at this date, YYYY-MM-DD"
// @Param			amount				query	string						false	"Filter by amount"
// @Param			amountLessOrEqual	query	string						false	"Amount less than or equal to this"
// @Param			amountMoreOrEqual	query	string						false	"Amount more than or equal to this"
// @Param			description			query	string						false	"Glob pattern for the description, e.g. 'seeds*'. Case insensitive"
// @Param			type				query	models.TransactionType		false	"Filter by type"
// @Param			category			query	models.Category				false	"Filter by category"
// @Param			status				query	models.TransactionStatus	false	"Filter by verification status"
// @Param			project				query	string						false	"Filter by project ID"
// @Param			donor				query	string						false	"Filter by donor ID"
// @Param			budgetAllocation	query	string						false	"Filter by budget allocation ID"
// @Param			isProjectWide		query	bool						false	"Is the expense project-wide?"
// @Param			foreignDonation		query	bool						false	"Is the transaction a foreign donation?"
// @Param			offset				query	uint						false	"The offset of the first Transaction returned. Defaults to 0."
// @Param			limit				query	int							false	"Maximum number of Transactions to return. Defaults to 50."
func GetTransactions(c *gin.Context) {
	var filter TransactionQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{
			Error: &s,
		})
		return
	}

	transactions, err := findTransactions(c, filter)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{
			Error: &e,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)
	limit := pageLimit(setFields, filter.Limit)

	data := make([]Transaction, 0)
	for _, transaction := range paginate(transactions, filter.Offset, limit) {
		data = append(data, newTransaction(c, transaction))
	}

	c.JSON(http.StatusOK, TransactionListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(len(transactions)),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create transactions
// @Description	Submits transactions from the list of submitted transaction data. All transactions are created as pending. The response code is the highest response code number that a single transaction creation would have caused. If it is not equal to 201, at least one transaction has an error.
// @Tags			Transactions
// @Produce		json
// @Success		201				{object}	TransactionCreateResponse
// @Failure		400				{object}	TransactionCreateResponse
// @Failure		404				{object}	TransactionCreateResponse
// @Failure		500				{object}	TransactionCreateResponse
// @Param			transactions	body		[]TransactionEditable	true	"Transactions"
// @Router			/v1/transactions [post]
func CreateTransactions(c *gin.Context) {
	var editables []TransactionEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := TransactionCreateResponse{}

	for _, editable := range editables {
		transaction, err := models.SubmitTransaction(models.DB, editable.model())
		if err == nil {
			transaction, err = models.GetTransaction(models.DB, transaction.ID)
		}

		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newTransaction(c, transaction)
		r.Data = append(r.Data, TransactionResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update transaction
// @Description	Updates a pending transaction. Only values to be updated need to be specified. Verified and rejected transactions cannot be updated. The reporting deadline of a foreign donation report follows the date. A pending report is deleted when the transaction stops being a foreign donation, reports in other states block such an update.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200			{object}	TransactionResponse
// @Failure		400			{object}	TransactionResponse
// @Failure		404			{object}	TransactionResponse
// @Failure		409			{object}	TransactionResponse
// @Failure		500			{object}	TransactionResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			transaction	body		TransactionEditable	true	"Transaction"
// @Router			/v1/transactions/{id} [patch]
func UpdateTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	transaction, err := models.GetTransaction(models.DB, uri.ID.UUID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	// Fields not contained in the body keep their current value
	update := newTransaction(c, transaction).TransactionEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	updated := update.model()
	updated.ID = transaction.ID
	_, err = models.UpdateTransaction(models.DB, updated)
	if err == nil {
		transaction, err = models.GetTransaction(models.DB, transaction.ID)
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionResponse{
			Error: &e,
		})
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionResponse{Data: &data})
}

// @Summary		Delete transaction
// @Description	Deletes a transaction together with its foreign donation report. Transactions with a completed foreign donation report cannot be deleted. Deleting a verified expense returns its amount to the budget allocation.
// @Tags			Transactions
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id} [delete]
func DeleteTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DeleteTransaction(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Verify transaction
// @Description	Approves or rejects a pending transaction. Approving an expense consumes its amount from the budget allocation. If the allocation does not have enough remaining funds, the request fails with 409 and a warning, unless overrideInsufficientFunds is set. With the override, the expense is approved and the warning is returned with the transaction.
// @Tags			Transactions
// @Accept			json
// @Produce		json
// @Success		200				{object}	TransactionVerificationResponse
// @Failure		400				{object}	TransactionVerificationResponse
// @Failure		404				{object}	TransactionVerificationResponse
// @Failure		409				{object}	TransactionVerificationResponse
// @Failure		500				{object}	TransactionVerificationResponse
// @Param			id				path		URIID					true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			verification	body		TransactionVerification	true	"Verification"
// @Router			/v1/transactions/{id}/verify [post]
func VerifyTransaction(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionVerificationResponse{
			Error: &e,
		})
		return
	}

	var verification TransactionVerification
	err = httputil.BindData(c, &verification)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionVerificationResponse{
			Error: &e,
		})
		return
	}

	var transaction models.Transaction
	var warning *models.InsufficientFundsWarning
	if verification.OverrideInsufficientFunds {
		transaction, warning, err = models.VerifyWithOverride(models.DB, uri.ID.UUID, verification.model())
	} else {
		transaction, err = models.VerifyStrict(models.DB, uri.ID.UUID, verification.model())
	}

	if err == nil {
		transaction, err = models.GetTransaction(models.DB, transaction.ID)
	}

	if err != nil {
		e := err.Error()
		r := TransactionVerificationResponse{Error: &e}

		// Tell the reviewer what an override would do
		var insufficient *models.InsufficientFundsError
		if errors.As(err, &insufficient) {
			r.Warning = &models.InsufficientFundsWarning{
				AllocationID: insufficient.AllocationID,
				Remaining:    insufficient.Remaining,
				Requested:    insufficient.Requested,
				Message:      models.ErrInsufficientFunds.Error(),
			}
		}

		c.JSON(status(err), r)
		return
	}

	data := newTransaction(c, transaction)
	c.JSON(http.StatusOK, TransactionVerificationResponse{Data: &data, Warning: warning})
}

// @Summary		Get foreign donation report
// @Description	Returns the foreign donation report of a transaction. The report is created if the transaction is a foreign donation without a report.
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	ForeignDonationReportResponse
// @Failure		400	{object}	ForeignDonationReportResponse
// @Failure		404	{object}	ForeignDonationReportResponse
// @Failure		500	{object}	ForeignDonationReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/transactions/{id}/foreign-donation-report [get]
func GetTransactionForeignDonationReport(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForeignDonationReportResponse{
			Error: &e,
		})
		return
	}

	report, err := models.EnsureReport(models.DB, uri.ID.UUID)
	if err == nil && report == nil {
		err = models.ErrNotForeignDonation
	}

	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForeignDonationReportResponse{
			Error: &e,
		})
		return
	}

	r, err := models.GetReport(models.DB, report.ID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForeignDonationReportResponse{
			Error: &e,
		})
		return
	}

	data := newForeignDonationReport(c, r)
	c.JSON(http.StatusOK, ForeignDonationReportResponse{Data: &data})
}
