package v1

import (
	"errors"
	"io"
	"net/http"
	"path"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/documents"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// generator creates the letters and journal publication texts.
var generator documents.Generator

// RegisterForeignDonationReportRoutes registers the routes for foreign donation
// reports with the RouterGroup that is passed. g generates the documents.
func RegisterForeignDonationReportRoutes(r *gin.RouterGroup, g documents.Generator) {
	generator = g

	// Root group
	{
		r.OPTIONS("", OptionsForeignDonationReports)
		r.GET("", GetForeignDonationReports)
	}

	// Report with ID
	{
		r.OPTIONS("/:id", OptionsForeignDonationReportDetail)
		r.GET("/:id", GetForeignDonationReport)
		r.OPTIONS("/:id/letter", OptionsForeignDonationReportLetter)
		r.GET("/:id/letter", GetForeignDonationReportLetter)
		r.POST("/:id/letter", GenerateForeignDonationReportLetter)
		r.OPTIONS("/:id/journal-publication", OptionsForeignDonationReportAction)
		r.POST("/:id/journal-publication", GenerateForeignDonationReportJournalPublication)
		r.OPTIONS("/:id/advance", OptionsForeignDonationReportAction)
		r.POST("/:id/advance", AdvanceForeignDonationReport)
		r.OPTIONS("/:id/force-status", OptionsForeignDonationReportAction)
		r.POST("/:id/force-status", ForceForeignDonationReportStatus)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Foreign Donation Reports
// @Success		204
// @Router			/v1/foreign-donation-reports [options]
func OptionsForeignDonationReports(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Foreign Donation Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id} [options]
func OptionsForeignDonationReportDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.ForeignDonationReport{}, httputil.OptionsGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Foreign Donation Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id}/letter [options]
func OptionsForeignDonationReportLetter(c *gin.Context) {
	resourceOptionsDetail(c, models.ForeignDonationReport{}, httputil.OptionsGetPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Foreign Donation Reports
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id}/journal-publication [options]
// @Router			/v1/foreign-donation-reports/{id}/advance [options]
// @Router			/v1/foreign-donation-reports/{id}/force-status [options]
func OptionsForeignDonationReportAction(c *gin.Context) {
	resourceOptionsDetail(c, models.ForeignDonationReport{}, httputil.OptionsPost)
}

// @Summary		Get foreign donation report
// @Description	Returns a specific foreign donation report
// @Tags			Foreign Donation Reports
// @Produce		json
// @Success		200	{object}	ForeignDonationReportResponse
// @Failure		400	{object}	ForeignDonationReportResponse
// @Failure		404	{object}	ForeignDonationReportResponse
// @Failure		500	{object}	ForeignDonationReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id} [get]
func GetForeignDonationReport(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	report, err := models.GetReport(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	data := newForeignDonationReport(c, report)
	c.JSON(http.StatusOK, ForeignDonationReportResponse{Data: &data})
}

// @Summary		Get foreign donation reports
// @Description	Returns a list of foreign donation reports, the closest deadline first
// @Tags			Foreign Donation Reports
// @Produce		json
// @Success		200	{object}	ForeignDonationReportListResponse
// @Failure		400	{object}	ForeignDonationReportListResponse
// @Failure		500	{object}	ForeignDonationReportListResponse
// @Router			/v1/foreign-donation-reports [get]
// @Param			status		query	models.ReportStatus	false	"Filter by status"
// @Param			severity	query	models.Severity		false	"Filter by severity"
// @Param			offset		query	uint				false	"The offset of the first report returned. Defaults to 0."
// @Param			limit		query	int					false	"Maximum number of reports to return. Defaults to 50."
func GetForeignDonationReports(c *gin.Context) {
	var filter ForeignDonationReportQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ForeignDonationReportListResponse{
			Error: &s,
		})
		return
	}

	if filter.Status != "" && !filter.Status.Valid() {
		e := errReportStatusInvalid.Error()
		c.JSON(http.StatusBadRequest, ForeignDonationReportListResponse{
			Error: &e,
		})
		return
	}

	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var reports []models.ForeignDonationReport
	err := models.DB.
		Preload("Transaction.Donor").
		Order("reporting_deadline, id").
		Where(&models.ForeignDonationReport{Status: filter.Status}, queryFields...).
		Find(&reports).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForeignDonationReportListResponse{
			Error: &e,
		})
		return
	}

	today := types.Today()
	data := make([]ForeignDonationReport, 0)
	for _, report := range reports {
		if filter.Severity != "" && report.Severity(today) != filter.Severity {
			continue
		}
		data = append(data, newForeignDonationReport(c, report))
	}

	total := len(data)
	limit := pageLimit(setFields, filter.Limit)
	data = paginate(data, filter.Offset, limit)

	c.JSON(http.StatusOK, ForeignDonationReportListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Generate letter
// @Description	Generates the letter to the authorities. Generating it again replaces the previous letter.
// @Tags			Foreign Donation Reports
// @Produce		json
// @Success		200	{object}	ForeignDonationReportResponse
// @Failure		400	{object}	ForeignDonationReportResponse
// @Failure		404	{object}	ForeignDonationReportResponse
// @Failure		500	{object}	ForeignDonationReportResponse
// @Failure		502	{object}	ForeignDonationReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id}/letter [post]
func GenerateForeignDonationReportLetter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	report, err := models.GenerateLetter(c.Request.Context(), models.DB, generator, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	data := newForeignDonationReport(c, report)
	c.JSON(http.StatusOK, ForeignDonationReportResponse{Data: &data})
}

// @Summary		Download letter
// @Description	Returns the generated letter
// @Tags			Foreign Donation Reports
// @Produce		plain
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id}/letter [get]
func GetForeignDonationReportLetter(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	report, err := models.GetReport(models.DB, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	if !report.LetterGenerated {
		c.JSON(http.StatusNotFound, newHTTPError(errLetterNotGenerated))
		return
	}

	letter, err := generator.Open(report.LetterFile)
	if errors.Is(err, documents.ErrInvalidHandle) {
		c.JSON(http.StatusNotFound, newHTTPError(err))
		return
	} else if err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("report", report.ID.String()).Err(err).Msg("opening letter")
		c.JSON(http.StatusInternalServerError, newHTTPError(models.ErrGeneral))
		return
	}
	defer letter.Close()

	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Header("Content-Disposition", "attachment; filename=\""+path.Base(report.LetterFile)+"\"")
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, letter); err != nil {
		log.Error().Str("request-id", requestid.Get(c)).Str("report", report.ID.String()).Err(err).Msg("sending letter")
	}
}

// @Summary		Generate journal publication text
// @Description	Generates the text for the journal publication. The status of the report is not changed.
// @Tags			Foreign Donation Reports
// @Produce		json
// @Success		200	{object}	ForeignDonationReportResponse
// @Failure		400	{object}	ForeignDonationReportResponse
// @Failure		404	{object}	ForeignDonationReportResponse
// @Failure		500	{object}	ForeignDonationReportResponse
// @Failure		502	{object}	ForeignDonationReportResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/foreign-donation-reports/{id}/journal-publication [post]
func GenerateForeignDonationReportJournalPublication(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	report, err := models.GenerateJournalPublicationText(c.Request.Context(), models.DB, generator, uri.ID.UUID)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	data := newForeignDonationReport(c, report)
	c.JSON(http.StatusOK, ForeignDonationReportResponse{Data: &data})
}

// @Summary		Advance report status
// @Description	Moves the report forward to the given status and updates the publication metadata. The status cannot move back. To complete a report, the letter must be generated and the journal publication text, reference and date must be set.
// @Tags			Foreign Donation Reports
// @Accept			json
// @Produce		json
// @Success		200		{object}	ForeignDonationReportResponse
// @Failure		400		{object}	ForeignDonationReportResponse
// @Failure		404		{object}	ForeignDonationReportResponse
// @Failure		409		{object}	ForeignDonationReportResponse
// @Failure		500		{object}	ForeignDonationReportResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			update	body		ReportStatusUpdate	true	"Status update"
// @Router			/v1/foreign-donation-reports/{id}/advance [post]
func AdvanceForeignDonationReport(c *gin.Context) {
	updateForeignDonationReportStatus(c, models.Advance)
}

// @Summary		Force report status
// @Description	Sets any status, ignoring the order of statuses and the requirements for completion. Meant for administrative corrections.
// @Tags			Foreign Donation Reports
// @Accept			json
// @Produce		json
// @Success		200		{object}	ForeignDonationReportResponse
// @Failure		400		{object}	ForeignDonationReportResponse
// @Failure		404		{object}	ForeignDonationReportResponse
// @Failure		500		{object}	ForeignDonationReportResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			update	body		ReportStatusUpdate	true	"Status update"
// @Router			/v1/foreign-donation-reports/{id}/force-status [post]
func ForceForeignDonationReportStatus(c *gin.Context) {
	updateForeignDonationReportStatus(c, models.ForceTransition)
}

func updateForeignDonationReportStatus(c *gin.Context, transition func(*gorm.DB, uuid.UUID, models.StatusUpdate) (models.ForeignDonationReport, error)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	var update ReportStatusUpdate
	err = httputil.BindData(c, &update)
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	report, err := transition(models.DB, uri.ID.UUID, update.model())
	if err != nil {
		c.JSON(status(err), newForeignDonationReportError(err))
		return
	}

	data := newForeignDonationReport(c, report)
	c.JSON(http.StatusOK, ForeignDonationReportResponse{Data: &data})
}
