package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
)

// RegisterDonorRoutes registers the routes for donors with
// the RouterGroup that is passed.
func RegisterDonorRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsDonors)
		r.GET("", GetDonors)
		r.POST("", CreateDonors)
	}

	// Donor with ID
	{
		r.OPTIONS("/:id", OptionsDonorDetail)
		r.GET("/:id", GetDonor)
		r.PATCH("/:id", UpdateDonor)
		r.DELETE("/:id", DeleteDonor)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donors
// @Success		204
// @Router			/v1/donors [options]
func OptionsDonors(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Donors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [options]
func OptionsDonorDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.Donor{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Get donor
// @Description	Returns a specific donor with the sum of their verified donations
// @Tags			Donors
// @Produce		json
// @Success		200	{object}	DonorResponse
// @Failure		400	{object}	DonorResponse
// @Failure		404	{object}	DonorResponse
// @Failure		500	{object}	DonorResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [get]
func GetDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	total, err := donor.TotalDonations(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, donor)
	data.TotalDonations = &total
	c.JSON(http.StatusOK, DonorResponse{Data: &data})
}

// @Summary		Get donors
// @Description	Returns a list of donors
// @Tags			Donors
// @Produce		json
// @Success		200	{object}	DonorListResponse
// @Failure		400	{object}	DonorListResponse
// @Failure		500	{object}	DonorListResponse
// @Router			/v1/donors [get]
// @Param			name			query	string						false	"Glob pattern for the name, e.g. '*horizon*'. Case insensitive"
// @Param			email			query	string						false	"Filter by email"
// @Param			taxId			query	string						false	"Filter by tax ID"
// @Param			isAnonymous		query	bool						false	"Is the donor anonymous?"
// @Param			archived		query	bool						false	"Is the donor archived?"
// @Param			classification	query	models.DonorClassification	false	"Filter by classification"
// @Param			offset			query	uint						false	"The offset of the first Donor returned. Defaults to 0."
// @Param			limit			query	int							false	"Maximum number of Donors to return. Defaults to 50."
func GetDonors(c *gin.Context) {
	var filter DonorQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, DonorListResponse{
			Error: &s,
		})
		return
	}

	// Get the fields set in the filter
	queryFields, setFields := httputil.GetURLFields(c.Request.URL, filter)

	model := filter.model()
	q := models.DB.Order("name ASC, created_at ASC").Where(&model, queryFields...)

	switch filter.Classification {
	case "":
	case models.DonorMember:
		q = q.Where("is_member = ?", true)
	case models.DonorInternal:
		q = q.Where("is_internal = ?", true)
	case models.DonorExternal:
		q = q.Where("is_member = ? AND is_internal = ?", false, false)
	default:
		s := errDonorClassificationInvalid.Error()
		c.JSON(http.StatusBadRequest, DonorListResponse{
			Error: &s,
		})
		return
	}

	var donors []models.Donor
	err := q.Find(&donors).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorListResponse{
			Error: &e,
		})
		return
	}

	data := make([]Donor, 0)
	for _, donor := range donors {
		if filter.Name != "" && !matches(filter.Name, donor.Name) {
			continue
		}
		data = append(data, newDonor(c, donor))
	}

	total := len(data)
	limit := pageLimit(setFields, filter.Limit)
	data = paginate(data, filter.Offset, limit)

	c.JSON(http.StatusOK, DonorListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  int64(total),
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create donors
// @Description	Creates donors from the list of submitted donor data. The response code is the highest response code number that a single donor creation would have caused. If it is not equal to 201, at least one donor has an error.
// @Tags			Donors
// @Produce		json
// @Success		201		{object}	DonorCreateResponse
// @Failure		400		{object}	DonorCreateResponse
// @Failure		500		{object}	DonorCreateResponse
// @Param			donors	body		[]DonorEditable	true	"Donors"
// @Router			/v1/donors [post]
func CreateDonors(c *gin.Context) {
	var editables []DonorEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := DonorCreateResponse{}

	for _, editable := range editables {
		donor := editable.model()
		err := models.DB.Create(&donor).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newDonor(c, donor)
		r.Data = append(r.Data, DonorResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update donor
// @Description	Updates an existing donor. Only values to be updated need to be specified. Donors with foreign donation reports cannot change between external and member or internal.
// @Tags			Donors
// @Accept			json
// @Produce		json
// @Success		200		{object}	DonorResponse
// @Failure		400		{object}	DonorResponse
// @Failure		404		{object}	DonorResponse
// @Failure		409		{object}	DonorResponse
// @Failure		500		{object}	DonorResponse
// @Param			id		path		URIID			true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			donor	body		DonorEditable	true	"Donor"
// @Router			/v1/donors/{id} [patch]
func UpdateDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	// Fields not contained in the body keep their current value
	update := newDonor(c, donor).DonorEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	updated := update.model()
	updated.DefaultModel = donor.DefaultModel
	updated, err = models.UpdateDonor(models.DB, updated)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), DonorResponse{
			Error: &e,
		})
		return
	}

	data := newDonor(c, updated)
	c.JSON(http.StatusOK, DonorResponse{Data: &data})
}

// @Summary		Delete donor
// @Description	Deletes a donor. Donors that are referenced by transactions cannot be deleted, archive them instead.
// @Tags			Donors
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/donors/{id} [delete]
func DeleteDonor(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	var donor models.Donor
	err = models.DB.First(&donor, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DB.Delete(&donor).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
