package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
	ledger_uuid "github.com/ngo-ledger/backend/internal/uuid"
	"gorm.io/gorm"
)

// RegisterBudgetAllocationRoutes registers the routes for budget allocations with
// the RouterGroup that is passed.
func RegisterBudgetAllocationRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsBudgetAllocations)
		r.GET("", GetBudgetAllocations)
		r.POST("", CreateBudgetAllocations)
	}

	// Budget allocation with ID
	{
		r.OPTIONS("/:id", OptionsBudgetAllocationDetail)
		r.GET("/:id", GetBudgetAllocation)
		r.PATCH("/:id", UpdateBudgetAllocation)
		r.DELETE("/:id", DeleteBudgetAllocation)
		r.OPTIONS("/:id/adjust", OptionsBudgetAllocationAdjust)
		r.POST("/:id/adjust", AdjustBudgetAllocation)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Allocations
// @Success		204
// @Router			/v1/budget-allocations [options]
func OptionsBudgetAllocations(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-allocations/{id} [options]
func OptionsBudgetAllocationDetail(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetAllocation{}, httputil.OptionsGetPatchDelete)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Budget Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-allocations/{id}/adjust [options]
func OptionsBudgetAllocationAdjust(c *gin.Context) {
	resourceOptionsDetail(c, models.BudgetAllocation{}, httputil.OptionsPost)
}

// @Summary		Get budget allocation
// @Description	Returns a specific budget allocation
// @Tags			Budget Allocations
// @Produce		json
// @Success		200	{object}	BudgetAllocationResponse
// @Failure		400	{object}	BudgetAllocationResponse
// @Failure		404	{object}	BudgetAllocationResponse
// @Failure		500	{object}	BudgetAllocationResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-allocations/{id} [get]
func GetBudgetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	var allocation models.BudgetAllocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetAllocation(c, allocation)
	c.JSON(http.StatusOK, BudgetAllocationResponse{Data: &data})
}

// @Summary		Get budget allocations
// @Description	Returns a list of budget allocations
// @Tags			Budget Allocations
// @Produce		json
// @Success		200	{object}	BudgetAllocationListResponse
// @Failure		400	{object}	BudgetAllocationListResponse
// @Failure		500	{object}	BudgetAllocationListResponse
// @Router			/v1/budget-allocations [get]
// @Param			project	query	string	false	"Filter by project ID"
// @Param			offset	query	uint	false	"The offset of the first Budget Allocation returned. Defaults to 0."
// @Param			limit	query	int		false	"Maximum number of Budget Allocations to return. Defaults to 50."
func GetBudgetAllocations(c *gin.Context) {
	var filter BudgetAllocationQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, BudgetAllocationListResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	var q *gorm.DB
	q = models.DB.Order("created_at, id")
	if filter.ProjectID != ledger_uuid.Nil {
		q = q.Where(&models.BudgetAllocation{ProjectID: filter.ProjectID.UUID})
	}

	// Set the offset. Does not need checking since the default is 0
	q = q.Offset(int(filter.Offset))

	limit := pageLimit(setFields, filter.Limit)
	q = q.Limit(limit)

	var allocations []models.BudgetAllocation
	err := q.Find(&allocations).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationListResponse{
			Error: &e,
		})
		return
	}

	var count int64
	err = q.Limit(-1).Offset(-1).Model(&models.BudgetAllocation{}).Count(&count).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationListResponse{
			Error: &e,
		})
		return
	}

	data := make([]BudgetAllocation, 0)
	for _, allocation := range allocations {
		data = append(data, newBudgetAllocation(c, allocation))
	}

	c.JSON(http.StatusOK, BudgetAllocationListResponse{
		Data: data,
		Pagination: &Pagination{
			Count:  len(data),
			Total:  count,
			Offset: filter.Offset,
			Limit:  limit,
		},
	})
}

// @Summary		Create budget allocations
// @Description	Creates budget allocations from the list of submitted data. The used amount of new allocations is always zero. The response code is the highest response code number that a single creation would have caused. If it is not equal to 201, at least one budget allocation has an error.
// @Tags			Budget Allocations
// @Produce		json
// @Success		201			{object}	BudgetAllocationCreateResponse
// @Failure		400			{object}	BudgetAllocationCreateResponse
// @Failure		500			{object}	BudgetAllocationCreateResponse
// @Param			allocations	body		[]BudgetAllocationEditable	true	"Budget allocations"
// @Router			/v1/budget-allocations [post]
func CreateBudgetAllocations(c *gin.Context) {
	var editables []BudgetAllocationEditable

	// Bind data and return error if not possible
	err := httputil.BindData(c, &editables)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationCreateResponse{
			Error: &e,
		})
		return
	}

	// The final http status. Will be modified when errors occur
	status := http.StatusCreated
	r := BudgetAllocationCreateResponse{}

	for _, editable := range editables {
		allocation := editable.model()
		err := models.DB.Create(&allocation).Error
		if err != nil {
			status = r.appendError(err, status)
			continue
		}

		data := newBudgetAllocation(c, allocation)
		r.Data = append(r.Data, BudgetAllocationResponse{Data: &data})
	}

	c.JSON(status, r)
}

// @Summary		Update budget allocation
// @Description	Updates the note of an existing budget allocation. The project cannot be changed, use the adjust endpoint to change the allocated amount.
// @Tags			Budget Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetAllocationResponse
// @Failure		400			{object}	BudgetAllocationResponse
// @Failure		404			{object}	BudgetAllocationResponse
// @Failure		500			{object}	BudgetAllocationResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			allocation	body		BudgetAllocationEditable	true	"Budget allocation"
// @Router			/v1/budget-allocations/{id} [patch]
func UpdateBudgetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	var allocation models.BudgetAllocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	update := newBudgetAllocation(c, allocation).BudgetAllocationEditable
	err = httputil.BindData(c, &update)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	err = models.DB.Model(&allocation).Update("note", strings.TrimSpace(update.Note)).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetAllocation(c, allocation)
	c.JSON(http.StatusOK, BudgetAllocationResponse{Data: &data})
}

// @Summary		Adjust budget allocation
// @Description	Sets a new allocated amount. The new amount must not be lower than the amount already used.
// @Tags			Budget Allocations
// @Accept			json
// @Produce		json
// @Success		200			{object}	BudgetAllocationResponse
// @Failure		400			{object}	BudgetAllocationResponse
// @Failure		404			{object}	BudgetAllocationResponse
// @Failure		500			{object}	BudgetAllocationResponse
// @Param			id			path		URIID						true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			adjustment	body		BudgetAllocationAdjustment	true	"Adjustment"
// @Router			/v1/budget-allocations/{id}/adjust [post]
func AdjustBudgetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	var adjustment BudgetAllocationAdjustment
	err = httputil.BindData(c, &adjustment)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	allocation, err := models.AdjustAllocation(models.DB, uri.ID.UUID, adjustment.AllocatedAmount)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), BudgetAllocationResponse{
			Error: &e,
		})
		return
	}

	data := newBudgetAllocation(c, allocation)
	c.JSON(http.StatusOK, BudgetAllocationResponse{Data: &data})
}

// @Summary		Delete budget allocation
// @Description	Deletes a budget allocation. Allocations referenced by transactions cannot be deleted.
// @Tags			Budget Allocations
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		409	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/budget-allocations/{id} [delete]
func DeleteBudgetAllocation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	var allocation models.BudgetAllocation
	err = models.DB.First(&allocation, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DB.Delete(&allocation).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
