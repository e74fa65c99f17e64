package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	ledger_uuid "github.com/ngo-ledger/backend/internal/uuid"
	"github.com/shopspring/decimal"
)

type BudgetAllocationEditable struct {
	ProjectID uuid.UUID `json:"projectId" example:"1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"` // ID of the project

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"5000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Allocated amount. Can only be changed with the adjust endpoint after creation

	Note string `json:"note" example:"Seeds and tools" default:""` // A note
}

// model returns the database resource for the API representation of the editable fields
func (editable BudgetAllocationEditable) model() models.BudgetAllocation {
	return models.BudgetAllocation{
		ProjectID:       editable.ProjectID,
		AllocatedAmount: editable.AllocatedAmount,
		Note:            editable.Note,
	}
}

type BudgetAllocationLinks struct {
	Self    string `json:"self" example:"https://example.com/api/v1/budget-allocations/d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b"`          // The budget allocation itself
	Project string `json:"project" example:"https://example.com/api/v1/projects/1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"`                 // The project of the allocation
	Adjust  string `json:"adjust" example:"https://example.com/api/v1/budget-allocations/d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b/adjust"` // Endpoint to adjust the allocated amount
}

// BudgetAllocation is the API representation of a BudgetAllocation.
type BudgetAllocation struct {
	models.DefaultModel
	BudgetAllocationEditable
	UsedAmount            decimal.Decimal       `json:"usedAmount" example:"1250"`          // Sum of all verified expenses linked to the allocation
	Remaining             decimal.Decimal       `json:"remaining" example:"3750"`           // Allocated minus used amount
	UtilizationPercentage decimal.Decimal       `json:"utilizationPercentage" example:"25"` // Used amount in percent of the allocated amount
	Links                 BudgetAllocationLinks `json:"links"`
}

func newBudgetAllocation(c *gin.Context, model models.BudgetAllocation) BudgetAllocation {
	url := c.GetString(string(models.DBContextURL))

	return BudgetAllocation{
		DefaultModel: model.DefaultModel,
		BudgetAllocationEditable: BudgetAllocationEditable{
			ProjectID:       model.ProjectID,
			AllocatedAmount: model.AllocatedAmount,
			Note:            model.Note,
		},
		UsedAmount:            model.UsedAmount,
		Remaining:             model.Remaining(),
		UtilizationPercentage: model.UtilizationPercentage(),
		Links: BudgetAllocationLinks{
			Self:    fmt.Sprintf("%s/v1/budget-allocations/%s", url, model.ID),
			Project: fmt.Sprintf("%s/v1/projects/%s", url, model.ProjectID),
			Adjust:  fmt.Sprintf("%s/v1/budget-allocations/%s/adjust", url, model.ID),
		},
	}
}

type BudgetAllocationListResponse struct {
	Data       []BudgetAllocation `json:"data"`                                                          // List of budget allocations
	Error      *string            `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination        `json:"pagination"`                                                    // Pagination information
}

type BudgetAllocationCreateResponse struct {
	Error *string                    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []BudgetAllocationResponse `json:"data"`                                                          // List of created budget allocations
}

func (b *BudgetAllocationCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	b.Data = append(b.Data, BudgetAllocationResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type BudgetAllocationResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this budget allocation
	Data  *BudgetAllocation `json:"data"`                                                          // The budget allocation data, if creation was successful
}

// BudgetAllocationAdjustment sets a new allocated amount.
type BudgetAllocationAdjustment struct {
	AllocatedAmount decimal.Decimal `json:"allocatedAmount" example:"6000" minimum:"0"` // New allocated amount. Must not be lower than the used amount
}

type BudgetAllocationQueryFilter struct {
	ProjectID ledger_uuid.UUID `form:"project" filterField:"false"` // ID of the project
	Offset    uint             `form:"offset" filterField:"false"`  // The offset of the first budget allocation returned. Defaults to 0.
	Limit     int              `form:"limit" filterField:"false"`   // Maximum number of budget allocations to return. Defaults to 50.
}
