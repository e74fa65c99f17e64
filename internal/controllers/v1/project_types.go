package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type ProjectEditable struct {
	Name string `json:"name" example:"School garden"`                                // Name of the project. Must be unique
	Note string `json:"note" example:"Run with the parents' association" default:""` // A note

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Budget decimal.Decimal `json:"budget" example:"12000" minimum:"0" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // Initial budget. A positive budget creates the first budget allocation of the project. Ignored on updates
}

// model returns the database resource for the API representation of the editable fields
func (editable ProjectEditable) model() models.Project {
	return models.Project{
		Name:   editable.Name,
		Note:   editable.Note,
		Budget: editable.Budget,
	}
}

type ProjectLinks struct {
	Self              string `json:"self" example:"https://example.com/api/v1/projects/1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"`                                // The project itself
	BudgetAllocations string `json:"budgetAllocations" example:"https://example.com/api/v1/budget-allocations?project=1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"` // Budget allocations of the project
	Transactions      string `json:"transactions" example:"https://example.com/api/v1/transactions?project=1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"`            // Transactions of the project
}

// Project is the API representation of a Project.
type Project struct {
	models.DefaultModel
	ProjectEditable
	Links ProjectLinks `json:"links"`
}

func newProject(c *gin.Context, model models.Project) Project {
	url := c.GetString(string(models.DBContextURL))

	return Project{
		DefaultModel: model.DefaultModel,
		ProjectEditable: ProjectEditable{
			Name:   model.Name,
			Note:   model.Note,
			Budget: model.Budget,
		},
		Links: ProjectLinks{
			Self:              fmt.Sprintf("%s/v1/projects/%s", url, model.ID),
			BudgetAllocations: fmt.Sprintf("%s/v1/budget-allocations?project=%s", url, model.ID),
			Transactions:      fmt.Sprintf("%s/v1/transactions?project=%s", url, model.ID),
		},
	}
}

type ProjectListResponse struct {
	Data       []Project   `json:"data"`                                                          // List of projects
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type ProjectCreateResponse struct {
	Error *string           `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []ProjectResponse `json:"data"`                                                          // List of created projects
}

func (p *ProjectCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	p.Data = append(p.Data, ProjectResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type ProjectResponse struct {
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this project
	Data  *Project `json:"data"`                                                          // The project data, if creation was successful
}

type ProjectQueryFilter struct {
	Name   string `form:"name" filterField:"false"`   // Glob pattern the name must match. Case insensitive
	Offset uint   `form:"offset" filterField:"false"` // The offset of the first project returned. Defaults to 0.
	Limit  int    `form:"limit" filterField:"false"`  // Maximum number of projects to return. Defaults to 50.
}
