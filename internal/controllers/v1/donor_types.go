package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

type DonorEditable struct {
	Name        string `json:"name" example:"Fondation Horizon"`                   // Name of the donor
	Email       string `json:"email" example:"contact@horizon.example" default:""` // Email address
	Phone       string `json:"phone" example:"+216 71 000 000" default:""`         // Phone number
	Address     string `json:"address" example:"12 Rue de Marseille, Tunis" default:""`
	TaxID       string `json:"taxId" example:"1234567/A/M/000" default:""` // Tax identification number
	Note        string `json:"note" example:"Yearly supporter" default:""`
	IsAnonymous bool   `json:"isAnonymous" example:"false" default:"false"` // Anonymous donors are not named in public documents
	IsMember    bool   `json:"isMember" example:"false" default:"false"`    // Is the donor a member of the organization?
	IsInternal  bool   `json:"isInternal" example:"false" default:"false"`  // Is the donor internal to the organization, e.g. staff?
	MemberID    string `json:"memberId" example:"M-0042" default:""`        // Reference in the member directory. Required for members
	Archived    bool   `json:"archived" example:"false" default:"false"`    // Archived donors are kept for existing transactions
}

// model returns the database resource for the API representation of the editable fields
func (editable DonorEditable) model() models.Donor {
	return models.Donor{
		Name:        editable.Name,
		Email:       editable.Email,
		Phone:       editable.Phone,
		Address:     editable.Address,
		TaxID:       editable.TaxID,
		Note:        editable.Note,
		IsAnonymous: editable.IsAnonymous,
		IsMember:    editable.IsMember,
		IsInternal:  editable.IsInternal,
		MemberID:    editable.MemberID,
		Archived:    editable.Archived,
	}
}

type DonorLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/donors/c7b3e1f0-4a8e-4c5f-9ad0-8e2f4a6d4b55"`                     // The donor itself
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?donor=c7b3e1f0-4a8e-4c5f-9ad0-8e2f4a6d4b55"` // Transactions of the donor
}

// Donor is the API representation of a Donor.
type Donor struct {
	models.DefaultModel
	DonorEditable
	Classification models.DonorClassification `json:"classification" example:"external"`       // Member, internal or external
	TotalDonations *decimal.Decimal           `json:"totalDonations,omitempty" example:"2500"` // Sum of verified income from the donor. Only set for single donors
	Links          DonorLinks                 `json:"links"`
}

func newDonor(c *gin.Context, model models.Donor) Donor {
	url := c.GetString(string(models.DBContextURL))

	return Donor{
		DefaultModel: model.DefaultModel,
		DonorEditable: DonorEditable{
			Name:        model.Name,
			Email:       model.Email,
			Phone:       model.Phone,
			Address:     model.Address,
			TaxID:       model.TaxID,
			Note:        model.Note,
			IsAnonymous: model.IsAnonymous,
			IsMember:    model.IsMember,
			IsInternal:  model.IsInternal,
			MemberID:    model.MemberID,
			Archived:    model.Archived,
		},
		Classification: model.Classification(),
		Links: DonorLinks{
			Self:         fmt.Sprintf("%s/v1/donors/%s", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?donor=%s", url, model.ID),
		},
	}
}

type DonorListResponse struct {
	Data       []Donor     `json:"data"`                                                          // List of donors
	Error      *string     `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination `json:"pagination"`                                                    // Pagination information
}

type DonorCreateResponse struct {
	Error *string         `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Data  []DonorResponse `json:"data"`                                                          // List of created donors
}

func (d *DonorCreateResponse) appendError(err error, currentStatus int) int {
	s := err.Error()
	d.Data = append(d.Data, DonorResponse{Error: &s})

	// The final status code is the highest HTTP status code number
	newStatus := status(err)
	if newStatus > currentStatus {
		return newStatus
	}

	return currentStatus
}

type DonorResponse struct {
	Error *string `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this donor
	Data  *Donor  `json:"data"`                                                          // The donor data, if creation was successful
}

type DonorQueryFilter struct {
	Name           string                     `form:"name" filterField:"false"`           // Glob pattern the name must match, e.g. "*horizon*". Case insensitive
	Email          string                     `form:"email"`                              // Exact email address
	TaxID          string                     `form:"taxId"`                              // Exact tax ID
	IsAnonymous    bool                       `form:"isAnonymous"`                        // Is the donor anonymous?
	Archived       bool                       `form:"archived"`                           // Is the donor archived?
	Classification models.DonorClassification `form:"classification" filterField:"false"` // Member, internal or external
	Offset         uint                       `form:"offset" filterField:"false"`         // The offset of the first donor returned. Defaults to 0.
	Limit          int                        `form:"limit" filterField:"false"`          // Maximum number of donors to return. Defaults to 50.
}

func (f DonorQueryFilter) model() models.Donor {
	// This does not set the name and classification fields since they
	// are handled in the controller function
	return DonorEditable{
		Email:       f.Email,
		TaxID:       f.TaxID,
		IsAnonymous: f.IsAnonymous,
		Archived:    f.Archived,
	}.model()
}
