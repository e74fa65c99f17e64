package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
)

func RegisterRootRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)
}

type Response struct {
	Links Links `json:"links"` // Links for the v1 API
}

type Links struct {
	Donors                 string `json:"donors" example:"https://example.com/api/v1/donors"`                                   // URL of Donor collection endpoint
	Projects               string `json:"projects" example:"https://example.com/api/v1/projects"`                               // URL of Project collection endpoint
	BudgetAllocations      string `json:"budgetAllocations" example:"https://example.com/api/v1/budget-allocations"`            // URL of Budget Allocation collection endpoint
	Transactions           string `json:"transactions" example:"https://example.com/api/v1/transactions"`                       // URL of Transaction collection endpoint
	ForeignDonationReports string `json:"foreignDonationReports" example:"https://example.com/api/v1/foreign-donation-reports"` // URL of Foreign Donation Report collection endpoint
	Dashboard              string `json:"dashboard" example:"https://example.com/api/v1/dashboard"`                             // URL of the dashboard endpoints
}

// Get returns the link list for v1
//
//	@Summary		v1 API
//	@Description	Returns general information about the v1 API
//	@Tags			v1
//	@Success		200	{object}	Response
//	@Router			/v1 [get]
func Get(c *gin.Context) {
	url := c.GetString(string(models.DBContextURL))

	c.JSON(http.StatusOK, Response{
		Links: Links{
			Donors:                 url + "/v1/donors",
			Projects:               url + "/v1/projects",
			BudgetAllocations:      url + "/v1/budget-allocations",
			Transactions:           url + "/v1/transactions",
			ForeignDonationReports: url + "/v1/foreign-donation-reports",
			Dashboard:              url + "/v1/dashboard",
		},
	})
}

// Options returns the allowed HTTP methods
//
//	@Summary		Allowed HTTP verbs
//	@Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
//	@Tags			v1
//	@Success		204
//	@Router			/v1 [options]
func Options(c *gin.Context) {
	httputil.OptionsGet(c)
}
