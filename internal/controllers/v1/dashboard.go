package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/httputil"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"golang.org/x/exp/slices"
)

// RegisterDashboardRoutes registers the routes for the dashboard with
// the RouterGroup that is passed.
func RegisterDashboardRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/foreign-donations", OptionsDashboard)
	r.GET("/foreign-donations", GetForeignDonationDashboard)
	r.OPTIONS("/statistics", OptionsDashboard)
	r.GET("/statistics", GetStatistics)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Dashboard
// @Success		204
// @Router			/v1/dashboard/foreign-donations [options]
// @Router			/v1/dashboard/statistics [options]
func OptionsDashboard(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Foreign donation dashboard
// @Description	Returns the disclosure state of all foreign donations and the most urgent pending disclosures.
// @Description	Foreign donations without a report are counted as pending with the full reporting period left.
// @Tags			Dashboard
// @Produce		json
// @Success		200	{object}	ForeignDonationDashboardResponse
// @Failure		400	{object}	ForeignDonationDashboardResponse
// @Failure		500	{object}	ForeignDonationDashboardResponse
// @Param			top	query		int	false	"Number of disclosures to list. Defaults to 3."
// @Router			/v1/dashboard/foreign-donations [get]
func GetForeignDonationDashboard(c *gin.Context) {
	var filter ForeignDonationDashboardQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, ForeignDonationDashboardResponse{
			Error: &s,
		})
		return
	}

	_, setFields := httputil.GetURLFields(c.Request.URL, filter)

	top := models.DefaultTopReports
	if slices.Contains(setFields, "Top") {
		top = filter.Top
	}

	if top < 0 {
		e := errTopInvalid.Error()
		c.JSON(http.StatusBadRequest, ForeignDonationDashboardResponse{
			Error: &e,
		})
		return
	}

	dashboard, err := models.ForeignDonationDashboardFor(models.DB, types.Today(), top)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ForeignDonationDashboardResponse{
			Error: &e,
		})
		return
	}

	data := newForeignDonationDashboard(c, dashboard)
	c.JSON(http.StatusOK, ForeignDonationDashboardResponse{Data: &data})
}

// @Summary		Financial statistics
// @Description	Returns the statistics of all verified transactions in the period and the budget utilization of all projects.
// @Tags			Dashboard
// @Produce		json
// @Success		200		{object}	StatisticsResponse
// @Failure		400		{object}	StatisticsResponse
// @Failure		500		{object}	StatisticsResponse
// @Param			start	query		string	false	"First day of the period, YYYY-MM-DD. Defaults to January 1st of the current year."
// @Param			end		query		string	false	"Last day of the period, YYYY-MM-DD. Defaults to today."
// @Router			/v1/dashboard/statistics [get]
func GetStatistics(c *gin.Context) {
	var filter StatisticsQueryFilter
	if err := c.Bind(&filter); err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, StatisticsResponse{
			Error: &s,
		})
		return
	}

	start, end, err := statisticsPeriod(filter, types.Today())
	if err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, StatisticsResponse{
			Error: &e,
		})
		return
	}

	statistics, err := models.Statistics(models.DB, start, end)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), StatisticsResponse{
			Error: &e,
		})
		return
	}

	data := newStatistics(statistics)
	c.JSON(http.StatusOK, StatisticsResponse{Data: &data})
}

// statisticsPeriod parses the period from the filter. Without a start, the
// period starts on January 1st of the year of today. Without an end, it
// ends today.
func statisticsPeriod(filter StatisticsQueryFilter, today types.Date) (types.Date, types.Date, error) {
	start, err := httputil.DateFromString(filter.Start)
	if err != nil {
		return types.Date{}, types.Date{}, err
	}

	end, err := httputil.DateFromString(filter.End)
	if err != nil {
		return types.Date{}, types.Date{}, err
	}

	if start.IsZero() {
		start = types.NewDate(today.Time().Year(), 1, 1)
	}

	if end.IsZero() {
		end = today
	}

	if start.After(end) {
		return types.Date{}, types.Date{}, errDateRangeInvalid
	}

	return start, end, nil
}
