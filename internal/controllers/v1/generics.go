package v1

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ryanuber/go-glob"
	"golang.org/x/exp/slices"
)

// resourceOptionsDetail returns the appropriate response for an HTTP OPTIONS request for a specific resource.
func resourceOptionsDetail[R models.Donor | models.Project | models.BudgetAllocation | models.Transaction | models.ForeignDonationReport](c *gin.Context, resource R, options func(*gin.Context)) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	err = models.DB.First(&resource, "id = ?", uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), newHTTPError(err))
		return
	}

	options(c)
}

// defaultLimit is the number of resources returned by collection endpoints
// if no limit is requested.
const defaultLimit = 50

// pageLimit returns the requested limit or the default limit if none was requested.
func pageLimit(setFields []string, requested int) int {
	if slices.Contains(setFields, "Limit") {
		return requested
	}
	return defaultLimit
}

// paginate returns the page of resources starting at offset with at most
// limit resources. A negative limit returns all remaining resources.
func paginate[T any](resources []T, offset uint, limit int) []T {
	if int(offset) >= len(resources) {
		return []T{}
	}

	resources = resources[offset:]
	if limit >= 0 && limit < len(resources) {
		resources = resources[:limit]
	}

	return resources
}

// matches reports if s matches the glob pattern, ignoring case.
//
// Patterns without wildcards match if s contains them.
func matches(pattern, s string) bool {
	pattern = strings.ToLower(pattern)
	if !strings.Contains(pattern, glob.GLOB) {
		pattern = glob.GLOB + pattern + glob.GLOB
	}

	return glob.Glob(pattern, strings.ToLower(s))
}
