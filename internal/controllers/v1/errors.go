package v1

import (
	"errors"
	"net/http"

	"github.com/ngo-ledger/backend/internal/models"
)

type httpError struct {
	Error  string            `json:"error" example:"An ID specified in the query string was not a valid UUID"`
	Fields map[string]string `json:"fields,omitempty"` // Violated constraints per field, for validation errors
}

// newHTTPError returns the error body for err. For validation errors,
// the violated field constraints are included.
func newHTTPError(err error) httpError {
	e := httpError{Error: err.Error()}

	var v *models.ValidationError
	if errors.As(err, &v) {
		e.Fields = v.Fields
	}

	return e
}

// status returns the appropriate status for a database or engine error
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError
	case errors.Is(err, models.ErrResourceNotFound), errors.Is(err, models.ErrNotForeignDonation):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidState), errors.Is(err, models.ErrInsufficientFunds), errors.Is(err, models.ErrStillReferenced), errors.Is(err, models.ErrReportExists):
		return http.StatusConflict
	case errors.Is(err, models.ErrExternalService):
		return http.StatusBadGateway
	}

	return http.StatusBadRequest
}

// Transaction errors
var (
	errTransactionTypeInvalid   = errors.New("the specified transaction type is invalid")
	errTransactionStatusInvalid = errors.New("the specified transaction status is invalid")
)

// Donor errors
var (
	errDonorClassificationInvalid = errors.New("the specified donor classification is invalid")
)

// Dashboard errors
var (
	errDateRangeInvalid = errors.New("the start date must not be after the end date")
	errTopInvalid       = errors.New("the number of listed disclosures must not be negative")
)

// Foreign donation report errors
var (
	errLetterNotGenerated  = errors.New("the letter for this report has not been generated yet")
	errReportStatusInvalid = errors.New("the specified report status is invalid")
)
