package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")
)

// Error kinds. Every typed error below matches exactly one of these with errors.Is.
var (
	ErrValidation        = errors.New("the submitted data is invalid")
	ErrInvalidState      = errors.New("the resource is not in a state that allows this operation")
	ErrBudgetRequired    = errors.New("a budget allocation is required for project-wide expenses")
	ErrInsufficientFunds = errors.New("the budget allocation does not have enough remaining funds")
	ErrExternalService   = errors.New("the document generation service failed")
)

var (
	ErrReportExists         = errors.New("a foreign donation report already exists for this transaction")
	ErrProjectNameNotUnique = errors.New("the project name must be unique")
	ErrReferenceNotFound    = errors.New("a resource ID you specified does not identify an existing resource")
	ErrStillReferenced      = errors.New("the resource is still referenced by other resources and cannot be deleted")
	ErrNotForeignDonation   = errors.New("the transaction is not a foreign donation")
)

// NotFoundError is returned when a resource with a specific ID does not exist.
type NotFoundError struct {
	Resource string
	ID       uuid.UUID
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s with ID %s", ErrResourceNotFound, e.Resource, e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrResourceNotFound
}

// ValidationError lists all field constraints a submission violates.
type ValidationError struct {
	Resource string
	Fields   map[string]string // field name → reason
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	reasons := make([]string, 0, len(fields))
	for _, field := range fields {
		reasons = append(reasons, fmt.Sprintf("%s: %s", field, e.Fields[field]))
	}

	return fmt.Sprintf("invalid %s: %s", e.Resource, strings.Join(reasons, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// add records a violation for a field. The first reason for a field wins.
func (e *ValidationError) add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}

	if _, ok := e.Fields[field]; !ok {
		e.Fields[field] = reason
	}
}

// orNil returns nil if no violation has been recorded.
func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

// InvalidStateError is returned when a transition is attempted from a
// terminal or otherwise wrong state.
type InvalidStateError struct {
	Resource  string
	ID        uuid.UUID
	Current   string
	Operation string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s %s %s: current status is '%s'", e.Operation, e.Resource, e.ID, e.Current)
}

func (e *InvalidStateError) Is(target error) bool {
	return target == ErrInvalidState
}

// BudgetRequiredError is returned when a project-wide expense is approved
// without a budget allocation.
type BudgetRequiredError struct {
	TransactionID uuid.UUID
	ProjectID     uuid.UUID
}

func (e *BudgetRequiredError) Error() string {
	return fmt.Sprintf("%s: transaction %s for project %s", ErrBudgetRequired, e.TransactionID, e.ProjectID)
}

func (e *BudgetRequiredError) Is(target error) bool {
	return target == ErrBudgetRequired
}

// InsufficientFundsError is the hard failure used by strict and automated
// paths. Nothing has been changed when it is returned.
type InsufficientFundsError struct {
	AllocationID uuid.UUID
	Remaining    decimal.Decimal
	Requested    decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: allocation %s has %s remaining, %s requested", ErrInsufficientFunds, e.AllocationID, e.Remaining, e.Requested)
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// Shortfall is the amount missing to cover the request.
func (e *InsufficientFundsError) Shortfall() decimal.Decimal {
	return e.Requested.Sub(e.Remaining)
}

// InsufficientFundsWarning is returned next to a successful verification
// when an operator approved an expense the allocation could not cover.
//
// It is not an error: the verification has been applied.
type InsufficientFundsWarning struct {
	AllocationID uuid.UUID       `json:"allocationId" example:"d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b"` // The allocation that was overdrawn
	Remaining    decimal.Decimal `json:"remaining" example:"600"`                                     // Remaining amount before the approval
	Requested    decimal.Decimal `json:"requested" example:"700"`                                     // Amount of the approved expense
	Message      string          `json:"message" example:"the budget allocation does not have enough remaining funds"`
}

// Shortfall is the amount the allocation was overdrawn by.
func (w InsufficientFundsWarning) Shortfall() decimal.Decimal {
	return w.Requested.Sub(w.Remaining)
}

// ExternalServiceError wraps failures of the document generator.
// Persisted state is unchanged when it is returned.
type ExternalServiceError struct {
	Operation string
	ReportID  uuid.UUID
	Err       error
}

func (e *ExternalServiceError) Error() string {
	return fmt.Sprintf("%s during %s for report %s: %v", ErrExternalService, e.Operation, e.ReportID, e.Err)
}

func (e *ExternalServiceError) Is(target error) bool {
	return target == ErrExternalService
}

func (e *ExternalServiceError) Unwrap() error {
	return e.Err
}
