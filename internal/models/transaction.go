package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TransactionType string

const (
	TypeIncome  TransactionType = "income"
	TypeExpense TransactionType = "expense"
)

type Category string

const (
	CategoryDonation        Category = "donation"
	CategoryMembershipFee   Category = "membership_fee"
	CategoryGrant           Category = "grant"
	CategoryOtherIncome     Category = "other_income"
	CategoryProjectExpense  Category = "project_expense"
	CategoryOperationalCost Category = "operational_cost"
	CategorySalary          Category = "salary"
	CategoryTax             Category = "tax"
	CategoryOtherExpense    Category = "other_expense"
)

// Categories lists the valid categories per transaction type.
var Categories = map[TransactionType][]Category{
	TypeIncome:  {CategoryDonation, CategoryMembershipFee, CategoryGrant, CategoryOtherIncome},
	TypeExpense: {CategoryProjectExpense, CategoryOperationalCost, CategorySalary, CategoryTax, CategoryOtherExpense},
}

// Valid reports if the category can be used for transactions of type t.
func (c Category) Valid(t TransactionType) bool {
	for _, category := range Categories[t] {
		if c == category {
			return true
		}
	}

	return false
}

type TransactionStatus string

const (
	StatusPending  TransactionStatus = "pending"
	StatusVerified TransactionStatus = "verified"
	StatusRejected TransactionStatus = "rejected"
)

// Transaction is an income or expense of the organization.
type Transaction struct {
	DefaultModel
	Type               TransactionType `gorm:"index"`
	Category           Category        `gorm:"index"`
	Amount             decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Description        string
	Date               types.Date `gorm:"index"`
	ReferenceNumber    string     // Reference of the receipt or bank statement
	Project            Project
	ProjectID          *uuid.UUID
	Donor              Donor
	DonorID            *uuid.UUID
	BudgetAllocation   BudgetAllocation
	BudgetAllocationID *uuid.UUID
	RecipientName      string            // Only used for expenses
	RecipientNotes     string            // Only used for expenses
	IsProjectWide      bool              // Only used for expenses. The expense applies to the whole project instead of a single budget line
	Document           string            // Reference to the attached document
	Status             TransactionStatus `gorm:"index;default:pending"`
	ReviewerID         string
	VerifiedAt         *time.Time
	VerificationNotes  string
}

func (t Transaction) Self() string {
	return "Transaction"
}

// BeforeSave
//   - trims whitespace from string fields
//   - ensures that optional references are nil instead of pointers to a nil UUID
func (t *Transaction) BeforeSave(_ *gorm.DB) error {
	t.trim()
	return nil
}

func (t *Transaction) trim() {
	t.Description = strings.TrimSpace(t.Description)
	t.ReferenceNumber = strings.TrimSpace(t.ReferenceNumber)
	t.RecipientName = strings.TrimSpace(t.RecipientName)
	t.RecipientNotes = strings.TrimSpace(t.RecipientNotes)
	t.Document = strings.TrimSpace(t.Document)
	t.VerificationNotes = strings.TrimSpace(t.VerificationNotes)

	t.ProjectID = nilIfNil(t.ProjectID)
	t.DonorID = nilIfNil(t.DonorID)
	t.BudgetAllocationID = nilIfNil(t.BudgetAllocationID)
}

func nilIfNil(id *uuid.UUID) *uuid.UUID {
	if id != nil && *id == uuid.Nil {
		return nil
	}
	return id
}

// normalize applies the rules that change values instead of rejecting them.
func (t *Transaction) normalize() {
	t.trim()

	if t.Date.IsZero() {
		t.Date = types.Today()
	}

	if t.Category == CategoryMembershipFee {
		t.DonorID = nil
	}

	if t.Type == TypeIncome {
		t.IsProjectWide = false
		t.RecipientName = ""
		t.RecipientNotes = ""
	}
}

// requiresProject reports if the transaction must reference a project.
func (t Transaction) requiresProject() bool {
	if t.Type == TypeExpense {
		return t.IsProjectWide
	}

	return t.Type == TypeIncome && t.Category != CategoryMembershipFee && t.Category != CategoryOtherIncome
}

// validate checks all invariants of a transaction and returns a
// *ValidationError listing every violated field.
func (t Transaction) validate(tx *gorm.DB) error {
	v := &ValidationError{Resource: "transaction"}

	if !t.Amount.IsPositive() {
		v.add("amount", "must be positive")
	}

	if t.Type != TypeIncome && t.Type != TypeExpense {
		v.add("type", "must be one of 'income', 'expense'")
	} else if !t.Category.Valid(t.Type) {
		v.add("category", "is not a valid category for "+string(t.Type)+" transactions")
	}

	if t.Description == "" {
		v.add("description", "must not be empty")
	}

	if t.Category == CategoryDonation && t.DonorID == nil {
		v.add("donorId", "is required for donations")
	}

	if t.requiresProject() && t.ProjectID == nil {
		v.add("projectId", "is required for this transaction")
	}

	if t.DonorID != nil {
		err := tx.Select("id").First(&Donor{}, "id = ?", *t.DonorID).Error
		if errors.Is(err, ErrResourceNotFound) {
			v.add("donorId", "does not reference an existing donor")
		} else if err != nil {
			return err
		}
	}

	if t.ProjectID != nil {
		err := tx.Select("id").First(&Project{}, "id = ?", *t.ProjectID).Error
		if errors.Is(err, ErrResourceNotFound) {
			v.add("projectId", "does not reference an existing project")
		} else if err != nil {
			return err
		}
	}

	if t.BudgetAllocationID != nil {
		if t.Type != TypeExpense {
			v.add("budgetAllocationId", "can only be set for expenses")
		}

		allocation, err := getAllocation(tx, *t.BudgetAllocationID)
		if errors.Is(err, ErrResourceNotFound) {
			v.add("budgetAllocationId", "does not reference an existing budget allocation")
		} else if err != nil {
			return err
		} else if t.ProjectID == nil || allocation.ProjectID != *t.ProjectID {
			v.add("budgetAllocationId", "must belong to the project of the transaction")
		}
	}

	return v.orNil()
}

// getTransaction loads a transaction by its ID.
func getTransaction(tx *gorm.DB, id uuid.UUID) (Transaction, error) {
	var t Transaction
	err := tx.First(&t, "id = ?", id).Error
	if errors.Is(err, ErrResourceNotFound) {
		return Transaction{}, &NotFoundError{Resource: "transaction", ID: id}
	} else if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// GetTransaction returns the transaction with its donor preloaded.
func GetTransaction(db *gorm.DB, id uuid.UUID) (Transaction, error) {
	return getTransaction(db.Preload("Donor"), id)
}

// SubmitTransaction validates a new transaction and stores it as pending.
//
// Verification metadata in t is ignored.
func SubmitTransaction(db *gorm.DB, t Transaction) (Transaction, error) {
	t.ID = uuid.Nil
	t.Status = StatusPending
	t.ReviewerID = ""
	t.VerifiedAt = nil
	t.VerificationNotes = ""
	t.normalize()

	err := transaction(db, func(tx *gorm.DB) error {
		err := t.validate(tx)
		if err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(&t).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// UpdateTransaction replaces the editable fields of a pending transaction.
//
// The foreign donation report of the transaction is updated with it, see syncReport.
func UpdateTransaction(db *gorm.DB, t Transaction) (Transaction, error) {
	t.normalize()

	err := transaction(db, func(tx *gorm.DB) error {
		current, err := getTransaction(tx, t.ID)
		if err != nil {
			return err
		}

		if current.Status != StatusPending {
			return &InvalidStateError{Resource: "transaction", ID: t.ID, Current: string(current.Status), Operation: "update"}
		}

		err = t.validate(tx)
		if err != nil {
			return err
		}

		t.Donor = Donor{}
		if t.DonorID != nil {
			err = tx.First(&t.Donor, "id = ?", *t.DonorID).Error
			if err != nil {
				return err
			}
		}

		err = syncReport(tx, t)
		if err != nil {
			return err
		}

		t.CreatedAt = current.CreatedAt
		t.Status = StatusPending
		t.ReviewerID = ""
		t.VerifiedAt = nil
		t.VerificationNotes = ""

		return tx.Omit(clause.Associations).Save(&t).Error
	})
	if err != nil {
		return Transaction{}, err
	}

	return t, nil
}

// syncReport keeps the foreign donation report of t consistent with t.
//
// The reporting deadline follows the transaction date. If t is no longer a
// foreign donation, a pending report is deleted. Reports in any other status
// block the update.
func syncReport(tx *gorm.DB, t Transaction) error {
	report, err := FindReport(tx, t.ID)
	if err != nil || report == nil {
		return err
	}

	if !IsForeignDonation(t) {
		if report.Status != ReportPending {
			return &InvalidStateError{
				Resource:  "transaction",
				ID:        t.ID,
				Current:   "foreign donation report " + string(report.Status),
				Operation: "update",
			}
		}

		log.Info().Str("transaction", t.ID.String()).Str("report", report.ID.String()).Msg("deleting report, transaction is no longer a foreign donation")
		return tx.Delete(report).Error
	}

	deadline := t.Date.AddDays(ReportingPeriod)
	if report.ReportingDeadline.Equal(deadline) {
		return nil
	}

	return tx.Model(report).Update("reporting_deadline", deadline).Error
}

// DeleteTransaction deletes a transaction and its foreign donation report.
//
// Transactions with a completed foreign donation report cannot be deleted.
// Deleting a verified expense returns its amount to the budget allocation.
func DeleteTransaction(db *gorm.DB, id uuid.UUID) error {
	return transaction(db, func(tx *gorm.DB) error {
		t, err := getTransaction(tx, id)
		if err != nil {
			return err
		}

		var reports []ForeignDonationReport
		err = tx.Where(&ForeignDonationReport{TransactionID: id}).Limit(1).Find(&reports).Error
		if err != nil {
			return err
		}

		if len(reports) > 0 && reports[0].Status == ReportCompleted {
			return &InvalidStateError{
				Resource:  "transaction",
				ID:        id,
				Current:   "foreign donation report " + string(reports[0].Status),
				Operation: "delete",
			}
		}

		if t.Type == TypeExpense && t.Status == StatusVerified && t.BudgetAllocationID != nil {
			err = release(tx, *t.BudgetAllocationID, t.Amount)
			if err != nil {
				return err
			}
		}

		return tx.Delete(&t).Error
	})
}
