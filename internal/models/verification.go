package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// Verification is a reviewer's decision on a pending transaction.
type Verification struct {
	Decision           Decision
	ReviewerID         string
	Notes              string
	BudgetAllocationID *uuid.UUID // Used when the transaction does not reference an allocation yet
}

// VerifyStrict verifies a transaction. Expenses that exceed the remaining amount
// of their budget allocation fail with an *InsufficientFundsError and nothing is
// changed.
//
// This is the policy for all automated verification.
func VerifyStrict(db *gorm.DB, id uuid.UUID, v Verification) (Transaction, error) {
	t, _, err := verify(db, id, v, true)
	return t, err
}

// VerifyWithOverride verifies a transaction for a reviewer who explicitly accepted
// overdrawing the budget allocation. The allocation is decremented even if
// that leaves a negative remaining amount. In that case, the returned warning
// describes the shortfall.
func VerifyWithOverride(db *gorm.DB, id uuid.UUID, v Verification) (Transaction, *InsufficientFundsWarning, error) {
	return verify(db, id, v, false)
}

func verify(db *gorm.DB, id uuid.UUID, v Verification, strict bool) (t Transaction, warning *InsufficientFundsWarning, err error) {
	policy := "strict"
	if !strict {
		policy = "override"
	}

	decision := string(v.Decision)
	if v.Decision != DecisionApprove && v.Decision != DecisionReject {
		decision = "invalid"
	}

	defer func() {
		verificationCount.WithLabelValues(decision, policy, result(err)).Inc()
	}()

	if decision == "invalid" {
		return Transaction{}, nil, &ValidationError{
			Resource: "verification",
			Fields:   map[string]string{"decision": "must be one of 'approve', 'reject'"},
		}
	}

	status := StatusVerified
	if v.Decision == DecisionReject {
		status = StatusRejected
	}

	err = transaction(db, func(tx *gorm.DB) error {
		current, err := getTransaction(tx, id)
		if err != nil {
			return err
		}

		// Only the first caller observes the pending status. Everyone
		// else updates zero rows.
		res := tx.Model(&Transaction{}).
			Where("id = ? AND status = ?", id, StatusPending).
			Updates(map[string]any{
				"status":             status,
				"reviewer_id":        v.ReviewerID,
				"verified_at":        time.Now().In(time.UTC),
				"verification_notes": v.Notes,
			})
		if res.Error != nil {
			return res.Error
		}

		if res.RowsAffected != 1 {
			return &InvalidStateError{Resource: "transaction", ID: id, Current: string(current.Status), Operation: "verify"}
		}

		if v.Decision == DecisionApprove && current.Type == TypeExpense {
			warning, err = applyToLedger(tx, current, v.BudgetAllocationID, strict)
			if err != nil {
				return err
			}
		}

		t, err = getTransaction(tx, id)
		return err
	})
	if err != nil {
		return Transaction{}, nil, err
	}

	log.Debug().Str("transaction", id.String()).Str("decision", string(v.Decision)).Str("policy", policy).Msg("verification")
	return t, warning, nil
}

// applyToLedger consumes the amount of an approved expense from its budget allocation.
func applyToLedger(tx *gorm.DB, t Transaction, supplied *uuid.UUID, strict bool) (*InsufficientFundsWarning, error) {
	allocation, err := resolveAllocation(tx, t, supplied)
	if err != nil || allocation == nil {
		return nil, err
	}

	var warning *InsufficientFundsWarning
	if allocation.Remaining().LessThan(t.Amount) && !strict {
		warning = &InsufficientFundsWarning{
			AllocationID: allocation.ID,
			Remaining:    allocation.Remaining(),
			Requested:    t.Amount,
			Message:      ErrInsufficientFunds.Error(),
		}
	}

	err = consume(tx, allocation, t.Amount, strict)
	if err != nil {
		return nil, err
	}

	if t.BudgetAllocationID == nil {
		err = tx.Model(&Transaction{}).Where("id = ?", t.ID).Update("budget_allocation_id", allocation.ID).Error
		if err != nil {
			return nil, err
		}
	}

	return warning, nil
}

// resolveAllocation finds the budget allocation an expense is verified against.
//
// In order, this is the allocation the transaction references, the supplied
// allocation and the default allocation for the project. Project-wide expenses
// are never assigned the default allocation.
func resolveAllocation(tx *gorm.DB, t Transaction, supplied *uuid.UUID) (*BudgetAllocation, error) {
	id := t.BudgetAllocationID
	if id == nil {
		id = nilIfNil(supplied)
	}

	if id == nil {
		if t.IsProjectWide {
			e := &BudgetRequiredError{TransactionID: t.ID}
			if t.ProjectID != nil {
				e.ProjectID = *t.ProjectID
			}
			return nil, e
		}

		if t.ProjectID == nil {
			return nil, nil
		}

		return SelectAllocation(tx, *t.ProjectID)
	}

	allocation, err := getAllocation(tx, *id)
	if err != nil {
		return nil, err
	}

	if t.ProjectID == nil || allocation.ProjectID != *t.ProjectID {
		return nil, &ValidationError{
			Resource: "verification",
			Fields:   map[string]string{"budgetAllocationId": "must belong to the project of the transaction"},
		}
	}

	return &allocation, nil
}
