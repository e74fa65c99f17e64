package models

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BudgetAllocation is a project-scoped pool of funds. Verified expenses
// linked to it consume the allocated amount.
type BudgetAllocation struct {
	DefaultModel
	Project         Project
	ProjectID       uuid.UUID       `gorm:"index"`
	AllocatedAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	UsedAmount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Sum of the amounts of all verified expenses linked to the allocation
	Note            string
}

func (a BudgetAllocation) Self() string {
	return "Budget Allocation"
}

func (a *BudgetAllocation) BeforeSave(_ *gorm.DB) error {
	a.Note = strings.TrimSpace(a.Note)

	v := &ValidationError{Resource: "budget allocation"}
	if a.ProjectID == uuid.Nil {
		v.add("projectId", "must be set")
	}

	if a.AllocatedAmount.IsNegative() {
		v.add("allocatedAmount", "must not be negative")
	}

	return v.orNil()
}

// Remaining returns the amount that is still available.
func (a BudgetAllocation) Remaining() decimal.Decimal {
	return a.AllocatedAmount.Sub(a.UsedAmount)
}

// UtilizationPercentage returns the used share of the allocated amount in percent,
// rounded to two decimal places.
func (a BudgetAllocation) UtilizationPercentage() decimal.Decimal {
	if a.AllocatedAmount.IsZero() {
		return decimal.Zero
	}

	return a.UsedAmount.Div(a.AllocatedAmount).Mul(decimal.NewFromInt(100)).Round(2)
}

// AllocationsForProject returns all budget allocations of a project.
func AllocationsForProject(db *gorm.DB, projectID uuid.UUID) ([]BudgetAllocation, error) {
	var allocations []BudgetAllocation
	err := db.
		Where(&BudgetAllocation{ProjectID: projectID}).
		Order("created_at, id").
		Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	return allocations, nil
}

// SelectAllocation picks the allocation of a project with the greatest remaining
// amount. Ties are broken by the lowest ID.
//
// It returns nil without error when the project has no allocation.
func SelectAllocation(db *gorm.DB, projectID uuid.UUID) (*BudgetAllocation, error) {
	allocations, err := AllocationsForProject(db, projectID)
	if err != nil {
		return nil, err
	}

	var selected *BudgetAllocation
	for i := range allocations {
		a := &allocations[i]
		if selected == nil {
			selected = a
			continue
		}

		switch a.Remaining().Cmp(selected.Remaining()) {
		case 1:
			selected = a
		case 0:
			if a.ID.String() < selected.ID.String() {
				selected = a
			}
		}
	}

	return selected, nil
}

// getAllocation loads an allocation. Inside a database transaction, the
// single connection ensures that nobody else writes to it until the
// transaction ends.
func getAllocation(tx *gorm.DB, id uuid.UUID) (BudgetAllocation, error) {
	var allocation BudgetAllocation
	err := tx.First(&allocation, "id = ?", id).Error
	if errors.Is(err, ErrResourceNotFound) {
		return BudgetAllocation{}, &NotFoundError{Resource: "budget allocation", ID: id}
	} else if err != nil {
		return BudgetAllocation{}, err
	}

	return allocation, nil
}

// consume adds amount to the used amount of the allocation. With strict set,
// the allocation must have at least amount remaining.
func consume(tx *gorm.DB, allocation *BudgetAllocation, amount decimal.Decimal, strict bool) error {
	if strict && allocation.Remaining().LessThan(amount) {
		return &InsufficientFundsError{
			AllocationID: allocation.ID,
			Remaining:    allocation.Remaining(),
			Requested:    amount,
		}
	}

	used := allocation.UsedAmount.Add(amount)
	err := tx.Model(allocation).Update("used_amount", used).Error
	if err != nil {
		return err
	}

	allocation.UsedAmount = used
	return nil
}

// DecrementAllocation consumes amount from an allocation.
//
// The check and the write happen in a single database transaction. If the
// allocation does not have enough remaining funds, an *InsufficientFundsError
// is returned and the allocation is unchanged.
func DecrementAllocation(db *gorm.DB, id uuid.UUID, amount decimal.Decimal) (BudgetAllocation, error) {
	var allocation BudgetAllocation

	err := transaction(db, func(tx *gorm.DB) error {
		var err error
		allocation, err = getAllocation(tx, id)
		if err != nil {
			return err
		}

		return consume(tx, &allocation, amount, true)
	})
	if err != nil {
		return BudgetAllocation{}, err
	}

	return allocation, nil
}

// AdjustAllocation sets a new allocated amount. The new amount must not be lower
// than what has already been used.
func AdjustAllocation(db *gorm.DB, id uuid.UUID, allocated decimal.Decimal) (BudgetAllocation, error) {
	var allocation BudgetAllocation

	err := transaction(db, func(tx *gorm.DB) error {
		var err error
		allocation, err = getAllocation(tx, id)
		if err != nil {
			return err
		}

		if allocated.LessThan(allocation.UsedAmount) {
			return &ValidationError{
				Resource: "budget allocation",
				Fields: map[string]string{
					"allocatedAmount": "must not be lower than the used amount of " + allocation.UsedAmount.String(),
				},
			}
		}

		err = tx.Model(&allocation).Update("allocated_amount", allocated).Error
		if err != nil {
			return err
		}

		allocation.AllocatedAmount = allocated
		return nil
	})
	if err != nil {
		return BudgetAllocation{}, err
	}

	return allocation, nil
}

// release returns amount to an allocation, e.g. when a verified expense is deleted.
func release(tx *gorm.DB, id uuid.UUID, amount decimal.Decimal) error {
	allocation, err := getAllocation(tx, id)
	if err != nil {
		return err
	}

	return tx.Model(&allocation).Update("used_amount", allocation.UsedAmount.Sub(amount)).Error
}
