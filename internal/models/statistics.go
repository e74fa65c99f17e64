package models

import (
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProjectUtilization is the budget utilization of a single allocation.
type ProjectUtilization struct {
	ProjectID      uuid.UUID
	ProjectName    string
	AllocationID   uuid.UUID
	Allocated      decimal.Decimal
	Used           decimal.Decimal
	Remaining      decimal.Decimal
	Utilization    decimal.Decimal // Used amount in percent of the allocated amount
	PeriodExpenses decimal.Decimal // Verified expenses of the project in the period
}

// FinancialStatistics summarizes the verified transactions of a period.
type FinancialStatistics struct {
	Start                types.Date
	End                  types.Date
	TotalIncome          decimal.Decimal
	TotalExpenses        decimal.Decimal
	NetBalance           decimal.Decimal
	TotalDonations       decimal.Decimal
	TotalMembershipFees  decimal.Decimal
	TotalProjectExpenses decimal.Decimal
	IncomeByCategory     map[Category]decimal.Decimal
	ExpensesByCategory   map[Category]decimal.Decimal
	ForeignDonations     decimal.Decimal // Sum of all verified foreign donations
	Projects             []ProjectUtilization
}

// Statistics computes the financial statistics for all verified transactions
// between start and end, both inclusive.
//
// Sums are calculated with decimals in Go, not in the database.
func Statistics(db *gorm.DB, start, end types.Date) (FinancialStatistics, error) {
	var transactions []Transaction
	err := db.
		Preload("Donor").
		Where(&Transaction{Status: StatusVerified}).
		Where("date >= ? AND date <= ?", start, end).
		Find(&transactions).Error
	if err != nil {
		return FinancialStatistics{}, err
	}

	s := FinancialStatistics{
		Start:                start,
		End:                  end,
		TotalIncome:          decimal.Zero,
		TotalExpenses:        decimal.Zero,
		TotalDonations:       decimal.Zero,
		TotalMembershipFees:  decimal.Zero,
		TotalProjectExpenses: decimal.Zero,
		ForeignDonations:     decimal.Zero,
		IncomeByCategory:     make(map[Category]decimal.Decimal),
		ExpensesByCategory:   make(map[Category]decimal.Decimal),
	}

	projectExpenses := make(map[uuid.UUID]decimal.Decimal)
	for _, t := range transactions {
		switch t.Type {
		case TypeIncome:
			s.TotalIncome = s.TotalIncome.Add(t.Amount)
			s.IncomeByCategory[t.Category] = s.IncomeByCategory[t.Category].Add(t.Amount)
		case TypeExpense:
			s.TotalExpenses = s.TotalExpenses.Add(t.Amount)
			s.ExpensesByCategory[t.Category] = s.ExpensesByCategory[t.Category].Add(t.Amount)

			if t.ProjectID != nil {
				projectExpenses[*t.ProjectID] = projectExpenses[*t.ProjectID].Add(t.Amount)
			}
		}

		switch t.Category {
		case CategoryDonation:
			s.TotalDonations = s.TotalDonations.Add(t.Amount)
		case CategoryMembershipFee:
			s.TotalMembershipFees = s.TotalMembershipFees.Add(t.Amount)
		case CategoryProjectExpense:
			s.TotalProjectExpenses = s.TotalProjectExpenses.Add(t.Amount)
		}

		if IsForeignDonation(t) {
			s.ForeignDonations = s.ForeignDonations.Add(t.Amount)
		}
	}
	s.NetBalance = s.TotalIncome.Sub(s.TotalExpenses)

	var allocations []BudgetAllocation
	err = db.Preload("Project").Order("created_at, id").Find(&allocations).Error
	if err != nil {
		return FinancialStatistics{}, err
	}

	s.Projects = make([]ProjectUtilization, 0, len(allocations))
	for _, a := range allocations {
		period, ok := projectExpenses[a.ProjectID]
		if !ok {
			period = decimal.Zero
		}

		s.Projects = append(s.Projects, ProjectUtilization{
			ProjectID:      a.ProjectID,
			ProjectName:    a.Project.Name,
			AllocationID:   a.ID,
			Allocated:      a.AllocatedAmount,
			Used:           a.UsedAmount,
			Remaining:      a.Remaining(),
			Utilization:    a.UtilizationPercentage(),
			PeriodExpenses: period,
		})
	}

	return s, nil
}
