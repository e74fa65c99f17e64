package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
)

// DashboardReport is the disclosure state of a foreign donation on the dashboard.
type DashboardReport struct {
	Persisted bool                `json:"persisted" example:"true"`                                                                                            // Is false when no report has been created for the donation yet
	ID        *uuid.UUID          `json:"id" example:"5ab2b5f5-7f67-4f61-8d0e-1c2f3e4d5a6b"`                                                                   // ID of the report. null when the report has not been created yet
	Status    models.ReportStatus `json:"status" example:"sent"`                                                                                               // Status of the report
	Link      string              `json:"link" example:"https://example.com/api/v1/transactions/d430d7c3-d14c-4712-9336-ee56965a6673/foreign-donation-report"` // The report. Requesting it creates the report if it does not exist yet
}

// DashboardEntry is a foreign donation whose disclosure is not completed.
type DashboardEntry struct {
	Transaction       Transaction     `json:"transaction"`                    // The foreign donation
	Report            DashboardReport `json:"report"`                         // The disclosure state
	DaysUntilDeadline int             `json:"daysUntilDeadline" example:"-2"` // Days until the deadline. Negative when overdue
	Severity          models.Severity `json:"severity" example:"overdue"`     // How urgent the disclosure is
}

func newDashboardEntry(c *gin.Context, model models.DashboardEntry) DashboardEntry {
	url := c.GetString(string(models.DBContextURL))

	report := DashboardReport{
		Status: model.Report.Status(),
		Link:   fmt.Sprintf("%s/v1/transactions/%s/foreign-donation-report", url, model.Transaction.ID),
	}

	if p, ok := model.Report.(models.PersistedReport); ok {
		report.Persisted = true
		report.ID = &p.Report.ID
		report.Link = fmt.Sprintf("%s/v1/foreign-donation-reports/%s", url, p.Report.ID)
	}

	return DashboardEntry{
		Transaction:       newTransaction(c, model.Transaction),
		Report:            report,
		DaysUntilDeadline: model.DaysUntilDeadline,
		Severity:          model.Severity,
	}
}

// ForeignDonationDashboard summarizes the disclosure state of all foreign donations.
type ForeignDonationDashboard struct {
	TotalForeignDonations int              `json:"totalForeignDonations" example:"14"` // Number of foreign donations
	PendingCount          int              `json:"pendingCount" example:"3"`           // Number of foreign donations whose disclosure is not completed
	OverdueCount          int              `json:"overdueCount" example:"1"`           // Number of pending disclosures past their deadline
	TotalPendingAmount    decimal.Decimal  `json:"totalPendingAmount" example:"8400"`  // Sum of the amounts of all pending foreign donations
	Top                   []DashboardEntry `json:"top"`                                // The most urgent disclosures, overdue ones first
}

func newForeignDonationDashboard(c *gin.Context, model models.ForeignDonationDashboard) ForeignDonationDashboard {
	top := make([]DashboardEntry, 0, len(model.Top))
	for _, entry := range model.Top {
		top = append(top, newDashboardEntry(c, entry))
	}

	return ForeignDonationDashboard{
		TotalForeignDonations: model.TotalForeignDonations,
		PendingCount:          model.PendingCount,
		OverdueCount:          model.OverdueCount,
		TotalPendingAmount:    model.TotalPendingAmount,
		Top:                   top,
	}
}

type ForeignDonationDashboardResponse struct {
	Error *string                   `json:"error" example:"the top parameter must not be negative"` // The error, if any occurred
	Data  *ForeignDonationDashboard `json:"data"`                                                   // The dashboard
}

type ForeignDonationDashboardQueryFilter struct {
	Top int `form:"top" filterField:"false"` // Number of disclosures to list. Defaults to 3.
}

// ProjectUtilization is the budget utilization of a project allocation.
type ProjectUtilization struct {
	ProjectID             uuid.UUID       `json:"projectId" example:"1c2e4bd6-5b0a-4e0c-a5a8-24f8e6d5a1d7"`          // ID of the project
	ProjectName           string          `json:"projectName" example:"Water wells"`                                 // Name of the project
	BudgetAllocationID    uuid.UUID       `json:"budgetAllocationId" example:"d9e3e1d6-98a5-4f43-8b18-0a6ce5be1e2b"` // ID of the allocation
	AllocatedAmount       decimal.Decimal `json:"allocatedAmount" example:"5000"`                                    // Allocated amount
	UsedAmount            decimal.Decimal `json:"usedAmount" example:"1250"`                                         // Sum of all verified expenses linked to the allocation
	Remaining             decimal.Decimal `json:"remaining" example:"3750"`                                          // Allocated minus used amount
	UtilizationPercentage decimal.Decimal `json:"utilizationPercentage" example:"25"`                                // Used amount in percent of the allocated amount
	PeriodExpenses        decimal.Decimal `json:"periodExpenses" example:"400"`                                      // Verified expenses of the project in the period
}

// Statistics are the financial statistics for a period.
type Statistics struct {
	Start                types.Date                          `json:"start" example:"2024-01-01"`          // First day of the period
	End                  types.Date                          `json:"end" example:"2024-12-31"`            // Last day of the period
	TotalIncome          decimal.Decimal                     `json:"totalIncome" example:"24000"`         // Sum of all verified income
	TotalExpenses        decimal.Decimal                     `json:"totalExpenses" example:"17500"`       // Sum of all verified expenses
	NetBalance           decimal.Decimal                     `json:"netBalance" example:"6500"`           // Income minus expenses
	TotalDonations       decimal.Decimal                     `json:"totalDonations" example:"18000"`      // Sum of all verified donations
	TotalMembershipFees  decimal.Decimal                     `json:"totalMembershipFees" example:"1200"`  // Sum of all verified membership fees
	TotalProjectExpenses decimal.Decimal                     `json:"totalProjectExpenses" example:"9000"` // Sum of all verified expenses attributed to a project
	ForeignDonations     decimal.Decimal                     `json:"foreignDonations" example:"6000"`     // Sum of all verified foreign donations
	IncomeByCategory     map[models.Category]decimal.Decimal `json:"incomeByCategory"`                    // Verified income per category
	ExpensesByCategory   map[models.Category]decimal.Decimal `json:"expensesByCategory"`                  // Verified expenses per category
	Projects             []ProjectUtilization                `json:"projects"`                            // Budget utilization per allocation
}

func newStatistics(model models.FinancialStatistics) Statistics {
	projects := make([]ProjectUtilization, 0, len(model.Projects))
	for _, p := range model.Projects {
		projects = append(projects, ProjectUtilization{
			ProjectID:             p.ProjectID,
			ProjectName:           p.ProjectName,
			BudgetAllocationID:    p.AllocationID,
			AllocatedAmount:       p.Allocated,
			UsedAmount:            p.Used,
			Remaining:             p.Remaining,
			UtilizationPercentage: p.Utilization,
			PeriodExpenses:        p.PeriodExpenses,
		})
	}

	return Statistics{
		Start:                model.Start,
		End:                  model.End,
		TotalIncome:          model.TotalIncome,
		TotalExpenses:        model.TotalExpenses,
		NetBalance:           model.NetBalance,
		TotalDonations:       model.TotalDonations,
		TotalMembershipFees:  model.TotalMembershipFees,
		TotalProjectExpenses: model.TotalProjectExpenses,
		ForeignDonations:     model.ForeignDonations,
		IncomeByCategory:     model.IncomeByCategory,
		ExpensesByCategory:   model.ExpensesByCategory,
		Projects:             projects,
	}
}

type StatisticsResponse struct {
	Error *string     `json:"error" example:"the start date must not be after the end date"` // The error, if any occurred
	Data  *Statistics `json:"data"`                                                          // The statistics
}

type StatisticsQueryFilter struct {
	Start string `form:"start" filterField:"false"` // First day of the period, YYYY-MM-DD. Defaults to January 1st of the current year.
	End   string `form:"end" filterField:"false"`   // Last day of the period, YYYY-MM-DD. Defaults to today.
}
