package models

import (
	"sort"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DefaultTopReports is the number of reports listed on the dashboard by default.
const DefaultTopReports = 3

// ImplicitReportDays is the number of days until the deadline assumed for
// foreign donations that do not have a report yet.
const ImplicitReportDays = ReportingPeriod

// ReportState is the disclosure state of a foreign donation. It is either a
// PersistedReport or an ImplicitReport.
type ReportState interface {
	Status() ReportStatus
	DaysUntilDeadline(today types.Date) int
	reportState()
}

// PersistedReport is the state of a foreign donation that has a report.
type PersistedReport struct {
	Report ForeignDonationReport
}

func (p PersistedReport) Status() ReportStatus {
	return p.Report.Status
}

func (p PersistedReport) DaysUntilDeadline(today types.Date) int {
	return p.Report.DaysUntilDeadline(today)
}

func (PersistedReport) reportState() {}

// ImplicitReport is the state of a foreign donation without a report. It
// is treated as pending.
type ImplicitReport struct{}

func (ImplicitReport) Status() ReportStatus {
	return ReportPending
}

func (ImplicitReport) DaysUntilDeadline(_ types.Date) int {
	return ImplicitReportDays
}

func (ImplicitReport) reportState() {}

// DashboardEntry is a foreign donation that is not completed yet.
type DashboardEntry struct {
	Transaction       Transaction
	Report            ReportState
	DaysUntilDeadline int
	Severity          Severity
}

// ForeignDonationDashboard summarizes the disclosure state of all foreign donations.
type ForeignDonationDashboard struct {
	TotalForeignDonations int             // Number of foreign donations
	PendingCount          int             // Number of foreign donations whose report is not completed
	OverdueCount          int             // Number of pending foreign donations past their deadline
	TotalPendingAmount    decimal.Decimal // Sum of the amounts of all pending foreign donations
	Top                   []DashboardEntry
}

// ComputeDashboard computes the foreign donation dashboard.
//
// Transactions must have their donor loaded. Reports are matched to
// transactions by their transaction ID. At most topN entries are listed:
// overdue ones first, most overdue first, then the others with the
// closest deadline first.
func ComputeDashboard(transactions []Transaction, reports []ForeignDonationReport, today types.Date, topN int) ForeignDonationDashboard {
	byTransaction := make(map[uuid.UUID]ForeignDonationReport, len(reports))
	for _, r := range reports {
		byTransaction[r.TransactionID] = r
	}

	d := ForeignDonationDashboard{
		TotalPendingAmount: decimal.Zero,
	}

	var overdue, upcoming []DashboardEntry
	for _, t := range transactions {
		if !IsForeignDonation(t) {
			continue
		}
		d.TotalForeignDonations++

		var state ReportState = ImplicitReport{}
		if r, ok := byTransaction[t.ID]; ok {
			state = PersistedReport{Report: r}
		}

		if state.Status() == ReportCompleted {
			continue
		}

		days := state.DaysUntilDeadline(today)
		entry := DashboardEntry{
			Transaction:       t,
			Report:            state,
			DaysUntilDeadline: days,
			Severity:          severity(days),
		}

		d.PendingCount++
		d.TotalPendingAmount = d.TotalPendingAmount.Add(t.Amount)

		if days < 0 {
			d.OverdueCount++
			overdue = append(overdue, entry)
		} else {
			upcoming = append(upcoming, entry)
		}
	}

	byDays := func(entries []DashboardEntry) {
		sort.SliceStable(entries, func(i, j int) bool {
			return entries[i].DaysUntilDeadline < entries[j].DaysUntilDeadline
		})
	}
	byDays(overdue)
	byDays(upcoming)

	d.Top = append(overdue, upcoming...)
	if topN >= 0 && len(d.Top) > topN {
		d.Top = d.Top[:topN]
	}

	return d
}

// ForeignDonationDashboardFor loads all income transactions and reports and
// computes the dashboard.
func ForeignDonationDashboardFor(db *gorm.DB, today types.Date, topN int) (ForeignDonationDashboard, error) {
	var transactions []Transaction
	err := db.
		Preload("Donor").
		Where(&Transaction{Type: TypeIncome}).
		Where("donor_id IS NOT NULL").
		Order("date, id").
		Find(&transactions).Error
	if err != nil {
		return ForeignDonationDashboard{}, err
	}

	var reports []ForeignDonationReport
	err = db.Find(&reports).Error
	if err != nil {
		return ForeignDonationDashboard{}, err
	}

	return ComputeDashboard(transactions, reports, today, topN), nil
}
