package models

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/documents"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportingPeriod is the number of days after the donation within which
// the disclosure must be completed.
const ReportingPeriod = 30

// NearDeadlineDays is the number of days before the deadline from which
// on reports are flagged.
const NearDeadlineDays = 5

type ReportStatus string

const (
	ReportPending      ReportStatus = "pending"
	ReportSent         ReportStatus = "sent"
	ReportAcknowledged ReportStatus = "acknowledged"
	ReportCompleted    ReportStatus = "completed"
)

var reportStatusOrder = map[ReportStatus]int{
	ReportPending:      0,
	ReportSent:         1,
	ReportAcknowledged: 2,
	ReportCompleted:    3,
}

// Valid reports if s is a known status.
func (s ReportStatus) Valid() bool {
	_, ok := reportStatusOrder[s]
	return ok
}

type Severity string

const (
	SeverityNone         Severity = ""
	SeverityNormal       Severity = "normal"
	SeverityNearDeadline Severity = "near-deadline"
	SeverityOverdue      Severity = "overdue"
)

// ForeignDonationReport tracks the mandatory disclosure of a foreign donation.
type ForeignDonationReport struct {
	DefaultModel
	Transaction                 Transaction  `gorm:"constraint:OnDelete:CASCADE"`
	TransactionID               uuid.UUID    `gorm:"uniqueIndex"`
	Status                      ReportStatus `gorm:"index;default:pending"`
	ReportingDeadline           types.Date
	LetterGenerated             bool
	LetterFile                  string // Handle of the generated letter
	JournalPublicationText      string
	JournalPublicationReference string
	JournalPublicationDate      types.Date
	SentDate                    types.Date
	Note                        string
}

func (r ForeignDonationReport) Self() string {
	return "Foreign Donation Report"
}

func (r *ForeignDonationReport) BeforeSave(_ *gorm.DB) error {
	r.JournalPublicationReference = strings.TrimSpace(r.JournalPublicationReference)
	r.Note = strings.TrimSpace(r.Note)

	return nil
}

// DaysUntilDeadline returns the number of days from today until the reporting deadline.
// A negative value is the number of days the report is overdue.
func (r ForeignDonationReport) DaysUntilDeadline(today types.Date) int {
	return today.DaysUntil(r.ReportingDeadline)
}

// Severity classifies how urgent the report is. Completed reports have no severity.
func (r ForeignDonationReport) Severity(today types.Date) Severity {
	if r.Status == ReportCompleted {
		return SeverityNone
	}

	return severity(r.DaysUntilDeadline(today))
}

func severity(days int) Severity {
	switch {
	case days < 0:
		return SeverityOverdue
	case days <= NearDeadlineDays:
		return SeverityNearDeadline
	default:
		return SeverityNormal
	}
}

// getReport loads a report with its transaction and the donor of the transaction.
func getReport(tx *gorm.DB, id uuid.UUID) (ForeignDonationReport, error) {
	var r ForeignDonationReport
	err := tx.Preload("Transaction.Donor").Preload("Transaction.Project").First(&r, "id = ?", id).Error
	if errors.Is(err, ErrResourceNotFound) {
		return ForeignDonationReport{}, &NotFoundError{Resource: "foreign donation report", ID: id}
	} else if err != nil {
		return ForeignDonationReport{}, err
	}

	return r, nil
}

// GetReport returns the report with the specified ID.
func GetReport(db *gorm.DB, id uuid.UUID) (ForeignDonationReport, error) {
	return getReport(db, id)
}

// FindReport returns the report for a transaction. If there is none,
// it returns nil without an error.
func FindReport(db *gorm.DB, transactionID uuid.UUID) (*ForeignDonationReport, error) {
	var reports []ForeignDonationReport
	err := db.Where(&ForeignDonationReport{TransactionID: transactionID}).Limit(1).Find(&reports).Error
	if err != nil {
		return nil, err
	}

	if len(reports) == 0 {
		return nil, nil
	}

	return &reports[0], nil
}

var ensureGroup singleflight.Group

// EnsureReport returns the report for a transaction, creating it if the
// transaction is a foreign donation without a report.
//
// For transactions that are not foreign donations, it returns nil without an error.
func EnsureReport(db *gorm.DB, transactionID uuid.UUID) (*ForeignDonationReport, error) {
	v, err, _ := ensureGroup.Do(transactionID.String(), func() (any, error) {
		return ensureReport(db, transactionID)
	})
	if err != nil {
		return nil, err
	}

	return v.(*ForeignDonationReport), nil
}

func ensureReport(db *gorm.DB, transactionID uuid.UUID) (*ForeignDonationReport, error) {
	t, err := GetTransaction(db, transactionID)
	if err != nil {
		return nil, err
	}

	if !IsForeignDonation(t) {
		return nil, nil
	}

	existing, err := FindReport(db, transactionID)
	if err != nil || existing != nil {
		return existing, err
	}

	report := ForeignDonationReport{
		TransactionID:     transactionID,
		Status:            ReportPending,
		ReportingDeadline: t.Date.AddDays(ReportingPeriod),
	}

	err = db.Omit(clause.Associations).Create(&report).Error
	if errors.Is(err, ErrReportExists) {
		// Created by another process since we looked
		return FindReport(db, transactionID)
	} else if err != nil {
		return nil, err
	}

	log.Info().Str("transaction", transactionID.String()).Str("report", report.ID.String()).Str("deadline", report.ReportingDeadline.String()).Msg("foreign donation report created")
	return &report, nil
}

func (r ForeignDonationReport) documentContext() documents.ReportContext {
	t := r.Transaction
	return documents.ReportContext{
		ReportID:          r.ID,
		TransactionID:     t.ID,
		TransactionDate:   t.Date,
		ReportingDeadline: r.ReportingDeadline,
		Amount:            t.Amount,
		Description:       t.Description,
		ReferenceNumber:   t.ReferenceNumber,
		DonorName:         t.Donor.Name,
		DonorAddress:      t.Donor.Address,
		DonorAnonymous:    t.Donor.IsAnonymous,
		ProjectName:       t.Project.Name,
	}
}

// GenerateLetter generates the letter to the authorities and stores its handle.
//
// If the generator fails, an *ExternalServiceError is returned and the report
// is unchanged. Repeated calls regenerate the letter.
func GenerateLetter(ctx context.Context, db *gorm.DB, g documents.Generator, id uuid.UUID) (ForeignDonationReport, error) {
	report, err := getReport(db, id)
	if err != nil {
		return ForeignDonationReport{}, err
	}

	handle, err := g.GenerateLetter(ctx, report.documentContext())
	documentCount.WithLabelValues("letter", result(err)).Inc()
	if err != nil {
		log.Error().Str("report", id.String()).Err(err).Msg("letter generation failed")
		return ForeignDonationReport{}, &ExternalServiceError{Operation: "letter generation", ReportID: id, Err: err}
	}

	err = db.Model(&report).Select("letter_file", "letter_generated").Updates(ForeignDonationReport{
		LetterFile:      handle,
		LetterGenerated: true,
	}).Error
	if err != nil {
		return ForeignDonationReport{}, err
	}

	return getReport(db, id)
}

// GenerateJournalPublicationText generates the text for the journal publication
// and stores it on the report. The status of the report is not changed.
//
// If the generator fails, an *ExternalServiceError is returned and the report
// is unchanged.
func GenerateJournalPublicationText(ctx context.Context, db *gorm.DB, g documents.Generator, id uuid.UUID) (ForeignDonationReport, error) {
	report, err := getReport(db, id)
	if err != nil {
		return ForeignDonationReport{}, err
	}

	text, err := g.GenerateJournalText(ctx, report.documentContext())
	documentCount.WithLabelValues("journal", result(err)).Inc()
	if err != nil {
		log.Error().Str("report", id.String()).Err(err).Msg("journal publication text generation failed")
		return ForeignDonationReport{}, &ExternalServiceError{Operation: "journal publication text generation", ReportID: id, Err: err}
	}

	err = db.Model(&report).Update("journal_publication_text", text).Error
	if err != nil {
		return ForeignDonationReport{}, err
	}

	return getReport(db, id)
}

// StatusUpdate changes the status and the publication metadata of a report.
// Nil fields are left unchanged.
type StatusUpdate struct {
	Status                      ReportStatus
	JournalPublicationText      *string
	JournalPublicationReference *string
	JournalPublicationDate      *types.Date
	Note                        *string
}

// Advance moves a report forward to the status in u and updates the
// publication metadata. The status must not be earlier than the current
// one, updating metadata while keeping the status is allowed.
//
// To reach the completed status, the letter must be generated and the journal
// publication text, reference and date must be set.
func Advance(db *gorm.DB, id uuid.UUID, u StatusUpdate) (ForeignDonationReport, error) {
	return updateStatus(db, id, u, true)
}

// ForceTransition sets any status, ignoring order and completion requirements.
// It is meant for administrative corrections.
func ForceTransition(db *gorm.DB, id uuid.UUID, u StatusUpdate) (ForeignDonationReport, error) {
	return updateStatus(db, id, u, false)
}

func updateStatus(db *gorm.DB, id uuid.UUID, u StatusUpdate, guarded bool) (ForeignDonationReport, error) {
	if !u.Status.Valid() {
		return ForeignDonationReport{}, &ValidationError{
			Resource: "foreign donation report",
			Fields:   map[string]string{"status": "must be one of 'pending', 'sent', 'acknowledged', 'completed'"},
		}
	}

	err := transaction(db, func(tx *gorm.DB) error {
		report, err := getReport(tx, id)
		if err != nil {
			return err
		}

		if u.JournalPublicationText != nil {
			report.JournalPublicationText = *u.JournalPublicationText
		}

		if u.JournalPublicationReference != nil {
			report.JournalPublicationReference = *u.JournalPublicationReference
		}

		if u.JournalPublicationDate != nil {
			report.JournalPublicationDate = *u.JournalPublicationDate
		}

		if u.Note != nil {
			report.Note = *u.Note
		}

		if guarded {
			if reportStatusOrder[u.Status] < reportStatusOrder[report.Status] {
				return &InvalidStateError{Resource: "foreign donation report", ID: id, Current: string(report.Status), Operation: "move back to " + string(u.Status)}
			}

			if u.Status == ReportCompleted {
				if err := report.completionRequirements(); err != nil {
					return err
				}
			}
		} else if u.Status != report.Status {
			log.Warn().Str("report", id.String()).Str("from", string(report.Status)).Str("to", string(u.Status)).Msg("forced foreign donation report status transition")
		}

		if u.Status == ReportSent && report.SentDate.IsZero() {
			report.SentDate = types.Today()
		}

		report.Status = u.Status

		return tx.Model(&report).Select(
			"status",
			"journal_publication_text",
			"journal_publication_reference",
			"journal_publication_date",
			"sent_date",
			"note",
		).Updates(&report).Error
	})
	if err != nil {
		return ForeignDonationReport{}, err
	}

	return getReport(db, id)
}

// completionRequirements returns a *ValidationError listing what is missing
// for the report to be completed.
func (r ForeignDonationReport) completionRequirements() error {
	v := &ValidationError{Resource: "foreign donation report"}

	if !r.LetterGenerated {
		v.add("letterGenerated", "the letter must be generated before the report can be completed")
	}

	if strings.TrimSpace(r.JournalPublicationText) == "" {
		v.add("journalPublicationText", "must be set before the report can be completed")
	}

	if r.JournalPublicationReference == "" {
		v.add("journalPublicationReference", "must be set before the report can be completed")
	}

	if r.JournalPublicationDate.IsZero() {
		v.add("journalPublicationDate", "must be set before the report can be completed")
	}

	return v.orNil()
}
