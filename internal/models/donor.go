package models

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// DonorClassification is the primary classification of a donor.
type DonorClassification string

const (
	DonorMember   DonorClassification = "member"
	DonorInternal DonorClassification = "internal"
	DonorExternal DonorClassification = "external"
)

// Donor is a person or organization giving money to the organization.
type Donor struct {
	DefaultModel
	Name        string
	Email       string
	Phone       string
	Address     string
	TaxID       string
	Note        string
	IsAnonymous bool
	IsMember    bool
	IsInternal  bool
	MemberID    string // Reference to the member in the member directory. Only set for members
	Archived    bool   // Archived donors are kept for existing transactions, but not offered for new ones
}

func (d Donor) Self() string {
	return "Donor"
}

// Classification returns the donor's primary classification.
func (d Donor) Classification() DonorClassification {
	switch {
	case d.IsMember:
		return DonorMember
	case d.IsInternal:
		return DonorInternal
	default:
		return DonorExternal
	}
}

// IsExternal reports if the donor is neither a member nor internal.
func (d Donor) IsExternal() bool {
	return !d.IsMember && !d.IsInternal
}

// BeforeSave
//   - trims whitespace from string fields
//   - clears the member reference for non-members
//   - rejects donors that are member and internal at the same time
func (d *Donor) BeforeSave(_ *gorm.DB) error {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Address = strings.TrimSpace(d.Address)
	d.TaxID = strings.TrimSpace(d.TaxID)
	d.Note = strings.TrimSpace(d.Note)
	d.MemberID = strings.TrimSpace(d.MemberID)

	if !d.IsMember {
		d.MemberID = ""
	}

	v := &ValidationError{Resource: "donor"}
	if d.Name == "" {
		v.add("name", "must not be empty")
	}

	if d.IsMember && d.IsInternal {
		v.add("isInternal", "a donor cannot be both a member and internal")
	}

	if d.IsMember && d.MemberID == "" {
		v.add("memberId", "must be set for member donors")
	}

	return v.orNil()
}

// UpdateDonor saves the editable fields of an existing donor.
//
// Whether a donor is external decides which of its donations are foreign
// donations. This cannot change while a foreign donation report exists for
// any of the donor's transactions.
func UpdateDonor(db *gorm.DB, d Donor) (Donor, error) {
	err := transaction(db, func(tx *gorm.DB) error {
		var current Donor
		err := tx.First(&current, "id = ?", d.ID).Error
		if errors.Is(err, ErrResourceNotFound) {
			return &NotFoundError{Resource: "donor", ID: d.ID}
		} else if err != nil {
			return err
		}

		if current.IsExternal() != d.IsExternal() {
			reports, err := current.reportCount(tx)
			if err != nil {
				return err
			}

			if reports > 0 {
				return &InvalidStateError{
					Resource:  "donor",
					ID:        d.ID,
					Current:   string(current.Classification()) + " with foreign donation reports",
					Operation: "change the classification of",
				}
			}
		}

		d.CreatedAt = current.CreatedAt
		return tx.Save(&d).Error
	})
	if err != nil {
		return Donor{}, err
	}

	return d, nil
}

// reportCount returns the number of foreign donation reports for transactions of the donor.
func (d Donor) reportCount(tx *gorm.DB) (int64, error) {
	var count int64
	err := tx.
		Model(&ForeignDonationReport{}).
		Joins("JOIN transactions ON transactions.id = foreign_donation_reports.transaction_id").
		Where("transactions.donor_id = ?", d.ID).
		Count(&count).Error

	return count, err
}

// TotalDonations returns the sum of all verified income transactions of the donor.
func (d Donor) TotalDonations(db *gorm.DB) (decimal.Decimal, error) {
	var total decimal.NullDecimal

	err := db.
		Table("transactions").
		Select("SUM(amount)").
		Where("donor_id = ? AND type = ? AND status = ?", d.ID, TypeIncome, StatusVerified).
		Row().
		Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}

	if !total.Valid {
		return decimal.Zero, nil
	}

	return total.Decimal, nil
}
