package models_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/ngo-ledger/backend/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestDonorValidation() {
	tests := []struct {
		name  string
		donor models.Donor
		field string
	}{
		{"Empty name", models.Donor{Name: "  "}, "name"},
		{"Member and internal", models.Donor{Name: "Leila", IsMember: true, IsInternal: true, MemberID: "M-1"}, "isInternal"},
		{"Member without member ID", models.Donor{Name: "Leila", IsMember: true}, "memberId"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			err := models.DB.Create(&tt.donor).Error
			assert.ErrorIs(t, err, models.ErrValidation)

			var v *models.ValidationError
			if assert.ErrorAs(t, err, &v) {
				assert.Contains(t, v.Fields, tt.field)
			}
		})
	}
}

func (suite *TestSuiteStandard) TestDonorBeforeSave() {
	donor := suite.createTestDonor(models.Donor{Name: " Fondation Horizon ", Email: " contact@horizon.example ", MemberID: "M-12"})

	suite.Assert().Equal("Fondation Horizon", donor.Name)
	suite.Assert().Equal("contact@horizon.example", donor.Email)
	suite.Assert().Equal("", donor.MemberID, "Member ID must be cleared for non-members")
}

func (suite *TestSuiteStandard) TestDonorClassification() {
	suite.Assert().Equal(models.DonorMember, models.Donor{IsMember: true}.Classification())
	suite.Assert().Equal(models.DonorInternal, models.Donor{IsInternal: true}.Classification())
	suite.Assert().Equal(models.DonorExternal, models.Donor{}.Classification())
	suite.Assert().True(models.Donor{}.IsExternal())
	suite.Assert().False(models.Donor{IsMember: true}.IsExternal())
}

func (suite *TestSuiteStandard) TestDonorTotalDonations() {
	donor := suite.createTestDonor(models.Donor{})
	project := suite.createTestProject(models.Project{})

	total, err := donor.TotalDonations(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(total.IsZero(), "Total for donor without transactions must be zero, is %s", total)

	donation := func(amount int64) models.Transaction {
		return suite.submitTestTransaction(models.Transaction{
			Type:        models.TypeIncome,
			Category:    models.CategoryDonation,
			Amount:      decimal.NewFromInt(amount),
			Description: "Donation",
			DonorID:     &donor.ID,
			ProjectID:   &project.ID,
		})
	}

	suite.verifyTestTransaction(donation(100).ID)
	suite.verifyTestTransaction(donation(250).ID)
	_ = donation(1000)

	total, err = donor.TotalDonations(models.DB)
	suite.Require().Nil(err)
	suite.Assert().True(total.Equal(decimal.NewFromInt(350)), "Only verified donations must be counted, total is %s", total)
}

func (suite *TestSuiteStandard) TestDonorDeleteReferenced() {
	donor := suite.createTestDonor(models.Donor{})
	project := suite.createTestProject(models.Project{})

	suite.submitTestTransaction(models.Transaction{
		Type:        models.TypeIncome,
		Category:    models.CategoryDonation,
		Amount:      decimal.NewFromInt(10),
		Description: "Donation",
		DonorID:     &donor.ID,
		ProjectID:   &project.ID,
	})

	err := models.DB.Delete(&donor).Error
	suite.Assert().ErrorIs(err, models.ErrStillReferenced)
}

func (suite *TestSuiteStandard) TestUpdateDonor() {
	donor := suite.createTestDonor(models.Donor{Name: "Leila Trabelsi"})

	donor.Name = " Leila Ben Salah "
	donor.IsMember = true
	donor.MemberID = "M-9"
	updated, err := models.UpdateDonor(models.DB, donor)
	suite.Require().Nil(err, "Donors without reports can change their classification")
	suite.Assert().Equal("Leila Ben Salah", updated.Name)
	suite.Assert().Equal(models.DonorMember, updated.Classification())

	updated.MemberID = ""
	_, err = models.UpdateDonor(models.DB, updated)
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = models.UpdateDonor(models.DB, models.Donor{DefaultModel: models.DefaultModel{ID: uuid.New()}, Name: "Nobody"})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestUpdateDonorWithReports() {
	donation := suite.createForeignDonation(types.Today(), 1200)
	suite.ensureTestReport(donation.ID)

	var donor models.Donor
	suite.Require().Nil(models.DB.First(&donor, "id = ?", *donation.DonorID).Error)

	tests := []struct {
		name   string
		change func(*models.Donor)
	}{
		{"Member", func(d *models.Donor) {
			d.IsMember = true
			d.MemberID = "M-10"
		}},
		{"Internal", func(d *models.Donor) { d.IsInternal = true }},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			d := donor
			tt.change(&d)

			_, err := models.UpdateDonor(models.DB, d)
			assert.ErrorIs(t, err, models.ErrInvalidState)

			var stored models.Donor
			assert.Nil(t, models.DB.First(&stored, "id = ?", donor.ID).Error)
			assert.True(t, stored.IsExternal(), "The donor must still be external")

			report, err := models.EnsureReport(models.DB, donation.ID)
			assert.Nil(t, err)
			assert.NotNil(t, report)
		})
	}

	// Edits that keep the classification are possible
	donor.Address = "Rue du Rhône 12, Genève"
	updated, err := models.UpdateDonor(models.DB, donor)
	suite.Require().Nil(err)
	suite.Assert().Equal("Rue du Rhône 12, Genève", updated.Address)
}
