package models_test

import (
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestProjectInitialAllocation() {
	project := suite.createTestProject(models.Project{Name: "Water wells", Budget: decimal.NewFromInt(5000)})

	allocations, err := models.AllocationsForProject(models.DB, project.ID)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 1)
	suite.Assert().True(allocations[0].AllocatedAmount.Equal(decimal.NewFromInt(5000)), "Allocated amount is %s", allocations[0].AllocatedAmount)
	suite.Assert().True(allocations[0].UsedAmount.IsZero())
	suite.Assert().Equal("Initial budget for project Water wells", allocations[0].Note)
}

func (suite *TestSuiteStandard) TestProjectWithoutBudget() {
	project := suite.createTestProject(models.Project{})

	allocations, err := models.AllocationsForProject(models.DB, project.ID)
	suite.Require().Nil(err)
	suite.Assert().Len(allocations, 0)
}

func (suite *TestSuiteStandard) TestProjectValidation() {
	err := models.DB.Create(&models.Project{Name: ""}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation)

	err = models.DB.Create(&models.Project{Name: "Negative", Budget: decimal.NewFromInt(-1)}).Error
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestProjectNameUnique() {
	suite.createTestProject(models.Project{Name: "School supplies"})

	err := models.DB.Create(&models.Project{Name: " School supplies "}).Error
	suite.Assert().ErrorIs(err, models.ErrProjectNameNotUnique)
}
