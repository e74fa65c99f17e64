package models_test

import (
	"sync"

	"github.com/google/uuid"
	"github.com/ngo-ledger/backend/internal/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTestExpense(project models.Project, amount int64, allocationID *uuid.UUID) models.Transaction {
	return suite.submitTestTransaction(models.Transaction{
		Type:               models.TypeExpense,
		Category:           models.CategoryProjectExpense,
		Amount:             decimal.NewFromInt(amount),
		Description:        "School books",
		ProjectID:          &project.ID,
		BudgetAllocationID: allocationID,
	})
}

func (suite *TestSuiteStandard) allocationUsed(id uuid.UUID) decimal.Decimal {
	var allocation models.BudgetAllocation
	suite.Require().Nil(models.DB.First(&allocation, "id = ?", id).Error)
	return allocation.UsedAmount
}

func (suite *TestSuiteStandard) TestVerifyStrictApprove() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(1000)})
	expense := suite.createTestExpense(project, 400, &allocation.ID)

	verified, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{
		Decision:   models.DecisionApprove,
		ReviewerID: "treasurer",
		Notes:      "Receipt checked",
	})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusVerified, verified.Status)
	suite.Assert().Equal("treasurer", verified.ReviewerID)
	suite.Assert().Equal("Receipt checked", verified.VerificationNotes)
	suite.Assert().NotNil(verified.VerifiedAt)
	suite.Assert().True(suite.allocationUsed(allocation.ID).Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestVerifyReject() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(100)})
	expense := suite.createTestExpense(project, 400, &allocation.ID)

	rejected, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionReject, ReviewerID: "treasurer"})
	suite.Require().Nil(err, "Rejecting must not check the allocation")
	suite.Assert().Equal(models.StatusRejected, rejected.Status)
	suite.Assert().True(suite.allocationUsed(allocation.ID).IsZero())
}

func (suite *TestSuiteStandard) TestVerifyStrictInsufficientFunds() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(600)})
	expense := suite.createTestExpense(project, 700, &allocation.ID)

	_, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove})
	suite.Assert().ErrorIs(err, models.ErrInsufficientFunds)

	stored, err := models.GetTransaction(models.DB, expense.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusPending, stored.Status, "The transaction must stay pending")
	suite.Assert().Equal("", stored.ReviewerID)
	suite.Assert().True(suite.allocationUsed(allocation.ID).IsZero(), "The allocation must not change")
}

func (suite *TestSuiteStandard) TestVerifyWithOverride() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(600)})
	expense := suite.createTestExpense(project, 700, &allocation.ID)

	verified, warning, err := models.VerifyWithOverride(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove, ReviewerID: "president"})
	suite.Require().Nil(err)
	suite.Assert().Equal(models.StatusVerified, verified.Status)

	if suite.Assert().NotNil(warning) {
		suite.Assert().Equal(allocation.ID, warning.AllocationID)
		suite.Assert().True(warning.Remaining.Equal(decimal.NewFromInt(600)))
		suite.Assert().True(warning.Shortfall().Equal(decimal.NewFromInt(100)))
	}

	var stored models.BudgetAllocation
	suite.Require().Nil(models.DB.First(&stored, "id = ?", allocation.ID).Error)
	suite.Assert().True(stored.Remaining().Equal(decimal.NewFromInt(-100)), "Remaining is %s", stored.Remaining())
}

func (suite *TestSuiteStandard) TestVerifyWithOverrideCovered() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(600)})
	expense := suite.createTestExpense(project, 100, &allocation.ID)

	_, warning, err := models.VerifyWithOverride(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove})
	suite.Require().Nil(err)
	suite.Assert().Nil(warning, "No warning must be returned when the allocation covers the expense")
}

func (suite *TestSuiteStandard) TestVerifyTwice() {
	expense := suite.submitTestTransaction(models.Transaction{
		Type:        models.TypeExpense,
		Category:    models.CategorySalary,
		Amount:      decimal.NewFromInt(1200),
		Description: "Salary coordinator",
	})

	suite.verifyTestTransaction(expense.ID)

	_, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionReject})
	suite.Assert().ErrorIs(err, models.ErrInvalidState)

	_, _, err = models.VerifyWithOverride(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove})
	suite.Assert().ErrorIs(err, models.ErrInvalidState)
}

func (suite *TestSuiteStandard) TestVerifyInvalid() {
	_, err := models.VerifyStrict(models.DB, uuid.New(), models.Verification{Decision: "maybe"})
	suite.Assert().ErrorIs(err, models.ErrValidation)

	_, err = models.VerifyStrict(models.DB, uuid.New(), models.Verification{Decision: models.DecisionApprove})
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
}

func (suite *TestSuiteStandard) TestVerifyDefaultAllocation() {
	project := suite.createTestProject(models.Project{})
	suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(100)})
	large := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(900)})
	expense := suite.createTestExpense(project, 50, nil)

	verified := suite.verifyTestTransaction(expense.ID)
	if suite.Assert().NotNil(verified.BudgetAllocationID) {
		suite.Assert().Equal(large.ID, *verified.BudgetAllocationID, "The allocation with the greatest remaining amount must be used")
	}
	suite.Assert().True(suite.allocationUsed(large.ID).Equal(decimal.NewFromInt(50)))
}

func (suite *TestSuiteStandard) TestVerifyProjectWideExpense() {
	project := suite.createTestProject(models.Project{Budget: decimal.NewFromInt(1000)})
	expense := suite.submitTestTransaction(models.Transaction{
		Type:          models.TypeExpense,
		Category:      models.CategoryProjectExpense,
		Amount:        decimal.NewFromInt(300),
		Description:   "Project coordination",
		ProjectID:     &project.ID,
		IsProjectWide: true,
	})

	_, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove})
	suite.Assert().ErrorIs(err, models.ErrBudgetRequired)

	allocations, err := models.AllocationsForProject(models.DB, project.ID)
	suite.Require().Nil(err)
	suite.Require().Len(allocations, 1)

	verified, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove, BudgetAllocationID: &allocations[0].ID})
	suite.Require().Nil(err)
	if suite.Assert().NotNil(verified.BudgetAllocationID) {
		suite.Assert().Equal(allocations[0].ID, *verified.BudgetAllocationID)
	}
}

func (suite *TestSuiteStandard) TestVerifySuppliedAllocationOfOtherProject() {
	project := suite.createTestProject(models.Project{})
	other := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: other.ID, AllocatedAmount: decimal.NewFromInt(100)})
	expense := suite.createTestExpense(project, 50, nil)

	_, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove, BudgetAllocationID: &allocation.ID})
	suite.Assert().ErrorIs(err, models.ErrValidation)
}

func (suite *TestSuiteStandard) TestVerifyConcurrent() {
	project := suite.createTestProject(models.Project{})
	allocation := suite.createTestBudgetAllocation(models.BudgetAllocation{ProjectID: project.ID, AllocatedAmount: decimal.NewFromInt(1000)})
	expense := suite.createTestExpense(project, 100, &allocation.ID)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var succeeded int

	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := models.VerifyStrict(models.DB, expense.ID, models.Verification{Decision: models.DecisionApprove})

			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				succeeded++
			} else {
				suite.Assert().ErrorIs(err, models.ErrInvalidState)
			}
		}()
	}
	wg.Wait()

	suite.Assert().Equal(1, succeeded, "Exactly one verification must succeed")
	suite.Assert().True(suite.allocationUsed(allocation.ID).Equal(decimal.NewFromInt(100)), "The expense must be applied once")
}
