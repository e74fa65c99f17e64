package models

import (
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Project is a project of the organization. Expenses and most income are
// attributed to a project, budgets are allocated per project.
type Project struct {
	DefaultModel
	Name   string `gorm:"uniqueIndex"`
	Note   string
	Budget decimal.Decimal `gorm:"type:DECIMAL(20,8)"` // Initial budget. Used to create the first allocation
}

func (p Project) Self() string {
	return "Project"
}

func (p *Project) BeforeSave(_ *gorm.DB) error {
	p.Name = strings.TrimSpace(p.Name)
	p.Note = strings.TrimSpace(p.Note)

	v := &ValidationError{Resource: "project"}
	if p.Name == "" {
		v.add("name", "must not be empty")
	}

	if p.Budget.IsNegative() {
		v.add("budget", "must not be negative")
	}

	return v.orNil()
}

// AfterCreate creates the initial budget allocation for projects
// that are created with a budget.
func (p *Project) AfterCreate(tx *gorm.DB) error {
	if !p.Budget.IsPositive() {
		return nil
	}

	return tx.Create(&BudgetAllocation{
		ProjectID:       p.ID,
		AllocatedAmount: p.Budget,
		Note:            "Initial budget for project " + p.Name,
	}).Error
}
