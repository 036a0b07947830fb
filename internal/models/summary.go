package models

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// ProgramAllocation is the roll-up of all allocations for a single program.
type ProgramAllocation struct {
	ProgramCode string          `json:"programCode" example:"EDU-K12"` // Code of the program
	Allocated   decimal.Decimal `json:"allocated" example:"150000"`    // Sum of all allocation amounts for the program
}

// Summary is the aggregate view over all funds, allocations and disbursements.
type Summary struct {
	TotalFunds     int64               `json:"totalFunds" example:"4"`           // Number of funds
	TotalBudget    decimal.Decimal     `json:"totalBudget" example:"12000000"`   // Sum of the total budgets of all funds
	TotalAllocated decimal.Decimal     `json:"totalAllocated" example:"7250000"` // Sum of all allocation amounts
	TotalDisbursed decimal.Decimal     `json:"totalDisbursed" example:"3100000"` // Sum of all disbursement amounts
	ByProgram      []ProgramAllocation `json:"byProgram"`                        // Allocation sums grouped by program
}

// Summarize computes the summary for the current contents of the database.
//
// It is a pure read. Every call recomputes all values from the stored
// entities, there is no cached state.
func Summarize(db *gorm.DB) (Summary, error) {
	summary := Summary{
		ByProgram: make([]ProgramAllocation, 0),
	}

	err := db.Model(&Fund{}).Count(&summary.TotalFunds).Error
	if err != nil {
		return Summary{}, err
	}

	summary.TotalBudget, err = sumColumn(db, "funds", "total_budget")
	if err != nil {
		return Summary{}, err
	}

	// All allocations count toward the allocated sum, rejected ones included
	summary.TotalAllocated, err = sumColumn(db, "allocations", "amount")
	if err != nil {
		return Summary{}, err
	}

	summary.TotalDisbursed, err = sumColumn(db, "disbursements", "amount")
	if err != nil {
		return Summary{}, err
	}

	err = db.
		Select("program_code, SUM(amount) AS allocated").
		Table("allocations").
		Group("program_code").
		Find(&summary.ByProgram).
		Error
	if err != nil {
		return Summary{}, err
	}

	// Largest allocation sum first, ties are broken by program code
	slices.SortFunc(summary.ByProgram, func(a, b ProgramAllocation) int {
		if c := b.Allocated.Cmp(a.Allocated); c != 0 {
			return c
		}

		return strings.Compare(a.ProgramCode, b.ProgramCode)
	})

	return summary, nil
}

// sumColumn adds up a decimal column over all rows of a table.
func sumColumn(db *gorm.DB, table string, column string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := db.
		Select(fmt.Sprintf("SUM(%s)", column)).
		Table(table).
		Find(&sum).
		Error
	if err != nil {
		return decimal.Zero, err
	}

	// If there are no rows, the sum is nil
	if !sum.Valid {
		return decimal.NewFromFloat(0), nil
	}

	return sum.Decimal, nil
}
