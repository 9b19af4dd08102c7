package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Budget holds the global spending limits. There is exactly one row,
// managed with FetchBudget.
type Budget struct {
	DefaultModel
	TotalMonthly decimal.Decimal `json:"totalMonthly" gorm:"type:DECIMAL(20,8)" example:"20000"` // Monthly goal, 0 = disabled
	DailyLimit   decimal.Decimal `json:"dailyLimit" gorm:"type:DECIMAL(20,8)" example:"400"`     // Daily limit, 0 = disabled
}

// BeforeSave rejects negative limits. A zero limit means the
// corresponding tracker is disabled.
func (b *Budget) BeforeSave(_ *gorm.DB) (err error) {
	if b.TotalMonthly.IsNegative() || b.DailyLimit.IsNegative() {
		return ErrBudgetAmountNegative
	}

	return nil
}

// FetchBudget returns the budget configuration, creating the row with
// disabled limits on first use.
func FetchBudget(db *gorm.DB) (Budget, error) {
	var budget Budget

	err := db.FirstOrCreate(&budget, Budget{}).Error
	if err != nil {
		return Budget{}, err
	}

	return budget, nil
}
