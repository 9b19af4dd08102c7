package models

import (
	"strings"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Saving is an amount put aside for a specific month. Savings are
// aggregated per month key and never mixed into transaction totals.
type Saving struct {
	DefaultModel
	Amount decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"1000"`
	Month  types.Month     `json:"month" example:"2024-03"`
	Note   string          `json:"note" example:"Eid fund" default:""`
	Date   time.Time       `json:"date" example:"2024-03-01T10:00:00Z"`
}

// BeforeSave validates the saving entry and defaults the date.
func (s *Saving) BeforeSave(_ *gorm.DB) (err error) {
	s.Note = strings.TrimSpace(s.Note)

	if !s.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if s.Month.IsZero() {
		return ErrSavingMonthNotSet
	}

	if s.Date.IsZero() {
		s.Date = time.Now().In(time.UTC)
	} else {
		s.Date = s.Date.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
func (s *Saving) AfterFind(tx *gorm.DB) (err error) {
	err = s.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	s.Date = s.Date.In(time.UTC)
	return nil
}

