package models

import (
	"regexp"
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"gorm.io/gorm"
)

var pinPattern = regexp.MustCompile("^[0-9]{4}$")

// Settings holds the app-level preferences: the optional PIN gating
// app access and the month selected for the savings view. Like the
// budget it is a singleton row.
//
// PIN enforcement happens at the API layer. The derivation engine
// never sees it.
type Settings struct {
	DefaultModel
	Pin           string      `json:"-"`                             // Never serialized in API responses
	SelectedMonth types.Month `json:"selectedMonth" example:"2024-03"`
}

// BeforeSave validates the PIN format and defaults the selected month
// to the current one.
func (s *Settings) BeforeSave(_ *gorm.DB) (err error) {
	if s.Pin != "" && !pinPattern.MatchString(s.Pin) {
		return ErrPinFormatInvalid
	}

	if s.SelectedMonth.IsZero() {
		s.SelectedMonth = types.MonthOf(time.Now())
	}

	return nil
}

// FetchSettings returns the settings, creating the row on first use.
func FetchSettings(db *gorm.DB) (Settings, error) {
	var settings Settings

	err := db.FirstOrCreate(&settings, Settings{}).Error
	if err != nil {
		return Settings{}, err
	}

	return settings, nil
}

// PinSet reports whether app access is gated by a PIN.
func (s Settings) PinSet() bool {
	return s.Pin != ""
}
