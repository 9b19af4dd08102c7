package models

import (
	"gorm.io/gorm"
)

// State is a read-only snapshot of the full application state. The
// derivation engine consumes it per call and never retains it; the
// backup export and import move it in one piece.
type State struct {
	Transactions []Transaction `json:"transactions"`
	Categories   []Category    `json:"categories"`
	Budget       Budget        `json:"budget"`
	Savings      []Saving      `json:"savings"`
	Settings     Settings      `json:"settings"`
}

// LoadState reads a snapshot of everything the derivation engine and
// the backup export need.
//
// Transactions are ordered by date, not by insertion: financial
// computations re-derive chronology from the date, display order is a
// concern of the API layer.
func LoadState(db *gorm.DB) (State, error) {
	var state State

	err := db.Order("date ASC").Find(&state.Transactions).Error
	if err != nil {
		return State{}, err
	}

	err = db.Order("name ASC").Find(&state.Categories).Error
	if err != nil {
		return State{}, err
	}

	state.Budget, err = FetchBudget(db)
	if err != nil {
		return State{}, err
	}

	err = db.Order("date ASC").Find(&state.Savings).Error
	if err != nil {
		return State{}, err
	}

	state.Settings, err = FetchSettings(db)
	if err != nil {
		return State{}, err
	}

	return state, nil
}

// RestoreState replaces the stored state with the one passed in. Used
// by the backup import; everything happens in one transaction so a
// failed import leaves the previous state untouched.
func RestoreState(db *gorm.DB, state State) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []interface{}{&Transaction{}, &Category{}, &Saving{}, &Budget{}, &Settings{}} {
			err := tx.Where("1 = 1").Delete(model).Error
			if err != nil {
				return err
			}
		}

		for i := range state.Transactions {
			err := tx.Create(&state.Transactions[i]).Error
			if err != nil {
				return err
			}
		}

		for i := range state.Categories {
			err := tx.Create(&state.Categories[i]).Error
			if err != nil {
				return err
			}
		}

		for i := range state.Savings {
			err := tx.Create(&state.Savings[i]).Error
			if err != nil {
				return err
			}
		}

		err := tx.Create(&state.Budget).Error
		if err != nil {
			return err
		}

		return tx.Create(&state.Settings).Error
	})
}
