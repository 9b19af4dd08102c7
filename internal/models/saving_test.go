package models_test

import (
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func (suite *TestSuiteStandard) TestSavingCreate() {
	date := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	saving := suite.createTestSaving(models.Saving{
		Amount: decimal.NewFromInt(1000),
		Month:  types.MonthOf(date),
		Note:   " Eid fund ",
		Date:   date,
	})

	assert.Equal(suite.T(), "Eid fund", saving.Note)
	assert.True(suite.T(), saving.Amount.Equal(decimal.NewFromInt(1000)))
	assert.True(suite.T(), saving.Month.Equal(types.MonthOf(date)))
}

func (suite *TestSuiteStandard) TestSavingAmountMustBePositive() {
	month := types.MonthOf(time.Now())

	err := models.DB.Create(&models.Saving{Amount: decimal.Zero, Month: month}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)

	err = models.DB.Create(&models.Saving{Amount: decimal.NewFromInt(-500), Month: month}).Error
	assert.ErrorIs(suite.T(), err, models.ErrAmountNotPositive)
}

func (suite *TestSuiteStandard) TestSavingMonthRequired() {
	err := models.DB.Create(&models.Saving{Amount: decimal.NewFromInt(100)}).Error
	assert.ErrorIs(suite.T(), err, models.ErrSavingMonthNotSet)
}

func (suite *TestSuiteStandard) TestSavingDateDefault() {
	saving := suite.createTestSaving(models.Saving{
		Amount: decimal.NewFromInt(250),
		Month:  types.MonthOf(time.Now()),
	})

	assert.False(suite.T(), saving.Date.IsZero())
	assert.Equal(suite.T(), time.UTC, saving.Date.Location())
}
