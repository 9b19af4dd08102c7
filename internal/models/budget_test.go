package models_test

import (
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestFetchBudgetCreatesSingleton() {
	budget, err := models.FetchBudget(models.DB)
	require.Nil(suite.T(), err)

	assert.True(suite.T(), budget.TotalMonthly.IsZero())
	assert.True(suite.T(), budget.DailyLimit.IsZero())

	again, err := models.FetchBudget(models.DB)
	require.Nil(suite.T(), err)
	assert.Equal(suite.T(), budget.ID, again.ID)

	var count int64
	models.DB.Model(&models.Budget{}).Count(&count)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *TestSuiteStandard) TestBudgetUpdate() {
	budget, err := models.FetchBudget(models.DB)
	require.Nil(suite.T(), err)

	budget.TotalMonthly = decimal.NewFromInt(20000)
	budget.DailyLimit = decimal.NewFromInt(400)
	require.Nil(suite.T(), models.DB.Save(&budget).Error)

	reloaded, err := models.FetchBudget(models.DB)
	require.Nil(suite.T(), err)
	assert.True(suite.T(), reloaded.TotalMonthly.Equal(decimal.NewFromInt(20000)))
	assert.True(suite.T(), reloaded.DailyLimit.Equal(decimal.NewFromInt(400)))
}

func (suite *TestSuiteStandard) TestBudgetNegativeAmounts() {
	budget, err := models.FetchBudget(models.DB)
	require.Nil(suite.T(), err)

	budget.TotalMonthly = decimal.NewFromInt(-1)
	err = models.DB.Save(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetAmountNegative)

	budget.TotalMonthly = decimal.Zero
	budget.DailyLimit = decimal.NewFromInt(-400)
	err = models.DB.Save(&budget).Error
	assert.ErrorIs(suite.T(), err, models.ErrBudgetAmountNegative)
}
