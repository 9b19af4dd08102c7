package v1_test

import (
	"fmt"
	"net/http"
	"testing"

	v1 "github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/controllers/v1"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestResetOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/reset", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

// TestResetConfirmation verifies that a reset without the confirmation
// phrase deletes nothing.
func (suite *TestSuiteStandard) TestResetConfirmation() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{})

	tests := []struct {
		name  string
		query string
	}{
		{"No confirmation", ""},
		{"Wrong confirmation", "confirm=yes"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/reset?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)

			var count int64
			models.DB.Model(&models.Transaction{}).Count(&count)
			assert.Equal(t, int64(1), count)
		})
	}
}

func (suite *TestSuiteStandard) TestResetInvalidScope() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reset?scope=SOME&confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestResetScopes verifies what each scope deletes and what it keeps.
func (suite *TestSuiteStandard) TestResetScopes() {
	tests := []struct {
		name                string
		scope               string
		remainingExpenses   int64
		remainingIncome     int64
		remainingCategories int64
		remainingSavings    int64
	}{
		{"ALL", "ALL", 0, 0, 0, 0},
		{"Default is ALL", "", 0, 0, 0, 0},
		{"EXPENSES", "EXPENSES", 0, 1, 1, 1},
		{"INCOME", "INCOME", 2, 0, 1, 1},
		{"CATEGORIES", "CATEGORIES", 2, 1, 0, 1},
		{"BALANCE", "BALANCE", 0, 0, 1, 1},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			// Fresh state per scope
			suite.CloseDB()
			suite.SetupTest()

			category := createTestCategory(t, v1.CategoryEditable{Name: "Groceries"})
			_ = createTestTransaction(t, v1.TransactionEditable{CategoryID: category.Data.ID})
			_ = createTestTransaction(t, v1.TransactionEditable{})
			_ = createTestTransaction(t, v1.TransactionEditable{Type: models.TypeIncome})
			_ = createTestSaving(t, v1.SavingEditable{})

			query := "confirm=yes-please-delete-everything"
			if tt.scope != "" {
				query = fmt.Sprintf("scope=%s&%s", tt.scope, query)
			}

			r := test.Request(t, http.MethodPost, fmt.Sprintf("http://example.com/v1/reset?%s", query), "")
			test.AssertHTTPStatus(t, &r, http.StatusNoContent)

			var count int64
			models.DB.Model(&models.Transaction{}).Where("type = ?", models.TypeExpense).Count(&count)
			assert.Equal(t, tt.remainingExpenses, count, "expenses")

			models.DB.Model(&models.Transaction{}).Where("type = ?", models.TypeIncome).Count(&count)
			assert.Equal(t, tt.remainingIncome, count, "income")

			models.DB.Model(&models.Category{}).Count(&count)
			assert.Equal(t, tt.remainingCategories, count, "categories")

			models.DB.Model(&models.Saving{}).Count(&count)
			assert.Equal(t, tt.remainingSavings, count, "savings")
		})
	}
}

// TestResetAllRemovesPin verifies that a full reset also drops the
// settings, including the PIN.
func (suite *TestSuiteStandard) TestResetAllRemovesPin() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"pin": "1234"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/reset?confirm=yes-please-delete-everything", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.PinSet)
}
