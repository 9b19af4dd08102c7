package v1_test

import (
	"net/http"

	v1 "github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/controllers/v1"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestExportOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/import", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestExport() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(500),
		CategoryID: category.Data.ID,
		Note:       "lunch",
	})
	_ = createTestSaving(suite.T(), v1.SavingEditable{
		Amount: decimal.NewFromInt(1000),
		Month:  types.NewMonth(2024, 3),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)
	assert.Contains(suite.T(), r.Header().Get("Content-Disposition"), "expense-tracker-backup.json")

	var backup v1.Backup
	test.DecodeResponse(suite.T(), &r, &backup)

	assert.False(suite.T(), backup.CreationTime.IsZero())
	require.Len(suite.T(), backup.Data.Transactions, 1)
	require.Len(suite.T(), backup.Data.Categories, 1)
	require.Len(suite.T(), backup.Data.Savings, 1)
	assert.Equal(suite.T(), "lunch", backup.Data.Transactions[0].Note)
}

// TestExportImportRoundTrip verifies that an exported backup restores
// the full state on a fresh database.
func (suite *TestSuiteStandard) TestExportImportRoundTrip() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries", Budget: decimal.NewFromInt(600)})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(500),
		CategoryID: category.Data.ID,
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var backup v1.Backup
	test.DecodeResponse(suite.T(), &r, &backup)

	// Fresh database
	suite.CloseDB()
	suite.SetupTest()

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", backup)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	require.Len(suite.T(), transactions.Data, 1)
	assert.Equal(suite.T(), "Groceries", transactions.Data[0].Category.Name)
}

// TestImportFailedLeavesState verifies that a backup that fails
// validation leaves the existing data untouched.
func (suite *TestSuiteStandard) TestImportFailedLeavesState() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Note: "keep me"})

	backup := v1.Backup{
		Data: models.State{
			Transactions: []models.Transaction{
				{Amount: decimal.NewFromInt(-1), Type: models.TypeExpense},
			},
			Settings: models.Settings{SelectedMonth: types.NewMonth(2024, 3)},
		},
	}

	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", backup)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var transactions v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &transactions)

	require.Len(suite.T(), transactions.Data, 1)
	assert.Equal(suite.T(), "keep me", transactions.Data[0].Note)
}

func (suite *TestSuiteStandard) TestImportInvalidBody() {
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/import", `{ "data": `)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestExportDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/export", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
