package v1_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	v1 "github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/controllers/v1"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/test"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTransactionsOptions verifies that OPTIONS requests are handled correctly.
func (suite *TestSuiteStandard) TestTransactionsOptions() {
	tests := []struct {
		name   string
		id     string // path at the transactions endpoint to test
		status int    // Expected HTTP status code
	}{
		{"No transaction with this ID", uuid.New().String(), http.StatusNotFound},
		{"Not a valid UUID", "NotAUUID", http.StatusBadRequest},
		{"Transaction exists", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			id := tt.id
			if id == "" {
				id = createTestTransaction(t, v1.TransactionEditable{}).Data.ID.String()
			}

			path := fmt.Sprintf("http://example.com/v1/transactions/%s", id)
			r := test.Request(t, http.MethodOptions, path, "")
			test.AssertHTTPStatus(t, &r, tt.status)

			if tt.status == http.StatusNoContent {
				assert.Equal(t, "GET, PATCH, DELETE", r.Header().Get("allow"))
			}
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreate() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount:     decimal.NewFromInt(500),
		CategoryID: category.Data.ID,
		Note:       "Lunch at the office",
	})

	require.NotNil(suite.T(), transaction.Data)
	assert.True(suite.T(), transaction.Data.Amount.Equal(decimal.NewFromInt(500)))
	assert.Equal(suite.T(), models.TypeExpense, transaction.Data.Type)
	assert.Equal(suite.T(), "Groceries", transaction.Data.Category.Name)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	tests := []struct {
		name   string
		body   any
		status int
	}{
		{"Broken body", `{ "amount": `, http.StatusBadRequest},
		{"Negative amount", v1.TransactionEditable{Amount: decimal.NewFromInt(-10), Type: models.TypeExpense, PaymentMethod: models.PaymentCash}, http.StatusBadRequest},
		{"Invalid type", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Type: "TRANSFER", PaymentMethod: models.PaymentCash}, http.StatusBadRequest},
		{"Invalid payment method", v1.TransactionEditable{Amount: decimal.NewFromInt(10), Type: models.TypeExpense, PaymentMethod: "Gold"}, http.StatusBadRequest},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPost, "http://example.com/v1/transactions", tt.body)
			test.AssertHTTPStatus(t, &r, tt.status)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionGetSingle() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{Note: "rickshaw fare"})

	r := test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), "rickshaw fare", response.Data.Note)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", uuid.New()), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)

	r = test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions/NotAUUID", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)
}

// TestTransactionsGetFilter verifies the query parameters of the transaction list.
func (suite *TestSuiteStandard) TestTransactionsGetFilter() {
	groceries := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Groceries"})

	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Lunch at the office", CategoryID: groceries.Data.ID})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Note: "Bus ticket"})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{Type: models.TypeIncome, Note: "Salary"})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"No filter", "", 3},
		{"Type EXPENSE", "type=EXPENSE", 2},
		{"Type INCOME", "type=INCOME", 1},
		{"Type ALL", "type=ALL", 3},
		{"Search note case-insensitive", "search=LUNCH", 1},
		{"Search category name", "search=groceries", 1},
		{"Search and type combined", "search=lunch&type=INCOME", 0},
		{"No match", "search=cinema", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsInvalidTypeFilter() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions?type=TRANSFER", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.ErrTransactionTypeInvalid.Error(), *response.Error)
}

// TestTransactionsPagination verifies offset and limit behavior.
func (suite *TestSuiteStandard) TestTransactionsPagination() {
	for i := 0; i < 10; i++ {
		_ = createTestTransaction(suite.T(), v1.TransactionEditable{
			Date: time.Date(2024, 3, 1+i, 12, 0, 0, 0, time.UTC),
		})
	}

	tests := []struct {
		name          string
		query         string
		count         int
		expectedTotal int64
	}{
		{"Defaults", "", 10, 10},
		{"Limit", "limit=3", 3, 10},
		{"Offset", "offset=8", 2, 10},
		{"Offset and limit", "offset=4&limit=4", 4, 10},
		{"Offset past the end", "offset=20", 0, 10},
		{"Unlimited", "limit=-1", 10, 10},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")
			test.AssertHTTPStatus(t, &r, http.StatusOK)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &r, &response)
			assert.Len(t, response.Data, tt.count)
			assert.Equal(t, tt.expectedTotal, response.Pagination.Total)
		})
	}
}

// TestTransactionsNewestFirst verifies the display order of the list.
func (suite *TestSuiteStandard) TestTransactionsNewestFirst() {
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Note: "older",
		Date: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	_ = createTestTransaction(suite.T(), v1.TransactionEditable{
		Note: "newer",
		Date: time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC),
	})

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.Len(suite.T(), response.Data, 2)
	assert.Equal(suite.T(), "newer", response.Data[0].Note)
	assert.Equal(suite.T(), "older", response.Data[1].Note)
}

func (suite *TestSuiteStandard) TestTransactionUpdate() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(250),
		Note:   "CNG fare",
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"note": "CNG fare to Gulshan",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.Equal(suite.T(), "CNG fare to Gulshan", updated.Data.Note)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(250)))
}

// TestTransactionUpdateZeroAmount verifies that an explicit zero amount
// keeps the stored amount instead of failing validation.
func (suite *TestSuiteStandard) TestTransactionUpdateZeroAmount() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{
		Amount: decimal.NewFromInt(250),
	})

	r := test.Request(suite.T(), http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), map[string]any{
		"amount": 0,
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var updated v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &updated)
	assert.True(suite.T(), updated.Data.Amount.Equal(decimal.NewFromInt(250)))
}

func (suite *TestSuiteStandard) TestTransactionDelete() {
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{})

	path := fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID)
	r := test.Request(suite.T(), http.MethodDelete, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, path, "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNotFound)
}

// TestTransactionDeletedCategory verifies that transactions referencing
// a deleted category resolve to the fallback preview.
func (suite *TestSuiteStandard) TestTransactionDeletedCategory() {
	category := createTestCategory(suite.T(), v1.CategoryEditable{Name: "Transport"})
	transaction := createTestTransaction(suite.T(), v1.TransactionEditable{CategoryID: category.Data.ID})

	r := test.Request(suite.T(), http.MethodDelete, fmt.Sprintf("http://example.com/v1/categories/%s", category.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", transaction.Data.ID), "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.TransactionResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.Equal(suite.T(), models.FallbackCategoryName, response.Data.Category.Name)
	assert.Equal(suite.T(), uuid.Nil, response.Data.Category.ID)
	assert.Equal(suite.T(), category.Data.ID, response.Data.CategoryID)
}

// TestTransactionsDBClosed verifies that errors are processed correctly when
// the database is closed.
func (suite *TestSuiteStandard) TestTransactionsDBClosed() {
	tests := []struct {
		name string             // Name of the test
		test func(t *testing.T) // Code to run
	}{
		{
			"Creation fails",
			func(t *testing.T) {
				createTestTransaction(t, v1.TransactionEditable{}, http.StatusInternalServerError)
			},
		},
		{
			"GET fails",
			func(t *testing.T) {
				recorder := test.Request(t, http.MethodGet, "http://example.com/v1/transactions", "")
				test.AssertHTTPStatus(t, &recorder, http.StatusInternalServerError)

				var response v1.TransactionListResponse
				test.DecodeResponse(t, &recorder, &response)
				assert.Contains(t, *response.Error, models.ErrGeneral.Error())
			},
		},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			suite.CloseDB()

			tt.test(t)
		})
	}
}
