package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/controllers/v1"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/types"
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestSettingsOptions() {
	r := test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "GET, PATCH", r.Header().Get("allow"))

	r = test.Request(suite.T(), http.MethodOptions, "http://example.com/v1/settings/pin", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	assert.Equal(suite.T(), "POST", r.Header().Get("allow"))
}

// TestSettingsGetCreatesResource verifies that the first GET creates
// the settings with no PIN and the current month selected.
func (suite *TestSuiteStandard) TestSettingsGetCreatesResource() {
	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)

	require.NotNil(suite.T(), response.Data)
	assert.False(suite.T(), response.Data.PinSet)
	assert.False(suite.T(), response.Data.SelectedMonth.IsZero())
}

func (suite *TestSuiteStandard) TestSettingsUpdateSelectedMonth() {
	r := test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{
		"selectedMonth": "2024-03",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.SelectedMonth.Equal(types.NewMonth(2024, 3)))
}

// TestSettingsPinLifecycle verifies setting, using and removing the PIN.
func (suite *TestSuiteStandard) TestSettingsPinLifecycle() {
	// No PIN configured yet
	r := test.Request(suite.T(), http.MethodPost, "http://example.com/v1/settings/pin", map[string]any{"pin": "1234"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusBadRequest)

	// Set the PIN
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"pin": "1234"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var response v1.SettingsResponse
	test.DecodeResponse(suite.T(), &r, &response)
	assert.True(suite.T(), response.Data.PinSet)

	// Verify
	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/settings/pin", map[string]any{"pin": "1234"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), http.MethodPost, "http://example.com/v1/settings/pin", map[string]any{"pin": "9999"})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusUnauthorized)

	// Remove the PIN with an empty string
	r = test.Request(suite.T(), http.MethodPatch, "http://example.com/v1/settings", map[string]any{"pin": ""})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	test.DecodeResponse(suite.T(), &r, &response)
	assert.False(suite.T(), response.Data.PinSet)
}

func (suite *TestSuiteStandard) TestSettingsPinInvalidFormat() {
	tests := []struct {
		name string
		pin  string
	}{
		{"Too short", "123"},
		{"Too long", "12345"},
		{"Letters", "abcd"},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			r := test.Request(t, http.MethodPatch, "http://example.com/v1/settings", map[string]any{"pin": tt.pin})
			test.AssertHTTPStatus(t, &r, http.StatusBadRequest)
		})
	}
}

func (suite *TestSuiteStandard) TestSettingsDBClosed() {
	suite.CloseDB()

	r := test.Request(suite.T(), http.MethodGet, "http://example.com/v1/settings", "")
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
}
