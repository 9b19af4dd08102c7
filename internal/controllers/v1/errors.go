package v1

import (
	"errors"
	"net/http"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"the specified resource ID is not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	return http.StatusBadRequest
}

// Query parameter errors
var (
	errNowInvalid   = errors.New("the now query parameter must be a valid RFC3339 timestamp")
	errMonthInvalid = errors.New("the month query parameter must have the format YYYY-MM")
	errDayInvalid   = errors.New("the day query parameter must have the format YYYY-MM-DD")
)

// Reset errors
var (
	errResetConfirmation = errors.New("the confirmation for the reset API call was incorrect")
	errResetScopeInvalid = errors.New("the specified reset scope is invalid")
)

// Settings errors
var (
	errPinIncorrect = errors.New("the PIN is incorrect")
	errPinNotSet    = errors.New("no PIN is configured")
)
