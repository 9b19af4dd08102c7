package models

import (
	"errors"
)

var (
	ErrGeneral          = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound = errors.New("there is no")

	// Validation errors. These are returned from BeforeSave hooks so
	// that invalid values never reach the database or the engine.
	ErrAmountNotPositive      = errors.New("the amount must be positive")
	ErrBudgetAmountNegative   = errors.New("budget amounts must not be negative")
	ErrTransactionTypeInvalid = errors.New("the transaction type must be EXPENSE or INCOME")
	ErrPaymentMethodInvalid   = errors.New("the payment method is not in the configured set")
	ErrCategoryColorInvalid   = errors.New("the category color must be a hex value like #10B981")
	ErrCategoryNameNotSet     = errors.New("the category name must be set")
	ErrCategoryBudgetNegative = errors.New("the category budget must not be negative")
	ErrPinFormatInvalid       = errors.New("the PIN must be exactly 4 digits")
	ErrSavingMonthNotSet      = errors.New("the month for a saving entry must be set")
	ErrCategoryNameNotUnique  = errors.New("the category name is already in use")
)
