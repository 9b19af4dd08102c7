package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TransactionType classifies the effect a transaction has on the balance.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeIncome  TransactionType = "INCOME"
)

// PaymentMethod is one of the configured payment channels.
type PaymentMethod string

const (
	PaymentCash  PaymentMethod = "Cash"
	PaymentCard  PaymentMethod = "Card"
	PaymentBkash PaymentMethod = "bKash"
	PaymentNagad PaymentMethod = "Nagad"
	PaymentBank  PaymentMethod = "Bank"
)

// PaymentMethods is the closed set of accepted payment methods.
var PaymentMethods = []PaymentMethod{PaymentCash, PaymentCard, PaymentBkash, PaymentNagad, PaymentBank}

// Transaction represents a single income or expense entry.
//
// CategoryID is a soft reference: the category may have been deleted
// since the transaction was recorded. Consumers resolve it with
// Category lookups that fall back to "General".
type Transaction struct {
	DefaultModel
	Date          time.Time       `json:"date" example:"2024-03-01T10:00:00Z"` // When the transaction happened
	Amount        decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"500"`
	Type          TransactionType `json:"type" example:"EXPENSE"`
	CategoryID    uuid.UUID       `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"`
	PaymentMethod PaymentMethod   `json:"paymentMethod" example:"Cash"`
	Note          string          `json:"note" example:"Lunch at the office" default:""`
	Location      string          `json:"location" example:"Dhanmondi" default:""`
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (t *Transaction) AfterFind(tx *gorm.DB) (err error) {
	err = t.DefaultModel.AfterFind(tx)
	if err != nil {
		return err
	}

	t.Date = t.Date.In(time.UTC)
	return nil
}

// BeforeSave
//   - validates the amount, type and payment method
//   - sets the timezone for the Date to UTC
//   - trims whitespace from string fields
func (t *Transaction) BeforeSave(_ *gorm.DB) (err error) {
	t.Note = strings.TrimSpace(t.Note)
	t.Location = strings.TrimSpace(t.Location)

	if !t.Amount.IsPositive() {
		return ErrAmountNotPositive
	}

	if t.Type != TypeExpense && t.Type != TypeIncome {
		return ErrTransactionTypeInvalid
	}

	if !validPaymentMethod(t.PaymentMethod) {
		return ErrPaymentMethodInvalid
	}

	if t.Date.IsZero() {
		t.Date = time.Now().In(time.UTC)
	} else {
		t.Date = t.Date.In(time.UTC)
	}

	return nil
}

func validPaymentMethod(m PaymentMethod) bool {
	for _, method := range PaymentMethods {
		if m == method {
			return true
		}
	}

	return false
}

