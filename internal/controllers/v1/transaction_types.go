package v1

import (
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionEditable struct {
	Date time.Time `json:"date" example:"2024-03-01T10:00:00Z"` // Date of the transaction. Defaults to the current time.

	// The maximum value is "999999999999.99999999", swagger unfortunately rounds this.
	Amount decimal.Decimal `json:"amount" example:"500" minimum:"0.00000001" maximum:"999999999999.99999999" multipleOf:"0.00000001"` // The amount for the transaction

	Type          models.TransactionType `json:"type" example:"EXPENSE"`                                    // EXPENSE or INCOME
	CategoryID    uuid.UUID              `json:"categoryId" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // ID of the category
	PaymentMethod models.PaymentMethod   `json:"paymentMethod" example:"Cash" default:"Cash"`               // How the transaction was paid
	Note          string                 `json:"note" example:"Lunch at the office" default:""`             // A note
	Location      string                 `json:"location" example:"Dhanmondi" default:""`                   // Where the transaction happened
}

// model returns the database resource for the API representation of the editable fields
func (editable TransactionEditable) model() models.Transaction {
	return models.Transaction{
		Date:          editable.Date,
		Amount:        editable.Amount,
		Type:          editable.Type,
		CategoryID:    editable.CategoryID,
		PaymentMethod: editable.PaymentMethod,
		Note:          editable.Note,
		Location:      editable.Location,
	}
}

// Transaction is the API representation of a transaction. The category
// preview resolves the soft reference, falling back to "General" when
// the category was deleted.
type Transaction struct {
	models.DefaultModel
	TransactionEditable
	Category CategoryPreview `json:"category"`
}

// newTransaction returns the API representation of the resource
func newTransaction(model models.Transaction, categories map[uuid.UUID]models.Category) Transaction {
	return Transaction{
		DefaultModel: model.DefaultModel,
		TransactionEditable: TransactionEditable{
			Date:          model.Date,
			Amount:        model.Amount,
			Type:          model.Type,
			CategoryID:    model.CategoryID,
			PaymentMethod: model.PaymentMethod,
			Note:          model.Note,
			Location:      model.Location,
		},
		Category: newCategoryPreview(model.CategoryID, categories),
	}
}

type TransactionListResponse struct {
	Data       []Transaction `json:"data"`                                                          // List of transactions
	Error      *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
	Pagination *Pagination   `json:"pagination"`                                                    // Pagination information
}

type TransactionResponse struct {
	Error *string      `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this transaction
	Data  *Transaction `json:"data"`                                                          // The Transaction data, if the request was successful
}
