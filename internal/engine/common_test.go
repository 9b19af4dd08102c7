package engine_test

import (
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// transaction builds a minimal transaction for engine tests. The
// engine only reads; validation is a models concern and not exercised
// here.
func transaction(amount int64, transactionType models.TransactionType, date time.Time, categoryID uuid.UUID) models.Transaction {
	return models.Transaction{
		DefaultModel: models.DefaultModel{ID: uuid.New()},
		Amount:       decimal.NewFromInt(amount),
		Type:         transactionType,
		Date:         date,
		CategoryID:   categoryID,
	}
}

func category(id uuid.UUID, name string, budget int64) models.Category {
	return models.Category{
		DefaultModel: models.DefaultModel{ID: id},
		Name:         name,
		Icon:         "🛒",
		Color:        "#10B981",
		Budget:       decimal.NewFromInt(budget),
	}
}
