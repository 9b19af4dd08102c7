package engine

import (
	"strings"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
)

// TypeFilter restricts a transaction list to one transaction type.
type TypeFilter string

const (
	FilterAll     TypeFilter = "ALL"
	FilterExpense TypeFilter = "EXPENSE"
	FilterIncome  TypeFilter = "INCOME"
)

// FilterParams combines the free-text search with the type filter.
type FilterParams struct {
	Search string
	Type   TypeFilter
}

// Filter returns the transactions matching the parameters, keeping the
// input order. The search is a case-insensitive substring match on the
// note or the resolved category name; a dangling category reference
// matches as an empty name instead of failing.
func Filter(transactions []models.Transaction, categories []models.Category, params FilterParams) []models.Transaction {
	index := indexCategories(categories)
	search := strings.ToLower(strings.TrimSpace(params.Search))

	matched := make([]models.Transaction, 0, len(transactions))
	for _, t := range transactions {
		if params.Type != "" && params.Type != FilterAll && string(t.Type) != string(params.Type) {
			continue
		}

		if search != "" {
			name := ""
			if c, ok := index[t.CategoryID]; ok {
				name = c.Name
			}

			if !strings.Contains(strings.ToLower(t.Note), search) &&
				!strings.Contains(strings.ToLower(name), search) {
				continue
			}
		}

		matched = append(matched, t)
	}

	return matched
}
