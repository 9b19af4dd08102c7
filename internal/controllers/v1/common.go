package v1

import (
	"time"

	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// parseNow returns the reference time for derived views. The optional
// "now" query parameter pins it for reproducible responses. The zone
// offset of the timestamp decides which local day and month everything
// is keyed by, so clients send their local time with offset.
func parseNow(c *gin.Context) (time.Time, error) {
	param := c.Query("now")
	if param == "" {
		return time.Now(), nil
	}

	now, err := time.Parse(time.RFC3339, param)
	if err != nil {
		return time.Time{}, errNowInvalid
	}

	return now, nil
}

// loadTransactions reads the full history, oldest first. The engine
// preserves input order, so this fixes the order of every derived list.
func loadTransactions() ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := models.DB.Order("datetime(transactions.date) ASC, datetime(transactions.created_at) ASC").Find(&transactions).Error
	return transactions, err
}

func loadCategories() ([]models.Category, error) {
	var categories []models.Category
	err := models.DB.Order("categories.name ASC").Find(&categories).Error
	return categories, err
}

func indexCategories(categories []models.Category) map[uuid.UUID]models.Category {
	index := make(map[uuid.UUID]models.Category, len(categories))
	for _, c := range categories {
		index[c.ID] = c
	}

	return index
}
