package v1

import (
	"github.com/Shajid-Forazi/Smart-Expense-Tracker-bdt/internal/models"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CategoryEditable struct {
	Name      string          `json:"name" example:"Groceries"`                                                  // Name of the category
	Icon      string          `json:"icon" example:"🛒" default:"📦"`                                            // Emoji shown next to the name
	Color     string          `json:"color" example:"#10B981"`                                                   // RGB hex value
	IsPrivate bool            `json:"isPrivate" example:"false" default:"false"`                                 // Hide amounts for this category in shared views
	Budget    decimal.Decimal `json:"budget" example:"600" minimum:"0" maximum:"999999999999.99999999" default:"0"` // Monthly limit, 0 = unlimited
}

// model returns the database resource for the API representation of the editable fields
func (editable CategoryEditable) model() models.Category {
	return models.Category{
		Name:      editable.Name,
		Icon:      editable.Icon,
		Color:     editable.Color,
		IsPrivate: editable.IsPrivate,
		Budget:    editable.Budget,
	}
}

// Category is the API representation of a category.
type Category struct {
	models.DefaultModel
	CategoryEditable
}

// newCategory returns the API representation of the resource
func newCategory(model models.Category) Category {
	return Category{
		DefaultModel: model.DefaultModel,
		CategoryEditable: CategoryEditable{
			Name:      model.Name,
			Icon:      model.Icon,
			Color:     model.Color,
			IsPrivate: model.IsPrivate,
			Budget:    model.Budget,
		},
	}
}

// CategoryPreview is the compact category representation embedded in
// transaction responses.
type CategoryPreview struct {
	ID    uuid.UUID `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // Nil UUID when the category was deleted
	Name  string    `json:"name" example:"Groceries"`
	Icon  string    `json:"icon" example:"🛒"`
	Color string    `json:"color" example:"#10B981"`
}

// newCategoryPreview resolves a soft category reference. Transactions
// keep their category ID after the category is deleted, those resolve
// to the "General" fallback.
func newCategoryPreview(id uuid.UUID, categories map[uuid.UUID]models.Category) CategoryPreview {
	if category, ok := categories[id]; ok {
		return CategoryPreview{
			ID:    category.ID,
			Name:  category.Name,
			Icon:  category.Icon,
			Color: category.Color,
		}
	}

	return CategoryPreview{
		ID:    uuid.Nil,
		Name:  models.FallbackCategoryName,
		Icon:  models.FallbackCategoryIcon,
		Color: models.DefaultCategoryColor,
	}
}

type CategoryListResponse struct {
	Data  []Category `json:"data"`                                                          // List of categories
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type CategoryResponse struct {
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred for this category
	Data  *Category `json:"data"`                                                          // The Category data, if the request was successful
}
