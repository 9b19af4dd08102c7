package models

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FallbackCategoryName is used when a transaction references a deleted
// category. Lookups never fail on dangling references, they degrade to
// this label.
const FallbackCategoryName = "General"

// FallbackCategoryIcon is the glyph shown for dangling references.
const FallbackCategoryIcon = "📦"

// DefaultCategoryColor is used when no color is set.
const DefaultCategoryColor = "#10B981"

var colorPattern = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// Category groups transactions and optionally carries a monthly budget.
type Category struct {
	DefaultModel
	Name      string          `json:"name" gorm:"uniqueIndex" example:"Groceries"`
	Icon      string          `json:"icon" example:"🛒" default:"📦"`
	Color     string          `json:"color" example:"#10B981"` // RGB hex value
	IsPrivate bool            `json:"isPrivate" example:"false" default:"false"`
	Budget    decimal.Decimal `json:"budget" gorm:"type:DECIMAL(20,8)" example:"600"` // Monthly limit, 0 = unlimited
}

// BeforeSave validates the category and applies defaults.
func (c *Category) BeforeSave(_ *gorm.DB) (err error) {
	c.Name = strings.TrimSpace(c.Name)
	c.Icon = strings.TrimSpace(c.Icon)

	if c.Name == "" {
		return ErrCategoryNameNotSet
	}

	if c.Icon == "" {
		c.Icon = FallbackCategoryIcon
	}

	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}

	if !colorPattern.MatchString(c.Color) {
		return ErrCategoryColorInvalid
	}

	if c.Budget.IsNegative() {
		return ErrCategoryBudgetNegative
	}

	return nil
}

