// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategoryIcon is the icon used when none is provided.
const DefaultCategoryIcon = "📦"

// Category represents a transaction category.
type Category struct {
	ID        uuid.UUID
	Name      string
	Icon      string
	Color     string
	IsDefault bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewCategory creates a new Category entity.
func NewCategory(name, icon, color string, isDefault bool) *Category {
	now := time.Now().UTC()

	if icon == "" {
		icon = DefaultCategoryIcon
	}

	return &Category{
		ID:        uuid.New(),
		Name:      name,
		Icon:      icon,
		Color:     color,
		IsDefault: isDefault,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DefaultCategories returns the categories seeded on first run.
func DefaultCategories() []*Category {
	defaults := []struct {
		name string
		icon string
	}{
		{"Food", "🍔"},
		{"Transport", "🚗"},
		{"Shopping", "🛍️"},
		{"Bills", "📄"},
		{"Entertainment", "🎬"},
		{"Health", "🏥"},
		{"Education", "📚"},
		{"Travel", "✈️"},
		{"Salary", "💰"},
		{"Other", "📦"},
	}

	categories := make([]*Category, len(defaults))
	for i, d := range defaults {
		categories[i] = NewCategory(d.name, d.icon, "", true)
	}
	return categories
}
