package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Meal represents one logged food entry owned by a username.
// DeletedAt makes deletes soft: deleted rows stay in the table but are
// excluded from every query that uses the default GORM scope.
type Meal struct {
	ID            uint           `json:"id" gorm:"primaryKey"`
	Username      string         `json:"username" gorm:"index;not null"`
	Title         string         `json:"title" gorm:"not null"`
	Carbs         float64        `json:"carbs"`
	Proteins      float64        `json:"proteins"`
	Fats          float64        `json:"fats"`
	TotalCalories float64        `json:"total_calories"`
	CreatedAt     time.Time      `json:"created_at"`
	DeletedAt     gorm.DeletedAt `json:"deleted_at" gorm:"index"`
}

// MealCreate is the request body for creating a meal.
// Numeric fields may be zero but never negative; string fields are trimmed
// before validation so whitespace-only values fail the "required" tag.
type MealCreate struct {
	Username      string  `json:"username" validate:"required"`
	Title         string  `json:"title" validate:"required"`
	Carbs         float64 `json:"carbs" validate:"gte=0"`
	Proteins      float64 `json:"proteins" validate:"gte=0"`
	Fats          float64 `json:"fats" validate:"gte=0"`
	TotalCalories float64 `json:"total_calories" validate:"gte=0"`
}

// Normalize strips leading/trailing whitespace from the string fields.
// Call before validating; the stored meal keeps the trimmed values.
func (m *MealCreate) Normalize() {
	m.Username = strings.TrimSpace(m.Username)
	m.Title = strings.TrimSpace(m.Title)
}
