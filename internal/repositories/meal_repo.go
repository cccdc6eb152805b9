package repositories

import (
	"errors"
	"time"

	"caltrack/internal/models"
)

// ErrMealNotFound is returned when a meal id does not exist or refers to a
// soft-deleted meal.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the interface for meal data access.
// All read methods operate on active (non-soft-deleted) meals only, so the
// exclusion predicate lives in one place instead of every caller.
type MealRepository interface {
	// Create persists a new meal and fills in its generated ID and CreatedAt.
	Create(meal *models.Meal) error
	// GetByID returns an active meal by its ID, or ErrMealNotFound.
	GetByID(id uint) (*models.Meal, error)
	// GetActiveByUsername returns the user's active meals ordered most
	// recent first. When day is non-nil the result is restricted to meals
	// created on that calendar day (server-local time).
	GetActiveByUsername(username string, day *time.Time) ([]models.Meal, error)
	// SoftDelete marks the meal deleted by setting its deletion timestamp.
	SoftDelete(meal *models.Meal) error
}
