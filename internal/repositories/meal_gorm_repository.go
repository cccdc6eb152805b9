package repositories

import (
	"errors"
	"fmt"
	"time"

	"caltrack/internal/models"

	"gorm.io/gorm"
)

// GORMMealRepository is a GORM implementation of MealRepository.
type GORMMealRepository struct {
	db *gorm.DB
}

// NewGORMMealRepository creates a new instance of GORMMealRepository.
func NewGORMMealRepository(db *gorm.DB) *GORMMealRepository {
	return &GORMMealRepository{
		db: db,
	}
}

// Create inserts a new meal. GORM assigns the ID and CreatedAt.
func (r *GORMMealRepository) Create(meal *models.Meal) error {
	if err := r.db.Create(meal).Error; err != nil {
		return fmt.Errorf("failed to create meal: %w", err)
	}
	return nil
}

// GetByID retrieves a single active meal by its ID. The default GORM scope
// excludes soft-deleted rows, so an already-deleted meal reads as not found.
func (r *GORMMealRepository) GetByID(id uint) (*models.Meal, error) {
	var meal models.Meal
	if err := r.db.First(&meal, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, fmt.Errorf("failed to get meal by ID %d: %w", id, err)
	}
	return &meal, nil
}

// GetActiveByUsername retrieves the user's active meals, newest first.
// A non-nil day restricts the result to the half-open window
// [midnight, midnight+24h) of that day's calendar date.
func (r *GORMMealRepository) GetActiveByUsername(username string, day *time.Time) ([]models.Meal, error) {
	query := r.db.Where("username = ?", username)
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		query = query.Where("created_at >= ? AND created_at < ?", start, start.AddDate(0, 0, 1))
	}

	var meals []models.Meal
	if err := query.Order("created_at DESC, id DESC").Find(&meals).Error; err != nil {
		return nil, fmt.Errorf("failed to get meals for user %s: %w", username, err)
	}
	return meals, nil
}

// SoftDelete sets the meal's deletion timestamp. GORM's Delete on a model
// with a DeletedAt column performs an UPDATE, not a DELETE.
func (r *GORMMealRepository) SoftDelete(meal *models.Meal) error {
	res := r.db.Delete(meal)
	if res.Error != nil {
		return fmt.Errorf("failed to delete meal %d: %w", meal.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrMealNotFound
	}
	return nil
}
