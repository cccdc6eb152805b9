package repositories

import (
	"sort"
	"sync"
	"time"

	"caltrack/internal/models"

	"gorm.io/gorm"
)

// MockMealRepository is an in-memory implementation of MealRepository.
type MockMealRepository struct {
	meals  map[uint]models.Meal
	nextID uint
	mu     sync.RWMutex
}

// NewMockMealRepository creates a new instance of MockMealRepository.
func NewMockMealRepository() *MockMealRepository {
	return &MockMealRepository{
		meals:  make(map[uint]models.Meal),
		nextID: 1,
	}
}

// Create adds a new meal, assigning a monotonically increasing ID.
func (r *MockMealRepository) Create(meal *models.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	meal.ID = r.nextID
	r.nextID++
	if meal.CreatedAt.IsZero() {
		meal.CreatedAt = time.Now()
	}
	r.meals[meal.ID] = *meal
	return nil
}

// GetByID returns an active meal by its ID.
func (r *MockMealRepository) GetByID(id uint) (*models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	meal, ok := r.meals[id]
	if !ok || meal.DeletedAt.Valid {
		return nil, ErrMealNotFound
	}
	return &meal, nil
}

// GetActiveByUsername returns the user's active meals, newest first,
// optionally restricted to a single calendar day.
func (r *MockMealRepository) GetActiveByUsername(username string, day *time.Time) ([]models.Meal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Meal, 0)
	for _, m := range r.meals {
		if m.DeletedAt.Valid || m.Username != username {
			continue
		}
		if day != nil && !sameDay(m.CreatedAt, *day) {
			continue
		}
		result = append(result, m)
	}

	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})
	return result, nil
}

// SoftDelete marks the meal deleted.
func (r *MockMealRepository) SoftDelete(meal *models.Meal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.meals[meal.ID]
	if !ok || stored.DeletedAt.Valid {
		return ErrMealNotFound
	}
	stored.DeletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	r.meals[meal.ID] = stored
	meal.DeletedAt = stored.DeletedAt
	return nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
