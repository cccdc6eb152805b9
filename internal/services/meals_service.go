package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"caltrack/internal/models"
	"caltrack/internal/repositories"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// EventPublisher publishes meal lifecycle events to a message broker.
// A nil publisher disables event publishing.
type EventPublisher interface {
	PublishMealEvent(event map[string]interface{}) error
}

// MealsService handles business logic related to meals.
type MealsService struct {
	repo     repositories.MealRepository
	events   EventPublisher
	validate *validator.Validate
}

// NewMealsService creates a new MealsService. events may be nil.
func NewMealsService(repo repositories.MealRepository, events EventPublisher) *MealsService {
	return &MealsService{
		repo:     repo,
		events:   events,
		validate: validator.New(),
	}
}

// CreateMeal validates the input, persists the meal, and returns the full
// record including the generated ID and timestamp. String fields are stored
// trimmed. Validation runs entirely before any repository access.
func (s *MealsService) CreateMeal(input models.MealCreate) (*models.Meal, error) {
	input.Normalize()
	if err := s.validate.Struct(input); err != nil {
		return nil, newValidationError(err)
	}

	meal := &models.Meal{
		Username:      input.Username,
		Title:         input.Title,
		Carbs:         input.Carbs,
		Proteins:      input.Proteins,
		Fats:          input.Fats,
		TotalCalories: input.TotalCalories,
	}
	if err := s.repo.Create(meal); err != nil {
		return nil, err
	}

	s.publishEvent("meal.created", meal)
	return meal, nil
}

// GetMealsByUsername returns the user's active meals, newest first.
// dateFilter is optional: empty means no restriction, "today" restricts to
// the current calendar day, and a YYYY-MM-DD value restricts to that day.
func (s *MealsService) GetMealsByUsername(username, dateFilter string) ([]models.Meal, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Message: "Username cannot be empty"}
	}

	var day *time.Time
	switch dateFilter {
	case "":
	case "today":
		now := time.Now()
		day = &now
	default:
		parsed, err := time.ParseInLocation("2006-01-02", dateFilter, time.Local)
		if err != nil {
			return nil, &ValidationError{Message: "Invalid date format. Use YYYY-MM-DD"}
		}
		day = &parsed
	}

	return s.repo.GetActiveByUsername(username, day)
}

// DeleteMeal soft-deletes a meal by ID. A meal that does not exist or was
// already deleted yields a NotFoundError.
func (s *MealsService) DeleteMeal(id uint) error {
	meal, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			return &NotFoundError{Resource: "meal", ID: id}
		}
		return err
	}

	if err := s.repo.SoftDelete(meal); err != nil {
		if errors.Is(err, repositories.ErrMealNotFound) {
			return &NotFoundError{Resource: "meal", ID: id}
		}
		return err
	}

	s.publishEvent("meal.deleted", meal)
	return nil
}

// publishEvent sends a meal lifecycle event. Publishing is best-effort:
// a broker failure is logged and never fails the request.
func (s *MealsService) publishEvent(eventType string, meal *models.Meal) {
	if s.events == nil {
		return
	}
	event := map[string]interface{}{
		"event_id":       uuid.New().String(),
		"type":           eventType,
		"meal_id":        meal.ID,
		"username":       meal.Username,
		"title":          meal.Title,
		"total_calories": meal.TotalCalories,
		"occurred_at":    time.Now().Format(time.RFC3339),
	}
	if err := s.events.PublishMealEvent(event); err != nil {
		log.Printf("Failed to publish %s event for meal %d: %v", eventType, meal.ID, err)
	}
}
