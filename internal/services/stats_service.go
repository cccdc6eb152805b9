package services

import (
	"strings"
	"time"

	"caltrack/internal/models"
	"caltrack/internal/repositories"
)

// StatsService computes aggregate nutrition statistics over a user's
// active meals. Stats are computed on demand, never cached or persisted.
type StatsService struct {
	repo repositories.MealRepository
}

// NewStatsService creates a new StatsService.
func NewStatsService(repo repositories.MealRepository) *StatsService {
	return &StatsService{
		repo: repo,
	}
}

// GetUserStats sums macros and calories across all of the user's active
// meals. A user with no meals gets an all-zero result, not an error.
func (s *StatsService) GetUserStats(username string) (*models.StatsResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Message: "Username cannot be empty"}
	}

	meals, err := s.repo.GetActiveByUsername(username, nil)
	if err != nil {
		return nil, err
	}

	stats := sumMeals(meals)
	return &stats, nil
}

// GetTodayStats is GetUserStats restricted to meals created on the current
// calendar day. The result always carries today's date, even when empty.
func (s *StatsService) GetTodayStats(username string) (*models.TodayStatsResponse, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, &ValidationError{Message: "Username cannot be empty"}
	}

	now := time.Now()
	meals, err := s.repo.GetActiveByUsername(username, &now)
	if err != nil {
		return nil, err
	}

	return &models.TodayStatsResponse{
		StatsResponse: sumMeals(meals),
		Date:          now.Format("2006-01-02"),
	}, nil
}

func sumMeals(meals []models.Meal) models.StatsResponse {
	var stats models.StatsResponse
	for _, meal := range meals {
		stats.TotalCarbs += meal.Carbs
		stats.TotalProteins += meal.Proteins
		stats.TotalFats += meal.Fats
		stats.TotalCalories += meal.TotalCalories
	}
	stats.MealCount = len(meals)
	return stats
}
