package models

import "strings"

// StatsResponse is the aggregate nutrition summary for one user.
type StatsResponse struct {
	TotalCarbs    float64 `json:"total_carbs"`
	TotalProteins float64 `json:"total_proteins"`
	TotalFats     float64 `json:"total_fats"`
	TotalCalories float64 `json:"total_calories"`
	MealCount     int     `json:"meal_count"`
}

// TodayStatsResponse is StatsResponse restricted to the current calendar
// day; Date is always set (YYYY-MM-DD), even when no meals match.
type TodayStatsResponse struct {
	StatsResponse
	Date string `json:"date"`
}

// AIMealRequest asks the AI collaborator for a macro estimate of a
// free-text meal description. Nothing is persisted from this request.
type AIMealRequest struct {
	Description string `json:"description" validate:"required"`
	Username    string `json:"username" validate:"required"`
}

// Normalize strips leading/trailing whitespace from the string fields.
func (r *AIMealRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
	r.Username = strings.TrimSpace(r.Username)
}

// AIMealResponse is the advisory macro estimate returned to the client.
// Values come from the model as-is; the client submits them through the
// normal create endpoint if it wants to keep them.
type AIMealResponse struct {
	Title         string  `json:"title"`
	Carbs         float64 `json:"carbs"`
	Proteins      float64 `json:"proteins"`
	Fats          float64 `json:"fats"`
	TotalCalories float64 `json:"total_calories"`
}
