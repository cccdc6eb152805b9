package handlers

import (
	"log"

	"caltrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// StatsHandler handles HTTP requests for nutrition statistics.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

// RegisterRoutes registers the stats routes with the Fiber app.
func (h *StatsHandler) RegisterRoutes(router fiber.Router) {
	statsRoutes := router.Group("/stats")
	statsRoutes.Get("/:username", h.HandleGetUserStats)
	statsRoutes.Get("/:username/today", h.HandleGetTodayStats)
}

// HandleGetUserStats returns all-time aggregate stats for a user.
func (h *StatsHandler) HandleGetUserStats(c *fiber.Ctx) error {
	username := c.Params("username")

	stats, err := h.statsService.GetUserStats(username)
	if err != nil {
		log.Printf("Error getting stats for user %s: %v", username, err)
		return respondError(c, err, "Could not retrieve stats")
	}

	return c.JSON(stats)
}

// HandleGetTodayStats returns aggregate stats for the current calendar day.
func (h *StatsHandler) HandleGetTodayStats(c *fiber.Ctx) error {
	username := c.Params("username")

	stats, err := h.statsService.GetTodayStats(username)
	if err != nil {
		log.Printf("Error getting today stats for user %s: %v", username, err)
		return respondError(c, err, "Could not retrieve stats")
	}

	return c.JSON(stats)
}
