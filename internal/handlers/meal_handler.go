package handlers

import (
	"log"
	"strconv"

	"caltrack/internal/models"
	"caltrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// MealHandler handles HTTP requests for meals.
type MealHandler struct {
	mealsService *services.MealsService
	aiService    *services.AIService
}

// NewMealHandler creates a new MealHandler.
func NewMealHandler(mealsService *services.MealsService, aiService *services.AIService) *MealHandler {
	return &MealHandler{
		mealsService: mealsService,
		aiService:    aiService,
	}
}

// RegisterRoutes registers the meal routes with the Fiber app.
func (h *MealHandler) RegisterRoutes(router fiber.Router) {
	mealRoutes := router.Group("/meals")
	mealRoutes.Post("/", h.HandleCreateMeal)
	mealRoutes.Post("/ai-infer", h.HandleInferMeal)
	mealRoutes.Get("/:username", h.HandleGetMeals)
	mealRoutes.Delete("/:meal_id", h.HandleDeleteMeal)
}

// HandleCreateMeal creates a meal from explicit macro fields.
func (h *MealHandler) HandleCreateMeal(c *fiber.Ctx) error {
	var input models.MealCreate
	if err := c.BodyParser(&input); err != nil {
		log.Printf("Error parsing create meal request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	meal, err := h.mealsService.CreateMeal(input)
	if err != nil {
		log.Printf("Error creating meal: %v", err)
		return respondError(c, err, "Could not create meal")
	}

	return c.Status(fiber.StatusCreated).JSON(meal)
}

// HandleGetMeals lists a user's active meals, newest first. The optional
// date_filter query param is "today" or an explicit YYYY-MM-DD date.
func (h *MealHandler) HandleGetMeals(c *fiber.Ctx) error {
	username := c.Params("username")
	dateFilter := c.Query("date_filter")

	meals, err := h.mealsService.GetMealsByUsername(username, dateFilter)
	if err != nil {
		log.Printf("Error getting meals for user %s: %v", username, err)
		return respondError(c, err, "Could not retrieve meals")
	}

	return c.JSON(meals)
}

// HandleDeleteMeal soft-deletes a meal by its ID.
func (h *MealHandler) HandleDeleteMeal(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("meal_id"), 10, 32)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid meal id",
		})
	}

	if err := h.mealsService.DeleteMeal(uint(id)); err != nil {
		log.Printf("Error deleting meal %d: %v", id, err)
		return respondError(c, err, "Could not delete meal")
	}

	return c.JSON(fiber.Map{
		"message": "Meal deleted successfully",
	})
}

// HandleInferMeal submits a free-text meal description to the AI
// collaborator and returns the inferred macros. The result is advisory and
// is not persisted.
func (h *MealHandler) HandleInferMeal(c *fiber.Ctx) error {
	var req models.AIMealRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing AI infer request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	result, err := h.aiService.InferMealMacros(req)
	if err != nil {
		log.Printf("Error inferring meal macros: %v", err)
		return respondError(c, err, "Could not infer meal macros")
	}

	return c.JSON(result)
}
