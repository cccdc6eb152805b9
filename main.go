package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/streadway/amqp"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"caltrack/internal/handlers"
	"caltrack/internal/models"
	"caltrack/internal/repositories"
	"caltrack/internal/services"
	"caltrack/pkg/openai"
	"caltrack/pkg/rabbitmq"

	"github.com/spf13/viper"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("SQLITE_PATH", "caltrack.db")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("OPENAI_BASE_URL", "")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.SetDefault("CORS_ORIGINS", "http://localhost:3000")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")

	// --- Database ---
	db, err := openDatabase()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := db.AutoMigrate(&models.Meal{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// --- Meal Event Publishing (optional) ---
	// Events are published only when a broker URL is configured; the
	// services accept a nil publisher and skip publishing otherwise.
	var eventPublisher services.EventPublisher
	rabbitMQURL := viper.GetString("RABBITMQ_URL")
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		eventPublisher = mqClient

		// Log consumed meal events. A real deployment would hang
		// downstream processing (goal tracking, notifications) here.
		if consumerErr := mqClient.ConsumeMealEvents(func(msg amqp.Delivery) error {
			log.Printf("Received meal event (Tag: %d): %s", msg.DeliveryTag, string(msg.Body))
			return nil
		}); consumerErr != nil {
			log.Printf("Failed to start RabbitMQ consumer: %v", consumerErr)
		}
	}

	// --- AI Client ---
	aiClient := openai.NewClient(openai.Config{
		APIKey:  viper.GetString("OPENAI_API_KEY"),
		Model:   viper.GetString("OPENAI_MODEL"),
		BaseURL: viper.GetString("OPENAI_BASE_URL"),
	})

	// --- Initialize Repositories ---
	mealRepo := repositories.NewGORMMealRepository(db)

	// --- Initialize Services ---
	mealsService := services.NewMealsService(mealRepo, eventPublisher)
	statsService := services.NewStatsService(mealRepo)
	aiService := services.NewAIService(aiClient)

	// --- Initialize Handlers ---
	mealHandler := handlers.NewMealHandler(mealsService, aiService)
	statsHandler := handlers.NewStatsHandler(statsService)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: viper.GetString("CORS_ORIGINS"),
	}))

	// --- API Routes ---
	mealHandler.RegisterRoutes(app)
	statsHandler.RegisterRoutes(app)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Calory Tracker API",
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

// openDatabase connects to PostgreSQL when DATABASE_URL is set and falls
// back to a local SQLite file otherwise.
func openDatabase() (*gorm.DB, error) {
	if dsn := viper.GetString("DATABASE_URL"); dsn != "" {
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}
	return gorm.Open(sqlite.Open(viper.GetString("SQLITE_PATH")), &gorm.Config{})
}
