package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverer "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"snakegame/internal/handlers"
	"snakegame/internal/middleware"
	"snakegame/internal/repositories"
	"snakegame/internal/services"
	"snakegame/pkg/database"
	"snakegame/web"
)

func main() {
	// --- Configuration ---
	viper.SetDefault("APP_PORT", ":8080")
	viper.SetDefault("DB_PATH", "snake_game.db")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("JWT_SECRET", "snake-game-secret-key-2026")
	viper.SetDefault("SESSION_HOURS", 24)
	viper.AutomaticEnv()

	appPort := viper.GetString("APP_PORT")
	jwtSecret := viper.GetString("JWT_SECRET")
	sessionTTL := time.Duration(viper.GetInt("SESSION_HOURS")) * time.Hour

	// --- Database ---
	db, err := database.Connect(database.Config{
		Path: viper.GetString("DB_PATH"),
		URL:  viper.GetString("DATABASE_URL"),
	})
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// --- Initialize Repositories ---
	userRepo := repositories.NewGORMUserRepository(db)
	scoreRepo := repositories.NewGORMScoreRepository(db)
	loginRepo := repositories.NewGORMLoginLogRepository(db)

	// --- Initialize Services ---
	authService := services.NewAuthService(userRepo, loginRepo, jwtSecret, sessionTTL)
	scoreService := services.NewScoreService(scoreRepo, loginRepo)

	// --- Initialize Handlers ---
	authHandler := handlers.NewAuthHandler(authService, sessionTTL)
	scoreHandler := handlers.NewScoreHandler(scoreService)
	pageHandler := handlers.NewPageHandler()

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(recoverer.New())
	app.Use(requestid.New(requestid.Config{
		Generator: func() string { return uuid.New().String() },
	}))
	app.Use(logger.New())

	// --- Static assets ---
	assets, err := web.Assets()
	if err != nil {
		log.Fatalf("Failed to load embedded assets: %v", err)
	}
	app.Use("/static", filesystem.New(filesystem.Config{Root: assets}))

	// --- Routes ---
	optionalAuth := middleware.OptionalAuth(authService)
	authRequired := middleware.AuthRequired(authService)

	api := app.Group("/api")
	authHandler.RegisterRoutes(api)
	scoreHandler.RegisterRoutes(api, optionalAuth, authRequired)
	pageHandler.RegisterRoutes(app, authRequired)

	// --- Health Check Endpoint ---
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

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
