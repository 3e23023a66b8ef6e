package main

import (
	"log"
	"net/http"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	_ "lessonhub/docs" // swagger docs

	"lessonhub/internal/auth"
	"lessonhub/internal/cache"
	"lessonhub/internal/config"
	"lessonhub/internal/db"
	"lessonhub/internal/handler"
	"lessonhub/internal/model"
	"lessonhub/internal/repository"
	"lessonhub/internal/router"
	"lessonhub/internal/service"
	"lessonhub/internal/storage"
)

// @title Lesson Hub API
// @version 1.0
// @description Content-listing backend with bearer-token authentication, lesson pagination and avatar uploads.
// @host localhost:8001
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// .env is optional; real environments set variables directly
	_ = godotenv.Load()

	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Lesson{},
		&model.Slider{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	fileStore, err := storage.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		log.Fatalf("file store init: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	lessonRepo := repository.NewLessonRepository(gormDB)
	sliderRepo := repository.NewSliderRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	lessonService := service.NewLessonService(lessonRepo, cacheClient)
	sliderService := service.NewSliderService(sliderRepo, cacheClient)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(authService, fileStore)
	lessonHandler := handler.NewLessonHandler(lessonService)
	sliderHandler := handler.NewSliderHandler(sliderService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		userHandler,
		lessonHandler,
		sliderHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
