package main

import (
	"log"
	"net/http"

	_ "policyhub/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"policyhub/internal/auth"
	"policyhub/internal/cache"
	"policyhub/internal/config"
	"policyhub/internal/db"
	"policyhub/internal/handler"
	"policyhub/internal/model"
	"policyhub/internal/repository"
	"policyhub/internal/router"
	"policyhub/internal/service"
)

// @title Policy Registry API
// @version 1.0
// @description Department-scoped document and video registry with role-based access control.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.UploadedFile{},
		&model.Activity{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	fileRepo := repository.NewFileRepository(gormDB)
	activityRepo := repository.NewActivityRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	activityService := service.NewActivityService(activityRepo)
	fileService := service.NewFileService(fileRepo, activityService, cacheClient)
	statsService := service.NewStatsService(fileRepo)
	adminService := service.NewAdminService(userRepo, activityService)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	fileHandler := handler.NewFileHandler(fileService, activityService)
	statsHandler := handler.NewStatsHandler(statsService)
	superAdminHandler := handler.NewSuperAdminHandler(adminService)

	// Register routes
	router.Register(
		e,
		jwtService,
		authHandler,
		fileHandler,
		statsHandler,
		superAdminHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
