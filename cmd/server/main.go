package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "jobsite/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"jobsite/internal/config"
	"jobsite/internal/db"
	"jobsite/internal/handler"
	"jobsite/internal/model"
	"jobsite/internal/repository"
	"jobsite/internal/router"
	"jobsite/internal/service"
	"jobsite/internal/storage"
)

// @title Jobsite API
// @version 1.0
// @description Job board API with job posting, browsing, search, and account management.
// @host localhost:5000
// @BasePath /api
// @schemes http
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on process environment")
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(&model.User{}, &model.Job{}); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload store init: %v", err)
	}

	// Initialize repositories
	jobRepo := repository.NewJobRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize services
	jobService := service.NewJobService(jobRepo)
	userService := service.NewUserService(userRepo)

	// Initialize handlers
	jobHandler := handler.NewJobHandler(jobService)
	userHandler := handler.NewUserHandler(userService, uploads)

	// Register routes
	router.Register(e, uploads.Dir(), jobHandler, userHandler)

	addr := ":" + cfg.ServerPort
	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if sqlDB, err := gormDB.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}
}
