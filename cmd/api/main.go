package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skill-summarizer-backend/config"
	_ "skill-summarizer-backend/docs" // Important for Swagger
	v1 "skill-summarizer-backend/internal/delivery/http/v1"
	"skill-summarizer-backend/internal/repository/mongodb"
	"skill-summarizer-backend/internal/usecase"
	"skill-summarizer-backend/pkg/database"
	"skill-summarizer-backend/pkg/logger"
	"skill-summarizer-backend/pkg/validation"
)

// @title           Skill Summarizer API
// @version         1.0
// @description     CRUD service for tasks and skills backed by MongoDB.
// @host            localhost:8080
// @BasePath        /
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting skill summarizer backend", "port", cfg.Port)

	// 3. Setup Database
	connectTimeout := time.Duration(cfg.MongoConnectTimeoutSeconds) * time.Second
	store, err := database.NewMongoConnection(context.Background(), cfg.MongoURI, cfg.MongoDatabase, connectTimeout)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logger.Log.Error("Failed to disconnect from database", "error", err)
		}
	}()

	// 4. Setup Repositories
	taskRepo := mongodb.NewTaskRepository(store.Tasks())
	skillRepo := mongodb.NewSkillRepository(store.Skills())

	// 5. Setup UseCases
	validate := validation.New()
	taskUC := usecase.NewTaskUsecase(taskRepo, validate)
	skillUC := usecase.NewSkillUsecase(skillRepo, validate)
	healthUC := usecase.NewHealthUsecase(store)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		TaskUC:      taskUC,
		SkillUC:     skillUC,
		HealthUC:    healthUC,
		FrontendURL: cfg.FrontendURL,
		Logger:      logger.Log,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeoutSeconds) * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
