package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"employee-matcher-backend/config"
	_ "employee-matcher-backend/docs" // Important for Swagger
	"employee-matcher-backend/internal/ai"
	v1 "employee-matcher-backend/internal/delivery/http/v1"
	"employee-matcher-backend/internal/repository/memory"
	"employee-matcher-backend/internal/usecase"
	"employee-matcher-backend/pkg/document"
	"employee-matcher-backend/pkg/logger"
)

// @title           Intelligent Employee Matcher API
// @version         1.0
// @description     Upload resumes and find the best employees for a given task using Gemini.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting employee matcher backend", "port", cfg.Port, "model", cfg.GeminiModel)

	// 3. Setup AI Oracle
	oracle, err := ai.NewGeminiOracle(context.Background(), cfg.GoogleAPIKey, cfg.GeminiModel)
	if err != nil {
		logger.Log.Error("Failed to create Gemini client", "error", err)
		os.Exit(1)
	}

	// 4. Setup Store and Collaborators
	store := memory.NewCandidateStore()
	parser := document.NewParser()
	extractor := ai.NewProfileExtractor(oracle)
	ranker := ai.NewMatchRanker(oracle)

	// 5. Setup UseCases
	validate := validator.New()
	resumeUC := usecase.NewResumeUsecase(store, parser, extractor, cfg.AITimeout)
	matchUC := usecase.NewMatchUsecase(store, ranker, validate, cfg.AITimeout)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ResumeUC: resumeUC,
		MatchUC:  matchUC,
		Config:   cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
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
