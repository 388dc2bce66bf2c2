// GovAid-AI Backend - Server Entry Point
//
// Stateless HTTP service that ingests government-policy documents and
// turns them into plain-language summaries, eligibility checklists,
// answers and translations through one AI completion gateway.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Alex-Leontaridis/GovAid-AI/internal/ai"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/checklist"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/config"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/extract"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/handler"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/language"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/logger"
	"github.com/Alex-Leontaridis/GovAid-AI/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file if it exists (development)
	_ = godotenv.Load()

	// Determine if we're in development mode
	isDev := os.Getenv("GIN_MODE") != "release"

	// Load configuration; a missing API key fails startup unless mock
	// mode is enabled. The structured logger is not up yet, so config
	// failures go through the stdlib logger.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(isDev, cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer zapLogger.Sync()

	zapLogger.Info("starting GovAid-AI backend",
		zap.Bool("development", isDev),
		zap.String("port", cfg.Server.Port),
		zap.String("ai_model", cfg.AI.Model),
		zap.Bool("mock_mode", cfg.AI.MockMode),
		zap.Duration("fetch_timeout", cfg.Fetch.Timeout),
	)

	// Initialize the completion gateway
	var gateway ai.Gateway
	if cfg.AI.MockMode {
		zapLogger.Warn("running in mock mode - AI responses are simulated")
		gateway = ai.NewMockGateway(zapLogger)
	} else {
		gateway = ai.NewOpenAIClient(&cfg.AI, zapLogger)
	}

	// Initialize pipeline components
	fetcher := extract.NewFetcher(cfg.Fetch.Timeout, zapLogger)
	parser := checklist.New()
	languageSvc := language.NewService(gateway, zapLogger)
	analyzer := service.NewAnalyzer(gateway, parser, languageSvc, zapLogger)

	// Initialize handlers
	translator := handler.NewErrorTranslator(isDev, zapLogger)
	policyHandler := handler.NewPolicyHandler(fetcher, analyzer, languageSvc, translator, zapLogger)
	uploadHandler := handler.NewUploadHandler(analyzer, translator, zapLogger)
	healthHandler := handler.NewHealthHandler()

	// Setup Gin router
	if !isDev {
		gin.SetMode(gin.ReleaseMode)
	}
	router := handler.NewRouter(cfg, policyHandler, uploadHandler, healthHandler, zapLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in goroutine
	go func() {
		zapLogger.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLogger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zapLogger.Info("shutting down server...")

	// Give the server 10 seconds to finish processing
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}

	zapLogger.Info("server stopped")
}
