package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/IqraS-gif/ai-career-coach-backend/internal/api/routes"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/coach"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/config"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/jobs"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/llm"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/logging"
	"github.com/IqraS-gif/ai-career-coach-backend/internal/store"
)

func main() {
	// Load .env if present; real deployments set variables directly.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.LoadConfig("configs/config.yaml")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting AI career coach backend")

	// Credential pool and provider. An empty pool is a hard startup failure:
	// every generation endpoint would be dead on arrival.
	pool, err := llm.LoadCredentialPool()
	if err != nil {
		if errors.Is(err, llm.ErrNoCredentials) {
			logger.Fatal("No API credentials configured, set GEMINI_API_KEY_1 (or GOOGLE_API_KEY)")
		}
		logger.Fatal("Failed to load credential pool", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Credential pool loaded", map[string]interface{}{
		"size":     pool.Size(),
		"provider": cfg.LLM.Provider,
	})

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		logger.Fatal("Failed to initialize LLM provider", map[string]interface{}{"error": err.Error()})
	}
	invoker := llm.NewInvoker(pool, provider)

	// Storage
	st := store.New(cfg)
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	if err := st.Ping(pingCtx); err != nil {
		logger.Warn("Redis unreachable at startup, persistence endpoints will fail until it recovers", map[string]interface{}{
			"error": err.Error(),
		})
	}
	cancelPing()

	// Domain services
	engine := coach.NewEngine(invoker)
	adzuna := jobs.NewAdzunaClient(cfg)
	processor := jobs.NewProcessor(invoker)

	// Initialize Echo
	e := echo.New()
	e.HideBanner = true

	routes.SetupRoutes(e, routes.Dependencies{
		Config:       cfg,
		Engine:       engine,
		Store:        st,
		JobsClient:   adzuna,
		JobProcessor: processor,
		PoolSize:     pool.Size(),
		Provider:     cfg.LLM.Provider,
	})

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := e.Shutdown(shutdownCtx); err != nil {
			logger.Error("Error shutting down server", map[string]interface{}{"error": err.Error()})
		}

		if err := st.Close(); err != nil {
			logger.Error("Error closing store", map[string]interface{}{"error": err.Error()})
		}

		logger.Info("Server shutdown complete")
	}()

	// Start server
	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Server starting", map[string]interface{}{"address": address})

	if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
}
