package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/adapter/ai/groq"
	"github.com/arktech/arktech-brain/internal/adapter/http/fiber/server"
	"github.com/arktech/arktech-brain/internal/service/voice"
	"github.com/arktech/arktech-brain/pkg/config"
	applog "github.com/arktech/arktech-brain/pkg/logger"
)

func main() {
	// 1. Load Configuration (.env first, then config.yaml and environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// 2. Initialize Logger
	logger, err := applog.New(cfg.Logging)
	if err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	logger.Info("Starting ArkTech Brain",
		zap.String("service", cfg.App.Name),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)
	logger.Info("Provider configured",
		zap.String("model", cfg.Groq.Model),
		zap.Bool("groq_api_key_loaded", cfg.Groq.HasAPIKey()),
		zap.Duration("timeout", cfg.Groq.Timeout),
	)

	// 3. Provider client and assistant
	groqClient := groq.NewClient(cfg.Groq, logger)
	assistant := voice.NewVoiceAssistant(groqClient, cfg.Groq.HasAPIKey(), cfg.Groq.SystemPrompt, logger)

	// 4. HTTP Server
	app := server.NewApp(cfg, assistant, logger)

	go func() {
		logger.Info("Starting HTTP Server", zap.Int("port", cfg.HTTP.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.HTTP.Port)); err != nil {
			logger.Fatal("HTTP Server failed", zap.Error(err))
		}
	}()

	// 5. Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited gracefully")
}
