package server

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/arktech/arktech-brain/internal/adapter/http/fiber/handlers"
	"github.com/arktech/arktech-brain/internal/adapter/http/fiber/middleware"
	"github.com/arktech/arktech-brain/internal/ports"
	"github.com/arktech/arktech-brain/internal/service/health"
	"github.com/arktech/arktech-brain/pkg/config"
)

// NewApp builds the Fiber application with every route ArkTech serves.
func NewApp(cfg *config.Config, assistant ports.Assistant, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		ServerHeader:          cfg.App.Name,
		DisableStartupMessage: true,
		ReadTimeout:           cfg.HTTP.ReadTimeout,
		WriteTimeout:          cfg.HTTP.WriteTimeout,
		IdleTimeout:           cfg.HTTP.IdleTimeout,
		ErrorHandler:          middleware.ErrorHandler(log),
	})

	app.Use(recover.New())
	if cfg.CORS.Enabled {
		app.Use(middleware.NewCORS(cfg.CORS))
	}

	health.NewFiberHandler(health.NewService()).RegisterRoutes(app)

	voiceHandler := handlers.NewVoiceHandler(assistant, log)
	app.Post("/ask", voiceHandler.Ask)

	return app
}
