package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"loja/internal/config"
	"loja/internal/database"
	"loja/internal/server"
	"loja/internal/services"
	"loja/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := cfg.NewLogger()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	app, cleanup, err := newApp(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}
	defer cleanup()

	// --- Start HTTP Server ---
	logger.Info("starting server", zap.String("addr", cfg.AppPort))

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	<-quit
	logger.Info("shutting down server")

	if err := app.Shutdown(); err != nil {
		logger.Error("error during fiber shutdown", zap.Error(err))
	}
	logger.Info("server gracefully stopped")
}

// newApp opens the database, connects the event publisher when configured and
// builds the Fiber app. cleanup releases everything newApp opened.
func newApp(cfg *config.Config, logger *zap.Logger) (*fiber.App, func(), error) {
	db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		return nil, nil, err
	}
	closers := []func(){func() {
		if err := database.Close(db); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	if cfg.SeedData {
		if err := database.Seed(db, logger); err != nil {
			cleanup()
			return nil, nil, err
		}
	}

	// A nil *rabbitmq.Client must not end up inside the interface.
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Queue: cfg.RabbitMQQueue}, logger)
		if err != nil {
			cleanup()
			return nil, nil, err
		}
		closers = append(closers, func() {
			if err := mqClient.Close(); err != nil {
				logger.Error("failed to close RabbitMQ client", zap.Error(err))
			}
		})
		publisher = mqClient
	} else {
		logger.Info("RABBITMQ_URL not set, product events are disabled")
	}

	return server.New(cfg, db, publisher, logger), cleanup, nil
}
