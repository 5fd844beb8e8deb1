package server

import (
	"errors"
	"time"

	"loja/internal/config"
	"loja/internal/database"
	"loja/internal/handlers"
	"loja/internal/repositories"
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// New wires repositories, services and handlers into a Fiber app.
// publisher may be nil, in which case no product events are emitted.
func New(cfg *config.Config, db *gorm.DB, publisher services.EventPublisher, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Loja API",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			if code == fiber.StatusInternalServerError {
				logger.Error("unhandled request error", zap.String("path", c.Path()), zap.Error(err))
				return c.Status(code).JSON(fiber.Map{"error": "internal server error"})
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.CORSAllowOrigins}))

	productRepo := repositories.NewGORMProductRepository(db)
	employeeRepo := repositories.NewGORMEmployeeRepository(db)

	productService := services.NewProductService(productRepo, publisher, logger)
	reportService := services.NewReportService(employeeRepo)

	productHandler := handlers.NewProductHandler(productService, logger)
	reportHandler := handlers.NewReportHandler(reportService, logger)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)
	if cfg.LegacyRoutesEnabled {
		productHandler.RegisterLegacyRoutes(api)
	}
	reportHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := database.Ping(db); err != nil {
			logger.Warn("health check failed", zap.Error(err))
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status":   "unhealthy",
				"time":     time.Now().Format(time.RFC3339),
				"database": "down",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"database": "up",
		})
	})

	return app
}
