package handlers

import (
	"loja/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReportHandler serves downloadable reports.
type ReportHandler struct {
	service *services.ReportService
	logger  *zap.Logger
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(service *services.ReportService, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the report routes with the Fiber app.
func (h *ReportHandler) RegisterRoutes(router fiber.Router) {
	reportRoutes := router.Group("/relatorio")
	reportRoutes.Get("/csv", h.HandleExportEmployeesCSV)
}

// HandleExportEmployeesCSV returns every employee as a CSV attachment.
func (h *ReportHandler) HandleExportEmployeesCSV(c *fiber.Ctx) error {
	report, err := h.service.ExportEmployeesCSV()
	if err != nil {
		h.logger.Error("failed to export employees report", zap.Error(err))
		return internalError(c)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, "attachment; filename="+services.EmployeeReportFilename)
	return c.Send(report)
}
