package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
)

// ReportHandler maneja los reportes de solo lectura sobre ventas.
type ReportHandler struct {
	uc *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Daily resumen de ventas de un día. Por defecto, hoy.
func (h *ReportHandler) Daily(c *fiber.Ctx) error {
	date := c.Query("date", time.Now().Format(reports.DateLayout))
	out, err := h.uc.DailySummary(date)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// History ventas del rango [start_date, end_date]. Por defecto, últimos 7 días.
func (h *ReportHandler) History(c *fiber.Ctx) error {
	now := time.Now()
	start := c.Query("start_date", now.AddDate(0, 0, -7).Format(reports.DateLayout))
	end := c.Query("end_date", now.Format(reports.DateLayout))
	out, err := h.uc.History(start, end)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// TopProducts productos más vendidos del rango. Por defecto, últimos 30 días.
func (h *ReportHandler) TopProducts(c *fiber.Ctx) error {
	now := time.Now()
	start := c.Query("start_date", now.AddDate(0, 0, -30).Format(reports.DateLayout))
	end := c.Query("end_date", now.Format(reports.DateLayout))
	limit := c.QueryInt("limit", 10)
	out, err := h.uc.TopProducts(start, end, limit)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
