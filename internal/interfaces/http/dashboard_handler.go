package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tnbcserp/invt-mgmt/internal/application/analytics"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
)

// DashboardHandler maneja los endpoints derivados: KPIs, stock actual,
// alertas y tendencias.
type DashboardHandler struct {
	dashboard *analytics.DashboardUseCase
	inv       *inventory.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboard *analytics.DashboardUseCase, inv *inventory.UseCase) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, inv: inv}
}

// Summary godoc
// @Summary      KPIs del dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardKPIDTO
// @Router       /api/v1/dashboard [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.dashboard.Summary(c.Context()))
}

// CurrentStock godoc
// @Summary      Stock actual por materia prima
// @Tags         dashboard
// @Produce      json
// @Success      200  {array}  entity.CurrentStockEntry
// @Router       /api/v1/current-stock [get]
func (h *DashboardHandler) CurrentStock(c *fiber.Ctx) error {
	return c.JSON(h.inv.CurrentStock(c.Context()))
}

// Alerts godoc
// @Summary      Alertas de stock bajo y crítico
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.AlertsDTO
// @Router       /api/v1/alerts [get]
func (h *DashboardHandler) Alerts(c *fiber.Ctx) error {
	return c.JSON(h.dashboard.Alerts(c.Context()))
}

// Trends godoc
// @Summary      Movimiento de los últimos 7 días
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.TrendsDTO
// @Router       /api/v1/trends [get]
func (h *DashboardHandler) Trends(c *fiber.Ctx) error {
	return c.JSON(h.dashboard.Trends(c.Context()))
}
