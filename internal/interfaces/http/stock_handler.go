package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
)

// StockHandler maneja los endpoints de movimientos de stock (entradas y salidas).
type StockHandler struct {
	uc *inventory.UseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *inventory.UseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// ListIn godoc
// @Summary      Listar entradas de stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}  entity.StockInRecord
// @Router       /api/v1/stock-in [get]
func (h *StockHandler) ListIn(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockIn(c.Context()))
}

// RecentIn godoc
// @Summary      Entradas recientes (orden lexicográfico descendente por fecha cruda)
// @Tags         stock
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  entity.StockInRecord
// @Router       /api/v1/stock-in/recent [get]
func (h *StockHandler) RecentIn(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", inventory.DefaultRecentLimit)
	return c.JSON(h.uc.RecentStockIn(c.Context(), limit))
}

// ListOut godoc
// @Summary      Listar salidas de stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}  entity.StockOutRecord
// @Router       /api/v1/stock-out [get]
func (h *StockHandler) ListOut(c *fiber.Ctx) error {
	return c.JSON(h.uc.StockOut(c.Context()))
}

// RecentOut godoc
// @Summary      Salidas recientes (misma política de orden que stock-in)
// @Tags         stock
// @Produce      json
// @Param        limit  query  int  false  "Límite"  default(10)
// @Success      200    {array}  entity.StockOutRecord
// @Router       /api/v1/stock-out/recent [get]
func (h *StockHandler) RecentOut(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", inventory.DefaultRecentLimit)
	return c.JSON(h.uc.RecentStockOut(c.Context(), limit))
}
