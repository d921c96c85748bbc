// Package http expone los casos de uso como endpoints JSON vía Fiber.
package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tnbcserp/invt-mgmt/internal/application/analytics"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	InventoryUC *inventory.UseCase
	DashboardUC *analytics.DashboardUseCase
}

// Router registra las rutas de la API bajo /api/v1. Toda la API es de solo
// lectura: cada endpoint vuelve a pedir las hojas y recalcula.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	// Raw materials (maestro)
	rawMaterialHandler := NewRawMaterialHandler(deps.InventoryUC)
	api.Get("/raw-materials", rawMaterialHandler.List)
	api.Get("/raw-materials/:id", rawMaterialHandler.GetByID)

	// Movimientos de stock
	stockHandler := NewStockHandler(deps.InventoryUC)
	api.Get("/stock-in", stockHandler.ListIn)
	api.Get("/stock-in/recent", stockHandler.RecentIn)
	api.Get("/stock-out", stockHandler.ListOut)
	api.Get("/stock-out/recent", stockHandler.RecentOut)

	// Dashboard y derivados
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.InventoryUC)
	api.Get("/dashboard", dashboardHandler.Summary)
	api.Get("/current-stock", dashboardHandler.CurrentStock)
	api.Get("/alerts", dashboardHandler.Alerts)
	api.Get("/trends", dashboardHandler.Trends)
}
