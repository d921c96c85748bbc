package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tnbcserp/invt-mgmt/internal/domain/entity"
)

// DashboardKPIDTO respuesta de GET /api/v1/dashboard.
// Se recalcula completo en cada request; no hay caché.
type DashboardKPIDTO struct {
	TotalProducts      int             `json:"total_products"`
	TotalStockValue    decimal.Decimal `json:"total_stock_value"`
	LowStockCount      int             `json:"low_stock_count"`
	CriticalStockCount int             `json:"critical_stock_count"`

	// Movimiento de los últimos 30 días (ventana rodante que termina en "ahora")
	MonthlyIn  decimal.Decimal `json:"monthly_in"`
	MonthlyOut decimal.Decimal `json:"monthly_out"`

	LowStockItems      []entity.CurrentStockEntry `json:"low_stock_items"`
	CriticalStockItems []entity.CurrentStockEntry `json:"critical_stock_items"`
}

// AlertsDTO respuesta de GET /api/v1/alerts.
// Los ítems críticos son por definición subconjunto de los low-stock; ambas
// listas se reportan independientes y TotalAlerts es la suma simple de ambas,
// así que un crítico cuenta dos veces. Los consumidores ya dependen de eso.
type AlertsDTO struct {
	LowStockItems      []entity.CurrentStockEntry `json:"low_stock_items"`
	CriticalStockItems []entity.CurrentStockEntry `json:"critical_stock_items"`
	TotalAlerts        int                        `json:"total_alerts"`
}

// TrendsDTO respuesta de GET /api/v1/trends (ventana de 7 días).
type TrendsDTO struct {
	WeeklyIn    decimal.Decimal `json:"weekly_in"`
	WeeklyOut   decimal.Decimal `json:"weekly_out"`
	NetMovement decimal.Decimal `json:"net_movement"`
}
