// Package analytics contiene los casos de uso que derivan KPIs del inventario:
// resumen del dashboard, alertas de stock y tendencias de movimiento.
package analytics

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tnbcserp/invt-mgmt/internal/application/dto"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
	"github.com/tnbcserp/invt-mgmt/internal/domain/entity"
	"github.com/tnbcserp/invt-mgmt/pkg/dates"
)

// Ventanas rodantes de movimiento, en días.
const (
	weeklyWindowDays  = 7
	monthlyWindowDays = 30
)

// DashboardUseCase deriva los KPIs del dashboard a partir de la salida del
// agregador de stock y de los movimientos crudos (para las ventanas de tiempo).
//
// El reloj se inyecta: las ventanas de recencia y el fallback de fechas
// ilegibles dependen de "ahora" y los tests necesitan fijarlo.
type DashboardUseCase struct {
	inv *inventory.UseCase
	now func() time.Time
}

// NewDashboardUseCase construye el caso de uso. Si now es nil usa time.Now.
func NewDashboardUseCase(inv *inventory.UseCase, now func() time.Time) *DashboardUseCase {
	if now == nil {
		now = time.Now
	}
	return &DashboardUseCase{inv: inv, now: now}
}

// Summary calcula los KPIs del dashboard: totales, alertas y movimiento de los
// últimos 30 días. Las tres hojas se traen en paralelo (una sola vez).
func (uc *DashboardUseCase) Summary(ctx context.Context) *dto.DashboardKPIDTO {
	materials, ins, outs := uc.inv.Datasets(ctx)
	stock := inventory.Aggregate(materials, ins, outs)

	low, critical := splitAlerts(stock)
	monthlyIn, monthlyOut := uc.movementWithin(ins, outs, monthlyWindowDays)

	total := decimal.Zero
	for _, e := range stock {
		total = total.Add(e.StockValue)
	}

	return &dto.DashboardKPIDTO{
		TotalProducts:      len(stock),
		TotalStockValue:    total,
		LowStockCount:      len(low),
		CriticalStockCount: len(critical),
		MonthlyIn:          monthlyIn,
		MonthlyOut:         monthlyOut,
		LowStockItems:      low,
		CriticalStockItems: critical,
	}
}

// Alerts devuelve las listas de alertas y el contador combinado.
// TotalAlerts es la suma simple de ambas listas (los críticos cuentan doble).
func (uc *DashboardUseCase) Alerts(ctx context.Context) *dto.AlertsDTO {
	low, critical := splitAlerts(uc.inv.CurrentStock(ctx))
	return &dto.AlertsDTO{
		LowStockItems:      low,
		CriticalStockItems: critical,
		TotalAlerts:        len(low) + len(critical),
	}
}

// Trends suma el movimiento de los últimos 7 días.
func (uc *DashboardUseCase) Trends(ctx context.Context) *dto.TrendsDTO {
	ins, outs := uc.inv.StockIn(ctx), uc.inv.StockOut(ctx)
	weeklyIn, weeklyOut := uc.movementWithin(ins, outs, weeklyWindowDays)
	return &dto.TrendsDTO{
		WeeklyIn:    weeklyIn,
		WeeklyOut:   weeklyOut,
		NetMovement: weeklyIn.Sub(weeklyOut),
	}
}

// splitAlerts separa las entradas en low-stock y críticas. Las listas siempre
// son no-nil para que el JSON serialice [] y no null.
func splitAlerts(stock []entity.CurrentStockEntry) (low, critical []entity.CurrentStockEntry) {
	low = make([]entity.CurrentStockEntry, 0)
	critical = make([]entity.CurrentStockEntry, 0)
	for _, e := range stock {
		if e.IsLowStock() {
			low = append(low, e)
		}
		if e.IsCriticalStock() {
			critical = append(critical, e)
		}
	}
	return low, critical
}

// movementWithin suma QuantityIn/QuantityOut de los registros cuya fecha cae
// dentro de los últimos N días. Una fecha ilegible se parsea como "ahora" y
// por lo tanto siempre entra en la ventana.
func (uc *DashboardUseCase) movementWithin(
	ins []entity.StockInRecord,
	outs []entity.StockOutRecord,
	days int,
) (totalIn, totalOut decimal.Decimal) {
	cutoff := uc.now().AddDate(0, 0, -days)

	totalIn, totalOut = decimal.Zero, decimal.Zero
	for _, r := range ins {
		if !dates.Parse(r.Date, uc.now).Before(cutoff) {
			totalIn = totalIn.Add(r.QuantityIn)
		}
	}
	for _, r := range outs {
		if !dates.Parse(r.Date, uc.now).Before(cutoff) {
			totalOut = totalOut.Add(r.QuantityOut)
		}
	}
	return totalIn, totalOut
}
