package entity

import "github.com/shopspring/decimal"

// CurrentStockEntry stock actual derivado de una materia prima y sus movimientos.
// Invariantes: CurrentStock = TotalIn - TotalOut (puede ser negativo, no se recorta)
// y StockValue = CurrentStock * AvgCostPerUnit. Se recalcula completo en cada request.
type CurrentStockEntry struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	AvgCostPerUnit decimal.Decimal `json:"avg_cost_per_unit"`
	ReorderLevel   decimal.Decimal `json:"reorder_level"`
	TotalIn        decimal.Decimal `json:"total_in"`
	TotalOut       decimal.Decimal `json:"total_out"`
	CurrentStock   decimal.Decimal `json:"current_stock"`
	StockValue     decimal.Decimal `json:"stock_value"`
}

// IsLowStock indica si el stock está en o por debajo del nivel de reposición.
func (e CurrentStockEntry) IsLowStock() bool {
	return e.CurrentStock.LessThanOrEqual(e.ReorderLevel)
}

// IsCriticalStock indica si el stock está en o por debajo de la mitad del nivel
// de reposición. Todo ítem crítico es también low-stock (con ReorderLevel >= 0).
func (e CurrentStockEntry) IsCriticalStock() bool {
	half := e.ReorderLevel.Div(decimal.NewFromInt(2))
	return e.CurrentStock.LessThanOrEqual(half)
}
