package entity

import "github.com/shopspring/decimal"

// RawMaterial materia prima del sheet maestro ("Raw Material Master").
// El ID (columna "RM ID") es la clave con la que se cruzan las entradas y salidas.
type RawMaterial struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Unit           string          `json:"unit"`
	AvgCostPerUnit decimal.Decimal `json:"avg_cost_per_unit"`
	CostPerUnit    decimal.Decimal `json:"cost_per_unit"`
	ReorderLevel   decimal.Decimal `json:"reorder_level"`
}
