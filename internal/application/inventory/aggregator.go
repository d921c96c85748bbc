package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/tnbcserp/invt-mgmt/internal/domain/entity"
)

// Aggregate cruza las materias primas con sus entradas y salidas por ProductID
// y devuelve una entrada de stock actual por materia prima conocida.
//
// Función pura: no muta los argumentos y siempre devuelve la lista completa
// (vacía si no hay materias primas). Los movimientos cuyo ProductID no existe
// en el maestro se descartan sin reportar. El orden de salida es el orden de
// entrada del maestro; ante un ID repetido gana la última fila pero conserva
// la posición de la primera.
func Aggregate(
	materials []entity.RawMaterial,
	ins []entity.StockInRecord,
	outs []entity.StockOutRecord,
) []entity.CurrentStockEntry {
	index := make(map[string]int, len(materials))
	entries := make([]entity.CurrentStockEntry, 0, len(materials))

	for _, m := range materials {
		e := entity.CurrentStockEntry{
			ID:             m.ID,
			Name:           m.Name,
			Unit:           m.Unit,
			AvgCostPerUnit: m.AvgCostPerUnit,
			ReorderLevel:   m.ReorderLevel,
			TotalIn:        decimal.Zero,
			TotalOut:       decimal.Zero,
		}
		if i, ok := index[m.ID]; ok {
			entries[i] = e
			continue
		}
		index[m.ID] = len(entries)
		entries = append(entries, e)
	}

	for _, r := range ins {
		if i, ok := index[r.ProductID]; ok {
			entries[i].TotalIn = entries[i].TotalIn.Add(r.QuantityIn)
		}
	}
	for _, r := range outs {
		if i, ok := index[r.ProductID]; ok {
			entries[i].TotalOut = entries[i].TotalOut.Add(r.QuantityOut)
		}
	}

	for i := range entries {
		entries[i].CurrentStock = entries[i].TotalIn.Sub(entries[i].TotalOut)
		entries[i].StockValue = entries[i].CurrentStock.Mul(entries[i].AvgCostPerUnit)
	}

	return entries
}
