package inventory

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tnbcserp/invt-mgmt/internal/domain/entity"
)

// Encabezados de columna tal como aparecen en el spreadsheet.
const (
	colRMID         = "RM ID"
	colProductName  = "Product Name"
	colUnit         = "Unit"
	colAvgCost      = "Avg. Cost per Unit"
	colCostPerUnit  = "Cost per Unit"
	colReorderLevel = "Reorder Level"
	colDate         = "Date"
	colProductID    = "Product ID"
	colQuantityIn   = "Quantity In"
	colQuantityOut  = "Quantity Out"
	colCurrentStock = "Current Stock"
)

// currencyGlyph prefijo de moneda que traen las columnas de costo en el sheet.
const currencyGlyph = "₹"

// numberField parsea un campo numérico del registro. Campo ausente o ilegible
// devuelve error; la política de coerción es todo-o-nada por registro.
func numberField(rec Record, col string) (decimal.Decimal, error) {
	return decimal.NewFromString(strings.TrimSpace(rec[col]))
}

// moneyField igual que numberField pero quitando antes el símbolo de moneda.
func moneyField(rec Record, col string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(rec[col], currencyGlyph, "")
	return decimal.NewFromString(strings.TrimSpace(s))
}

// RawMaterialFromRecord construye la entidad desde un registro normalizado.
// Si cualquier campo numérico falta o no parsea, TODOS los campos numéricos
// del registro quedan en cero (no solo el que falló). El registro se conserva.
func RawMaterialFromRecord(rec Record) entity.RawMaterial {
	m := entity.RawMaterial{
		ID:   rec[colRMID],
		Name: rec[colProductName],
		Unit: rec[colUnit],
	}
	avg, err1 := moneyField(rec, colAvgCost)
	cost, err2 := moneyField(rec, colCostPerUnit)
	reorder, err3 := numberField(rec, colReorderLevel)
	if err1 != nil || err2 != nil || err3 != nil {
		return m
	}
	m.AvgCostPerUnit = avg
	m.CostPerUnit = cost
	m.ReorderLevel = reorder
	return m
}

// StockInFromRecord construye la entidad de entrada. Misma política todo-o-nada.
func StockInFromRecord(rec Record) entity.StockInRecord {
	r := entity.StockInRecord{
		ProductID: rec[colProductID],
		Date:      rec[colDate],
	}
	qty, err1 := numberField(rec, colQuantityIn)
	cost, err2 := moneyField(rec, colCostPerUnit)
	if err1 != nil || err2 != nil {
		return r
	}
	r.QuantityIn = qty
	r.CostPerUnit = cost
	return r
}

// StockOutFromRecord construye la entidad de salida. Misma política todo-o-nada.
func StockOutFromRecord(rec Record) entity.StockOutRecord {
	r := entity.StockOutRecord{
		ProductID: rec[colProductID],
		Date:      rec[colDate],
	}
	qty, err1 := numberField(rec, colQuantityOut)
	snapshot, err2 := numberField(rec, colCurrentStock)
	if err1 != nil || err2 != nil {
		return r
	}
	r.QuantityOut = qty
	r.CurrentStock = snapshot
	return r
}
