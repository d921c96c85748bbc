package entity

import "github.com/shopspring/decimal"

// StockInRecord una fila de la hoja "Stock In" (entrada de materia prima).
// Date se conserva como texto crudo: el orden "reciente" de la API es lexicográfico
// sobre este campo y el parseo a fecha solo ocurre para las ventanas de tendencia.
type StockInRecord struct {
	ProductID   string          `json:"product_id"`
	Date        string          `json:"date"`
	QuantityIn  decimal.Decimal `json:"quantity_in"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// StockOutRecord una fila de la hoja "Stock Out" (salida/consumo).
// CurrentStock es el snapshot que el sheet registró al momento de la salida;
// se expone tal cual, el stock real se recalcula siempre desde los movimientos.
type StockOutRecord struct {
	ProductID    string          `json:"product_id"`
	Date         string          `json:"date"`
	QuantityOut  decimal.Decimal `json:"quantity_out"`
	CurrentStock decimal.Decimal `json:"current_stock"`
}
