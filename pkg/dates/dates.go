// Package dates parsea las fechas de texto libre que traen las hojas de cálculo.
package dates

import "time"

// layouts formatos aceptados, en orden de prioridad. El primero que parsea gana.
// Equivalen a "15 Jan 24", "15 January 2024", "2024-01-15" y "15/01/2024".
var layouts = []string{
	"2 Jan 06",
	"2 January 2006",
	"2006-01-02",
	"2/1/2006",
}

// Parse interpreta una fecha en texto libre tal como viene del sheet.
// Si ningún formato aplica (incluida la cadena vacía) devuelve now(): los
// registros con fecha ilegible cuentan como "ahora" y entran en cualquier
// ventana de recencia. Comportamiento documentado, no un accidente.
func Parse(s string, now func() time.Time) time.Time {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return now()
}
