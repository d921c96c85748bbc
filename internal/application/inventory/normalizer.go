// Package inventory contiene la lógica central del sistema: normalización de
// filas del sheet, cruce de materias primas con movimientos y las operaciones
// de lectura que expone la API.
package inventory

// Record una fila normalizada: etiqueta de encabezado -> valor de celda.
type Record map[string]string

// Normalize convierte filas crudas (fila 0 = encabezados) en registros por fila.
// Política observada en los sheets reales:
//   - una fila con menos celdas que encabezados se descarta en silencio
//   - las celdas sobrantes se ignoran (semántica zip)
//   - con menos de 2 filas no hay datos y el resultado es vacío
func Normalize(rows [][]string) []Record {
	if len(rows) < 2 {
		return nil
	}
	headers := rows[0]
	out := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if len(row) < len(headers) {
			continue
		}
		rec := make(Record, len(headers))
		for i, h := range headers {
			rec[h] = row[i]
		}
		out = append(out, rec)
	}
	return out
}
