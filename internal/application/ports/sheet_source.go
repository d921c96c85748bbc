// Package ports define los puertos que la capa de aplicación consume de infraestructura.
package ports

import "context"

// SheetSource puerto hacia la fuente de datos tabular (Google Sheets o CSV local).
// FetchSheet devuelve las filas de la hoja como celdas de texto, con la fila 0
// como encabezados. El error se devuelve explícito para que el caller distinga
// "sin datos" de "fetch fallido"; la capa de aplicación lo colapsa a dataset
// vacío (registrándolo) para conservar el comportamiento externo documentado.
type SheetSource interface {
	FetchSheet(ctx context.Context, sheetName string) ([][]string, error)
}
