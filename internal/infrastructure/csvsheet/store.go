// Package csvsheet implementa SheetSource sobre un directorio de archivos CSV,
// uno por hoja ("Stock In" -> "Stock In.csv"). Pensado para desarrollo local y
// tests, donde no hay credenciales de Google.
package csvsheet

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tnbcserp/invt-mgmt/internal/application/ports"
)

// Verificar en tiempo de compilación que Store implementa SheetSource.
var _ ports.SheetSource = (*Store)(nil)

// Store fuente de hojas respaldada por CSVs en disco.
type Store struct {
	dir string
}

// NewStore construye la fuente. El directorio debe existir.
func NewStore(dir string) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("csvsheet: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("csvsheet: %q no es un directorio", dir)
	}
	return &Store{dir: dir}, nil
}

// FetchSheet lee el CSV de la hoja. Las filas pueden tener largos distintos
// (igual que en un sheet real); el normalizador decide qué descartar.
func (s *Store) FetchSheet(_ context.Context, sheetName string) ([][]string, error) {
	f, err := os.Open(filepath.Join(s.dir, sheetName+".csv"))
	if err != nil {
		return nil, fmt.Errorf("csvsheet: abrir hoja %q: %w", sheetName, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // largos variables permitidos
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csvsheet: leer hoja %q: %w", sheetName, err)
	}
	return rows, nil
}
