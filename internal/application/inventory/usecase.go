package inventory

import (
	"context"
	"sort"

	"github.com/tnbcserp/invt-mgmt/internal/application/ports"
	"github.com/tnbcserp/invt-mgmt/internal/domain"
	"github.com/tnbcserp/invt-mgmt/internal/domain/entity"
	"github.com/tnbcserp/invt-mgmt/pkg/logger"
)

// DefaultRecentLimit límite por defecto de los endpoints "recent".
const DefaultRecentLimit = 10

// Sheets nombres de las tres hojas del spreadsheet.
type Sheets struct {
	RawMaterials string
	StockIn      string
	StockOut     string
}

// UseCase operaciones de lectura sobre el inventario. Cada llamada vuelve a
// pedir las hojas a la fuente y recalcula desde cero: no hay caché ni estado
// mutable compartido, solo el handle de la fuente (read-only, process-wide).
type UseCase struct {
	source ports.SheetSource
	sheets Sheets
	log    *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(source ports.SheetSource, sheets Sheets, log *logger.Logger) *UseCase {
	return &UseCase{source: source, sheets: sheets, log: log.Component("inventory")}
}

// fetchRecords trae y normaliza una hoja. Un fetch fallido se registra y se
// colapsa a dataset vacío: las agregaciones nunca fallan por la fuente.
func (uc *UseCase) fetchRecords(ctx context.Context, sheetName string) []Record {
	rows, err := uc.source.FetchSheet(ctx, sheetName)
	if err != nil {
		uc.log.Warn().Err(err).Str("sheet", sheetName).Msg("fetch de hoja fallido, se trata como vacía")
		return nil
	}
	return Normalize(rows)
}

// RawMaterials devuelve el maestro de materias primas.
func (uc *UseCase) RawMaterials(ctx context.Context) []entity.RawMaterial {
	recs := uc.fetchRecords(ctx, uc.sheets.RawMaterials)
	out := make([]entity.RawMaterial, 0, len(recs))
	for _, rec := range recs {
		out = append(out, RawMaterialFromRecord(rec))
	}
	return out
}

// RawMaterialByID busca una materia prima por su RM ID.
// Devuelve domain.ErrNotFound si el ID no existe en el maestro.
func (uc *UseCase) RawMaterialByID(ctx context.Context, id string) (*entity.RawMaterial, error) {
	for _, m := range uc.RawMaterials(ctx) {
		if m.ID == id {
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

// StockIn devuelve todas las entradas de stock.
func (uc *UseCase) StockIn(ctx context.Context) []entity.StockInRecord {
	recs := uc.fetchRecords(ctx, uc.sheets.StockIn)
	out := make([]entity.StockInRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, StockInFromRecord(rec))
	}
	return out
}

// StockOut devuelve todas las salidas de stock.
func (uc *UseCase) StockOut(ctx context.Context) []entity.StockOutRecord {
	recs := uc.fetchRecords(ctx, uc.sheets.StockOut)
	out := make([]entity.StockOutRecord, 0, len(recs))
	for _, rec := range recs {
		out = append(out, StockOutFromRecord(rec))
	}
	return out
}

// RecentStockIn devuelve las últimas entradas. El orden es descendente sobre el
// texto crudo de la fecha (lexicográfico, no fecha parseada): así lo expone el
// sistema desde siempre y los consumidores dependen de ello.
func (uc *UseCase) RecentStockIn(ctx context.Context, limit int) []entity.StockInRecord {
	recs := uc.StockIn(ctx)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs[:clampLimit(limit, len(recs))]
}

// RecentStockOut devuelve las últimas salidas, con la misma política de orden.
func (uc *UseCase) RecentStockOut(ctx context.Context, limit int) []entity.StockOutRecord {
	recs := uc.StockOut(ctx)
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Date > recs[j].Date })
	return recs[:clampLimit(limit, len(recs))]
}

// Datasets trae las tres hojas en paralelo. Solo la frontera de fetch es I/O;
// la agregación posterior es síncrona y pura.
func (uc *UseCase) Datasets(ctx context.Context) ([]entity.RawMaterial, []entity.StockInRecord, []entity.StockOutRecord) {
	materialsCh := make(chan []entity.RawMaterial, 1)
	insCh := make(chan []entity.StockInRecord, 1)
	outsCh := make(chan []entity.StockOutRecord, 1)

	go func() { materialsCh <- uc.RawMaterials(ctx) }()
	go func() { insCh <- uc.StockIn(ctx) }()
	go func() { outsCh <- uc.StockOut(ctx) }()

	return <-materialsCh, <-insCh, <-outsCh
}

// CurrentStock recalcula el stock actual de todas las materias primas.
func (uc *UseCase) CurrentStock(ctx context.Context) []entity.CurrentStockEntry {
	materials, ins, outs := uc.Datasets(ctx)
	return Aggregate(materials, ins, outs)
}

func clampLimit(limit, n int) int {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	if limit > n {
		return n
	}
	return limit
}
