package inventory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
	"github.com/tnbcserp/invt-mgmt/internal/domain"
	"github.com/tnbcserp/invt-mgmt/pkg/logger"
)

// fakeSource doble de test del puerto SheetSource: hojas en memoria y error
// opcional por hoja para simular una fuente caída.
type fakeSource struct {
	sheets map[string][][]string
	errs   map[string]error
}

func (f *fakeSource) FetchSheet(_ context.Context, name string) ([][]string, error) {
	if err := f.errs[name]; err != nil {
		return nil, err
	}
	return f.sheets[name], nil
}

var testSheets = inventory.Sheets{
	RawMaterials: "Raw Material Master",
	StockIn:      "Stock In",
	StockOut:     "Stock Out",
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func newUseCase(src *fakeSource) *inventory.UseCase {
	return inventory.NewUseCase(src, testSheets, testLogger())
}

func sourceWithData() *fakeSource {
	return &fakeSource{
		sheets: map[string][][]string{
			"Raw Material Master": {
				{"RM ID", "Product Name", "Unit", "Avg. Cost per Unit", "Cost per Unit", "Reorder Level"},
				{"RM1", "Harina", "kg", "₹10", "₹11", "5"},
				{"RM2", "Azúcar", "kg", "₹20", "₹21", "8"},
			},
			"Stock In": {
				{"Date", "Product ID", "Quantity In", "Cost per Unit"},
				{"2026-08-29", "RM1", "20", "₹10"},
				{"2026-08-30", "RM2", "4", "₹20"},
				{"2026-08-01", "RM1", "6", "₹10"},
			},
			"Stock Out": {
				{"Date", "Product ID", "Quantity Out", "Current Stock"},
				{"2026-08-30", "RM1", "8", "18"},
			},
		},
	}
}

func TestRawMaterialByID_Encontrada(t *testing.T) {
	uc := newUseCase(sourceWithData())
	m, err := uc.RawMaterialByID(context.Background(), "RM2")
	require.NoError(t, err)
	assert.Equal(t, "Azúcar", m.Name)
	assert.Equal(t, "20", m.AvgCostPerUnit.String())
}

// Un ID ausente es una condición not-found, nunca un error de servidor.
func TestRawMaterialByID_NoEncontrada(t *testing.T) {
	uc := newUseCase(sourceWithData())
	m, err := uc.RawMaterialByID(context.Background(), "RM404")
	assert.Nil(t, m)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Una fuente caída colapsa a dataset vacío: el agregado no falla.
func TestFetchFallido_SeTrataComoVacio(t *testing.T) {
	src := sourceWithData()
	src.errs = map[string]error{
		"Stock In": errors.New("google sheets: HTTP 503"),
	}
	uc := newUseCase(src)

	assert.Empty(t, uc.StockIn(context.Background()))

	// El stock actual se calcula igual, solo que sin entradas.
	stock := uc.CurrentStock(context.Background())
	require.Len(t, stock, 2)
	assert.Equal(t, "-8", stock[0].CurrentStock.String(), "RM1 queda solo con la salida")
}

// El orden "reciente" es lexicográfico descendente sobre la fecha cruda.
func TestRecentStockIn_OrdenLexicograficoDescendente(t *testing.T) {
	uc := newUseCase(sourceWithData())
	recs := uc.RecentStockIn(context.Background(), 10)
	require.Len(t, recs, 3)
	assert.Equal(t, "2026-08-30", recs[0].Date)
	assert.Equal(t, "2026-08-29", recs[1].Date)
	assert.Equal(t, "2026-08-01", recs[2].Date)
}

func TestRecentStockIn_RespetaLimite(t *testing.T) {
	uc := newUseCase(sourceWithData())

	recs := uc.RecentStockIn(context.Background(), 2)
	require.Len(t, recs, 2)
	assert.Equal(t, "2026-08-30", recs[0].Date)

	// Límite inválido cae al default (10), acotado al total disponible.
	assert.Len(t, uc.RecentStockIn(context.Background(), 0), 3)
	assert.Len(t, uc.RecentStockIn(context.Background(), -3), 3)
}

func TestRecentStockOut_MismaPolitica(t *testing.T) {
	uc := newUseCase(sourceWithData())
	recs := uc.RecentStockOut(context.Background(), 5)
	require.Len(t, recs, 1)
	assert.Equal(t, "8", recs[0].QuantityOut.String())
}

// CurrentStock integra fetch, normalización y agregación.
func TestCurrentStock_DeExtremoAExtremo(t *testing.T) {
	uc := newUseCase(sourceWithData())
	stock := uc.CurrentStock(context.Background())
	require.Len(t, stock, 2)

	rm1 := stock[0]
	assert.Equal(t, "RM1", rm1.ID)
	assert.Equal(t, "26", rm1.TotalIn.String()) // 20 + 6
	assert.Equal(t, "8", rm1.TotalOut.String())
	assert.Equal(t, "18", rm1.CurrentStock.String())
	assert.Equal(t, "180", rm1.StockValue.String())

	rm2 := stock[1]
	assert.Equal(t, "4", rm2.CurrentStock.String())
	assert.Equal(t, "80", rm2.StockValue.String())
}
