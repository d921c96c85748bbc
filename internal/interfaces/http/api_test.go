package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tnbcserp/invt-mgmt/internal/application/analytics"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
	apphttp "github.com/tnbcserp/invt-mgmt/internal/interfaces/http"
	"github.com/tnbcserp/invt-mgmt/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fakeSource struct {
	sheets map[string][][]string
}

func (f *fakeSource) FetchSheet(_ context.Context, name string) ([][]string, error) {
	return f.sheets[name], nil
}

var fixedNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// buildTestApp construye una aplicación Fiber con las rutas reales de la API
// sobre una fuente de hojas en memoria.
func buildTestApp() *fiber.App {
	src := &fakeSource{sheets: map[string][][]string{
		"Raw Material Master": {
			{"RM ID", "Product Name", "Unit", "Avg. Cost per Unit", "Cost per Unit", "Reorder Level"},
			{"RM1", "Harina", "kg", "₹10", "₹10", "5"},
			{"RM2", "Azúcar", "kg", "₹20", "₹20", "8"},
		},
		"Stock In": {
			{"Date", "Product ID", "Quantity In", "Cost per Unit"},
			{"2026-08-29", "RM1", "20", "₹10"},
			{"2026-08-30", "RM2", "4", "₹20"},
		},
		"Stock Out": {
			{"Date", "Product ID", "Quantity Out", "Current Stock"},
			{"2026-08-30", "RM1", "8", "12"},
		},
	}}

	log := logger.New(logger.Config{Env: "production", Level: "error"})
	inv := inventory.NewUseCase(src, inventory.Sheets{
		RawMaterials: "Raw Material Master",
		StockIn:      "Stock In",
		StockOut:     "Stock Out",
	}, log)
	dash := analytics.NewDashboardUseCase(inv, func() time.Time { return fixedNow })

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{InventoryUC: inv, DashboardUC: dash})
	return app
}

func doGet(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body map[string]any
	if resp.Header.Get("Content-Type") != "" {
		_ = json.NewDecoder(resp.Body).Decode(&body)
	}
	return resp, body
}

func doGetList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var body []map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests
// ──────────────────────────────────────────────────────────────────────────────

func TestGetRawMaterials_Lista(t *testing.T) {
	app := buildTestApp()
	resp, body := doGetList(t, app, "/api/v1/raw-materials")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body, 2)
	assert.Equal(t, "RM1", body[0]["id"])
	assert.Equal(t, "Harina", body[0]["name"])
}

func TestGetRawMaterialPorID_Existente(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/v1/raw-materials/RM2")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Azúcar", body["name"])
}

// Un ID ausente responde 404 con código NOT_FOUND, nunca 500.
func TestGetRawMaterialPorID_NoExistente(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/v1/raw-materials/RM404")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", body["code"])
}

func TestGetStockInRecent_LimiteYOrden(t *testing.T) {
	app := buildTestApp()
	resp, body := doGetList(t, app, "/api/v1/stock-in/recent?limit=1")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body, 1)
	// Orden lexicográfico descendente por fecha cruda: gana 2026-08-30.
	assert.Equal(t, "2026-08-30", body[0]["date"])
	assert.Equal(t, "RM2", body[0]["product_id"])
}

func TestGetCurrentStock(t *testing.T) {
	app := buildTestApp()
	resp, body := doGetList(t, app, "/api/v1/current-stock")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body, 2)
	assert.Equal(t, "RM1", body[0]["id"])
	assert.Equal(t, "12", body[0]["current_stock"])
	assert.Equal(t, "120", body[0]["stock_value"])
}

func TestGetDashboard_KPIs(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/v1/dashboard")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["total_products"])
	assert.Equal(t, "200", body["total_stock_value"]) // 12*10 + 4*20
	assert.Equal(t, float64(1), body["low_stock_count"])
	assert.Equal(t, float64(1), body["critical_stock_count"])
}

func TestGetAlerts_ContadorCombinado(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/v1/alerts")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	// RM2 (stock 4, reorder 8) es low y también crítico (4 <= 4): cuenta doble.
	assert.Equal(t, float64(2), body["total_alerts"])
}

func TestGetTrends(t *testing.T) {
	app := buildTestApp()
	resp, body := doGet(t, app, "/api/v1/trends")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "24", body["weekly_in"])
	assert.Equal(t, "8", body["weekly_out"])
	assert.Equal(t, "16", body["net_movement"])
}
