package sheets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tnbcserp/invt-mgmt/internal/application/ports"
	"github.com/tnbcserp/invt-mgmt/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa SheetSource.
var _ ports.SheetSource = (*Client)(nil)

const sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"

// Client adaptador SheetSource contra la API de Google Sheets v4.
// Usa únicamente net/http; la autenticación va por tokenSource.
// Se construye una vez en el arranque y se comparte read-only entre requests.
type Client struct {
	spreadsheetID string
	tokens        *tokenSource
	httpClient    *http.Client
	log           *logger.Logger
}

// NewClient construye el adaptador a partir del blob de credenciales.
func NewClient(credentialsJSON, spreadsheetID string, log *logger.Logger) (*Client, error) {
	sa, err := ParseServiceAccount(credentialsJSON)
	if err != nil {
		return nil, err
	}
	key, err := sa.RSAKey()
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 20 * time.Second}
	return &Client{
		spreadsheetID: spreadsheetID,
		tokens:        newTokenSource(sa, key, httpClient),
		httpClient:    httpClient,
		log:           log.Component("sheets"),
	}, nil
}

// valueRange respuesta de values.get. Con el render por defecto
// (FORMATTED_VALUE) todas las celdas llegan como strings.
type valueRange struct {
	Values [][]string `json:"values"`
}

// FetchSheet trae todas las filas de la hoja indicada.
// Devuelve el error al caller; la capa de aplicación decide colapsarlo a vacío.
func (c *Client) FetchSheet(ctx context.Context, sheetName string) ([][]string, error) {
	token, err := c.tokens.accessToken(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/%s/values/%s",
		sheetsBaseURL, url.PathEscape(c.spreadsheetID), url.PathEscape(sheetName))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("sheets: crear request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sheets: fetch %q: %w", sheetName, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sheets: leer respuesta de %q: %w", sheetName, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("sheets: fetch %q HTTP %d: %s", sheetName, resp.StatusCode, body)
	}

	var vr valueRange
	if err := json.Unmarshal(body, &vr); err != nil {
		return nil, fmt.Errorf("sheets: decodificar %q: %w", sheetName, err)
	}

	c.log.Debug().Str("sheet", sheetName).Int("rows", len(vr.Values)).Msg("hoja descargada")
	return vr.Values, nil
}
