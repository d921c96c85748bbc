package sheets

import (
	"context"
	"crypto/rsa"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// readonlyScope el backend nunca escribe en el spreadsheet.
	readonlyScope = "https://www.googleapis.com/auth/spreadsheets.readonly"

	jwtBearerGrant = "urn:ietf:params:oauth:grant-type:jwt-bearer"

	// tokenSlack margen antes de la expiración real para renovar el token.
	tokenSlack = time.Minute
)

// tokenSource obtiene y cachea el access token OAuth2 del service account.
// Es el único estado mutable del adaptador; el mutex cubre requests
// concurrentes que renueven el token a la vez.
type tokenSource struct {
	sa         *ServiceAccount
	key        *rsa.PrivateKey
	httpClient *http.Client
	now        func() time.Time

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func newTokenSource(sa *ServiceAccount, key *rsa.PrivateKey, httpClient *http.Client) *tokenSource {
	return &tokenSource{sa: sa, key: key, httpClient: httpClient, now: time.Now}
}

// accessToken devuelve un token vigente, renovándolo si hace falta.
func (ts *tokenSource) accessToken(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && ts.now().Add(tokenSlack).Before(ts.expiry) {
		return ts.token, nil
	}

	assertion, err := ts.signAssertion()
	if err != nil {
		return "", err
	}

	token, expiresIn, err := ts.exchange(ctx, assertion)
	if err != nil {
		return "", err
	}

	ts.token = token
	ts.expiry = ts.now().Add(time.Duration(expiresIn) * time.Second)
	return ts.token, nil
}

// signAssertion firma el JWT grant (RS256) con la llave del service account.
func (ts *tokenSource) signAssertion() (string, error) {
	now := ts.now()
	claims := jwt.MapClaims{
		"iss":   ts.sa.ClientEmail,
		"scope": readonlyScope,
		"aud":   ts.sa.TokenURI,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Hour).Unix(),
	}
	assertion, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(ts.key)
	if err != nil {
		return "", fmt.Errorf("sheets: firmar JWT grant: %w", err)
	}
	return assertion, nil
}

// exchange canjea la assertion por un access token en el token endpoint.
func (ts *tokenSource) exchange(ctx context.Context, assertion string) (string, int, error) {
	form := url.Values{
		"grant_type": {jwtBearerGrant},
		"assertion":  {assertion},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.sa.TokenURI,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, fmt.Errorf("sheets: crear request de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", 0, fmt.Errorf("sheets: token endpoint: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, fmt.Errorf("sheets: leer respuesta de token: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, fmt.Errorf("sheets: token endpoint HTTP %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", 0, fmt.Errorf("sheets: decodificar token: %w", err)
	}
	if payload.AccessToken == "" {
		return "", 0, fmt.Errorf("sheets: token endpoint no devolvió access_token")
	}
	return payload.AccessToken, payload.ExpiresIn, nil
}
