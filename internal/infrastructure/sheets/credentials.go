// Package sheets implementa el puerto SheetSource contra la API REST de
// Google Sheets v4, con autenticación de service account (JWT grant RS256).
package sheets

import (
	"crypto/rsa"
	"encoding/json"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tnbcserp/invt-mgmt/internal/domain"
)

// googleTokenURI endpoint por defecto para canjear el JWT por un access token.
const googleTokenURI = "https://oauth2.googleapis.com/token"

// ServiceAccount campos relevantes del JSON de credenciales de Google
// (GOOGLE_SHEETS_CREDS trae el blob completo; el resto de campos se ignora).
type ServiceAccount struct {
	Type        string `json:"type"`
	ProjectID   string `json:"project_id"`
	PrivateKey  string `json:"private_key"`
	ClientEmail string `json:"client_email"`
	TokenURI    string `json:"token_uri"`
}

// ParseServiceAccount decodifica el blob JSON del service account.
// Valida los campos mínimos para poder firmar el JWT grant.
func ParseServiceAccount(blob string) (*ServiceAccount, error) {
	var sa ServiceAccount
	if err := json.Unmarshal([]byte(blob), &sa); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidCreds, err)
	}
	if sa.ClientEmail == "" || sa.PrivateKey == "" {
		return nil, fmt.Errorf("%w: faltan client_email o private_key", domain.ErrInvalidCreds)
	}
	if sa.TokenURI == "" {
		sa.TokenURI = googleTokenURI
	}
	return &sa, nil
}

// RSAKey parsea la llave privada PEM del service account.
func (sa *ServiceAccount) RSAKey() (*rsa.PrivateKey, error) {
	key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(sa.PrivateKey))
	if err != nil {
		return nil, fmt.Errorf("%w: private_key: %v", domain.ErrInvalidCreds, err)
	}
	return key, nil
}
