package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App    AppConfig
	Sheets SheetsConfig
	HTTP   HTTPConfig
	CORS   CORSConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// SheetsConfig configuración de la fuente de datos tabular.
// Source selecciona el adaptador: "google" (API de Google Sheets) o "csv"
// (directorio local de CSVs, útil en desarrollo y tests).
type SheetsConfig struct {
	Source           string
	CredentialsJSON  string // blob JSON del service account (GOOGLE_SHEETS_CREDS)
	SpreadsheetID    string
	RawMaterialSheet string
	StockInSheet     string
	StockOutSheet    string
	CSVDir           string // solo para Source == "csv"
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CORSConfig orígenes permitidos para el frontend.
type CORSConfig struct {
	AllowedOrigins []string
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, SPREADSHEET_ID,
// GOOGLE_SHEETS_CREDS, HTTP_PORT, ALLOWED_ORIGINS, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "invt-mgmt"),
		},
		Sheets: SheetsConfig{
			Source:           getString(v, "SHEETS_SOURCE", "google"),
			CredentialsJSON:  getString(v, "GOOGLE_SHEETS_CREDS", ""),
			SpreadsheetID:    getString(v, "SPREADSHEET_ID", ""),
			RawMaterialSheet: getString(v, "RAW_MATERIAL_SHEET", "Raw Material Master"),
			StockInSheet:     getString(v, "STOCK_IN_SHEET", "Stock In"),
			StockOutSheet:    getString(v, "STOCK_OUT_SHEET", "Stock Out"),
			CSVDir:           getString(v, "SHEETS_CSV_DIR", "./data"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8000),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getString(v, "ALLOWED_ORIGINS", "http://localhost:3000")),
		},
	}

	// Plataformas tipo Render inyectan PORT; tiene prioridad sobre HTTP_PORT.
	if p := getInt(v, "PORT", 0); p > 0 {
		cfg.HTTP.Port = p
	}

	return cfg, nil
}

// splitOrigins separa la lista de orígenes CORS por comas, descartando vacíos.
func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
