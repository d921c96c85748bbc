package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tnbcserp/invt-mgmt/internal/application/analytics"
	"github.com/tnbcserp/invt-mgmt/internal/application/dto"
	"github.com/tnbcserp/invt-mgmt/internal/application/inventory"
	"github.com/tnbcserp/invt-mgmt/internal/application/ports"
	"github.com/tnbcserp/invt-mgmt/internal/infrastructure/csvsheet"
	"github.com/tnbcserp/invt-mgmt/internal/infrastructure/sheets"
	httpRouter "github.com/tnbcserp/invt-mgmt/internal/interfaces/http"
	"github.com/tnbcserp/invt-mgmt/pkg/config"
	"github.com/tnbcserp/invt-mgmt/pkg/logger"
)

const apiVersion = "1.0.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("source", cfg.Sheets.Source).
		Msg("iniciando aplicación")

	// Fuente de datos tabular: Google Sheets en producción, CSV local en dev.
	// El handle se construye una sola vez y se comparte read-only.
	var source ports.SheetSource
	switch cfg.Sheets.Source {
	case "csv":
		source, err = csvsheet.NewStore(cfg.Sheets.CSVDir)
	default:
		source, err = sheets.NewClient(cfg.Sheets.CredentialsJSON, cfg.Sheets.SpreadsheetID, log)
	}
	if err != nil {
		log.Fatal().Err(err).Msg("construir fuente de hojas")
	}

	inventoryUC := inventory.NewUseCase(source, inventory.Sheets{
		RawMaterials: cfg.Sheets.RawMaterialSheet,
		StockIn:      cfg.Sheets.StockInSheet,
		StockOut:     cfg.Sheets.StockOutSheet,
	}, log)
	dashboardUC := analytics.NewDashboardUseCase(inventoryUC, nil)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.CORS.AllowedOrigins, ","),
		AllowCredentials: true,
		AllowMethods:     "GET,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Raw Material Inventory API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.ServiceInfo{
			Message: "Raw Material Inventory API",
			Version: apiVersion,
			Docs:    "/docs",
			Status:  "running",
		})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "healthy", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		DashboardUC: dashboardUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
