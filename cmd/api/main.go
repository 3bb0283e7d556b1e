package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/jhoicas/ddt-transfer-api/docs"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/liquid"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/memory"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/postgres"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/templatefs"
	httpRouter "github.com/jhoicas/ddt-transfer-api/internal/interfaces/http"
	"github.com/jhoicas/ddt-transfer-api/pkg/config"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// @title        DDT Transfer API
// @version      1.0
// @description  Documento di Trasporto (DDT) para traslados de inventario de Shopify.
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
		Global:  true,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("session_store", cfg.Shopify.SessionStore).
		Msg("iniciando aplicación")

	if cfg.Shopify.APIKey == "" || cfg.Shopify.APISecret == "" {
		log.Fatal().Msg("SHOPIFY_API_KEY y SHOPIFY_API_SECRET son obligatorios")
	}

	ctx := context.Background()

	var sessions repository.SessionRepository
	switch cfg.Shopify.SessionStore {
	case "static":
		sessions = memory.NewStaticSessionRepository(cfg.Shopify.Shop, cfg.Shopify.AccessToken)
	default:
		pool, err := postgres.NewPool(ctx, cfg.DB)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		sessions = postgres.NewSessionRepository(pool)
	}

	loc, err := ddt.LoadLocation(cfg.Template.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("DDT_TIMEZONE")
	}
	engine := liquid.NewEngine(liquid.DefaultFilters(loc, ddt.ParseLocale(cfg.Template.Locale))...)

	var source transfer.TemplateSource = templatefs.NewFileSource(cfg.Template.Path)
	if cfg.Template.Cache {
		cached := templatefs.NewCachedFileSource(cfg.Template.Path, log)
		if err := cached.Start(); err != nil {
			log.Warn().Err(err).Msg("watcher de plantilla no disponible; se usa solo el mtime")
		}
		defer cached.Close()
		source = cached
	}

	fetcher := shopify.NewTransferFetcher(cfg.Shopify.MaxPages)
	renderDDTUC := transfer.NewRenderDDTUseCase(fetcher, source, engine)
	listTransfersUC := transfer.NewListTransfersUseCase(fetcher)

	httpClient := &http.Client{Timeout: cfg.Shopify.UpstreamTimeout}
	adminAPIFactory := shopify.NewFactory(cfg.Shopify.APIVersion, httpClient)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: cfg.HTTP.RequestTimeout + 10*time.Second,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "DDT Transfer API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		RenderDDT:      renderDDTUC,
		ListTransfers:  listTransfersUC,
		Sessions:       sessions,
		NewAdminAPI:    adminAPIFactory,
		APIKey:         cfg.Shopify.APIKey,
		APISecret:      cfg.Shopify.APISecret,
		RequestTimeout: cfg.HTTP.RequestTimeout,
		Log:            log,
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
