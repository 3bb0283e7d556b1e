package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	RenderDDT     *transfer.RenderDDTUseCase
	ListTransfers *transfer.ListTransfersUseCase
	Sessions      repository.SessionRepository
	NewAdminAPI   ports.AdminAPIFactory
	APIKey        string
	APISecret     string
	// RequestTimeout <= 0 deja la petición sin plazo propio.
	RequestTimeout time.Duration
	Log            *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	app.Use(RequestID())
	app.Use(RequestContext(deps.RequestTimeout))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Rutas de la app embebida (requieren session token de Shopify)
	appGroup := app.Group("/app", SessionAuthMiddleware(SessionAuthConfig{
		APIKey:      deps.APIKey,
		APISecret:   deps.APISecret,
		Sessions:    deps.Sessions,
		NewAdminAPI: deps.NewAdminAPI,
		Log:         deps.Log,
	}))

	transferHandler := NewTransferHandler(deps.ListTransfers, deps.Log)
	appGroup.Get("/transfers", transferHandler.List)

	ddtHandler := NewDDTHandler(deps.RenderDDT, deps.Log)
	appGroup.Get("/:transferId/ddttransfer", ddtHandler.Render)
}
