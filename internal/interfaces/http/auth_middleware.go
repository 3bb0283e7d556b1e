package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
	"github.com/jhoicas/ddt-transfer-api/pkg/jwt"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// Locals keys que deja el middleware de sesión.
const (
	LocalShop     = "shop"
	LocalAdminAPI = "admin_api"
)

const opAuth = "http.session_auth"

// SessionAuthConfig dependencias del middleware de sesión.
type SessionAuthConfig struct {
	APIKey      string
	APISecret   string
	Sessions    repository.SessionRepository
	NewAdminAPI ports.AdminAPIFactory
	Log         *logger.Logger
}

// SessionAuthMiddleware valida el session token de Shopify (Bearer), busca la
// sesión offline de la tienda y deja en Locals el cliente de la Admin API.
func SessionAuthMiddleware(cfg SessionAuthConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get("Authorization"))
		if authHeader == "" || strings.EqualFold(authHeader, "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "Authorization header requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vacío"})
		}

		claims, err := jwt.Parse(cfg.APISecret, cfg.APIKey, tokenString)
		if err != nil {
			requestLogger(c, cfg.Log).Debug().Err(err).Msg("session token rechazado")
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}
		shop, err := claims.Shop()
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido o expirado"})
		}

		session, err := cfg.Sessions.GetOffline(c.UserContext(), shop)
		if err != nil {
			return respondError(c, cfg.Log, domain.E(domain.KindInternal, opAuth, err))
		}
		if session == nil || session.AccessToken == "" {
			return respondError(c, cfg.Log, domain.Errorf(domain.KindUnauthorized, opAuth, "%v: %s", domain.ErrSessionNotFound, shop))
		}

		c.Locals(LocalShop, shop)
		c.Locals(LocalAdminAPI, cfg.NewAdminAPI(shop, session.AccessToken))
		return c.Next()
	}
}

// GetShop devuelve la tienda autenticada (después del middleware de sesión).
func GetShop(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalShop).(string)
	return s
}

// GetAdminAPI devuelve el cliente de la Admin API de la petición, o nil.
func GetAdminAPI(c *fiber.Ctx) ports.AdminAPI {
	api, _ := c.Locals(LocalAdminAPI).(ports.AdminAPI)
	return api
}
