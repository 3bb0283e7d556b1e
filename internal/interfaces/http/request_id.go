package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// HeaderRequestID cabecera de correlación (se respeta la que envía el cliente).
const HeaderRequestID = "X-Request-Id"

// LocalRequestID key de Locals con el request id.
const LocalRequestID = "request_id"

// RequestID asigna un id a cada petición y lo devuelve en la respuesta.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(HeaderRequestID, id)
		c.Locals(LocalRequestID, id)
		return c.Next()
	}
}

// GetRequestID devuelve el request id del contexto (después de RequestID).
func GetRequestID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalRequestID).(string)
	return s
}

// requestLogger logger hijo con el request id de la petición.
func requestLogger(c *fiber.Ctx, base *logger.Logger) *logger.Logger {
	if base == nil {
		base = logger.Nop()
	}
	if id := GetRequestID(c); id != "" {
		return base.WithField(LocalRequestID, id)
	}
	return base
}
