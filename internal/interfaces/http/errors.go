package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

// LogTag etiqueta estable de los errores del pipeline DDT en los logs.
const LogTag = "DDT ERROR"

// StatusFor traduce un domain.Kind al status HTTP y al código de ErrorResponse.
func StatusFor(kind domain.Kind) (int, string) {
	switch kind {
	case domain.KindBadRequest:
		return fiber.StatusBadRequest, "BAD_REQUEST"
	case domain.KindUnauthorized:
		return fiber.StatusUnauthorized, "UNAUTHORIZED"
	case domain.KindNotFound:
		return fiber.StatusNotFound, "NOT_FOUND"
	case domain.KindUpstream:
		return fiber.StatusInternalServerError, "UPSTREAM_ERROR"
	case domain.KindMalformed:
		return fiber.StatusInternalServerError, "UPSTREAM_MALFORMED"
	case domain.KindTemplate:
		return fiber.StatusInternalServerError, "TEMPLATE_ERROR"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

var publicMessages = map[domain.Kind]string{
	domain.KindBadRequest:   "petición inválida",
	domain.KindUnauthorized: "sesión no válida",
	domain.KindNotFound:     "traslado no encontrado",
}

// respondError es el único punto que convierte errores en respuestas HTTP.
// El detalle va al log con LogTag; el cliente solo recibe un mensaje genérico.
func respondError(c *fiber.Ctx, log *logger.Logger, err error) error {
	kind := domain.KindOf(err)
	status, code := StatusFor(kind)

	rl := requestLogger(c, log)
	var ev *zerolog.Event
	if status >= fiber.StatusInternalServerError {
		ev = rl.Error()
	} else {
		ev = rl.Warn()
	}
	ev.Err(err).
		Str("kind", kind.String()).
		Int("status", status).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Msg(LogTag)

	msg, ok := publicMessages[kind]
	if !ok {
		msg = "error interno al generar el documento"
	}
	if kind == domain.KindBadRequest {
		var de *domain.Error
		if errors.As(err, &de) && de.Err != nil {
			msg = de.Err.Error()
		}
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
