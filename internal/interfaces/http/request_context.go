package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// RequestContext deja en UserContext un contexto cancelable propio de la
// petición, con plazo timeout si es > 0. Se cancela al terminar el handler,
// así que las llamadas a la Admin API no sobreviven a la petición.
func RequestContext(timeout time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var (
			ctx    context.Context
			cancel context.CancelFunc
		)
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(c.UserContext(), timeout)
		} else {
			ctx, cancel = context.WithCancel(c.UserContext())
		}
		defer cancel()

		c.SetUserContext(ctx)
		return c.Next()
	}
}
