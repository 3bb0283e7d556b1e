package repository

import (
	"context"

	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

// SessionRepository define el puerto de lectura de sesiones offline (DIP).
// GetOffline devuelve (nil, nil) si la tienda no tiene sesión.
type SessionRepository interface {
	GetOffline(ctx context.Context, shop string) (*entity.Session, error)
}
