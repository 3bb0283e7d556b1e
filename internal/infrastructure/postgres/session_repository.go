package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// Querier subconjunto de pgxpool.Pool que usa el repositorio (pgxmock lo implementa en tests).
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepo lee las sesiones offline que la app Shopify guarda en la tabla
// "Session" (esquema del session storage de Prisma).
type SessionRepo struct {
	db Querier
}

// NewSessionRepository construye el adaptador sobre el pool (o cualquier Querier).
func NewSessionRepository(db Querier) *SessionRepo {
	return &SessionRepo{db: db}
}

// GetOffline implementa repository.SessionRepository. Sin fila devuelve (nil, nil).
func (r *SessionRepo) GetOffline(ctx context.Context, shop string) (*entity.Session, error) {
	query := `
		SELECT id, shop, "accessToken", COALESCE(scope, '')
		FROM "Session"
		WHERE id = $1 AND "isOnline" = false`
	var s entity.Session
	err := r.db.QueryRow(ctx, query, entity.OfflineSessionID(shop)).Scan(&s.ID, &s.Shop, &s.AccessToken, &s.Scope)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offline session %s: %w", shop, err)
	}
	return &s, nil
}
