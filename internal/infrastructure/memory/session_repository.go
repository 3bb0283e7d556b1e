// Package memory implementa el almacén de sesiones estático (una tienda
// configurada por variables de entorno) para desarrollo y la CLI.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo sesiones offline en memoria, indexadas por tienda.
type SessionRepo struct {
	mu       sync.RWMutex
	sessions map[string]entity.Session
}

// NewSessionRepository crea el almacén con las sesiones indicadas.
func NewSessionRepository(sessions ...entity.Session) *SessionRepo {
	r := &SessionRepo{sessions: make(map[string]entity.Session, len(sessions))}
	for _, s := range sessions {
		r.Put(s)
	}
	return r
}

// NewStaticSessionRepository almacén con una única tienda (SHOPIFY_SHOP / SHOPIFY_ACCESS_TOKEN).
// Sin tienda o sin token queda vacío.
func NewStaticSessionRepository(shop, accessToken string) *SessionRepo {
	shop = strings.TrimSpace(shop)
	if shop == "" || accessToken == "" {
		return NewSessionRepository()
	}
	return NewSessionRepository(entity.Session{
		ID:          entity.OfflineSessionID(shop),
		Shop:        shop,
		AccessToken: accessToken,
	})
}

// Put guarda o reemplaza la sesión de una tienda.
func (r *SessionRepo) Put(s entity.Session) {
	if s.ID == "" {
		s.ID = entity.OfflineSessionID(s.Shop)
	}
	r.mu.Lock()
	r.sessions[s.Shop] = s
	r.mu.Unlock()
}

// GetOffline implementa repository.SessionRepository.
func (r *SessionRepo) GetOffline(_ context.Context, shop string) (*entity.Session, error) {
	r.mu.RLock()
	s, ok := r.sessions[shop]
	r.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	return &s, nil
}
