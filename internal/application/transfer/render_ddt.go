package transfer

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
)

const opRenderDDT = "transfer.render_ddt"

// RenderDDTUseCase genera el Documento di Trasporto de un traslado:
// paginación completa → view model → plantilla → HTML.
// No guarda estado entre peticiones.
type RenderDDTUseCase struct {
	fetcher  TransferFetcher
	source   TemplateSource
	renderer DDTRenderer
}

// NewRenderDDTUseCase construye el caso de uso inyectando sus dependencias.
func NewRenderDDTUseCase(fetcher TransferFetcher, source TemplateSource, renderer DDTRenderer) *RenderDDTUseCase {
	return &RenderDDTUseCase{
		fetcher:  fetcher,
		source:   source,
		renderer: renderer,
	}
}

// Render ejecuta la secuencia completa para transferID (ID corto o global).
//
// Retorna:
//   - KindBadRequest   si transferID está vacío.
//   - KindUnauthorized si no hay cliente de la Admin API.
//   - KindNotFound     si el traslado no existe.
//   - KindUpstream / KindMalformed según el fallo del upstream.
//   - KindTemplate     si la plantilla no se puede leer, parsear o evaluar.
func (uc *RenderDDTUseCase) Render(ctx context.Context, api ports.AdminAPI, transferID string) (*dto.DDTResponse, error) {
	if strings.TrimSpace(transferID) == "" {
		return nil, domain.E(domain.KindBadRequest, opRenderDDT, fmt.Errorf("%w: transferId requerido", domain.ErrInvalidInput))
	}
	if api == nil {
		return nil, domain.E(domain.KindUnauthorized, opRenderDDT, domain.ErrUnauthorized)
	}

	// ── 1. Traslado completo ──────────────────────────────────────────────────
	gid := ddt.TransferGID(transferID)
	t, err := uc.fetcher.FetchTransfer(ctx, api, gid)
	if err != nil {
		return nil, fmt.Errorf("ddt: obtener traslado %s: %w", gid, err)
	}

	// ── 2. View model ─────────────────────────────────────────────────────────
	vm := BuildViewModel(t)

	// ── 3. Plantilla ──────────────────────────────────────────────────────────
	source, err := uc.source.Load(ctx)
	if err != nil {
		return nil, asTemplateError("ddt: leer plantilla", err)
	}

	// ── 4. Render ─────────────────────────────────────────────────────────────
	html, err := uc.renderer.Render(ctx, source, vm)
	if err != nil {
		return nil, asTemplateError("ddt: render", err)
	}
	return &dto.DDTResponse{RenderedHTML: html}, nil
}

// asTemplateError garantiza que los fallos de plantilla lleguen clasificados.
func asTemplateError(msg string, err error) error {
	if domain.KindOf(err) == domain.KindInternal {
		err = domain.E(domain.KindTemplate, opRenderDDT, err)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
