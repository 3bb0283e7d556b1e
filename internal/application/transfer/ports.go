package transfer

import (
	"context"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

// TransferFetcher recupera un traslado completo recorriendo todas las páginas de líneas.
type TransferFetcher interface {
	FetchTransfer(ctx context.Context, api ports.AdminAPI, gid string) (*entity.Transfer, error)
}

// TransferLister devuelve una página del listado de traslados.
type TransferLister interface {
	ListTransfers(ctx context.Context, api ports.AdminAPI, first int, after string) (*entity.TransferSummaryPage, error)
}

// TemplateSource entrega el código fuente de la plantilla DDT.
type TemplateSource interface {
	Load(ctx context.Context) (string, error)
}

// DDTRenderer evalúa la plantilla con el view model y devuelve HTML.
type DDTRenderer interface {
	Render(ctx context.Context, source string, vm ViewModel) (string, error)
}
