package transfer

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

// ListTransfersUseCase listado paginado por cursor de los traslados de la tienda.
type ListTransfersUseCase struct {
	lister TransferLister
}

// NewListTransfersUseCase construye el caso de uso.
func NewListTransfersUseCase(lister TransferLister) *ListTransfersUseCase {
	return &ListTransfersUseCase{lister: lister}
}

// List devuelve una página de traslados ordenados por ID.
func (uc *ListTransfersUseCase) List(ctx context.Context, api ports.AdminAPI, req dto.CursorPageRequest) (*dto.TransferListResponse, error) {
	if api == nil {
		return nil, domain.E(domain.KindUnauthorized, "transfer.list", domain.ErrUnauthorized)
	}
	req.DefaultPage()

	page, err := uc.lister.ListTransfers(ctx, api, req.First, req.After)
	if err != nil {
		return nil, fmt.Errorf("listar traslados: %w", err)
	}

	items := make([]dto.TransferSummaryResponse, 0, len(page.Items))
	for _, s := range page.Items {
		items = append(items, toTransferSummaryResponse(s))
	}
	return &dto.TransferListResponse{
		Items: items,
		PageInfo: dto.PageInfoResponse{
			HasNextPage: page.HasNextPage,
			EndCursor:   page.EndCursor,
		},
	}, nil
}

// ReceivedPercent porcentaje recibido con un decimal; 0 si el traslado no tiene cantidad.
func ReceivedPercent(received, total int) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(received)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(1)
}

func toTransferSummaryResponse(s entity.TransferSummary) dto.TransferSummaryResponse {
	return dto.TransferSummaryResponse{
		ID:               s.ID,
		LegacyID:         ddt.LegacyID(s.ID),
		Name:             s.Name,
		ReferenceName:    s.ReferenceName,
		Status:           s.Status,
		TotalQuantity:    s.TotalQuantity,
		ReceivedQuantity: s.ReceivedQuantity,
		ReceivedPercent:  ReceivedPercent(s.ReceivedQuantity, s.TotalQuantity),
		OriginName:       s.OriginName,
		DestinationName:  s.DestinationName,
	}
}
