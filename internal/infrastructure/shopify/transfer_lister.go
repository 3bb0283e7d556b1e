package shopify

import (
	"context"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

const opListTransfers = "shopify.list_transfers"

// ListTransfers implementa transfer.TransferLister con InventoryTransfers(sortKey: ID).
func (f *TransferFetcher) ListTransfers(ctx context.Context, api ports.AdminAPI, first int, after string) (*entity.TransferSummaryPage, error) {
	vars := map[string]any{"first": first, "after": nil}
	if after != "" {
		vars["after"] = after
	}

	var data transfersData
	if err := api.GraphQL(ctx, inventoryTransfersQuery, vars, &data); err != nil {
		return nil, err
	}
	conn := data.InventoryTransfers
	if conn == nil || conn.PageInfo == nil {
		return nil, domain.Errorf(domain.KindMalformed, opListTransfers, "%v: inventoryTransfers/pageInfo ausente", domain.ErrMalformed)
	}

	page := &entity.TransferSummaryPage{
		Items:       make([]entity.TransferSummary, 0, len(conn.Edges)),
		HasNextPage: conn.PageInfo.HasNextPage,
		EndCursor:   str(conn.PageInfo.EndCursor),
	}
	for _, edge := range conn.Edges {
		n := edge.Node
		if n == nil {
			continue
		}
		s := entity.TransferSummary{
			ID:               n.ID,
			Name:             n.Name,
			ReferenceName:    str(n.ReferenceName),
			Status:           n.Status,
			TotalQuantity:    n.TotalQuantity,
			ReceivedQuantity: n.ReceivedQuantity,
		}
		if n.Origin != nil {
			s.OriginName = n.Origin.Name
		}
		if n.Destination != nil {
			s.DestinationName = n.Destination.Name
		}
		page.Items = append(page.Items, s)
	}
	return page, nil
}
