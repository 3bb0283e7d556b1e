package shopify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

const opFetchTransfer = "shopify.fetch_transfer"

// ErrNoMorePages se devuelve al llamar Next después de la última página.
var ErrNoMorePages = errors.New("shopify: no hay más páginas")

// TransferPage una página decodificada de GetInventoryTransfer.
// Header solo se decodifica en la primera página (Index 0).
type TransferPage struct {
	Index       int
	Header      *entity.Transfer
	Items       []entity.LineItem
	HasNextPage bool
	EndCursor   string
}

// PageIterator secuencia perezosa de páginas de un traslado: cada Next emite
// exactamente una consulta con el cursor recibido en la página anterior.
// No es seguro para uso concurrente; una instancia por petición.
type PageIterator struct {
	api      ports.AdminAPI
	gid      string
	maxPages int

	cursor string
	pages  int
	done   bool
}

// NewPageIterator crea el iterador. maxPages <= 0 significa sin límite.
func NewPageIterator(api ports.AdminAPI, gid string, maxPages int) *PageIterator {
	return &PageIterator{api: api, gid: gid, maxPages: maxPages}
}

// HasNext indica si queda alguna página por pedir.
func (it *PageIterator) HasNext() bool { return !it.done }

// Pages número de consultas emitidas.
func (it *PageIterator) Pages() int { return it.pages }

// Next pide la siguiente página. Tras un error el iterador queda terminado.
func (it *PageIterator) Next(ctx context.Context) (*TransferPage, error) {
	if it.done {
		return nil, ErrNoMorePages
	}
	if it.maxPages > 0 && it.pages >= it.maxPages {
		it.done = true
		return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: se superó el límite de %d páginas", domain.ErrMalformed, it.maxPages)
	}

	var after any
	if it.pages > 0 {
		after = it.cursor
	}
	vars := map[string]any{"id": it.gid, "after": after}

	var data transferData
	index := it.pages
	it.pages++
	if err := it.api.GraphQL(ctx, inventoryTransferQuery, vars, &data); err != nil {
		it.done = true
		return nil, err
	}

	if data.InventoryTransfer == nil {
		it.done = true
		if index == 0 {
			return nil, domain.E(domain.KindNotFound, opFetchTransfer, fmt.Errorf("%w: %s", domain.ErrTransferNotFound, it.gid))
		}
		return nil, domain.Errorf(domain.KindUpstream, opFetchTransfer, "inventoryTransfer ausente en la página %d de %s", index+1, it.gid)
	}

	page, err := decodeTransferPage(data.InventoryTransfer, index)
	if err != nil {
		it.done = true
		return nil, err
	}
	if err := it.advance(page); err != nil {
		it.done = true
		return nil, err
	}
	return page, nil
}

// advance aplica el predicado de terminación: hasNextPage es la única señal de
// fin y el cursor siguiente debe ser nuevo y no vacío.
func (it *PageIterator) advance(page *TransferPage) error {
	if !page.HasNextPage {
		it.done = true
		return nil
	}
	if page.EndCursor == "" {
		return domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: hasNextPage sin endCursor (página %d)", domain.ErrMalformed, page.Index+1)
	}
	if page.Index > 0 && page.EndCursor == it.cursor {
		return domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: endCursor repetido %q", domain.ErrMalformed, page.EndCursor)
	}
	it.cursor = page.EndCursor
	return nil
}

func decodeTransferPage(node *transferNode, index int) (*TransferPage, error) {
	if node.LineItems == nil || node.LineItems.PageInfo == nil {
		return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: lineItems/pageInfo ausente (página %d)", domain.ErrMalformed, index+1)
	}

	page := &TransferPage{
		Index:       index,
		Items:       make([]entity.LineItem, 0, len(node.LineItems.Edges)),
		HasNextPage: node.LineItems.PageInfo.HasNextPage,
		EndCursor:   str(node.LineItems.PageInfo.EndCursor),
	}
	for i, edge := range node.LineItems.Edges {
		if edge.Node == nil || edge.Node.ID == "" {
			return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: edge %d sin node (página %d)", domain.ErrMalformed, i, index+1)
		}
		page.Items = append(page.Items, toLineItem(edge.Node))
	}

	if index == 0 {
		header, err := toTransferHeader(node)
		if err != nil {
			return nil, err
		}
		page.Header = header
	}
	return page, nil
}

func toTransferHeader(node *transferNode) (*entity.Transfer, error) {
	if node.ID == "" || node.Origin == nil || node.Destination == nil {
		return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: cabecera incompleta (id/origin/destination)", domain.ErrMalformed)
	}
	created, err := time.Parse(time.RFC3339, node.DateCreated)
	if err != nil {
		return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: dateCreated %q: %v", domain.ErrMalformed, node.DateCreated, err)
	}
	origin := toLocation(node.Origin)
	if node.Origin.Location != nil && node.Origin.Location.Metafield != nil {
		origin.TaxID = node.Origin.Location.Metafield.Value
	}
	return &entity.Transfer{
		ID:            node.ID,
		Name:          node.Name,
		ReferenceName: str(node.ReferenceName),
		DateCreated:   created,
		Status:        node.Status,
		Origin:        origin,
		Destination:   toLocation(node.Destination),
	}, nil
}

func toLocation(s *locationSnapshot) entity.Location {
	loc := entity.Location{Name: s.Name}
	if a := s.Address; a != nil {
		loc.Address = entity.Address{
			Line1:    str(a.Address1),
			Line2:    str(a.Address2),
			City:     str(a.City),
			Zip:      str(a.Zip),
			Province: str(a.Province),
			Country:  str(a.Country),
		}
	}
	return loc
}

func toLineItem(n *lineItemNode) entity.LineItem {
	item := entity.LineItem{ID: n.ID, TotalQuantity: n.TotalQuantity}
	if item.TotalQuantity < 0 {
		item.TotalQuantity = 0
	}
	if inv := n.InventoryItem; inv != nil {
		item.InventoryItemID = inv.ID
		item.SKU = str(inv.SKU)
		if v := inv.Variant; v != nil {
			item.VariantTitle = str(v.Title)
			if v.Product != nil {
				item.ProductTitle = str(v.Product.Title)
			}
		}
	}
	return item
}
