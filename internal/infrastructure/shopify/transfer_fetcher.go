package shopify

import (
	"context"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

var (
	_ transfer.TransferFetcher = (*TransferFetcher)(nil)
	_ transfer.TransferLister  = (*TransferFetcher)(nil)
)

// TransferFetcher recorre todas las páginas de lineItems de un traslado.
// No reintenta ni devuelve traslados parciales.
type TransferFetcher struct {
	maxPages int
}

// NewTransferFetcher construye el fetcher. maxPages <= 0 = sin límite.
func NewTransferFetcher(maxPages int) *TransferFetcher {
	return &TransferFetcher{maxPages: maxPages}
}

// FetchTransfer implementa transfer.TransferFetcher.
func (f *TransferFetcher) FetchTransfer(ctx context.Context, api ports.AdminAPI, gid string) (*entity.Transfer, error) {
	it := NewPageIterator(api, gid, f.maxPages)

	var t *entity.Transfer
	for it.HasNext() {
		page, err := it.Next(ctx)
		if err != nil {
			return nil, err
		}
		t = AppendPage(t, page)
	}
	if t == nil {
		return nil, domain.Errorf(domain.KindMalformed, opFetchTransfer, "%v: sin páginas para %s", domain.ErrMalformed, gid)
	}
	return t, nil
}

// AppendPage acumula una página: la cabecera de la primera página es la
// autoritativa y las líneas se agregan en el orden de los edges.
func AppendPage(t *entity.Transfer, page *TransferPage) *entity.Transfer {
	if t == nil {
		if page.Header == nil {
			return nil
		}
		header := *page.Header
		header.Items = make([]entity.LineItem, 0, len(page.Items))
		t = &header
	}
	t.Items = append(t.Items, page.Items...)
	return t
}
