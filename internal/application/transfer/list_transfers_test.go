package transfer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

type fakeLister struct {
	page     *entity.TransferSummaryPage
	gotFirst int
	gotAfter string
}

func (l *fakeLister) ListTransfers(_ context.Context, _ ports.AdminAPI, first int, after string) (*entity.TransferSummaryPage, error) {
	l.gotFirst = first
	l.gotAfter = after
	return l.page, nil
}

func TestList_MapeaResumenYCursor(t *testing.T) {
	lister := &fakeLister{page: &entity.TransferSummaryPage{
		Items: []entity.TransferSummary{
			{ID: "gid://shopify/InventoryTransfer/10", Name: "#T10", Status: "IN_TRANSIT", TotalQuantity: 3, ReceivedQuantity: 1, OriginName: "A", DestinationName: "B"},
			{ID: "gid://shopify/InventoryTransfer/11", Name: "#T11", Status: "PENDING"},
		},
		HasNextPage: true,
		EndCursor:   "c-11",
	}}
	uc := transfer.NewListTransfersUseCase(lister)

	out, err := uc.List(context.Background(), fakeAPI{}, dto.CursorPageRequest{After: "c-9"})
	require.NoError(t, err)

	assert.Equal(t, 15, lister.gotFirst, "tamaño de página por defecto")
	assert.Equal(t, "c-9", lister.gotAfter)
	require.Len(t, out.Items, 2)
	assert.Equal(t, "10", out.Items[0].LegacyID)
	assert.Equal(t, "33.3", out.Items[0].ReceivedPercent.String())
	assert.True(t, out.Items[1].ReceivedPercent.IsZero())
	assert.True(t, out.PageInfo.HasNextPage)
	assert.Equal(t, "c-11", out.PageInfo.EndCursor)
}

func TestList_LimitaTamanioMaximo(t *testing.T) {
	lister := &fakeLister{page: &entity.TransferSummaryPage{}}
	uc := transfer.NewListTransfersUseCase(lister)

	_, err := uc.List(context.Background(), fakeAPI{}, dto.CursorPageRequest{First: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, lister.gotFirst)
}

func TestList_SinCliente(t *testing.T) {
	uc := transfer.NewListTransfersUseCase(&fakeLister{})
	_, err := uc.List(context.Background(), nil, dto.CursorPageRequest{})
	assert.Equal(t, domain.KindUnauthorized, domain.KindOf(err))
}

func TestReceivedPercent(t *testing.T) {
	assert.Equal(t, "100", transfer.ReceivedPercent(4, 4).String())
	assert.Equal(t, "50", transfer.ReceivedPercent(1, 2).String())
	assert.Equal(t, "0", transfer.ReceivedPercent(5, 0).String())
}
