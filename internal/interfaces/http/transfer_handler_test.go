package http_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify/shopifytest"
)

const listBody = `{"data":{"inventoryTransfers":{
  "edges":[{"cursor":"a","node":{"id":"gid://shopify/InventoryTransfer/7","name":"#T0007","referenceName":null,"status":"IN_TRANSIT","totalQuantity":4,"receivedQuantity":1,"origin":{"name":"Milano"},"destination":{"name":"Roma"}}}],
  "pageInfo":{"hasNextPage":true,"endCursor":"a"}
}}}`

func TestTransfers_Listado(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: listBody}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/transfers?first=500&after=xyz", sessionToken(t, testShop))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.TransferListResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "7", out.Items[0].LegacyID)
	assert.Equal(t, "25", out.Items[0].ReceivedPercent.String())
	assert.True(t, out.PageInfo.HasNextPage)
	assert.Equal(t, "a", out.PageInfo.EndCursor)

	req := srv.Requests()[0]
	assert.EqualValues(t, 100, req.Variables["first"], "first se limita a 100")
	assert.Equal(t, "xyz", req.After())
}

func TestTransfers_ParametroInvalido(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: listBody}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/transfers?first=muchos", sessionToken(t, testShop))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, srv.Calls())
}
