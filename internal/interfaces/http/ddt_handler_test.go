package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/liquid"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/memory"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/shopify/shopifytest"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/templatefs"
	apphttp "github.com/jhoicas/ddt-transfer-api/internal/interfaces/http"
)

const testTemplate = `<h1>{{ transfer.name }}</h1><p>{{ transfer.dateCreated | date: "%d/%m/%Y" }}</p>{% for item in items %}{{ item.sku }};{% endfor %}`

// buildDDTApp arma el router completo contra el servidor falso de la Admin API.
func buildDDTApp(srv *shopifytest.Server, template string) *fiber.App {
	fetcher := shopify.NewTransferFetcher(0)
	engine := liquid.NewEngine(liquid.DefaultFilters(time.UTC, ddt.DefaultLocale)...)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		RenderDDT:     transfer.NewRenderDDTUseCase(fetcher, templatefs.StringSource(template), engine),
		ListTransfers: transfer.NewListTransfersUseCase(fetcher),
		Sessions:      memory.NewStaticSessionRepository(testShop, testAccessToken),
		NewAdminAPI: func(_, token string) ports.AdminAPI {
			return shopify.NewClient(shopify.ClientConfig{Endpoint: srv.URL, AccessToken: token})
		},
		APIKey:    testAPIKey,
		APISecret: testAPISecret,
	})
	return app
}

func decodeDDT(t *testing.T, resp *http.Response) dto.DDTResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.DDTResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// GET /app/:transferId/ddttransfer
// ──────────────────────────────────────────────────────────────────────────────

// Escenario 1: traslado de una página sin líneas.
func TestDDT_UnaPaginaSinLineas(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.TransferPage(shopifytest.TransferOptions{}, 1, 0, false, nil)}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/1/ddttransfer", sessionToken(t, testShop))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	out := decodeDDT(t, resp)
	assert.Equal(t, "<h1>#T0001</h1><p>05/03/2024</p>", out.RenderedHTML)

	req := srv.Requests()[0]
	assert.Equal(t, "gid://shopify/InventoryTransfer/1", req.Variables["id"])
	assert.Equal(t, testAccessToken, req.AccessToken)
}

// Escenario 2: 137 líneas en dos páginas, en orden.
func TestDDT_DosPaginas(t *testing.T) {
	srv := shopifytest.NewServer(shopifytest.Paged(shopifytest.TransferOptions{}, 137, shopify.LineItemsPageSize))
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/1/ddttransfer", sessionToken(t, testShop))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	html := decodeDDT(t, resp).RenderedHTML
	assert.Equal(t, 137, strings.Count(html, ";"))
	assert.Less(t, strings.Index(html, "SKU-100;"), strings.Index(html, "SKU-101;"))
	assert.True(t, strings.HasSuffix(html, "SKU-137;"))
	assert.Equal(t, 2, srv.Calls())
}

// Escenario 3: traslado inexistente.
func TestDDT_NoEncontrado(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.NullTransfer()}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/999/ddttransfer", sessionToken(t, testShop))
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)
}

// Escenario 4: fallo upstream en la segunda página; nunca HTML parcial.
func TestDDT_ErrorUpstream(t *testing.T) {
	srv := shopifytest.NewServer(func(call int, _ shopifytest.Request) shopifytest.Response {
		if call == 0 {
			return shopifytest.Response{Body: shopifytest.TransferPage(shopifytest.TransferOptions{}, 1, 100, true, "c1")}
		}
		return shopifytest.Response{Status: http.StatusInternalServerError, Body: "boom"}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/1/ddttransfer", sessionToken(t, testShop))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)

	e := decodeError(t, resp)
	assert.Equal(t, "UPSTREAM_ERROR", e.Code)
	assert.NotContains(t, e.Message, "boom")
}

func TestDDT_ErrorDePlantilla(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.TransferPage(shopifytest.TransferOptions{}, 1, 1, false, nil)}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, "{% for item in items %}"), "/app/1/ddttransfer", sessionToken(t, testShop))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "TEMPLATE_ERROR", decodeError(t, resp).Code)
}

func TestDDT_SinSesion(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.NullTransfer()}
	})
	defer srv.Close()

	resp := doGet(t, buildDDTApp(srv, testTemplate), "/app/1/ddttransfer", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, 0, srv.Calls(), "sin sesión no se llama a la Admin API")
}

// Sin transferId el handler responde 400 sin llamar al upstream.
func TestDDT_SinTransferID(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.NullTransfer()}
	})
	defer srv.Close()

	engine := liquid.NewEngine(liquid.DefaultFilters(time.UTC, ddt.DefaultLocale)...)
	uc := transfer.NewRenderDDTUseCase(shopify.NewTransferFetcher(0), templatefs.StringSource(testTemplate), engine)
	h := apphttp.NewDDTHandler(uc, nil)

	app := fiber.New()
	app.Get("/ddt", h.Render)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ddt", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "BAD_REQUEST", decodeError(t, resp).Code)
	assert.Equal(t, 0, srv.Calls())
}

func TestDDT_DevuelveRequestID(t *testing.T) {
	srv := shopifytest.NewServer(func(int, shopifytest.Request) shopifytest.Response {
		return shopifytest.Response{Body: shopifytest.TransferPage(shopifytest.TransferOptions{}, 1, 0, false, nil)}
	})
	defer srv.Close()
	app := buildDDTApp(srv, testTemplate)

	resp := doGet(t, app, "/app/1/ddttransfer", sessionToken(t, testShop))
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}
