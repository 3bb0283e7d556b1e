package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ddt-transfer-api/internal/application/dto"
	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/repository"
	"github.com/jhoicas/ddt-transfer-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/ddt-transfer-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/ddt-transfer-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testAPIKey      = "test-api-key"
	testAPISecret   = "test-secret-key-for-unit-tests"
	testShop        = "demo.myshopify.com"
	testAccessToken = "shpat_test"
)

type recordingAPI struct {
	shop, token string
}

func (recordingAPI) GraphQL(context.Context, string, map[string]any, any) error { return nil }

type failingSessions struct{}

func (failingSessions) GetOffline(context.Context, string) (*entity.Session, error) {
	return nil, errors.New("connection refused")
}

// buildAuthApp construye una aplicación Fiber mínima con el middleware de
// sesión y un handler que devuelve la tienda y el token del cliente creado.
func buildAuthApp(sessions repository.SessionRepository) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.SessionAuthMiddleware(apphttp.SessionAuthConfig{
			APIKey:    testAPIKey,
			APISecret: testAPISecret,
			Sessions:  sessions,
			NewAdminAPI: func(shop, token string) ports.AdminAPI {
				return recordingAPI{shop: shop, token: token}
			},
		}),
		func(c *fiber.Ctx) error {
			api, _ := apphttp.GetAdminAPI(c).(recordingAPI)
			return c.JSON(fiber.Map{"shop": apphttp.GetShop(c), "token": api.token})
		},
	)
	return app
}

func sessionToken(t *testing.T, shop string) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testAPISecret, testAPIKey, shop, "1", time.Minute)
	require.NoError(t, err, "debe generarse un session token válido")
	return "Bearer " + tok
}

func doGet(t *testing.T, app *fiber.App, path, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeError(t *testing.T, resp *http.Response) dto.ErrorResponse {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var out dto.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &out), string(body))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests SessionAuthMiddleware
// ──────────────────────────────────────────────────────────────────────────────

func TestSessionAuth_TokenValidoCargaCliente(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	resp := doGet(t, app, "/protected", sessionToken(t, testShop))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, testShop, out["shop"])
	assert.Equal(t, testAccessToken, out["token"])
}

func TestSessionAuth_SinHeader(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	resp := doGet(t, app, "/protected", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code)
}

func TestSessionAuth_FormatoInvalido(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	resp := doGet(t, app, "/protected", "Token abc")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestSessionAuth_TokenVacio(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	for _, header := range []string{"Bearer   ", "Bearer", "bearer", "  BEARER  "} {
		resp := doGet(t, app, "/protected", header)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, header)
		assert.Equal(t, "MISSING_TOKEN", decodeError(t, resp).Code, header)
	}
}

func TestSessionAuth_FirmaIncorrecta(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	tok, err := pkgjwt.Generate("otro-secret", testAPIKey, testShop, "1", time.Minute)
	require.NoError(t, err)

	resp := doGet(t, app, "/protected", "Bearer "+tok)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_TOKEN", decodeError(t, resp).Code)
}

func TestSessionAuth_TiendaSinSesion(t *testing.T) {
	app := buildAuthApp(memory.NewStaticSessionRepository(testShop, testAccessToken))

	resp := doGet(t, app, "/protected", sessionToken(t, "otra.myshopify.com"))
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "UNAUTHORIZED", decodeError(t, resp).Code)
}

func TestSessionAuth_ErrorDelRepositorio(t *testing.T) {
	app := buildAuthApp(failingSessions{})

	resp := doGet(t, app, "/protected", sessionToken(t, testShop))
	assert.Equal(t, fiber.StatusInternalServerError, resp.StatusCode)
	e := decodeError(t, resp)
	assert.Equal(t, "INTERNAL", e.Code)
	assert.NotContains(t, e.Message, "connection refused", "el detalle solo va al log")
}
