// Package shopify implementa el acceso a la Admin API GraphQL: el cliente HTTP,
// el recorrido paginado de un traslado y el listado de traslados.
package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/ddt-transfer-api/internal/application/ports"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
)

// Verificar en tiempo de compilación que Client implementa AdminAPI.
var _ ports.AdminAPI = (*Client)(nil)

const (
	// DefaultAPIVersion versión de la Admin API si la configuración no indica otra.
	DefaultAPIVersion = "2025-01"

	accessTokenHeader = "X-Shopify-Access-Token"
	maxResponseBytes  = 8 << 20
	opGraphQL         = "shopify.graphql"
)

// ClientConfig parámetros del cliente de una tienda.
// Endpoint sustituye la URL calculada a partir de Shop (tests, proxies).
type ClientConfig struct {
	Shop        string
	AccessToken string
	APIVersion  string
	Endpoint    string
	Timeout     time.Duration
	HTTPClient  *http.Client
}

// Client cliente GraphQL de la Admin API de una tienda.
// Usa net/http de la librería estándar; no reintenta.
type Client struct {
	endpoint    string
	accessToken string
	httpClient  *http.Client
}

// NewClient construye el cliente. Sin Timeout ni HTTPClient se usan 30 s.
func NewClient(cfg ClientConfig) *Client {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		version := cfg.APIVersion
		if version == "" {
			version = DefaultAPIVersion
		}
		endpoint = AdminGraphQLURL(cfg.Shop, version)
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		endpoint:    endpoint,
		accessToken: cfg.AccessToken,
		httpClient:  httpClient,
	}
}

// NewFactory devuelve un ports.AdminAPIFactory que comparte versión y http.Client.
func NewFactory(apiVersion string, httpClient *http.Client) ports.AdminAPIFactory {
	return func(shop, accessToken string) ports.AdminAPI {
		return NewClient(ClientConfig{
			Shop:        shop,
			AccessToken: accessToken,
			APIVersion:  apiVersion,
			HTTPClient:  httpClient,
		})
	}
}

// AdminGraphQLURL URL del endpoint GraphQL de la tienda.
func AdminGraphQLURL(shop, apiVersion string) string {
	host := strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(shop, "https://"), "http://"), "/")
	return fmt.Sprintf("https://%s/admin/api/%s/graphql.json", host, apiVersion)
}

// Endpoint URL a la que se envían las consultas.
func (c *Client) Endpoint() string { return c.endpoint }

// GraphQL implementa ports.AdminAPI.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return domain.E(domain.KindInternal, opGraphQL, fmt.Errorf("serializar request: %w", err))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return domain.E(domain.KindInternal, opGraphQL, fmt.Errorf("crear HTTP request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(accessTokenHeader, c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return domain.E(domain.KindUpstream, opGraphQL, fmt.Errorf("timeout o cancelación: %w", ctx.Err()))
		}
		return domain.E(domain.KindUpstream, opGraphQL, fmt.Errorf("llamada HTTP fallida: %w", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.E(domain.KindUpstream, opGraphQL, fmt.Errorf("leer respuesta: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Errorf(domain.KindUpstream, opGraphQL, "Admin API HTTP %d: %s", resp.StatusCode, truncate(string(raw), 512))
	}

	var gr graphQLResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return domain.E(domain.KindMalformed, opGraphQL, fmt.Errorf("%w: deserializar respuesta: %v", domain.ErrMalformed, err))
	}
	if len(gr.Errors) > 0 {
		return domain.Errorf(domain.KindUpstream, opGraphQL, "GraphQL errors: %s", joinErrors(gr.Errors))
	}
	if out == nil {
		return nil
	}
	if len(gr.Data) == 0 || string(gr.Data) == "null" {
		return domain.E(domain.KindMalformed, opGraphQL, fmt.Errorf("%w: respuesta sin data", domain.ErrMalformed))
	}
	if err := json.Unmarshal(gr.Data, out); err != nil {
		return domain.E(domain.KindMalformed, opGraphQL, fmt.Errorf("%w: deserializar data: %v", domain.ErrMalformed, err))
	}
	return nil
}

func joinErrors(errs []graphQLError) string {
	msgs := make([]string, 0, len(errs))
	for _, e := range errs {
		msg := e.Message
		if code, ok := e.Extensions["code"].(string); ok && code != "" {
			msg = code + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	return strings.Join(msgs, "; ")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
