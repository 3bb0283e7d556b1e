package ports

import "context"

// AdminAPI puerto de salida hacia la Admin API GraphQL de la tienda.
// El middleware de autenticación entrega una instancia por petición, ya
// asociada a la tienda y a su token offline.
type AdminAPI interface {
	// GraphQL ejecuta query con variables y decodifica el campo "data" en out.
	// Devuelve un *domain.Error de tipo Upstream (transporte, HTTP no 2xx,
	// arreglo "errors") o Malformed (cuerpo no decodificable).
	GraphQL(ctx context.Context, query string, variables map[string]any, out any) error
}

// AdminAPIFactory construye el cliente de una tienda a partir de su token.
type AdminAPIFactory func(shop, accessToken string) AdminAPI
