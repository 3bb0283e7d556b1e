package dto

// CursorPageRequest paginación por cursor para listados de la Admin API.
type CursorPageRequest struct {
	First int    `query:"first"`
	After string `query:"after"`
}

// DefaultPage aplica el tamaño por defecto (15) y el máximo que acepta el upstream (100).
func (p *CursorPageRequest) DefaultPage() {
	if p.First <= 0 {
		p.First = 15
	}
	if p.First > 100 {
		p.First = 100
	}
}

// PageInfoResponse metadatos de cursor en respuestas.
type PageInfoResponse struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
