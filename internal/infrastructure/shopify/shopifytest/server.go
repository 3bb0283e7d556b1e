// Package shopifytest ofrece un servidor falso de la Admin API GraphQL para tests.
package shopifytest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
)

// Request consulta recibida por el servidor falso.
type Request struct {
	Query       string         `json:"query"`
	Variables   map[string]any `json:"variables"`
	AccessToken string         `json:"-"`
}

// After valor de la variable $after (nil en la primera página).
func (r Request) After() any { return r.Variables["after"] }

// Response respuesta a devolver: Status 0 equivale a 200.
type Response struct {
	Status int
	Body   any
}

// HandlerFunc decide la respuesta de la llamada número call (empezando en 0).
type HandlerFunc func(call int, req Request) Response

// Server servidor falso que registra cada consulta recibida.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []Request
}

// NewServer arranca el servidor. Cerrar con Close.
func NewServer(handler HandlerFunc) *Server {
	s := &Server{}
	s.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		req.AccessToken = r.Header.Get("X-Shopify-Access-Token")

		s.mu.Lock()
		call := len(s.requests)
		s.requests = append(s.requests, req)
		s.mu.Unlock()

		resp := handler(call, req)
		status := resp.Status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		switch b := resp.Body.(type) {
		case nil:
		case string:
			_, _ = w.Write([]byte(b))
		default:
			_ = json.NewEncoder(w).Encode(b)
		}
	}))
	return s
}

// Requests copia de las consultas recibidas, en orden.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Calls número de consultas recibidas.
func (s *Server) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// TransferOptions cabecera del traslado de los fixtures.
type TransferOptions struct {
	ID   string
	Name string
}

// LineItemID ID global de la línea n de los fixtures.
func LineItemID(n int) string {
	return fmt.Sprintf("gid://shopify/InventoryTransferLineItem/%d", n)
}

// TransferPage cuerpo de GetInventoryTransfer con las líneas from..to (inclusive;
// from > to produce una página sin líneas). endCursor nil se serializa como null.
func TransferPage(opts TransferOptions, from, to int, hasNextPage bool, endCursor any) map[string]any {
	if opts.ID == "" {
		opts.ID = "gid://shopify/InventoryTransfer/1"
	}
	if opts.Name == "" {
		opts.Name = "#T0001"
	}
	edges := make([]any, 0)
	for i := from; i <= to; i++ {
		edges = append(edges, map[string]any{
			"cursor": fmt.Sprintf("cur-%d", i),
			"node": map[string]any{
				"id":            LineItemID(i),
				"totalQuantity": i % 7,
				"inventoryItem": map[string]any{
					"id":  fmt.Sprintf("gid://shopify/InventoryItem/%d", i),
					"sku": fmt.Sprintf("SKU-%03d", i),
					"variant": map[string]any{
						"title":   "Default Title",
						"product": map[string]any{"title": fmt.Sprintf("Prodotto %d", i)},
					},
				},
			},
		})
	}
	return map[string]any{
		"data": map[string]any{
			"inventoryTransfer": map[string]any{
				"id":            opts.ID,
				"name":          opts.Name,
				"referenceName": "RIF-" + strings.TrimPrefix(opts.Name, "#"),
				"dateCreated":   "2024-03-05T10:00:00Z",
				"status":        "IN_TRANSIT",
				"origin": map[string]any{
					"name": "Magazzino Milano",
					"address": map[string]any{
						"address1": "Via A 1", "address2": "", "city": "Milano",
						"zip": "20100", "province": "MI", "country": "IT",
					},
					"location": map[string]any{
						"metafield": map[string]any{"value": "IT01234567890"},
					},
				},
				"destination": map[string]any{
					"name": "Negozio Roma",
					"address": map[string]any{
						"address1": "Via del Corso 10", "address2": nil, "city": "Roma",
						"zip": "00186", "province": "RM", "country": "IT",
					},
				},
				"lineItems": map[string]any{
					"edges": edges,
					"pageInfo": map[string]any{
						"hasNextPage": hasNextPage,
						"endCursor":   endCursor,
					},
				},
			},
		},
	}
}

// NullTransfer cuerpo con inventoryTransfer: null.
func NullTransfer() map[string]any {
	return map[string]any{"data": map[string]any{"inventoryTransfer": nil}}
}

// GraphQLErrors cuerpo con un arreglo errors.
func GraphQLErrors(messages ...string) map[string]any {
	errs := make([]any, 0, len(messages))
	for _, m := range messages {
		errs = append(errs, map[string]any{"message": m})
	}
	return map[string]any{"data": nil, "errors": errs}
}

// Paged reparte total líneas en páginas de size y responde según el cursor
// recibido ("c1", "c2", ...). Útil para propiedades de completitud.
func Paged(opts TransferOptions, total, size int) HandlerFunc {
	return func(call int, req Request) Response {
		page := 0
		if after, ok := req.After().(string); ok {
			_, _ = fmt.Sscanf(after, "c%d", &page)
		}
		from := page*size + 1
		to := from + size - 1
		if to > total {
			to = total
		}
		hasNext := to < total
		var cursor any
		if hasNext {
			cursor = fmt.Sprintf("c%d", page+1)
		}
		return Response{Body: TransferPage(opts, from, to, hasNext, cursor)}
	}
}
