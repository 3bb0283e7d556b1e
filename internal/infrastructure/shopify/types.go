package shopify

import "encoding/json"

// ── Protocolo GraphQL ─────────────────────────────────────────────────────────

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors,omitempty"`
}

type graphQLError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path,omitempty"`
	Extensions map[string]any `json:"extensions,omitempty"`
}

// ── Traslado (GetInventoryTransfer) ───────────────────────────────────────────

type transferData struct {
	InventoryTransfer *transferNode `json:"inventoryTransfer"`
}

type transferNode struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	ReferenceName *string             `json:"referenceName"`
	DateCreated   string              `json:"dateCreated"`
	Status        string              `json:"status"`
	Origin        *locationSnapshot   `json:"origin"`
	Destination   *locationSnapshot   `json:"destination"`
	LineItems     *lineItemConnection `json:"lineItems"`
}

type locationSnapshot struct {
	Name     string          `json:"name"`
	Address  *addressNode    `json:"address"`
	Location *locationFields `json:"location"`
}

type addressNode struct {
	Address1 *string `json:"address1"`
	Address2 *string `json:"address2"`
	City     *string `json:"city"`
	Zip      *string `json:"zip"`
	Province *string `json:"province"`
	Country  *string `json:"country"`
}

type locationFields struct {
	Metafield *struct {
		Value string `json:"value"`
	} `json:"metafield"`
}

type lineItemConnection struct {
	Edges    []lineItemEdge `json:"edges"`
	PageInfo *pageInfo      `json:"pageInfo"`
}

type lineItemEdge struct {
	Cursor string        `json:"cursor"`
	Node   *lineItemNode `json:"node"`
}

type lineItemNode struct {
	ID            string             `json:"id"`
	TotalQuantity int                `json:"totalQuantity"`
	InventoryItem *inventoryItemNode `json:"inventoryItem"`
}

type inventoryItemNode struct {
	ID      string  `json:"id"`
	SKU     *string `json:"sku"`
	Variant *struct {
		Title   *string `json:"title"`
		Product *struct {
			Title *string `json:"title"`
		} `json:"product"`
	} `json:"variant"`
}

type pageInfo struct {
	HasNextPage bool    `json:"hasNextPage"`
	EndCursor   *string `json:"endCursor"`
}

// ── Listado (InventoryTransfers) ──────────────────────────────────────────────

type transfersData struct {
	InventoryTransfers *struct {
		Edges []struct {
			Cursor string `json:"cursor"`
			Node   *struct {
				ID               string  `json:"id"`
				Name             string  `json:"name"`
				ReferenceName    *string `json:"referenceName"`
				Status           string  `json:"status"`
				TotalQuantity    int     `json:"totalQuantity"`
				ReceivedQuantity int     `json:"receivedQuantity"`
				Origin           *struct {
					Name string `json:"name"`
				} `json:"origin"`
				Destination *struct {
					Name string `json:"name"`
				} `json:"destination"`
			} `json:"node"`
		} `json:"edges"`
		PageInfo *pageInfo `json:"pageInfo"`
	} `json:"inventoryTransfers"`
}

func str(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
