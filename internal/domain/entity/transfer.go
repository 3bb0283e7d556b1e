package entity

import "time"

// Address dirección postal de una ubicación. Todos los campos son opcionales.
// Las etiquetas liquid definen los nombres visibles desde la plantilla.
type Address struct {
	Line1    string `json:"line1,omitempty" liquid:"line1"`
	Line2    string `json:"line2,omitempty" liquid:"line2"`
	City     string `json:"city,omitempty" liquid:"city"`
	Zip      string `json:"zip,omitempty" liquid:"zip"`
	Province string `json:"province,omitempty" liquid:"province"`
	Country  string `json:"country,omitempty" liquid:"country"`
}

// IsZero indica si la dirección no tiene ningún campo.
func (a Address) IsZero() bool {
	return a == Address{}
}

// Location origen o destino de un traslado. TaxID proviene del metafield
// location.partita_iva y solo existe en el origen.
type Location struct {
	Name    string  `json:"name" liquid:"name"`
	Address Address `json:"address" liquid:"address"`
	TaxID   string  `json:"taxId,omitempty" liquid:"taxId"`
}

// LineItem una línea (sku/cantidad) del traslado.
type LineItem struct {
	ID              string `json:"id" liquid:"id"`
	TotalQuantity   int    `json:"totalQuantity" liquid:"totalQuantity"`
	InventoryItemID string `json:"inventoryItemId,omitempty" liquid:"inventoryItemId"`
	SKU             string `json:"sku,omitempty" liquid:"sku"`
	ProductTitle    string `json:"productTitle,omitempty" liquid:"productTitle"`
	VariantTitle    string `json:"variantTitle,omitempty" liquid:"variantTitle"`
}

// Transfer traslado de inventario entre dos ubicaciones con todas sus líneas.
// Status se mantiene como string opaco (RECEIVED, IN_TRANSIT, PENDING, ...).
type Transfer struct {
	ID            string     `json:"id" liquid:"id"`
	Name          string     `json:"name" liquid:"name"`
	ReferenceName string     `json:"referenceName,omitempty" liquid:"referenceName"`
	DateCreated   time.Time  `json:"dateCreated" liquid:"dateCreated"`
	Status        string     `json:"status" liquid:"status"`
	Origin        Location   `json:"origin" liquid:"origin"`
	Destination   Location   `json:"destination" liquid:"destination"`
	Items         []LineItem `json:"items" liquid:"items"`
}

// TransferSummary fila del listado de traslados.
type TransferSummary struct {
	ID               string
	Name             string
	ReferenceName    string
	Status           string
	TotalQuantity    int
	ReceivedQuantity int
	OriginName       string
	DestinationName  string
}

// TransferSummaryPage página de traslados con su cursor.
type TransferSummaryPage struct {
	Items       []TransferSummary
	HasNextPage bool
	EndCursor   string
}
