package dto

import "github.com/shopspring/decimal"

// DDTResponse salida del endpoint DDT: el documento HTML listo para imprimir.
type DDTResponse struct {
	RenderedHTML string `json:"renderedHtml"`
}

// TransferSummaryResponse fila del listado de traslados.
type TransferSummaryResponse struct {
	ID               string          `json:"id"`
	LegacyID         string          `json:"legacyId"`
	Name             string          `json:"name"`
	ReferenceName    string          `json:"referenceName,omitempty"`
	Status           string          `json:"status"`
	TotalQuantity    int             `json:"totalQuantity"`
	ReceivedQuantity int             `json:"receivedQuantity"`
	ReceivedPercent  decimal.Decimal `json:"receivedPercent"`
	OriginName       string          `json:"originName"`
	DestinationName  string          `json:"destinationName"`
}

// TransferListResponse página de traslados.
type TransferListResponse struct {
	Items    []TransferSummaryResponse `json:"items"`
	PageInfo PageInfoResponse          `json:"pageInfo"`
}
