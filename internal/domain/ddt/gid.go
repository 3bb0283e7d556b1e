// Package ddt contiene la lógica pura del Documento di Trasporto: composición
// del identificador global y los formateadores usados por la plantilla.
package ddt

import "strings"

// TransferGIDPrefix espacio de nombres de los traslados en la Admin API.
const TransferGIDPrefix = "gid://shopify/InventoryTransfer/"

// TransferGID compone el ID global a partir del ID corto de la ruta.
// Un ID que ya es global se devuelve sin cambios.
func TransferGID(transferID string) string {
	id := strings.TrimSpace(transferID)
	if strings.HasPrefix(id, TransferGIDPrefix) {
		return id
	}
	return TransferGIDPrefix + id
}

// LegacyID devuelve el último segmento de un ID global (el ID corto de la ruta).
func LegacyID(gid string) string {
	if i := strings.LastIndex(gid, "/"); i >= 0 {
		return gid[i+1:]
	}
	return gid
}
