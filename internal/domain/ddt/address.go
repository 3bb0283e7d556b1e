package ddt

import (
	"strings"

	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

const addressSeparator = ", "

// FormatAddress une line1, line2, "<zip> <city>", province y country con ", ".
// Solo el compuesto zip/city se recorta; los segmentos en blanco se descartan,
// por lo que nunca aparecen separadores al inicio, al final ni duplicados.
func FormatAddress(a entity.Address) string {
	segments := []string{
		a.Line1,
		a.Line2,
		strings.TrimSpace(a.Zip + " " + a.City),
		a.Province,
		a.Country,
	}
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if strings.TrimSpace(s) != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, addressSeparator)
}

// FormatAddressPtr variante nil-safe: una dirección ausente produce "".
func FormatAddressPtr(a *entity.Address) string {
	if a == nil {
		return ""
	}
	return FormatAddress(*a)
}
