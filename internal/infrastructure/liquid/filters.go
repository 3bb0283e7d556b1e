package liquid

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/jhoicas/ddt-transfer-api/internal/domain/ddt"
	"github.com/jhoicas/ddt-transfer-api/internal/domain/entity"
)

// Filter un filtro de plantilla. Apply debe ser una función aceptada por
// (*liquid.Engine).RegisterFilter: primer parámetro = valor filtrado.
type Filter struct {
	Name  string
	Apply any
}

// DefaultFilters filtros del DDT: format_address, date y format_number.
// loc es la zona del filtro date (nil = zona local del host).
func DefaultFilters(loc *time.Location, tag language.Tag) []Filter {
	numbers := ddt.NewNumberFormatter(tag)
	return []Filter{
		{Name: "format_address", Apply: FormatAddress},
		{Name: "date", Apply: DateFilter(loc)},
		{Name: "format_number", Apply: func(value any) string { return FormatNumber(numbers, value) }},
	}
}

// FormatAddress acepta entity.Address, *entity.Address o un mapa con las
// claves line1..country. Cualquier otro valor produce "".
func FormatAddress(value any) string {
	switch a := value.(type) {
	case entity.Address:
		return ddt.FormatAddress(a)
	case *entity.Address:
		return ddt.FormatAddressPtr(a)
	case map[string]any:
		return ddt.FormatAddress(entity.Address{
			Line1:    mapString(a, "line1"),
			Line2:    mapString(a, "line2"),
			City:     mapString(a, "city"),
			Zip:      mapString(a, "zip"),
			Province: mapString(a, "province"),
			Country:  mapString(a, "country"),
		})
	case map[string]string:
		return ddt.FormatAddress(entity.Address{
			Line1: a["line1"], Line2: a["line2"], City: a["city"],
			Zip: a["zip"], Province: a["province"], Country: a["country"],
		})
	default:
		return ""
	}
}

func mapString(m map[string]any, key string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// DateFilter sustituye al filtro date de Liquid. El formato es opcional con la
// misma convención que el filtro incorporado (parámetro función).
func DateFilter(loc *time.Location) func(value any, format func(string) string) string {
	return func(value any, format func(string) string) string {
		f := ""
		if format != nil {
			f = format("")
		}
		return ddt.FormatDate(value, f, loc)
	}
}

// FormatNumber formatea enteros con la agrupación del locale. Los valores no
// numéricos se devuelven como texto.
func FormatNumber(nf *ddt.NumberFormatter, value any) string {
	switch n := value.(type) {
	case int:
		return nf.Format(int64(n))
	case int32:
		return nf.Format(int64(n))
	case int64:
		return nf.Format(n)
	case float64:
		return nf.Format(int64(n))
	case string:
		if i, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64); err == nil {
			return nf.Format(i)
		}
		return n
	case nil:
		return ""
	default:
		return fmt.Sprint(n)
	}
}
