package ddt

import (
	"fmt"
	"strings"
	"time"
)

// DayMonthYearToken token strftime que activa el formato DD/MM/YYYY.
const DayMonthYearToken = "%d/%m/%Y"

// dateOnlyLayout fecha sin hora: medianoche UTC, como la lee un navegador
// (Date("2024-03-05")). Con hora y sin zona se usa loc.
const dateOnlyLayout = "2006-01-02"

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTimestamp interpreta time.Time, *time.Time o un string ISO-8601.
// Las cadenas con hora y sin zona se interpretan en loc; las de solo fecha en UTC.
func ParseTimestamp(value any, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.Local
	}
	switch v := value.(type) {
	case time.Time:
		return v, !v.IsZero()
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return *v, true
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return time.Time{}, false
		}
		for _, layout := range timestampLayouts {
			if t, err := time.ParseInLocation(layout, s, loc); err == nil {
				return t, true
			}
		}
		if t, err := time.Parse(dateOnlyLayout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate implementa el filtro date de la plantilla.
//
// Si format contiene %d/%m/%Y devuelve DD/MM/YYYY en loc; en otro caso la
// forma corta it-IT (D/M/YYYY, sin ceros a la izquierda). Nunca falla: una
// entrada no interpretable se devuelve tal cual (o "" si no es texto).
func FormatDate(value any, format string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	t, ok := ParseTimestamp(value, loc)
	if !ok {
		if s, isString := value.(string); isString {
			return s
		}
		return ""
	}
	t = t.In(loc)
	if strings.Contains(format, DayMonthYearToken) {
		return fmt.Sprintf("%02d/%02d/%04d", t.Day(), int(t.Month()), t.Year())
	}
	return fmt.Sprintf("%d/%d/%d", t.Day(), int(t.Month()), t.Year())
}

// LoadLocation resuelve la zona horaria del filtro date. Vacío = zona local del host.
func LoadLocation(name string) (*time.Location, error) {
	if strings.TrimSpace(name) == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("zona horaria %q: %w", name, err)
	}
	return loc, nil
}
