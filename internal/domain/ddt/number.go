package ddt

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale locale del documento de transporte.
var DefaultLocale = language.Italian

// ParseLocale interpreta un tag BCP 47 ("it-IT"); un tag inválido o vacío cae en DefaultLocale.
func ParseLocale(tag string) language.Tag {
	if tag == "" {
		return DefaultLocale
	}
	t, err := language.Parse(tag)
	if err != nil {
		return DefaultLocale
	}
	return t
}

// NumberFormatter formatea cantidades con la agrupación de dígitos del locale (1.234 en it-IT).
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter construye el formateador para el locale indicado.
func NewNumberFormatter(tag language.Tag) *NumberFormatter {
	return &NumberFormatter{printer: message.NewPrinter(tag)}
}

// Format devuelve n con separadores de miles.
func (f *NumberFormatter) Format(n int64) string {
	return f.printer.Sprintf("%d", n)
}
