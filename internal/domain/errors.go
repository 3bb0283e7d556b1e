package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrTransferNotFound = errors.New("inventoryTransfer no encontrado")
	ErrSessionNotFound  = errors.New("sesión offline no encontrada")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrMalformed        = errors.New("respuesta upstream mal formada")
)

// Kind clasifica un error para que la capa HTTP lo traduzca a un status.
type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindUnauthorized
	KindNotFound
	KindUpstream
	KindMalformed
	KindTemplate
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "BadRequest"
	case KindUnauthorized:
		return "Unauthorized"
	case KindNotFound:
		return "NotFound"
	case KindUpstream:
		return "Upstream"
	case KindMalformed:
		return "Malformed"
	case KindTemplate:
		return "Template"
	default:
		return "Internal"
	}
}

// Error es el error clasificado que viaja hasta el mapper HTTP.
// Op identifica la operación que falló (ej. "shopify.fetch_transfer").
type Error struct {
	Kind Kind
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// E construye un *Error clasificado que envuelve err.
func E(kind Kind, op string, err error) error {
	return &Error{Kind: kind, Op: op, Err: err}
}

// Errorf es un atajo de E con mensaje formateado.
func Errorf(kind Kind, op, format string, args ...any) error {
	return &Error{Kind: kind, Op: op, Err: fmt.Errorf(format, args...)}
}

// KindOf devuelve el Kind del primer *Error en la cadena; KindInternal si no hay ninguno.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindInternal
}
