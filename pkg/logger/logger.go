package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config salida de logs del servicio y de ddtctl.
type Config struct {
	Env     string    // development -> consola; resto -> JSON (una línea por evento)
	Level   string    // nivel zerolog; vacío o desconocido = info
	Service string    // si no está vacío se añade como campo "service"
	Out     io.Writer // nil = os.Stdout
	Global  bool      // también reemplaza log.Logger de zerolog
}

// Logger logger inyectado en handlers, middlewares y adaptadores.
type Logger struct {
	zl zerolog.Logger
}

// New construye el logger según cfg.
func New(cfg Config) *Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if cfg.Env == "development" {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	}

	ctx := zerolog.New(out).Level(ParseLevel(cfg.Level)).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	zl := ctx.Logger()

	if cfg.Global {
		log.Logger = zl
	}
	return &Logger{zl: zl}
}

// ParseLevel traduce LOG_LEVEL; lo que zerolog no reconoce queda en info.
func ParseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// Nop descarta todo.
func Nop() *Logger {
	return &Logger{zl: zerolog.Nop()}
}

// WithField logger hijo con un campo fijo (request_id, shop...).
func (l *Logger) WithField(key string, value any) *Logger {
	return &Logger{zl: l.zl.With().Interface(key, value).Logger()}
}

func (l *Logger) Trace() *zerolog.Event { return l.zl.Trace() }
func (l *Logger) Debug() *zerolog.Event { return l.zl.Debug() }
func (l *Logger) Info() *zerolog.Event  { return l.zl.Info() }
func (l *Logger) Warn() *zerolog.Event  { return l.zl.Warn() }
func (l *Logger) Error() *zerolog.Event { return l.zl.Error() }
func (l *Logger) Fatal() *zerolog.Event { return l.zl.Fatal() }
