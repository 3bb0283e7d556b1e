// Package templatefs entrega el código fuente de la plantilla DDT desde disco
// (leído en cada petición o cacheado con invalidación por fsnotify) o desde memoria.
package templatefs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
)

// DefaultPath ruta de la plantilla relativa al directorio de trabajo.
const DefaultPath = "./template-ddt.liquid"

const opLoad = "templatefs.load"

var (
	_ transfer.TemplateSource = (*FileSource)(nil)
	_ transfer.TemplateSource = StringSource("")
)

// FileSource lee la plantilla de disco en cada llamada: una edición del
// archivo se ve en la petición siguiente sin reiniciar.
type FileSource struct {
	Path string
}

// NewFileSource crea la fuente; path vacío = DefaultPath.
func NewFileSource(path string) *FileSource {
	if path == "" {
		path = DefaultPath
	}
	return &FileSource{Path: path}
}

// Load implementa transfer.TemplateSource.
func (s *FileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.E(domain.KindInternal, opLoad, err)
	}
	return readTemplate(s.Path)
}

// StringSource plantilla fija en memoria (tests y CLI con --template -).
type StringSource string

// Load implementa transfer.TemplateSource.
func (s StringSource) Load(context.Context) (string, error) {
	return string(s), nil
}

func readTemplate(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.E(domain.KindTemplate, opLoad, fmt.Errorf("plantilla %s no encontrada: %w", path, err))
		}
		return "", domain.E(domain.KindTemplate, opLoad, fmt.Errorf("leer plantilla %s: %w", path, err))
	}
	return string(raw), nil
}
