package templatefs

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"golang.org/x/sync/singleflight"

	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
	"github.com/jhoicas/ddt-transfer-api/pkg/logger"
)

var _ transfer.TemplateSource = (*CachedFileSource)(nil)

// CachedFileSource mantiene la plantilla en memoria para todo el proceso.
//
// Cada Load compara el mtime del archivo con el de la copia cacheada, así que
// una edición se ve en la petición siguiente aunque el watcher no esté
// activo. Con Start, un watcher fsnotify invalida la copia en cuanto el
// archivo cambia. Las recargas concurrentes se agrupan con singleflight y los
// lectores nunca ven una plantilla a medio cargar.
type CachedFileSource struct {
	path string
	log  *logger.Logger

	mu      sync.RWMutex
	source  string
	modTime time.Time
	loaded  bool

	group singleflight.Group
	fills int

	watchMu sync.Mutex
	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewCachedFileSource crea la fuente cacheada; path vacío = DefaultPath y log nil = sin logs.
func NewCachedFileSource(path string, log *logger.Logger) *CachedFileSource {
	if path == "" {
		path = DefaultPath
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CachedFileSource{path: path, log: log}
}

// Path ruta vigilada.
func (s *CachedFileSource) Path() string { return s.path }

// Load implementa transfer.TemplateSource.
func (s *CachedFileSource) Load(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.E(domain.KindInternal, opLoad, err)
	}

	info, statErr := os.Stat(s.path)

	s.mu.RLock()
	if s.loaded && statErr == nil && info.ModTime().Equal(s.modTime) {
		src := s.source
		s.mu.RUnlock()
		return src, nil
	}
	s.mu.RUnlock()

	v, err, _ := s.group.Do(s.path, func() (any, error) {
		return s.fill()
	})
	if err != nil {
		return "", err
	}
	return v.(string), nil
}

// fill relee el archivo y reemplaza la copia bajo el lock de escritura.
func (s *CachedFileSource) fill() (string, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		s.Invalidate()
		return "", domain.E(domain.KindTemplate, opLoad, err)
	}
	src, err := readTemplate(s.path)
	if err != nil {
		s.Invalidate()
		return "", err
	}

	s.mu.Lock()
	s.source = src
	s.modTime = info.ModTime()
	s.loaded = true
	s.fills++
	s.mu.Unlock()

	s.log.Debug().Str("path", s.path).Int("bytes", len(src)).Msg("plantilla DDT cargada")
	return src, nil
}

// Invalidate descarta la copia cacheada; el próximo Load relee el archivo.
func (s *CachedFileSource) Invalidate() {
	s.mu.Lock()
	s.loaded = false
	s.source = ""
	s.modTime = time.Time{}
	s.mu.Unlock()
}

// Loaded indica si hay una copia cacheada vigente.
func (s *CachedFileSource) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// Fills número de lecturas de disco realizadas.
func (s *CachedFileSource) Fills() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fills
}

// Start arranca el watcher fsnotify sobre el directorio de la plantilla (los
// editores suelen reemplazar el archivo en lugar de escribirlo). No bloquea;
// llamar Close para detenerlo. Llamarlo dos veces no tiene efecto.
func (s *CachedFileSource) Start() error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	if s.watcher != nil {
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := w.Add(dir); err != nil {
		_ = w.Close()
		return err
	}

	s.watcher = w
	s.stopCh = make(chan struct{})
	s.doneCh = make(chan struct{})
	go s.run(w, s.stopCh, s.doneCh)

	s.log.Info().Str("dir", dir).Msg("vigilando plantilla DDT")
	return nil
}

// Close detiene el watcher y espera a que termine su goroutine.
func (s *CachedFileSource) Close() error {
	s.watchMu.Lock()
	defer s.watchMu.Unlock()
	if s.watcher == nil {
		return nil
	}

	close(s.stopCh)
	<-s.doneCh
	err := s.watcher.Close()
	s.watcher = nil
	return err
}

func (s *CachedFileSource) run(w *fsnotify.Watcher, stopCh <-chan struct{}, doneCh chan<- struct{}) {
	defer close(doneCh)

	target := filepath.Clean(s.path)
	for {
		select {
		case <-stopCh:
			return

		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			s.Invalidate()
			s.log.Debug().Str("path", event.Name).Str("op", event.Op.String()).Msg("plantilla DDT invalidada")

		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			s.log.Warn().Err(err).Msg("error del watcher de plantilla")
		}
	}
}
