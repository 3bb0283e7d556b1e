// Package liquid aloja el motor de plantillas Liquid del DDT y sus filtros.
package liquid

import (
	"context"

	lq "github.com/osteele/liquid"

	"github.com/jhoicas/ddt-transfer-api/internal/application/transfer"
	"github.com/jhoicas/ddt-transfer-api/internal/domain"
)

var _ transfer.DDTRenderer = (*Engine)(nil)

const opRender = "liquid.render"

// Engine evalúa plantillas Liquid con un conjunto fijo de filtros.
// Los filtros se registran una sola vez en NewEngine; después el motor solo
// se lee y puede compartirse entre peticiones.
type Engine struct {
	engine *lq.Engine
}

// NewEngine crea el motor y registra los filtros en orden; un nombre repetido
// sustituye al anterior (y a los filtros incorporados, como date).
func NewEngine(filters ...Filter) *Engine {
	e := lq.NewEngine()
	for _, f := range filters {
		e.RegisterFilter(f.Name, f.Apply)
	}
	return &Engine{engine: e}
}

// Render implementa transfer.DDTRenderer.
func (e *Engine) Render(ctx context.Context, source string, vm transfer.ViewModel) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.E(domain.KindInternal, opRender, err)
	}
	tpl, perr := e.engine.ParseString(source)
	if perr != nil {
		return "", domain.Errorf(domain.KindTemplate, opRender, "parsear plantilla: %v", perr)
	}
	out, rerr := tpl.RenderString(lq.Bindings(vm.Bindings()))
	if rerr != nil {
		return "", domain.Errorf(domain.KindTemplate, opRender, "evaluar plantilla: %v", rerr)
	}
	return out, nil
}

// Validate parsea la plantilla sin evaluarla.
func (e *Engine) Validate(source string) error {
	if _, err := e.engine.ParseString(source); err != nil {
		return domain.Errorf(domain.KindTemplate, opRender, "parsear plantilla: %v", err)
	}
	return nil
}
