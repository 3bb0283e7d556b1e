package transfer

import "github.com/jhoicas/ddt-transfer-api/internal/domain/entity"

// ViewModel datos que recibe la plantilla DDT: el traslado y, por comodidad,
// sus ubicaciones y líneas con nombres cortos.
type ViewModel struct {
	Transfer    entity.Transfer   `liquid:"transfer"`
	Origin      entity.Location   `liquid:"origin"`
	Destination entity.Location   `liquid:"destination"`
	Items       []entity.LineItem `liquid:"items"`
}

// BuildViewModel proyecta el traslado sin modificarlo. Las líneas se copian
// para que el view model no comparta el slice con el traslado de origen.
func BuildViewModel(t *entity.Transfer) ViewModel {
	if t == nil {
		return ViewModel{Items: []entity.LineItem{}}
	}
	items := make([]entity.LineItem, len(t.Items))
	copy(items, t.Items)

	header := *t
	header.Items = items

	return ViewModel{
		Transfer:    header,
		Origin:      t.Origin,
		Destination: t.Destination,
		Items:       items,
	}
}

// Bindings variables de plantilla: transfer, origin, destination e items.
func (vm ViewModel) Bindings() map[string]any {
	return map[string]any{
		"transfer":    vm.Transfer,
		"origin":      vm.Origin,
		"destination": vm.Destination,
		"items":       vm.Items,
	}
}
