package rastrero

import (
	"sort"

	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// SeleccionFacetas filtros elegidos por el usuario para los ingresos.
// Una lista vacía significa "todas las opciones disponibles".
type SeleccionFacetas struct {
	Categorias []string
	Glosas     []string
	Lotes      []string
}

// OpcionesFacetas opciones disponibles tras aplicar la cascada
// categoría → glosa → lote sobre los movimientos cargados.
type OpcionesFacetas struct {
	Categorias []string
	Glosas     []string
	Lotes      []string
}

// ResolverFacetas calcula las opciones disponibles y depura la selección:
// las categorías elegidas acotan las glosas visibles, y éstas los lotes.
// Un valor seleccionado que dejó de estar disponible se descarta; si una
// selección queda vacía equivale a "todas las disponibles". Función pura:
// la capa HTTP le pasa la selección actual y persiste la depurada.
func ResolverFacetas(movs []entity.MovimientoIngreso, sel SeleccionFacetas) (OpcionesFacetas, SeleccionFacetas) {
	var op OpcionesFacetas

	op.Categorias = valoresUnicos(movs, func(m entity.MovimientoIngreso) string {
		return string(m.Categoria)
	})
	sel.Categorias = depurar(sel.Categorias, op.Categorias)

	trasCategoria := filtrar(movs, func(m entity.MovimientoIngreso) bool {
		return pasaFiltro(string(m.Categoria), sel.Categorias)
	})
	op.Glosas = valoresUnicos(trasCategoria, func(m entity.MovimientoIngreso) string {
		return m.Glosa
	})
	sel.Glosas = depurar(sel.Glosas, op.Glosas)

	trasGlosa := filtrar(trasCategoria, func(m entity.MovimientoIngreso) bool {
		return pasaFiltro(m.Glosa, sel.Glosas)
	})
	op.Lotes = valoresUnicos(trasGlosa, func(m entity.MovimientoIngreso) string {
		return m.Lote
	})
	sel.Lotes = depurar(sel.Lotes, op.Lotes)

	return op, sel
}

// AplicarFacetas devuelve los movimientos que pasan la selección depurada.
func AplicarFacetas(movs []entity.MovimientoIngreso, sel SeleccionFacetas) []entity.MovimientoIngreso {
	return filtrar(movs, func(m entity.MovimientoIngreso) bool {
		return pasaFiltro(string(m.Categoria), sel.Categorias) &&
			pasaFiltro(m.Glosa, sel.Glosas) &&
			pasaFiltro(m.Lote, sel.Lotes)
	})
}

// pasaFiltro: selección vacía deja pasar todo.
func pasaFiltro(valor string, seleccion []string) bool {
	if len(seleccion) == 0 {
		return true
	}
	for _, s := range seleccion {
		if s == valor {
			return true
		}
	}
	return false
}

func depurar(seleccion, disponibles []string) []string {
	if len(seleccion) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(disponibles))
	for _, d := range disponibles {
		set[d] = struct{}{}
	}
	var out []string
	for _, s := range seleccion {
		if _, ok := set[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

func valoresUnicos(movs []entity.MovimientoIngreso, extraer func(entity.MovimientoIngreso) string) []string {
	vistos := make(map[string]struct{})
	var out []string
	for _, m := range movs {
		v := extraer(m)
		if v == "" {
			continue
		}
		if _, ok := vistos[v]; !ok {
			vistos[v] = struct{}{}
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func filtrar(movs []entity.MovimientoIngreso, pasa func(entity.MovimientoIngreso) bool) []entity.MovimientoIngreso {
	var out []entity.MovimientoIngreso
	for _, m := range movs {
		if pasa(m) {
			out = append(out, m)
		}
	}
	return out
}
