package rastrero_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

func tablaStock(filas [][]string) *rastrero.Tabla {
	cabeceras := []string{"Ubicacion", "Cod. Articulo", "Huella", "Lote Proveedor", "Cant. Final UMS"}
	return rastrero.NuevaTabla(cabeceras, filas)
}

// ──────────────────────────────────────────────────────────────────────────────
// Preparar
// ──────────────────────────────────────────────────────────────────────────────

// TestPreparar_EsquemaIncompleto: columnas ausentes nombradas una a una.
func TestPreparar_EsquemaIncompleto(t *testing.T) {
	tabla := rastrero.NuevaTabla([]string{"Ubicacion", "Huella"}, [][]string{{"B4.RE.C06.A01", "C36U"}})

	_, err := rastrero.NewPrepararStockUseCase().Preparar(tabla)

	var esq *domain.ErrorEsquema
	require.ErrorAs(t, err, &esq)
	assert.Equal(t, "stock", esq.Recurso)
	assert.Contains(t, esq.Faltantes, "Cod. Articulo")
	assert.Contains(t, esq.Faltantes, "Lote Proveedor")
	assert.Contains(t, esq.Faltantes, "Cant. Final UMS")
}

// TestPreparar_ArchivoVacio: cabeceras correctas pero sin filas.
func TestPreparar_ArchivoVacio(t *testing.T) {
	_, err := rastrero.NewPrepararStockUseCase().Preparar(tablaStock(nil))
	assert.ErrorIs(t, err, domain.ErrArchivoVacio)
}

// TestPreparar_AgregaPorClave: dos filas de la misma posición y lote se
// funden en un registro con unidades y cajas sumadas.
func TestPreparar_AgregaPorClave(t *testing.T) {
	registros, err := rastrero.NewPrepararStockUseCase().Preparar(tablaStock([][]string{
		{"B4.RE.C06.A01", "ART-01", "PALCS36U", "LT 01", "180"},
		{"B4.RE.C06.A01", "ART-01", "PALCS36U", "LT01", "180"},
		{"B4.RE.C09.A05", "ART-02", "C12U", "LT02", "24"},
	}))
	require.NoError(t, err)
	require.Len(t, registros, 2)

	r := registros[0]
	assert.Equal(t, "B4.RE.C06.A01ART-01", r.Concat)
	assert.Equal(t, "LT01", r.Lote, "el lote con espacios se limpia antes de agrupar")
	assert.Equal(t, entity.UMCaja, r.UM)
	assert.Equal(t, entity.NivelBajo, r.Nivel)
	assert.True(t, r.CantUMS.Equal(decimal.NewFromInt(360)))
	assert.True(t, r.Cajas.Equal(decimal.NewFromInt(10)), "360 unidades a factor 36 son 10 cajas")

	assert.Equal(t, entity.NivelAlto, registros[1].Nivel)
	assert.True(t, registros[1].Cajas.Equal(decimal.NewFromInt(2)))
}

// TestPreparar_AliasCantFinal: los exports antiguos traen "Cant. Final" en
// lugar de "Cant. Final UMS" y se aceptan igual.
func TestPreparar_AliasCantFinal(t *testing.T) {
	tabla := rastrero.NuevaTabla(
		[]string{"Ubicacion", "Cod. Articulo", "Huella", "Lote Proveedor", "Cant. Final"},
		[][]string{{"B4.RE.C06.A01", "ART-01", "C36U", "L1", "72"}},
	)
	registros, err := rastrero.NewPrepararStockUseCase().Preparar(tabla)
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.True(t, registros[0].Cajas.Equal(decimal.NewFromInt(2)))
}

// TestPreparar_ConservaCantidadCero: los grupos con cantidad cero no se
// descartan; representan posiciones vacías que el rastrero debe mostrar.
func TestPreparar_ConservaCantidadCero(t *testing.T) {
	registros, err := rastrero.NewPrepararStockUseCase().Preparar(tablaStock([][]string{
		{"B4.RE.C06.A01", "ART-01", "C36U", "L1", "0"},
	}))
	require.NoError(t, err)
	require.Len(t, registros, 1)
	assert.True(t, registros[0].Cajas.IsZero())
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar
// ──────────────────────────────────────────────────────────────────────────────

func registrosDePrueba() []entity.RegistroStock {
	nuevo := func(ubic, art, lote string, cant int64) entity.RegistroStock {
		return entity.RegistroStock{
			Concat:      ubic + art,
			Ubicacion:   ubic,
			CodArticulo: art,
			Factor:      decimal.NewFromInt(36),
			UM:          entity.UMCaja,
			Nivel:       entity.NivelBajo,
			Lote:        lote,
			CantUMS:     decimal.NewFromInt(cant),
			Cajas:       decimal.NewFromInt(cant).Div(decimal.NewFromInt(36)),
		}
	}
	return []entity.RegistroStock{
		nuevo("B4.RE.C06.A01", "ART-01", "L1", 36),
		nuevo("B4.RE.C06.A01", "ART-01", "L1", 72),
		nuevo("B4.RE.C06.A01", "ART-01", "L2", 36),
		nuevo("B4.RE.C09.B02", "ART-02", "L1", 108),
	}
}

// TestAgregar_IndependienteDelOrden: cualquier permutación de la entrada
// produce exactamente la misma salida.
func TestAgregar_IndependienteDelOrden(t *testing.T) {
	base := registrosDePrueba()
	invertido := []entity.RegistroStock{base[3], base[2], base[1], base[0]}

	assert.Equal(t, rastrero.Agregar(base), rastrero.Agregar(invertido))
}

// TestAgregar_Idempotente: agregar una tabla ya agregada la deja igual.
func TestAgregar_Idempotente(t *testing.T) {
	una := rastrero.Agregar(registrosDePrueba())
	assert.Equal(t, una, rastrero.Agregar(una))
}

// TestAgregar_SeparaPorLote: el lote forma parte de la clave de grupo.
func TestAgregar_SeparaPorLote(t *testing.T) {
	out := rastrero.Agregar(registrosDePrueba())
	require.Len(t, out, 3)
	assert.True(t, out[0].CantUMS.Equal(decimal.NewFromInt(108)), "L1 suma 36+72")
	assert.True(t, out[1].CantUMS.Equal(decimal.NewFromInt(36)), "L2 queda aparte")
}

// TestCajasPorConcat: el cierre colapsa lotes y queda por clave compuesta.
func TestCajasPorConcat(t *testing.T) {
	cierre := rastrero.CajasPorConcat(rastrero.Agregar(registrosDePrueba()))
	require.Len(t, cierre, 2)
	assert.True(t, cierre["B4.RE.C06.A01ART-01"].Equal(decimal.NewFromInt(4)), "3+1 cajas entre ambos lotes")
	assert.True(t, cierre["B4.RE.C09.B02ART-02"].Equal(decimal.NewFromInt(3)))
}
