package rastrero

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// Columnas del snapshot de stock. La cantidad puede venir como
// "Cant. Final UMS" o, en exports antiguos, "Cant. Final".
const (
	colUbicacion    = "Ubicacion"
	colCodArticulo  = "Cod. Articulo"
	colHuella       = "Huella"
	colLoteStock    = "Lote Proveedor"
	colCantFinalUMS = "Cant. Final UMS"
	colCantFinal    = "Cant. Final"
)

// PrepararStockUseCase convierte el snapshot crudo de stock en la tabla
// agregada por ubicación-artículo que alimenta ambas reconciliaciones.
type PrepararStockUseCase struct{}

// NewPrepararStockUseCase construye el caso de uso.
func NewPrepararStockUseCase() *PrepararStockUseCase {
	return &PrepararStockUseCase{}
}

// Preparar valida cabeceras, normaliza cada fila (lote, cantidad, factor de
// huella, nivel) y agrega por la clave compuesta. Ninguna fila se descarta y
// los grupos con cantidad cero se conservan.
func (uc *PrepararStockUseCase) Preparar(t *Tabla) ([]entity.RegistroStock, error) {
	faltantes := t.Faltantes(colUbicacion, colCodArticulo, colHuella, colLoteStock)
	colCant := colCantFinalUMS
	if !t.Tiene(colCant) {
		colCant = colCantFinal
	}
	if !t.Tiene(colCant) {
		faltantes = append(faltantes, colCantFinalUMS)
	}
	if len(faltantes) > 0 {
		return nil, &domain.ErrorEsquema{Recurso: "stock", Faltantes: faltantes}
	}
	if len(t.Filas) == 0 {
		return nil, domain.ErrArchivoVacio
	}

	registros := make([]entity.RegistroStock, 0, len(t.Filas))
	for _, fila := range t.Filas {
		ubicacion := strings.TrimSpace(t.Valor(fila, colUbicacion))
		articulo := strings.TrimSpace(t.Valor(fila, colCodArticulo))
		factor := rastrero.FactorHuella(t.Valor(fila, colHuella))
		cantidad := rastrero.LimpiarNumero(t.Valor(fila, colCant))

		registros = append(registros, entity.RegistroStock{
			Concat:      rastrero.ClaveCompuesta(ubicacion, articulo),
			Ubicacion:   ubicacion,
			CodArticulo: articulo,
			Factor:      factor,
			UM:          entity.UMCaja,
			Nivel:       rastrero.NivelConAltoPorDefecto(ubicacion),
			Lote:        rastrero.LimpiarLote(t.Valor(fila, colLoteStock)),
			CantUMS:     cantidad,
			Cajas:       rastrero.Cajas(cantidad, factor),
		})
	}

	return Agregar(registros), nil
}

// Agregar agrupa registros de stock por la clave compuesta ampliada
// (concat, ubicación, artículo, factor, nivel y lote) sumando unidades y
// cajas. Es independiente del orden de entrada e idempotente: agregar una
// tabla ya agregada la deja igual. La salida queda ordenada por clave para
// que el resultado sea determinista.
func Agregar(registros []entity.RegistroStock) []entity.RegistroStock {
	type grupo struct {
		registro entity.RegistroStock
	}
	grupos := make(map[string]*grupo, len(registros))
	claves := make([]string, 0, len(registros))

	for _, r := range registros {
		clave := strings.Join([]string{
			r.Concat, r.Ubicacion, r.CodArticulo,
			r.Factor.String(), string(r.Nivel), r.Lote,
		}, "\x1f")
		g, ok := grupos[clave]
		if !ok {
			copia := r
			copia.CantUMS = decimal.Zero
			copia.Cajas = decimal.Zero
			g = &grupo{registro: copia}
			grupos[clave] = g
			claves = append(claves, clave)
		}
		g.registro.CantUMS = g.registro.CantUMS.Add(r.CantUMS)
		g.registro.Cajas = g.registro.Cajas.Add(r.Cajas)
	}

	sort.Strings(claves)
	out := make([]entity.RegistroStock, 0, len(claves))
	for _, clave := range claves {
		out = append(out, grupos[clave].registro)
	}
	return out
}

// CajasPorConcat devuelve el cierre de cajas por clave compuesta; es la
// tabla de lookup contra la que cruzan ingresos y salidas.
func CajasPorConcat(registros []entity.RegistroStock) map[string]decimal.Decimal {
	cierre := make(map[string]decimal.Decimal, len(registros))
	for _, r := range registros {
		cierre[r.Concat] = cierre[r.Concat].Add(r.Cajas)
	}
	return cierre
}

// UbicacionPorConcat devuelve la ubicación del stock por clave compuesta;
// cuando existe, manda sobre la ubicación reportada por el picking.
func UbicacionPorConcat(registros []entity.RegistroStock) map[string]string {
	ubic := make(map[string]string, len(registros))
	for _, r := range registros {
		if _, ok := ubic[r.Concat]; !ok {
			ubic[r.Concat] = r.Ubicacion
		}
	}
	return ubic
}
