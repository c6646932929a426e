package rastrero

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// Columnas del reporte de movimientos (flujo de ingresos / movimientos internos).
const (
	colMotivo       = "Motivo"
	colGlosa        = "Glosa"
	colUbicOrigen   = "Ubicacion Origen"
	colUbicDestino  = "Ubicacion Destino"
	colCantDestino  = "Cant. Destino"
	colFechaMov     = "Fecha Movimiento"
	colLoteDestino  = "Lote Proveedor Destino"
	colUMOrigen     = "UM Origen"
	colReferencia   = "Referencia"
	formatoFechaMov = "02/01/2006"
)

// Prefijos de nombre de archivo aceptados para el slot de movimientos.
var PrefijosMovimientos = []string{
	"ReportConsultasIngresosFlujoIngresos",
	"ReportConsultasMovimientosInternos",
}

// Referencias generadas por el propio WMS que no corresponden a ingresos
// físicos y se excluyen siempre de la reconciliación.
var referenciasSistema = map[string]struct{}{
	"REGULARIZACION":       {},
	"AJUSTE DE INVENTARIO": {},
	"RECONTEO CICLICO":     {},
	"SALDO INICIAL":        {},
}

// umUnidad ingresos a nivel unidad; el rastrero trabaja a nivel caja.
const umUnidad = "UNIDAD"

// prefijoReserva las ubicaciones B4.RE son posiciones de reserva: un cambio
// de ubicación hacia ellas es almacenamiento, no un movimiento interno.
const prefijoReserva = "B4.RE"

// ValidarNombreMovimientos comprueba el prefijo del archivo subido al slot
// de movimientos. Un prefijo ajeno es advertencia, no error fatal: el
// usuario debe volver a subir el reporte correcto.
func ValidarNombreMovimientos(nombre string) error {
	for _, p := range PrefijosMovimientos {
		if strings.HasPrefix(nombre, p) {
			return nil
		}
	}
	return &domain.ErrorPrefijoArchivo{Esperados: PrefijosMovimientos, Nombre: nombre}
}

// GenerarIngresoUseCase reconcilia los movimientos de ingreso contra el
// stock agregado y produce las tablas de nivel alto y bajo del rastrero.
type GenerarIngresoUseCase struct{}

// NewGenerarIngresoUseCase construye el caso de uso.
func NewGenerarIngresoUseCase() *GenerarIngresoUseCase {
	return &GenerarIngresoUseCase{}
}

// ParsearMovimientos valida cabeceras y convierte la tabla cruda en
// movimientos tipados. Fechas o cantidades imparseables no abortan: la
// cantidad vale 0 y la fecha queda en cero, política de recuperación local.
func (uc *GenerarIngresoUseCase) ParsearMovimientos(t *Tabla) ([]entity.MovimientoIngreso, error) {
	faltantes := t.Faltantes(
		colMotivo, colGlosa, colUbicOrigen, colUbicDestino, colCodArticulo,
		colCantDestino, colFechaMov, colLoteDestino, colUMOrigen, colReferencia,
	)
	if len(faltantes) > 0 {
		return nil, &domain.ErrorEsquema{Recurso: "movimientos", Faltantes: faltantes}
	}
	if len(t.Filas) == 0 {
		return nil, domain.ErrArchivoVacio
	}

	movs := make([]entity.MovimientoIngreso, 0, len(t.Filas))
	for _, fila := range t.Filas {
		destino := strings.TrimSpace(t.Valor(fila, colUbicDestino))
		articulo := strings.TrimSpace(t.Valor(fila, colCodArticulo))
		motivo := strings.ToUpper(strings.TrimSpace(t.Valor(fila, colMotivo)))

		fecha, err := time.Parse(formatoFechaMov, strings.TrimSpace(t.Valor(fila, colFechaMov)))
		if err != nil {
			fecha = time.Time{}
		}

		movs = append(movs, entity.MovimientoIngreso{
			Referencia:       strings.TrimSpace(t.Valor(fila, colReferencia)),
			Motivo:           motivo,
			Glosa:            strings.TrimSpace(t.Valor(fila, colGlosa)),
			UbicacionOrigen:  strings.TrimSpace(t.Valor(fila, colUbicOrigen)),
			UbicacionDestino: destino,
			CodArticulo:      articulo,
			CantDestino:      rastrero.LimpiarNumero(t.Valor(fila, colCantDestino)),
			UMOrigen:         strings.ToUpper(strings.TrimSpace(t.Valor(fila, colUMOrigen))),
			Lote:             rastrero.LimpiarLote(t.Valor(fila, colLoteDestino)),
			Fecha:            fecha,
			Categoria:        derivarCategoria(motivo, destino),
			Concat:           rastrero.ClaveCompuesta(destino, articulo),
		})
	}
	return movs, nil
}

// derivarCategoria clasifica el motivo WMS: un cambio de ubicación hacia
// reserva es almacenamiento, hacia cualquier otra posición es movimiento
// interno; un cambio de estado es su propia categoría; el resto queda sin
// clasificar.
func derivarCategoria(motivo, destino string) entity.CategoriaMovimiento {
	switch motivo {
	case "CAMBIO DE UBICACION":
		if strings.HasPrefix(destino, prefijoReserva) {
			return entity.CategoriaAlmacenamiento
		}
		return entity.CategoriaMovInterno
	case "CAMBIO DE ESTADO":
		return entity.CategoriaCambioEstado
	}
	return entity.CategoriaSinClasificar
}

// FiltrarSistema excluye las referencias generadas por el WMS y los
// movimientos a nivel unidad, que no participan del rastrero de cajas.
func (uc *GenerarIngresoUseCase) FiltrarSistema(movs []entity.MovimientoIngreso) []entity.MovimientoIngreso {
	return filtrar(movs, func(m entity.MovimientoIngreso) bool {
		if _, ok := referenciasSistema[strings.ToUpper(m.Referencia)]; ok {
			return false
		}
		return m.UMOrigen != umUnidad
	})
}

// TablaIngreso resultado de la reconciliación de ingresos, partido por
// nivel. Las filas cuyo destino no clasifica en ningún nivel se excluyen.
type TablaIngreso struct {
	Alto  []entity.FilaRastrero
	Bajo  []entity.FilaRastrero
	Lotes []string // lotes presentes en los movimientos reconciliados, para la columna L
}

// Reconciliar agrupa los movimientos ya filtrados por clave compuesta,
// cruza contra el cierre de stock y calcula el stock inicial:
//
//	inicial = final − ingreso      si final >= ingreso
//	inicial = final, obs = "Regu"  si el ingreso supera el stock disponible
//
// El ingreso nunca produce un stock inicial negativo por construcción.
func (uc *GenerarIngresoUseCase) Reconciliar(movs []entity.MovimientoIngreso, stock []entity.RegistroStock) (*TablaIngreso, error) {
	if len(movs) == 0 {
		return nil, domain.ErrSinSeleccion
	}

	type grupo struct {
		ubicacion string
		articulo  string
		ingreso   decimal.Decimal
	}
	grupos := make(map[string]*grupo)
	claves := make([]string, 0, len(movs))
	lotes := make(map[string]struct{})

	for _, m := range movs {
		g, ok := grupos[m.Concat]
		if !ok {
			g = &grupo{ubicacion: m.UbicacionDestino, articulo: m.CodArticulo}
			grupos[m.Concat] = g
			claves = append(claves, m.Concat)
		}
		g.ingreso = g.ingreso.Add(m.CantDestino)
		if m.Lote != "" {
			lotes[m.Lote] = struct{}{}
		}
	}
	sort.Strings(claves)

	cierre := CajasPorConcat(stock)
	tabla := &TablaIngreso{}
	for _, clave := range claves {
		g := grupos[clave]

		nivel := rastrero.CalcNivel(g.ubicacion)
		if nivel == entity.NivelDesconocido {
			continue
		}

		final := cierre[clave] // sin match: cierre 0
		inicial := final.Sub(g.ingreso)
		observacion := ""
		if final.LessThan(g.ingreso) {
			// El ingreso supera el stock final: se reporta el cierre como
			// inicial y la fila queda marcada para regularización.
			inicial = final
			observacion = entity.ObservacionRegu
		}

		fila := entity.FilaRastrero{
			Ubicacion:    g.ubicacion,
			CodArticulo:  g.articulo,
			UM:           entity.UMCaja,
			StockInicial: inicial,
			Flujo:        g.ingreso,
			StockFinal:   final,
			Observacion:  observacion,
			Nivel:        nivel,
		}
		if nivel == entity.NivelBajo {
			tabla.Bajo = append(tabla.Bajo, fila)
		} else {
			tabla.Alto = append(tabla.Alto, fila)
		}
	}

	tabla.Lotes = make([]string, 0, len(lotes))
	for l := range lotes {
		tabla.Lotes = append(tabla.Lotes, l)
	}
	sort.Strings(tabla.Lotes)

	return tabla, nil
}
