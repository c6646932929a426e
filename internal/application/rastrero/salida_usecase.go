package rastrero

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// Columnas requeridas, exactas, del reporte de asignación de pickings.
var cabecerasPicking = []string{
	"Estado", "Nro. Picking", "Usuario Picking", "Cliente", "Ubicacion",
	"Cod. Articulo", "Articulo", "Cant. Pick. UMS", "Huella",
}

const (
	colNroPicking  = "Nro. Picking"
	colUsuarioPick = "Usuario Picking"
	colCliente     = "Cliente"
	colArticulo    = "Articulo"
	colCantPickUMS = "Cant. Pick. UMS"
	colEstado      = "Estado"
)

// GenerarSalidaUseCase reconcilia los pickings contra el stock agregado y
// produce las tablas por zona (pasillo × nivel) del rastrero de salidas.
type GenerarSalidaUseCase struct{}

// NewGenerarSalidaUseCase construye el caso de uso.
func NewGenerarSalidaUseCase() *GenerarSalidaUseCase {
	return &GenerarSalidaUseCase{}
}

// ParsearPicking valida el juego completo de cabeceras (cualquier ausencia
// aborta la operación entera) y tipa cada fila: factor de huella, cajas,
// clave compuesta y nombre de cliente extraído del campo con pipes.
func (uc *GenerarSalidaUseCase) ParsearPicking(t *Tabla) ([]entity.RegistroPicking, error) {
	if faltantes := t.Faltantes(cabecerasPicking...); len(faltantes) > 0 {
		return nil, &domain.ErrorEsquema{Recurso: "picking", Faltantes: faltantes}
	}
	if len(t.Filas) == 0 {
		return nil, domain.ErrArchivoVacio
	}

	registros := make([]entity.RegistroPicking, 0, len(t.Filas))
	for _, fila := range t.Filas {
		ubicacion := strings.TrimSpace(t.Valor(fila, colUbicacion))
		articulo := strings.TrimSpace(t.Valor(fila, colCodArticulo))
		cliente := strings.TrimSpace(t.Valor(fila, colCliente))
		factor := rastrero.FactorHuella(t.Valor(fila, colHuella))
		cantidad := rastrero.LimpiarNumero(t.Valor(fila, colCantPickUMS))

		registros = append(registros, entity.RegistroPicking{
			Estado:         strings.TrimSpace(t.Valor(fila, colEstado)),
			NroPicking:     strings.TrimSpace(t.Valor(fila, colNroPicking)),
			UsuarioPicking: strings.TrimSpace(t.Valor(fila, colUsuarioPick)),
			Cliente:        cliente,
			ClienteExt:     clienteExterno(cliente),
			Ubicacion:      ubicacion,
			CodArticulo:    articulo,
			Articulo:       strings.TrimSpace(t.Valor(fila, colArticulo)),
			Huella:         t.Valor(fila, colHuella),
			CantUMS:        cantidad,
			Factor:         factor,
			Cajas:          rastrero.Cajas(cantidad, factor),
			Concat:         rastrero.ClaveCompuesta(ubicacion, articulo),
		})
	}
	return registros, nil
}

// clienteExterno: el WMS concatena "código|razón social"; se muestra el
// segundo segmento y, si no hay pipe, el campo completo.
func clienteExterno(cliente string) string {
	partes := strings.Split(cliente, "|")
	if len(partes) >= 2 {
		return strings.TrimSpace(partes[1])
	}
	return cliente
}

// PickingsDisponibles devuelve los números de picking únicos, ordenados.
func PickingsDisponibles(registros []entity.RegistroPicking) []string {
	vistos := make(map[string]struct{})
	var out []string
	for _, r := range registros {
		if r.NroPicking == "" {
			continue
		}
		if _, ok := vistos[r.NroPicking]; !ok {
			vistos[r.NroPicking] = struct{}{}
			out = append(out, r.NroPicking)
		}
	}
	sort.Strings(out)
	return out
}

// FiltrarPickings aplica la selección de pickings; vacía equivale a todos.
func FiltrarPickings(registros []entity.RegistroPicking, seleccion []string) []entity.RegistroPicking {
	if len(seleccion) == 0 {
		return registros
	}
	set := make(map[string]struct{}, len(seleccion))
	for _, s := range seleccion {
		set[s] = struct{}{}
	}
	var out []entity.RegistroPicking
	for _, r := range registros {
		if _, ok := set[r.NroPicking]; ok {
			out = append(out, r)
		}
	}
	return out
}

// ConsolidadoPicking total de cajas pickeadas por clave compuesta; es la
// tabla que cruza contra el cierre de stock.
type ConsolidadoPicking struct {
	Concat      string
	Ubicacion   string
	CodArticulo string
	Cajas       decimal.Decimal
}

// Resumenes produce las tres tablas de resumen: por picking (T_Picking),
// por picking y cliente (T_Clientes) y el consolidado por clave compuesta.
func (uc *GenerarSalidaUseCase) Resumenes(registros []entity.RegistroPicking) ([]entity.ResumenPicking, []entity.ResumenCliente, []ConsolidadoPicking) {
	porPicking := make(map[string]*entity.ResumenPicking)
	var ordenPicking []string
	porCliente := make(map[string]*entity.ResumenCliente)
	var ordenCliente []string
	porConcat := make(map[string]*ConsolidadoPicking)
	var ordenConcat []string

	for _, r := range registros {
		if p, ok := porPicking[r.NroPicking]; ok {
			p.CantUMS = p.CantUMS.Add(r.CantUMS)
			p.Cajas = p.Cajas.Add(r.Cajas)
		} else {
			porPicking[r.NroPicking] = &entity.ResumenPicking{
				NroPicking: r.NroPicking, CantUMS: r.CantUMS, Cajas: r.Cajas,
			}
			ordenPicking = append(ordenPicking, r.NroPicking)
		}

		claveCli := r.NroPicking + "\x1f" + r.ClienteExt
		if c, ok := porCliente[claveCli]; ok {
			c.CantUMS = c.CantUMS.Add(r.CantUMS)
			c.Cajas = c.Cajas.Add(r.Cajas)
		} else {
			porCliente[claveCli] = &entity.ResumenCliente{
				NroPicking: r.NroPicking, Cliente: r.ClienteExt,
				CantUMS: r.CantUMS, Cajas: r.Cajas,
			}
			ordenCliente = append(ordenCliente, claveCli)
		}

		if c, ok := porConcat[r.Concat]; ok {
			c.Cajas = c.Cajas.Add(r.Cajas)
		} else {
			porConcat[r.Concat] = &ConsolidadoPicking{
				Concat: r.Concat, Ubicacion: r.Ubicacion,
				CodArticulo: r.CodArticulo, Cajas: r.Cajas,
			}
			ordenConcat = append(ordenConcat, r.Concat)
		}
	}

	sort.Strings(ordenPicking)
	sort.Strings(ordenCliente)
	sort.Strings(ordenConcat)

	tpick := make([]entity.ResumenPicking, 0, len(ordenPicking))
	for _, k := range ordenPicking {
		tpick = append(tpick, *porPicking[k])
	}
	tcli := make([]entity.ResumenCliente, 0, len(ordenCliente))
	for _, k := range ordenCliente {
		tcli = append(tcli, *porCliente[k])
	}
	consolidado := make([]ConsolidadoPicking, 0, len(ordenConcat))
	for _, k := range ordenConcat {
		consolidado = append(consolidado, *porConcat[k])
	}
	return tpick, tcli, consolidado
}

// TablaZona filas reconciliadas de una zona pasillo × nivel, ordenadas por
// ubicación ascendente.
type TablaZona struct {
	Zona  string
	Filas []entity.FilaRastrero
}

// TablaSalida resultado de la reconciliación de salidas: una tabla por zona
// válida con al menos una fila, más los pickings para la columna L.
type TablaSalida struct {
	Zonas    []TablaZona
	Pickings []string
}

// Reconciliar cruza el consolidado de pickings contra el cierre de stock
// (left join, sin match el cierre es 0):
//
//	inicial = salidas + final, siempre; la salida consume del inicial así
//	que inicial >= final por construcción y no hay caso de marca "Regu".
//
// La ubicación del stock manda sobre la del picking cuando ambas existen.
// Las filas cuyo pasillo es Libre se descartan; el resto se agrupa por zona.
func (uc *GenerarSalidaUseCase) Reconciliar(consolidado []ConsolidadoPicking, stock []entity.RegistroStock, pickings []string) (*TablaSalida, error) {
	if len(consolidado) == 0 {
		return nil, domain.ErrSinSeleccion
	}

	cierre := CajasPorConcat(stock)
	ubicStock := UbicacionPorConcat(stock)

	porZona := make(map[string][]entity.FilaRastrero)
	for _, c := range consolidado {
		final := cierre[c.Concat]
		ubicacion := c.Ubicacion
		if u, ok := ubicStock[c.Concat]; ok {
			ubicacion = u
		}

		pasillo := rastrero.CalcPasillo(ubicacion)
		if pasillo == entity.PasilloLibre {
			continue
		}
		nivel := rastrero.NivelConAltoPorDefecto(ubicacion)
		zona := entity.Zona(pasillo, nivel)

		porZona[zona] = append(porZona[zona], entity.FilaRastrero{
			Ubicacion:    ubicacion,
			CodArticulo:  c.CodArticulo,
			UM:           entity.UMCaja,
			StockInicial: c.Cajas.Add(final),
			Flujo:        c.Cajas,
			StockFinal:   final,
			Nivel:        nivel,
		})
	}

	zonas := make([]string, 0, len(porZona))
	for z := range porZona {
		zonas = append(zonas, z)
	}
	sort.Strings(zonas)

	tabla := &TablaSalida{Pickings: pickings}
	for _, z := range zonas {
		filas := porZona[z]
		sort.Slice(filas, func(i, j int) bool {
			return filas[i].Ubicacion < filas[j].Ubicacion
		})
		tabla.Zonas = append(tabla.Zonas, TablaZona{Zona: z, Filas: filas})
	}
	return tabla, nil
}
