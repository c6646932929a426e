package dto

import (
	"github.com/shopspring/decimal"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// FilaRastreroDTO fila reconciliada para previsualización JSON.
type FilaRastreroDTO struct {
	Ubicacion    string          `json:"ubicacion"`
	CodArticulo  string          `json:"cod_articulo"`
	UM           string          `json:"um"`
	StockInicial decimal.Decimal `json:"stock_inicial"`
	Flujo        decimal.Decimal `json:"flujo"`
	StockFinal   decimal.Decimal `json:"stock_final"`
	Check        string          `json:"check"`
	Observacion  string          `json:"observacion"`
}

// ToFilaRastreroDTO convierte una fila de dominio.
func ToFilaRastreroDTO(f entity.FilaRastrero) FilaRastreroDTO {
	return FilaRastreroDTO{
		Ubicacion:    f.Ubicacion,
		CodArticulo:  f.CodArticulo,
		UM:           f.UM,
		StockInicial: f.StockInicial,
		Flujo:        f.Flujo,
		StockFinal:   f.StockFinal,
		Check:        f.Check,
		Observacion:  f.Observacion,
	}
}

// ToFilasRastreroDTO convierte una tabla completa.
func ToFilasRastreroDTO(filas []entity.FilaRastrero) []FilaRastreroDTO {
	out := make([]FilaRastreroDTO, 0, len(filas))
	for _, f := range filas {
		out = append(out, ToFilaRastreroDTO(f))
	}
	return out
}

// FacetasResponse opciones disponibles y selección vigente de los ingresos.
type FacetasResponse struct {
	Categorias []string         `json:"categorias"`
	Glosas     []string         `json:"glosas"`
	Lotes      []string         `json:"lotes"`
	Seleccion  SeleccionFacetas `json:"seleccion"`
}

// SeleccionFacetas selección de facetas en cascada categoría → glosa → lote.
type SeleccionFacetas struct {
	Categorias []string `json:"categorias"`
	Glosas     []string `json:"glosas"`
	Lotes      []string `json:"lotes"`
}

// ToSeleccionApp convierte la selección del transporte al tipo del núcleo.
func (s SeleccionFacetas) ToSeleccionApp() rastrero.SeleccionFacetas {
	return rastrero.SeleccionFacetas{
		Categorias: s.Categorias,
		Glosas:     s.Glosas,
		Lotes:      s.Lotes,
	}
}

// FromSeleccionApp convierte la selección del núcleo al transporte.
func FromSeleccionApp(s rastrero.SeleccionFacetas) SeleccionFacetas {
	return SeleccionFacetas{
		Categorias: s.Categorias,
		Glosas:     s.Glosas,
		Lotes:      s.Lotes,
	}
}

// GenerarRequest parámetros para generar un rastrero.
type GenerarRequest struct {
	Fecha string `json:"fecha"` // DD/MM/YYYY; vacío = hoy
}

// RastreroIngresoResponse previsualización del rastrero de ingresos.
type RastreroIngresoResponse struct {
	Alto  []FilaRastreroDTO `json:"nivel_alto"`
	Bajo  []FilaRastreroDTO `json:"nivel_bajo"`
	Lotes []string          `json:"lotes"`
}

// ZonaDTO tabla de una zona del rastrero de salidas.
type ZonaDTO struct {
	Zona  string            `json:"zona"`
	Filas []FilaRastreroDTO `json:"filas"`
}

// RastreroSalidaResponse previsualización del rastrero de salidas.
type RastreroSalidaResponse struct {
	Zonas    []ZonaDTO `json:"zonas"`
	Pickings []string  `json:"pickings"`
}

// SeleccionPickingsRequest filtro de pickings para salidas.
type SeleccionPickingsRequest struct {
	Pickings []string `json:"pickings"`
}

// ResumenPickingDTO fila de la tabla T_Picking.
type ResumenPickingDTO struct {
	NroPicking string          `json:"nro_picking"`
	CantUMS    decimal.Decimal `json:"cant_ums"`
	Cajas      decimal.Decimal `json:"cajas"`
}

// ResumenClienteDTO fila de la tabla T_Clientes.
type ResumenClienteDTO struct {
	NroPicking string          `json:"nro_picking"`
	Cliente    string          `json:"cliente"`
	CantUMS    decimal.Decimal `json:"cant_ums"`
	Cajas      decimal.Decimal `json:"cajas"`
}

// ResumenesResponse resúmenes de salidas tras aplicar el filtro de pickings.
type ResumenesResponse struct {
	Pickings  []string            `json:"pickings"`
	TPicking  []ResumenPickingDTO `json:"t_picking"`
	TClientes []ResumenClienteDTO `json:"t_clientes"`
}
