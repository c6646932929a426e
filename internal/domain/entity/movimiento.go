package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías de movimiento derivadas del motivo WMS.
type CategoriaMovimiento string

const (
	CategoriaAlmacenamiento CategoriaMovimiento = "ALMACENAMIENTO"
	CategoriaMovInterno     CategoriaMovimiento = "MOVIMIENTO INTERNO"
	CategoriaCambioEstado   CategoriaMovimiento = "CAMBIO DE ESTADO"
	CategoriaSinClasificar  CategoriaMovimiento = ""
)

// MovimientoIngreso una fila del reporte de flujo de ingresos / movimientos
// internos. Vive solo durante la generación del reporte, nunca se persiste.
type MovimientoIngreso struct {
	Referencia       string
	Motivo           string
	Glosa            string
	UbicacionOrigen  string
	UbicacionDestino string
	CodArticulo      string
	CantDestino      decimal.Decimal
	UMOrigen         string
	Lote             string // lote proveedor destino, normalizado
	Fecha            time.Time
	Categoria        CategoriaMovimiento
	Concat           string // destino‖artículo
}
