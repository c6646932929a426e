package entity

import "github.com/shopspring/decimal"

// RegistroStock una fila del snapshot de stock ya normalizada y convertida.
// Concat (ubicación‖artículo) identifica el grupo tras la agregación.
type RegistroStock struct {
	Concat      string
	Ubicacion   string
	CodArticulo string
	Factor      decimal.Decimal // cajas por huella, >= 1
	UM          string          // UMCaja
	Nivel       Nivel
	Lote        string // lote proveedor, normalizado
	CantUMS     decimal.Decimal
	Cajas       decimal.Decimal // CantUMS / Factor
}
