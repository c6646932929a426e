package entity

import "github.com/shopspring/decimal"

// RegistroPicking una fila del reporte de asignación de pickings (salidas).
type RegistroPicking struct {
	Estado         string
	NroPicking     string
	UsuarioPicking string
	Cliente        string // campo crudo, puede venir "codigo|nombre"
	ClienteExt     string // segundo segmento del campo Cliente, o el campo entero
	Ubicacion      string
	CodArticulo    string
	Articulo       string
	Huella         string
	CantUMS        decimal.Decimal // Cant. Pick. UMS
	Factor         decimal.Decimal
	Cajas          decimal.Decimal
	Concat         string // ubicación‖artículo
}

// ResumenPicking totales por número de picking (tabla T_Picking).
type ResumenPicking struct {
	NroPicking string
	CantUMS    decimal.Decimal
	Cajas      decimal.Decimal
}

// ResumenCliente totales por picking y cliente (tabla T_Clientes).
type ResumenCliente struct {
	NroPicking string
	Cliente    string
	CantUMS    decimal.Decimal
	Cajas      decimal.Decimal
}
