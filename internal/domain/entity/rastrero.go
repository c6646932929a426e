package entity

import "github.com/shopspring/decimal"

// Unidad de medida del rastrero: todo se expresa en cajas.
const UMCaja = "CAJ"

// ObservacionRegu marca una fila de ingresos cuya cantidad supera el stock
// final disponible y requiere regularización manual.
const ObservacionRegu = "Regu"

// Nivel clasificación de altura de la ubicación (rack alto o bajo).
type Nivel string

const (
	NivelAlto        Nivel = "ALTO"
	NivelBajo        Nivel = "BAJO"
	NivelDesconocido Nivel = ""
)

// Codigo devuelve la forma corta usada en las zonas de salidas ("A"/"B").
func (n Nivel) Codigo() string {
	switch n {
	case NivelAlto:
		return "A"
	case NivelBajo:
		return "B"
	default:
		return ""
	}
}

// Nombre devuelve la forma larga usada en stock e ingresos ("ALTO"/"BAJO").
func (n Nivel) Nombre() string {
	return string(n)
}

// Pasillo clasificación estructural de la ubicación dentro de la nave.
type Pasillo string

const (
	Pasillo1     Pasillo = "Pasillo_1"
	Pasillo2     Pasillo = "Pasillo_2"
	Pasillo3     Pasillo = "Pasillo_3"
	PasilloLibre Pasillo = "Libre"
)

// Zona compone el identificador de zona (hoja de la plantilla de salidas),
// p. ej. "Pasillo_1_B". Devuelve "" si la combinación no es exportable.
func Zona(p Pasillo, n Nivel) string {
	if p == PasilloLibre || p == "" || n == NivelDesconocido {
		return ""
	}
	return string(p) + "_" + n.Codigo()
}

// FilaRastrero una fila reconciliada del reporte final, en cajas.
// Invariante ingresos: StockInicial + Flujo == StockFinal salvo Observacion == "Regu".
// Invariante salidas:  StockInicial - Flujo == StockFinal, siempre.
type FilaRastrero struct {
	Ubicacion    string
	CodArticulo  string
	UM           string // siempre UMCaja
	StockInicial decimal.Decimal
	Flujo        decimal.Decimal // cantidad ingresada o pickeada
	StockFinal   decimal.Decimal
	Check        string // editable por el usuario, vacío por defecto
	Observacion  string // "" o ObservacionRegu
	Nivel        Nivel
}
