package rastrero

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// La huella de empaque codifica las unidades por caja como C<n>U dentro de
// texto libre, p. ej. "PALCS36U" -> 36 o "PALC4.5U" -> 4.5.
var patronHuella = regexp.MustCompile(`C(\d+(?:\.\d+)?)U`)

// FactorHuella extrae el factor de conversión unidades→cajas de una huella.
// Sin coincidencia, o con un valor no positivo, el factor es 1: nunca se
// divide por cero ni por negativo.
func FactorHuella(huella string) decimal.Decimal {
	m := patronHuella.FindStringSubmatch(huella)
	if m == nil {
		return decimal.NewFromInt(1)
	}
	f, err := decimal.NewFromString(m[1])
	if err != nil || !f.IsPositive() {
		return decimal.NewFromInt(1)
	}
	return f
}

// Cajas convierte unidades a cajas con el factor dado. Un factor no
// positivo se corrige a 1 antes de dividir.
func Cajas(unidades, factor decimal.Decimal) decimal.Decimal {
	if !factor.IsPositive() {
		factor = decimal.NewFromInt(1)
	}
	return unidades.Div(factor)
}
