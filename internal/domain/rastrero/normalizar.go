// Package rastrero contiene la lógica pura de reconciliación: normalización
// de cabeceras, conversión de huella a factor de cajas y clasificación de
// ubicaciones por pasillo y nivel.
package rastrero

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Los reportes WMS llegan con cabeceras acentuadas de forma inconsistente
// ("Ubicación" / "Ubicacion"). Se descompone NFD y se eliminan las marcas
// diacríticas y cualquier byte no ASCII restante antes de indexar columnas.
var transformadorASCII = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))

// NormalizarTexto elimina diacríticos y bytes no ASCII y recorta espacios.
// Es idempotente: normalizar un valor ya normalizado lo devuelve igual.
func NormalizarTexto(s string) string {
	limpio, _, err := transform.String(transformadorASCII, s)
	if err != nil {
		limpio = s
	}
	var b strings.Builder
	b.Grow(len(limpio))
	for _, r := range limpio {
		if r < 128 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// NormalizarCabeceras normaliza una fila de cabeceras preservando orden y
// posición 1:1.
func NormalizarCabeceras(cabeceras []string) []string {
	out := make([]string, len(cabeceras))
	for i, c := range cabeceras {
		out[i] = NormalizarTexto(c)
	}
	return out
}

var espacios = regexp.MustCompile(`\s+`)

// LimpiarLote quita todo el espacio en blanco de un código de lote,
// incluido el espacio duro U+00A0 que arrastran los exports del WMS.
func LimpiarLote(lote string) string {
	s := strings.ReplaceAll(lote, "\u00A0", "")
	s = espacios.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

var noNumerico = regexp.MustCompile(`[^0-9,.\-]`)

// LimpiarNumero interpreta una cantidad en formato latino: punto como
// separador de miles y coma decimal. Un valor imparseable vale 0 y el
// procesamiento continúa (los reportes traen celdas con texto residual).
func LimpiarNumero(valor string) decimal.Decimal {
	s := noNumerico.ReplaceAllString(valor, "")
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// ClaveCompuesta concatena ubicación y artículo; es la clave de agregación
// y de join entre movimientos, pickings y stock.
func ClaveCompuesta(ubicacion, codArticulo string) string {
	return ubicacion + codArticulo
}
