package rastrero

import (
	"strings"

	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// Clasificación posicional de ubicaciones. Una ubicación típica es
// "B4.RE.C06.A01": área [0:2], modalidad [3:5], tramo [8:11] y la altura
// codificada en el último carácter.

// CalcPasillo clasifica la ubicación en uno de los tres pasillos
// estructurales o en Libre. Total: nunca falla, entradas cortas o
// irreconocibles van a Libre.
func CalcPasillo(ubicacion string) entity.Pasillo {
	u := strings.TrimSpace(ubicacion)
	if len(u) < 11 {
		return entity.PasilloLibre
	}
	if u[3:5] == "MR" {
		return entity.Pasillo1
	}
	switch u[8:11] {
	case "C06", "C07", "C08":
		return entity.Pasillo1
	case "C09", "C10":
		return entity.Pasillo2
	case "C11", "C12":
		return entity.Pasillo3
	}
	return entity.PasilloLibre
}

// CalcNivel clasifica la altura de la ubicación. Las posiciones de
// media-rampa (MR en [4:6]) son siempre bajas; para el resto decide el
// último dígito: menor que 3 es bajo, 3 o más es alto. Si el último
// carácter no es un dígito devuelve NivelDesconocido y el llamador decide
// el tratamiento (el stock y las salidas lo tratan como alto, los ingresos
// descartan la fila).
func CalcNivel(ubicacion string) entity.Nivel {
	u := strings.TrimSpace(ubicacion)
	if u == "" {
		return entity.NivelDesconocido
	}
	if len(u) >= 6 && u[4:6] == "MR" {
		return entity.NivelBajo
	}
	ult := u[len(u)-1]
	if ult < '0' || ult > '9' {
		return entity.NivelDesconocido
	}
	if ult-'0' < 3 {
		return entity.NivelBajo
	}
	return entity.NivelAlto
}

// NivelConAltoPorDefecto aplica el fallback histórico de stock y salidas:
// una ubicación sin dígito final cuenta como nivel alto.
func NivelConAltoPorDefecto(ubicacion string) entity.Nivel {
	if n := CalcNivel(ubicacion); n != entity.NivelDesconocido {
		return n
	}
	return entity.NivelAlto
}
