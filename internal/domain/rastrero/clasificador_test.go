package rastrero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// ──────────────────────────────────────────────────────────────────────────────
// CalcPasillo
// ──────────────────────────────────────────────────────────────────────────────

// TestCalcPasillo_CortaEsLibre: toda ubicación de menos de 11 caracteres
// cae en Libre, sin excepción.
func TestCalcPasillo_CortaEsLibre(t *testing.T) {
	for _, u := range []string{"", "B4", "B4.RE.C06", "0123456789"} {
		assert.Equal(t, entity.PasilloLibre, rastrero.CalcPasillo(u), "ubicación %q", u)
	}
}

// TestCalcPasillo_MediaRampa: MR en la modalidad [3:5] manda sobre el tramo.
func TestCalcPasillo_MediaRampa(t *testing.T) {
	assert.Equal(t, entity.Pasillo1, rastrero.CalcPasillo("B4.MR.C06.001"))
	assert.Equal(t, entity.Pasillo1, rastrero.CalcPasillo("B4.MR.C11.002"), "MR gana aunque el tramo sea de otro pasillo")
}

// TestCalcPasillo_PorTramo: el tramo [8:11] decide el pasillo.
func TestCalcPasillo_PorTramo(t *testing.T) {
	porTramo := []struct {
		tramo    string
		esperado entity.Pasillo
	}{
		{"C06", entity.Pasillo1},
		{"C07", entity.Pasillo1},
		{"C08", entity.Pasillo1},
		{"C09", entity.Pasillo2},
		{"C10", entity.Pasillo2},
		{"C11", entity.Pasillo3},
		{"C12", entity.Pasillo3},
		{"C13", entity.PasilloLibre},
	}
	for _, c := range porTramo {
		u := "B4.RE.AA."[:8] + c.tramo + ".A01" // tramo en offset [8:11]
		assert.Equal(t, c.esperado, rastrero.CalcPasillo(u), "ubicación %q", u)
	}
}

// TestCalcPasillo_EscenarioReserva: "B4.RE.C06.A01" tiene RE (no MR) en la
// modalidad y tramo C06, por lo que clasifica en Pasillo_1.
func TestCalcPasillo_EscenarioReserva(t *testing.T) {
	assert.Equal(t, entity.Pasillo1, rastrero.CalcPasillo("B4.RE.C06.A01"))
}

// ──────────────────────────────────────────────────────────────────────────────
// CalcNivel
// ──────────────────────────────────────────────────────────────────────────────

// TestCalcNivel_Total: nunca falla y siempre devuelve uno de los niveles
// definidos o el centinela Desconocido.
func TestCalcNivel_Total(t *testing.T) {
	for _, u := range []string{"", "A", "B4.MR", "B4.RE.C06.A01", "XYZ", "   ", "B4.RE.C06.A0#"} {
		n := rastrero.CalcNivel(u)
		assert.Contains(t, []entity.Nivel{entity.NivelAlto, entity.NivelBajo, entity.NivelDesconocido}, n,
			"ubicación %q", u)
	}
}

// TestCalcNivel_MediaRampaEsBaja: MR en [4:6] es nivel bajo aunque el
// último carácter diga otra cosa.
func TestCalcNivel_MediaRampaEsBaja(t *testing.T) {
	assert.Equal(t, entity.NivelBajo, rastrero.CalcNivel("B4.5MR.C06.009"))
}

// TestCalcNivel_UltimoDigito: dígito final menor que 3 es bajo, 3 o más es
// alto; sin dígito final queda Desconocido.
func TestCalcNivel_UltimoDigito(t *testing.T) {
	assert.Equal(t, entity.NivelBajo, rastrero.CalcNivel("B4.RE.C06.A00"))
	assert.Equal(t, entity.NivelBajo, rastrero.CalcNivel("B4.RE.C06.A01"))
	assert.Equal(t, entity.NivelBajo, rastrero.CalcNivel("B4.RE.C06.A02"))
	assert.Equal(t, entity.NivelAlto, rastrero.CalcNivel("B4.RE.C06.A03"))
	assert.Equal(t, entity.NivelAlto, rastrero.CalcNivel("B4.RE.C06.A09"))
	assert.Equal(t, entity.NivelDesconocido, rastrero.CalcNivel("B4.RE.C06.A0X"))
}

// TestNivelConAltoPorDefecto: el fallback histórico de stock y salidas
// trata las ubicaciones sin dígito final como nivel alto.
func TestNivelConAltoPorDefecto(t *testing.T) {
	assert.Equal(t, entity.NivelAlto, rastrero.NivelConAltoPorDefecto("B4.RE.C06.A0X"))
	assert.Equal(t, entity.NivelBajo, rastrero.NivelConAltoPorDefecto("B4.RE.C06.A01"))
}

// TestZona_Composicion valida el identificador compuesto y el escenario de
// referencia: "B4.RE.C06.A01" → Pasillo_1 nivel B → zona "Pasillo_1_B".
func TestZona_Composicion(t *testing.T) {
	u := "B4.RE.C06.A01"
	pasillo := rastrero.CalcPasillo(u)
	nivel := rastrero.NivelConAltoPorDefecto(u)
	assert.Equal(t, "Pasillo_1_B", entity.Zona(pasillo, nivel))

	assert.Equal(t, "", entity.Zona(entity.PasilloLibre, entity.NivelBajo), "Libre no forma zona")
	assert.Equal(t, "", entity.Zona(entity.Pasillo2, entity.NivelDesconocido), "sin nivel no hay zona")
}
