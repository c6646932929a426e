package rastrero_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// TestFactorHuella_PatronExacto: toda huella con C<n>U devuelve exactamente n.
func TestFactorHuella_PatronExacto(t *testing.T) {
	casos := []struct {
		huella   string
		esperado string
	}{
		{"PALCS36U", "36"},
		{"C12U", "12"},
		{"PALC4.5U", "4.5"},
		{"XXC100UZZ", "100"},
	}
	for _, c := range casos {
		assert.True(t, rastrero.FactorHuella(c.huella).Equal(decimal.RequireFromString(c.esperado)),
			"huella %q debe dar factor %s", c.huella, c.esperado)
	}
}

// TestFactorHuella_SinPatronEsUno: sin coincidencia el factor por defecto es 1.
func TestFactorHuella_SinPatronEsUno(t *testing.T) {
	for _, h := range []string{"", "PALLET", "CU", "C-3U", "caja 36"} {
		assert.True(t, rastrero.FactorHuella(h).Equal(decimal.NewFromInt(1)), "huella %q", h)
	}
}

// TestFactorHuella_CeroNoDivide: un factor extraído no positivo se corrige
// a 1; nunca se divide por cero.
func TestFactorHuella_CeroNoDivide(t *testing.T) {
	assert.True(t, rastrero.FactorHuella("C0U").Equal(decimal.NewFromInt(1)))
}

// TestCajas_EscenarioReferencia: huella "PALCS36U" con 360 unidades son 10 cajas.
func TestCajas_EscenarioReferencia(t *testing.T) {
	factor := rastrero.FactorHuella("PALCS36U")
	cajas := rastrero.Cajas(decimal.NewFromInt(360), factor)
	assert.True(t, cajas.Equal(decimal.NewFromInt(10)), "360 unidades / factor 36 = 10 cajas, se obtuvo %s", cajas)
}

// TestCajas_FactorInvalido: un factor no positivo pasado directamente
// también se corrige antes de dividir.
func TestCajas_FactorInvalido(t *testing.T) {
	cajas := rastrero.Cajas(decimal.NewFromInt(7), decimal.Zero)
	assert.True(t, cajas.Equal(decimal.NewFromInt(7)))
}
