package excel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pjlt/rastrero-api/internal/infrastructure/excel"
)

// libroDePrueba arma un xlsx en memoria con una sola hoja.
func libroDePrueba(t *testing.T, filas [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	hoja := f.GetSheetName(0)
	for i, fila := range filas {
		celda, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(hoja, celda, &fila))
	}

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

// TestLeerTabla: la primera fila es cabecera y se normaliza; el resto son
// datos accesibles por nombre de columna.
func TestLeerTabla(t *testing.T) {
	datos := libroDePrueba(t, [][]interface{}{
		{" Ubicación ", "Cod. Artículo", "Cant. Final UMS"},
		{"B4.RE.C06.A01", "ART-01", 360},
		{"B4.RE.C09.A05", "ART-02", 24},
	})

	tabla, err := excel.LeerTabla(datos)
	require.NoError(t, err)

	assert.Equal(t, []string{"Ubicacion", "Cod. Articulo", "Cant. Final UMS"}, tabla.Cabeceras)
	require.Len(t, tabla.Filas, 2)
	assert.Equal(t, "ART-01", tabla.Valor(tabla.Filas[0], "Cod. Articulo"))
	assert.Equal(t, "360", tabla.Valor(tabla.Filas[0], "Cant. Final UMS"))
}

// TestLeerTabla_FilaCorta: excelize recorta celdas vacías al final; la
// tabla responde "" en lugar de fallar.
func TestLeerTabla_FilaCorta(t *testing.T) {
	datos := libroDePrueba(t, [][]interface{}{
		{"Ubicacion", "Cod. Articulo", "Huella"},
		{"B4.RE.C06.A01"},
	})

	tabla, err := excel.LeerTabla(datos)
	require.NoError(t, err)
	require.Len(t, tabla.Filas, 1)
	assert.Equal(t, "", tabla.Valor(tabla.Filas[0], "Huella"))
}

// TestLeerTabla_LibroCorrupto: bytes arbitrarios devuelven error, no pánico.
func TestLeerTabla_LibroCorrupto(t *testing.T) {
	_, err := excel.LeerTabla([]byte("esto no es un xlsx"))
	assert.Error(t, err)
}

// TestLeerTabla_HojaVacia: un libro sin filas produce una tabla vacía.
func TestLeerTabla_HojaVacia(t *testing.T) {
	tabla, err := excel.LeerTabla(libroDePrueba(t, nil))
	require.NoError(t, err)
	assert.Empty(t, tabla.Cabeceras)
	assert.Empty(t, tabla.Filas)
}
