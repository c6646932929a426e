package excel_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/internal/infrastructure/excel"
)

// plantillaDePrueba arma una plantilla mínima: las hojas pedidas, un título
// en B1 y filas de relleno bajo el ancla que el exportador debe recortar.
func plantillaDePrueba(t *testing.T, hojas ...string) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	for _, hoja := range hojas {
		_, err := f.NewSheet(hoja)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(hoja, "B1", "FORMATO DE RASTRERO"))
		// Relleno bajo el ancla, simula el rayado sobrante de la plantilla.
		for fila := 13; fila <= 20; fila++ {
			celda, err := excelize.CoordinatesToCellName(2, fila)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(hoja, celda, "rayado"))
		}
	}
	require.NoError(t, f.DeleteSheet(f.GetSheetName(0)))

	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func filaReconciliada(ubic, art string, inicial, flujo, final int64) entity.FilaRastrero {
	return entity.FilaRastrero{
		Ubicacion:    ubic,
		CodArticulo:  art,
		UM:           entity.UMCaja,
		StockInicial: decimal.NewFromInt(inicial),
		Flujo:        decimal.NewFromInt(flujo),
		StockFinal:   decimal.NewFromInt(final),
	}
}

// TestExportar_EscribeDesdeAncla: las filas se pegan desde B13 en el orden
// fijo de columnas, la fecha queda en I1 y el listado baja por la columna L.
func TestExportar_EscribeDesdeAncla(t *testing.T) {
	plantilla := plantillaDePrueba(t, rastrero.HojaNivelAlto, rastrero.HojaNivelBajo)
	fecha := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)

	salida, err := excel.NewExportadorPlantilla().Exportar(plantilla, rastrero.Exporte{
		Fecha: fecha,
		Hojas: []rastrero.HojaExporte{
			{Hoja: rastrero.HojaNivelAlto, Filas: []entity.FilaRastrero{
				filaReconciliada("B4.RE.C06.A05", "ART-01", 50, 30, 80),
			}},
			{Hoja: rastrero.HojaNivelBajo, Filas: nil},
		},
		ListadoL: []string{"L1", "L2"},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(salida))
	require.NoError(t, err)
	defer f.Close()

	leer := func(celda string) string {
		v, err := f.GetCellValue(rastrero.HojaNivelAlto, celda)
		require.NoError(t, err)
		return v
	}
	assert.Equal(t, "B4.RE.C06.A05", leer("B13"))
	assert.Equal(t, "ART-01", leer("C13"))
	assert.Equal(t, string(entity.UMCaja), leer("D13"))
	assert.Equal(t, "50", leer("E13"))
	assert.Equal(t, "30", leer("F13"))
	assert.Equal(t, "80", leer("G13"))
	assert.Equal(t, "15/08/2026", leer("I1"))
	assert.Equal(t, "L1", leer("L1"))
	assert.Equal(t, "L2", leer("L2"))
}

// TestExportar_RecortaSobrante: el rayado de la plantilla bajo la última
// fila con datos desaparece del libro generado.
func TestExportar_RecortaSobrante(t *testing.T) {
	plantilla := plantillaDePrueba(t, rastrero.HojaNivelAlto, rastrero.HojaNivelBajo)

	salida, err := excel.NewExportadorPlantilla().Exportar(plantilla, rastrero.Exporte{
		Fecha: time.Now(),
		Hojas: []rastrero.HojaExporte{
			{Hoja: rastrero.HojaNivelAlto, Filas: []entity.FilaRastrero{
				filaReconciliada("B4.RE.C06.A01", "ART-01", 10, 2, 8),
				filaReconciliada("B4.RE.C06.A02", "ART-02", 5, 1, 4),
			}},
			{Hoja: rastrero.HojaNivelBajo, Filas: nil},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(salida))
	require.NoError(t, err)
	defer f.Close()

	filas, err := f.GetRows(rastrero.HojaNivelAlto)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(filas), 14, "solo quedan el encabezado y las dos filas de datos")

	v, err := f.GetCellValue(rastrero.HojaNivelAlto, "B15")
	require.NoError(t, err)
	assert.NotEqual(t, "rayado", v)
}

// TestExportar_AreaDeImpresion: cada hoja queda con su área de impresión
// B1:I<última fila con datos>, definida con ámbito local de hoja.
func TestExportar_AreaDeImpresion(t *testing.T) {
	plantilla := plantillaDePrueba(t, rastrero.HojaNivelAlto, rastrero.HojaNivelBajo)

	salida, err := excel.NewExportadorPlantilla().Exportar(plantilla, rastrero.Exporte{
		Fecha: time.Now(),
		Hojas: []rastrero.HojaExporte{
			{Hoja: rastrero.HojaNivelAlto, Filas: []entity.FilaRastrero{
				filaReconciliada("B4.RE.C06.A01", "ART-01", 10, 2, 8),
				filaReconciliada("B4.RE.C06.A02", "ART-02", 5, 1, 4),
			}},
			{Hoja: rastrero.HojaNivelBajo, Filas: nil},
		},
	})
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(salida))
	require.NoError(t, err)
	defer f.Close()

	areas := make(map[string]string)
	for _, dn := range f.GetDefinedName() {
		if dn.Name == "_xlnm.Print_Area" {
			areas[dn.Scope] = dn.RefersTo
		}
	}
	assert.Equal(t, "'R_Nivel_Alto'!$B$1:$I$14", areas[rastrero.HojaNivelAlto],
		"dos filas de datos: el área llega hasta la fila 14")
	assert.Equal(t, "'R_Nivel_Bajo'!$B$1:$I$12", areas[rastrero.HojaNivelBajo],
		"sin datos: el área termina justo antes del ancla")
}

// TestExportar_PlantillaSinHojas: se reportan todas las hojas ausentes de
// una vez, con el mismo error tipado que los esquemas de columnas.
func TestExportar_PlantillaSinHojas(t *testing.T) {
	plantilla := plantillaDePrueba(t, "Otra_Hoja")

	_, err := excel.NewExportadorPlantilla().Exportar(plantilla, rastrero.Exporte{
		Fecha: time.Now(),
		Hojas: []rastrero.HojaExporte{
			{Hoja: rastrero.HojaNivelAlto},
			{Hoja: rastrero.HojaNivelBajo},
		},
	})

	var esq *domain.ErrorEsquema
	require.ErrorAs(t, err, &esq)
	assert.Equal(t, "plantilla", esq.Recurso)
	assert.Equal(t, []string{rastrero.HojaNivelAlto, rastrero.HojaNivelBajo}, esq.Faltantes)
}

// TestNombreArchivo: módulo y fecha con puntos, como lo espera operaciones.
func TestNombreArchivo(t *testing.T) {
	fecha := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "FORMATO_RASTRERO_INGRESOS_15.08.2026.xlsx", rastrero.NombreArchivo("INGRESOS", fecha))
	assert.Equal(t, "FORMATO_RASTRERO_SALIDAS_15.08.2026.xlsx", rastrero.NombreArchivo("SALIDAS", fecha))
}
