package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// Geometría fija de la plantilla: los datos se pegan desde B13, la fecha
// va en I1 y el listado de lotes o pickings baja por la columna L.
const (
	filaAncla      = 13
	columnaAncla   = 2  // B
	columnaListado = 12 // L
	celdaFecha     = "I1"
	formatoFecha   = "02/01/2006"
)

// ExportadorPlantilla implementación excelize del puerto de exportación.
type ExportadorPlantilla struct{}

// NewExportadorPlantilla construye el exportador.
func NewExportadorPlantilla() *ExportadorPlantilla {
	return &ExportadorPlantilla{}
}

var _ rastrero.ExportadorPlantilla = (*ExportadorPlantilla)(nil)

// Exportar escribe cada tabla en su hoja de la plantilla, estampa la fecha
// y el listado de la columna L, recorta las filas sobrantes de la plantilla
// y fija el área de impresión. Si falta alguna hoja requerida aborta con el
// listado completo de ausentes.
func (e *ExportadorPlantilla) Exportar(plantilla []byte, exporte rastrero.Exporte) ([]byte, error) {
	f, err := excelize.OpenReader(bytes.NewReader(plantilla))
	if err != nil {
		return nil, fmt.Errorf("abrir plantilla: %w", err)
	}
	defer f.Close()

	var faltantes []string
	for _, hoja := range exporte.Hojas {
		if idx, _ := f.GetSheetIndex(hoja.Hoja); idx < 0 {
			faltantes = append(faltantes, hoja.Hoja)
		}
	}
	if len(faltantes) > 0 {
		return nil, &domain.ErrorEsquema{Recurso: "plantilla", Faltantes: faltantes}
	}

	for _, hoja := range exporte.Hojas {
		if err := e.escribirHoja(f, hoja, exporte); err != nil {
			return nil, fmt.Errorf("hoja %q: %w", hoja.Hoja, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("guardar libro: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExportadorPlantilla) escribirHoja(f *excelize.File, hoja rastrero.HojaExporte, exporte rastrero.Exporte) error {
	for i, fila := range hoja.Filas {
		if err := e.escribirFila(f, hoja.Hoja, filaAncla+i, fila); err != nil {
			return err
		}
	}

	if err := f.SetCellValue(hoja.Hoja, celdaFecha, exporte.Fecha.Format(formatoFecha)); err != nil {
		return err
	}

	for i, valor := range exporte.ListadoL {
		celda, err := excelize.CoordinatesToCellName(columnaListado, i+1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(hoja.Hoja, celda, valor); err != nil {
			return err
		}
	}

	// Recortar las filas de la plantilla que quedaron sin datos.
	ultimaFila := filaAncla - 1 + len(hoja.Filas)
	filas, err := f.GetRows(hoja.Hoja)
	if err != nil {
		return err
	}
	for r := len(filas); r > ultimaFila; r-- {
		if err := f.RemoveRow(hoja.Hoja, r); err != nil {
			return err
		}
	}

	// Área de impresión B1:I<última fila con datos>.
	area := fmt.Sprintf("'%s'!$B$1:$I$%d", hoja.Hoja, ultimaFila)
	_ = f.DeleteDefinedName(&excelize.DefinedName{Name: "_xlnm.Print_Area", Scope: hoja.Hoja})
	return f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: area,
		Scope:    hoja.Hoja,
	})
}

// escribirFila pega una fila reconciliada desde la columna B, en el orden
// fijo de la plantilla: ubicación, artículo, UM, stock inicial, flujo,
// stock final, check y observación.
func (e *ExportadorPlantilla) escribirFila(f *excelize.File, hoja string, numFila int, fila entity.FilaRastrero) error {
	valores := []interface{}{
		fila.Ubicacion,
		fila.CodArticulo,
		fila.UM,
		fila.StockInicial.InexactFloat64(),
		fila.Flujo.InexactFloat64(),
		fila.StockFinal.InexactFloat64(),
		fila.Check,
		fila.Observacion,
	}
	for j, v := range valores {
		celda, err := excelize.CoordinatesToCellName(columnaAncla+j, numFila)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(hoja, celda, v); err != nil {
			return err
		}
	}
	return nil
}
