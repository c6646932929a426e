package rastrero

import (
	"fmt"
	"time"

	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// HojaExporte una tabla reconciliada con la hoja de plantilla destino.
type HojaExporte struct {
	Hoja  string
	Filas []entity.FilaRastrero
}

// Exporte todo lo que el exportador necesita para rellenar la plantilla:
// las hojas con sus filas, la fecha del reporte (celda I1) y el listado de
// lotes o pickings que baja por la columna L.
type Exporte struct {
	Fecha    time.Time
	Hojas    []HojaExporte
	ListadoL []string
}

// LectorTablas abre un libro subido y devuelve su primera hoja como tabla
// con cabeceras ya normalizadas. Implementado en infraestructura (excelize).
type LectorTablas interface {
	Leer(datos []byte) (*Tabla, error)
}

// ExportadorPlantilla escribe las tablas reconciliadas dentro de la
// plantilla subida y devuelve el libro resultante. Implementado en
// infraestructura (excelize); el núcleo solo conoce este contrato.
type ExportadorPlantilla interface {
	Exportar(plantilla []byte, exporte Exporte) ([]byte, error)
}

// Nombres de hoja de la plantilla de ingresos.
const (
	HojaNivelAlto = "R_Nivel_Alto"
	HojaNivelBajo = "R_Nivel_Bajo"
)

// NombreArchivo compone el nombre del libro generado, p. ej.
// FORMATO_RASTRERO_SALIDAS_02.01.2006.xlsx.
func NombreArchivo(modulo string, fecha time.Time) string {
	return fmt.Sprintf("FORMATO_RASTRERO_%s_%s.xlsx", modulo, fecha.Format("02.01.2006"))
}

// HojasIngreso arma las hojas del exporte de ingresos en el orden fijo de
// la plantilla.
func HojasIngreso(t *TablaIngreso) []HojaExporte {
	return []HojaExporte{
		{Hoja: HojaNivelAlto, Filas: t.Alto},
		{Hoja: HojaNivelBajo, Filas: t.Bajo},
	}
}

// HojasSalida arma una hoja por zona generada.
func HojasSalida(t *TablaSalida) []HojaExporte {
	hojas := make([]HojaExporte, 0, len(t.Zonas))
	for _, z := range t.Zonas {
		hojas = append(hojas, HojaExporte{Hoja: z.Zona, Filas: z.Filas})
	}
	return hojas
}
