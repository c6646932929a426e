// Package excel implementa la lectura de los reportes WMS y la escritura
// de la plantilla de rastrero sobre excelize.
package excel

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	apprastrero "github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain/rastrero"
)

// Lector implementación excelize del puerto de lectura de tablas.
type Lector struct{}

// NewLector construye el lector.
func NewLector() *Lector {
	return &Lector{}
}

var _ apprastrero.LectorTablas = (*Lector)(nil)

// Leer implementa el puerto LectorTablas.
func (l *Lector) Leer(datos []byte) (*apprastrero.Tabla, error) {
	return LeerTabla(datos)
}

// LeerTabla carga la primera hoja de un libro xlsx ya leído en memoria.
// La primera fila es la cabecera y se normaliza (sin diacríticos, sin
// espacios exteriores); el resto son filas de datos.
func LeerTabla(datos []byte) (*apprastrero.Tabla, error) {
	f, err := excelize.OpenReader(bytes.NewReader(datos))
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %w", err)
	}
	defer f.Close()

	hojas := f.GetSheetList()
	if len(hojas) == 0 {
		return nil, fmt.Errorf("el libro no contiene hojas")
	}

	filas, err := f.GetRows(hojas[0])
	if err != nil {
		return nil, fmt.Errorf("leer hoja %q: %w", hojas[0], err)
	}
	if len(filas) == 0 {
		return apprastrero.NuevaTabla(nil, nil), nil
	}

	cabeceras := rastrero.NormalizarCabeceras(filas[0])
	return apprastrero.NuevaTabla(cabeceras, filas[1:]), nil
}
