package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidInput = errors.New("entrada inválida")
	ErrSesionVacia  = errors.New("la sesión no tiene los archivos necesarios")
	ErrSinSeleccion = errors.New("no hay lotes ni pickings seleccionados")
	ErrArchivoVacio = errors.New("el archivo no contiene filas de datos")
)

// ErrorEsquema indica que faltan columnas requeridas en un archivo subido
// o hojas requeridas en la plantilla. Es fatal para la acción en curso.
type ErrorEsquema struct {
	Recurso   string   // "movimientos", "picking", "stock", "plantilla"
	Faltantes []string // nombres de columnas u hojas ausentes
}

func (e *ErrorEsquema) Error() string {
	return fmt.Sprintf("esquema inválido en %s: faltan %s",
		e.Recurso, strings.Join(e.Faltantes, ", "))
}

// ErrorPrefijoArchivo indica que el archivo subido no corresponde al slot:
// el nombre no empieza con el prefijo del reporte WMS esperado.
// Se reporta como advertencia; el usuario debe volver a subir.
type ErrorPrefijoArchivo struct {
	Esperados []string
	Nombre    string
}

func (e *ErrorPrefijoArchivo) Error() string {
	return fmt.Sprintf("archivo %q no corresponde: se espera un reporte %s",
		e.Nombre, strings.Join(e.Esperados, " o "))
}

// EsErrorEsquema extrae un *ErrorEsquema de la cadena de errores.
func EsErrorEsquema(err error) (*ErrorEsquema, bool) {
	var ee *ErrorEsquema
	if errors.As(err, &ee) {
		return ee, true
	}
	return nil, false
}

// EsErrorPrefijo extrae un *ErrorPrefijoArchivo de la cadena de errores.
func EsErrorPrefijo(err error) (*ErrorPrefijoArchivo, bool) {
	var ep *ErrorPrefijoArchivo
	if errors.As(err, &ep) {
		return ep, true
	}
	return nil, false
}
