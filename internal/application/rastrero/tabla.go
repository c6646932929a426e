package rastrero

// Tabla una hoja tabular ya leída en memoria: cabeceras normalizadas (sin
// diacríticos ni espacios exteriores) y una fila por registro. El índice de
// columnas se resuelve por nombre normalizado.
type Tabla struct {
	Cabeceras []string
	Filas     [][]string

	indice map[string]int
}

// NuevaTabla construye la tabla e indexa las cabeceras. Ante cabeceras
// duplicadas gana la primera aparición, igual que en los reportes WMS.
func NuevaTabla(cabeceras []string, filas [][]string) *Tabla {
	idx := make(map[string]int, len(cabeceras))
	for i, c := range cabeceras {
		if _, ok := idx[c]; !ok {
			idx[c] = i
		}
	}
	return &Tabla{Cabeceras: cabeceras, Filas: filas, indice: idx}
}

// Faltantes devuelve las columnas requeridas que no están presentes.
func (t *Tabla) Faltantes(requeridas ...string) []string {
	var faltan []string
	for _, r := range requeridas {
		if _, ok := t.indice[r]; !ok {
			faltan = append(faltan, r)
		}
	}
	return faltan
}

// Tiene indica si la columna existe.
func (t *Tabla) Tiene(columna string) bool {
	_, ok := t.indice[columna]
	return ok
}

// Valor devuelve la celda de la columna en la fila dada, o "" si la fila es
// más corta que la cabecera (excelize recorta celdas vacías al final).
func (t *Tabla) Valor(fila []string, columna string) string {
	i, ok := t.indice[columna]
	if !ok || i >= len(fila) {
		return ""
	}
	return fila[i]
}
