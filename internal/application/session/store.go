// Package session mantiene el estado por sesión de usuario: los archivos
// subidos, las selecciones de filtros y los resultados generados. Sustituye
// al estado global mutable de la versión original por un objeto explícito
// que la capa HTTP pasa a cada etapa del pipeline.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
)

// Estado todo lo que una sesión acumula entre acciones. Cada acción del
// usuario corre su pasada de pipeline de forma síncrona, así que dentro de
// una sesión no hay mutación concurrente; el mutex protege contra clientes
// que disparan peticiones en paralelo sobre la misma sesión.
type Estado struct {
	mu sync.Mutex

	// Módulo ingresos
	Movimientos []entity.MovimientoIngreso
	StockIn     []entity.RegistroStock
	PlantillaIn []byte
	SeleccionIn rastrero.SeleccionFacetas
	RastreroIn  *rastrero.TablaIngreso
	FechaIn     time.Time // fecha elegida al generar

	// Módulo salidas
	Pickings        []entity.RegistroPicking
	StockOut        []entity.RegistroStock
	PlantillaOut    []byte
	SeleccionPick   []string
	ResumenPickings []entity.ResumenPicking
	ResumenClientes []entity.ResumenCliente
	RastreroOut     *rastrero.TablaSalida
	FechaOut        time.Time
}

// Bloquear serializa las acciones de la sesión; devuelve la función de
// liberación para usar con defer.
func (e *Estado) Bloquear() func() {
	e.mu.Lock()
	return e.mu.Unlock
}

// Store almacén de sesiones del proceso, indexado por identificador.
// Las sesiones se crean vacías en el primer acceso y nunca se destruyen
// explícitamente: viven lo que vive el proceso, igual que en el original.
type Store struct {
	mu       sync.RWMutex
	sesiones map[string]*Estado
}

// NewStore crea el almacén.
func NewStore() *Store {
	return &Store{sesiones: make(map[string]*Estado)}
}

// NuevoID genera un identificador de sesión.
func (s *Store) NuevoID() string {
	return uuid.New().String()
}

// Obtener devuelve la sesión, creándola si no existe.
func (s *Store) Obtener(id string) *Estado {
	s.mu.RLock()
	est, ok := s.sesiones[id]
	s.mu.RUnlock()
	if ok {
		return est
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if est, ok := s.sesiones[id]; ok {
		return est
	}
	est = &Estado{}
	s.sesiones[id] = est
	return est
}

// Cantidad número de sesiones vivas (para logs y diagnóstico).
func (s *Store) Cantidad() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sesiones)
}
