package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// EstadoResponse mensaje de estado de una etapa del pipeline, espejo del
// banner de progreso del frontal: ok=false se pinta como advertencia.
type EstadoResponse struct {
	Ok      bool   `json:"ok"`
	Mensaje string `json:"mensaje"`
	Avance  int    `json:"avance"` // 0..100
}
