package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pjlt/rastrero-api/internal/application/session"
)

// CabeceraSesion cabecera que identifica la sesión del cliente. Si no
// viene, el middleware acuña una y la devuelve en la respuesta para que el
// frontal la reutilice.
const CabeceraSesion = "X-Session-Id"

const localSesion = "sesion_id"

// SesionMiddleware resuelve el identificador de sesión de la petición.
func SesionMiddleware(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(CabeceraSesion)
		if id == "" {
			id = store.NuevoID()
		}
		c.Locals(localSesion, id)
		c.Set(CabeceraSesion, id)
		return c.Next()
	}
}

// GetSesionID devuelve el identificador de sesión resuelto por el middleware.
func GetSesionID(c *fiber.Ctx) string {
	if id, ok := c.Locals(localSesion).(string); ok {
		return id
	}
	return ""
}
