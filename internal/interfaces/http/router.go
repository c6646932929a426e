package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/application/session"
	"github.com/pjlt/rastrero-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Store          *session.Store
	PrepararStock  *rastrero.PrepararStockUseCase
	GenerarIngreso *rastrero.GenerarIngresoUseCase
	GenerarSalida  *rastrero.GenerarSalidaUseCase
	Lector         rastrero.LectorTablas
	Exportador     rastrero.ExportadorPlantilla
	Log            *logger.Logger
}

// Router registra las rutas de la API. Toda ruta del rastrero pasa por el
// middleware de sesión: sin autenticación, una sesión por cliente.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", SesionMiddleware(deps.Store))

	// Rastrero In
	ingresos := api.Group("/rastrero/ingresos")
	ingresoHandler := NewIngresoHandler(deps.Store, deps.PrepararStock, deps.GenerarIngreso, deps.Lector, deps.Exportador, deps.Log)
	ingresos.Post("/archivos/:tipo", ingresoHandler.SubirArchivo)
	ingresos.Get("/facetas", ingresoHandler.Facetas)
	ingresos.Put("/facetas", ingresoHandler.ActualizarFacetas)
	ingresos.Post("/generar", ingresoHandler.Generar)
	ingresos.Get("/descargar", ingresoHandler.Descargar)

	// Rastrero Out
	salidas := api.Group("/rastrero/salidas")
	salidaHandler := NewSalidaHandler(deps.Store, deps.PrepararStock, deps.GenerarSalida, deps.Lector, deps.Exportador, deps.Log)
	salidas.Post("/archivos/:tipo", salidaHandler.SubirArchivo)
	salidas.Get("/resumenes", salidaHandler.Resumenes)
	salidas.Put("/pickings", salidaHandler.ActualizarPickings)
	salidas.Post("/generar", salidaHandler.Generar)
	salidas.Get("/descargar", salidaHandler.Descargar)
}
