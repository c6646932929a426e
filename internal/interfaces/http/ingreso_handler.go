package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/pjlt/rastrero-api/internal/application/dto"
	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/application/session"
	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/pkg/logger"
)

// IngresoHandler maneja el módulo Rastrero In: carga de archivos, facetas
// en cascada, generación y descarga.
type IngresoHandler struct {
	store      *session.Store
	prep       *rastrero.PrepararStockUseCase
	uc         *rastrero.GenerarIngresoUseCase
	lector     rastrero.LectorTablas
	exportador rastrero.ExportadorPlantilla
	log        *logger.Logger
}

// NewIngresoHandler construye el handler.
func NewIngresoHandler(
	store *session.Store,
	prep *rastrero.PrepararStockUseCase,
	uc *rastrero.GenerarIngresoUseCase,
	lector rastrero.LectorTablas,
	exportador rastrero.ExportadorPlantilla,
	log *logger.Logger,
) *IngresoHandler {
	return &IngresoHandler{store: store, prep: prep, uc: uc, lector: lector, exportador: exportador, log: log}
}

// SubirArchivo godoc
// @Summary      Subir un archivo del módulo de ingresos
// @Tags         ingresos
// @Accept       multipart/form-data
// @Produce      json
// @Param        tipo  path      string  true  "movimientos | stock | plantilla"
// @Param        file  formData  file    true  "libro xlsx"
// @Success      200   {object}  dto.EstadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/rastrero/ingresos/archivos/{tipo} [post]
func (h *IngresoHandler) SubirArchivo(c *fiber.Ctx) error {
	nombre, datos, err := leerArchivo(c)
	if err != nil {
		return responderError(c, err)
	}

	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	switch c.Params("tipo") {
	case "movimientos":
		if err := rastrero.ValidarNombreMovimientos(nombre); err != nil {
			return responderError(c, err)
		}
		tabla, err := h.lector.Leer(datos)
		if err != nil {
			return responderError(c, err)
		}
		movs, err := h.uc.ParsearMovimientos(tabla)
		if err != nil {
			return responderError(c, err)
		}
		est.Movimientos = movs
		est.SeleccionIn = rastrero.SeleccionFacetas{}
		est.RastreroIn = nil
		h.log.Info().Str("archivo", nombre).Int("filas", len(movs)).Msg("movimientos de ingreso cargados")
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Movimientos listos", Avance: 40})

	case "stock":
		tabla, err := h.lector.Leer(datos)
		if err != nil {
			return responderError(c, err)
		}
		stock, err := h.prep.Preparar(tabla)
		if err != nil {
			return responderError(c, err)
		}
		est.StockIn = stock
		est.RastreroIn = nil
		h.log.Info().Str("archivo", nombre).Int("grupos", len(stock)).Msg("stock de ingresos preparado")
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Stock listo", Avance: 60})

	case "plantilla":
		est.PlantillaIn = datos
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Plantilla cargada", Avance: 80})
	}

	return responderError(c, domain.ErrInvalidInput)
}

// Facetas godoc
// @Summary      Opciones de facetas en cascada (categoría → glosa → lote)
// @Tags         ingresos
// @Produce      json
// @Success      200  {object}  dto.FacetasResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rastrero/ingresos/facetas [get]
func (h *IngresoHandler) Facetas(c *fiber.Ctx) error {
	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if len(est.Movimientos) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}
	opciones, seleccion := rastrero.ResolverFacetas(h.uc.FiltrarSistema(est.Movimientos), est.SeleccionIn)
	est.SeleccionIn = seleccion

	return c.JSON(dto.FacetasResponse{
		Categorias: opciones.Categorias,
		Glosas:     opciones.Glosas,
		Lotes:      opciones.Lotes,
		Seleccion:  dto.FromSeleccionApp(seleccion),
	})
}

// ActualizarFacetas godoc
// @Summary      Fijar la selección de facetas
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SeleccionFacetas  true  "selección; listas vacías = todas"
// @Success      200   {object}  dto.FacetasResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rastrero/ingresos/facetas [put]
func (h *IngresoHandler) ActualizarFacetas(c *fiber.Ctx) error {
	var in dto.SeleccionFacetas
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if len(est.Movimientos) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}
	opciones, seleccion := rastrero.ResolverFacetas(h.uc.FiltrarSistema(est.Movimientos), in.ToSeleccionApp())
	est.SeleccionIn = seleccion

	return c.JSON(dto.FacetasResponse{
		Categorias: opciones.Categorias,
		Glosas:     opciones.Glosas,
		Lotes:      opciones.Lotes,
		Seleccion:  dto.FromSeleccionApp(seleccion),
	})
}

// Generar godoc
// @Summary      Generar el rastrero de ingresos
// @Tags         ingresos
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerarRequest  true  "fecha DD/MM/YYYY; vacía = hoy"
// @Success      200   {object}  dto.RastreroIngresoResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rastrero/ingresos/generar [post]
func (h *IngresoHandler) Generar(c *fiber.Ctx) error {
	var in dto.GenerarRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	fecha, err := parseFecha(in.Fecha)
	if err != nil {
		return responderError(c, err)
	}

	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if len(est.Movimientos) == 0 || len(est.StockIn) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	filtrados := h.uc.FiltrarSistema(est.Movimientos)
	_, seleccion := rastrero.ResolverFacetas(filtrados, est.SeleccionIn)
	est.SeleccionIn = seleccion

	tabla, err := h.uc.Reconciliar(rastrero.AplicarFacetas(filtrados, seleccion), est.StockIn)
	if err != nil {
		return responderError(c, err)
	}
	est.RastreroIn = tabla
	est.FechaIn = fecha

	h.log.Info().
		Int("alto", len(tabla.Alto)).
		Int("bajo", len(tabla.Bajo)).
		Msg("rastrero de ingresos generado")

	return c.JSON(dto.RastreroIngresoResponse{
		Alto:  dto.ToFilasRastreroDTO(tabla.Alto),
		Bajo:  dto.ToFilasRastreroDTO(tabla.Bajo),
		Lotes: tabla.Lotes,
	})
}

// Descargar godoc
// @Summary      Descargar el libro FORMATO_RASTRERO_INGRESOS
// @Tags         ingresos
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/rastrero/ingresos/descargar [get]
func (h *IngresoHandler) Descargar(c *fiber.Ctx) error {
	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if est.RastreroIn == nil || len(est.PlantillaIn) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	datos, err := h.exportador.Exportar(est.PlantillaIn, rastrero.Exporte{
		Fecha:    est.FechaIn,
		Hojas:    rastrero.HojasIngreso(est.RastreroIn),
		ListadoL: est.RastreroIn.Lotes,
	})
	if err != nil {
		return responderError(c, err)
	}

	nombre := rastrero.NombreArchivo("INGRESOS", est.FechaIn)
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(datos)
}
