package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/pjlt/rastrero-api/internal/application/dto"
	"github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/application/session"
	"github.com/pjlt/rastrero-api/internal/domain"
	"github.com/pjlt/rastrero-api/internal/domain/entity"
	"github.com/pjlt/rastrero-api/pkg/logger"
)

// SalidaHandler maneja el módulo Rastrero Out: carga de archivos, filtro de
// pickings, resúmenes, generación por zonas y descarga.
type SalidaHandler struct {
	store      *session.Store
	prep       *rastrero.PrepararStockUseCase
	uc         *rastrero.GenerarSalidaUseCase
	lector     rastrero.LectorTablas
	exportador rastrero.ExportadorPlantilla
	log        *logger.Logger
}

// NewSalidaHandler construye el handler.
func NewSalidaHandler(
	store *session.Store,
	prep *rastrero.PrepararStockUseCase,
	uc *rastrero.GenerarSalidaUseCase,
	lector rastrero.LectorTablas,
	exportador rastrero.ExportadorPlantilla,
	log *logger.Logger,
) *SalidaHandler {
	return &SalidaHandler{store: store, prep: prep, uc: uc, lector: lector, exportador: exportador, log: log}
}

// SubirArchivo godoc
// @Summary      Subir un archivo del módulo de salidas
// @Tags         salidas
// @Accept       multipart/form-data
// @Produce      json
// @Param        tipo  path      string  true  "asignacion | stock | plantilla"
// @Param        file  formData  file    true  "libro xlsx"
// @Success      200   {object}  dto.EstadoResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      422   {object}  dto.ErrorResponse
// @Router       /api/rastrero/salidas/archivos/{tipo} [post]
func (h *SalidaHandler) SubirArchivo(c *fiber.Ctx) error {
	nombre, datos, err := leerArchivo(c)
	if err != nil {
		return responderError(c, err)
	}

	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	switch c.Params("tipo") {
	case "asignacion":
		tabla, err := h.lector.Leer(datos)
		if err != nil {
			return responderError(c, err)
		}
		pickings, err := h.uc.ParsearPicking(tabla)
		if err != nil {
			return responderError(c, err)
		}
		est.Pickings = pickings
		est.SeleccionPick = nil // selección vacía = todos los pickings
		est.RastreroOut = nil
		h.log.Info().Str("archivo", nombre).Int("filas", len(pickings)).Msg("asignación de pickings cargada")
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Asignación lista", Avance: 40})

	case "stock":
		tabla, err := h.lector.Leer(datos)
		if err != nil {
			return responderError(c, err)
		}
		stock, err := h.prep.Preparar(tabla)
		if err != nil {
			return responderError(c, err)
		}
		est.StockOut = stock
		est.RastreroOut = nil
		h.log.Info().Str("archivo", nombre).Int("grupos", len(stock)).Msg("stock de salidas preparado")
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Stock listo", Avance: 60})

	case "plantilla":
		est.PlantillaOut = datos
		return c.JSON(dto.EstadoResponse{Ok: true, Mensaje: "Plantilla cargada", Avance: 80})
	}

	return responderError(c, domain.ErrInvalidInput)
}

// Resumenes godoc
// @Summary      Resúmenes T_Picking y T_Clientes con el filtro vigente
// @Tags         salidas
// @Produce      json
// @Success      200  {object}  dto.ResumenesResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/rastrero/salidas/resumenes [get]
func (h *SalidaHandler) Resumenes(c *fiber.Ctx) error {
	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if len(est.Pickings) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	filtrados := rastrero.FiltrarPickings(est.Pickings, est.SeleccionPick)
	tpick, tcli, _ := h.uc.Resumenes(filtrados)
	est.ResumenPickings = tpick
	est.ResumenClientes = tcli

	return c.JSON(h.toResumenesResponse(est, tpick, tcli))
}

// ActualizarPickings godoc
// @Summary      Fijar el filtro de pickings
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SeleccionPickingsRequest  true  "pickings; lista vacía = todos"
// @Success      200   {object}  dto.ResumenesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/rastrero/salidas/pickings [put]
func (h *SalidaHandler) ActualizarPickings(c *fiber.Ctx) error {
	var in dto.SeleccionPickingsRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if len(est.Pickings) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	// Descartar pickings seleccionados que ya no están disponibles.
	disponibles := make(map[string]struct{})
	for _, p := range rastrero.PickingsDisponibles(est.Pickings) {
		disponibles[p] = struct{}{}
	}
	var seleccion []string
	for _, p := range in.Pickings {
		if _, ok := disponibles[p]; ok {
			seleccion = append(seleccion, p)
		}
	}
	est.SeleccionPick = seleccion
	est.RastreroOut = nil

	filtrados := rastrero.FiltrarPickings(est.Pickings, seleccion)
	tpick, tcli, _ := h.uc.Resumenes(filtrados)
	est.ResumenPickings = tpick
	est.ResumenClientes = tcli

	return c.JSON(h.toResumenesResponse(est, tpick, tcli))
}

// Generar godoc
// @Summary      Generar el rastrero de salidas por zonas
// @Tags         salidas
// @Accept       json
// @Produce      json
// @Param        body  body      dto.GenerarRequest  true  "fecha DD/MM/YYYY; vacía = hoy"
// @Success      200   {object}  dto.RastreroSalidaResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/rastrero/salidas/generar [post]
func (h *SalidaHandler) Generar(c *fiber.Ctx) error {
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

	if len(est.Pickings) == 0 || len(est.StockOut) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	filtrados := rastrero.FiltrarPickings(est.Pickings, est.SeleccionPick)
	tpick, tcli, consolidado := h.uc.Resumenes(filtrados)
	est.ResumenPickings = tpick
	est.ResumenClientes = tcli

	tabla, err := h.uc.Reconciliar(consolidado, est.StockOut, rastrero.PickingsDisponibles(filtrados))
	if err != nil {
		return responderError(c, err)
	}
	est.RastreroOut = tabla
	est.FechaOut = fecha

	h.log.Info().Int("zonas", len(tabla.Zonas)).Msg("rastrero de salidas generado")

	resp := dto.RastreroSalidaResponse{Pickings: tabla.Pickings}
	for _, z := range tabla.Zonas {
		resp.Zonas = append(resp.Zonas, dto.ZonaDTO{Zona: z.Zona, Filas: dto.ToFilasRastreroDTO(z.Filas)})
	}
	return c.JSON(resp)
}

// Descargar godoc
// @Summary      Descargar el libro FORMATO_RASTRERO_SALIDAS
// @Tags         salidas
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}    binary
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      422  {object}  dto.ErrorResponse
// @Router       /api/rastrero/salidas/descargar [get]
func (h *SalidaHandler) Descargar(c *fiber.Ctx) error {
	est := h.store.Obtener(GetSesionID(c))
	defer est.Bloquear()()

	if est.RastreroOut == nil || len(est.PlantillaOut) == 0 {
		return responderError(c, domain.ErrSesionVacia)
	}

	datos, err := h.exportador.Exportar(est.PlantillaOut, rastrero.Exporte{
		Fecha:    est.FechaOut,
		Hojas:    rastrero.HojasSalida(est.RastreroOut),
		ListadoL: est.RastreroOut.Pickings,
	})
	if err != nil {
		return responderError(c, err)
	}

	nombre := rastrero.NombreArchivo("SALIDAS", est.FechaOut)
	c.Set(fiber.HeaderContentType, mimeXLSX)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, nombre))
	return c.Send(datos)
}

func (h *SalidaHandler) toResumenesResponse(est *session.Estado, tpick []entity.ResumenPicking, tcli []entity.ResumenCliente) dto.ResumenesResponse {
	resp := dto.ResumenesResponse{
		Pickings: rastrero.PickingsDisponibles(est.Pickings),
	}
	for _, p := range tpick {
		resp.TPicking = append(resp.TPicking, dto.ResumenPickingDTO{
			NroPicking: p.NroPicking, CantUMS: p.CantUMS, Cajas: p.Cajas,
		})
	}
	for _, cli := range tcli {
		resp.TClientes = append(resp.TClientes, dto.ResumenClienteDTO{
			NroPicking: cli.NroPicking, Cliente: cli.Cliente, CantUMS: cli.CantUMS, Cajas: cli.Cajas,
		})
	}
	return resp
}
