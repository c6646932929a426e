package http

import (
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/pjlt/rastrero-api/internal/application/dto"
	"github.com/pjlt/rastrero-api/internal/domain"
)

// responderError traduce la taxonomía de errores del dominio a HTTP.
// Esquema y prefijo llevan mensaje específico; el resto de errores de
// cómputo ya se recuperó aguas abajo y no llega hasta aquí.
func responderError(c *fiber.Ctx, err error) error {
	if ee, ok := domain.EsErrorEsquema(err); ok {
		return c.Status(fiber.StatusUnprocessableEntity).
			JSON(dto.ErrorResponse{Code: "ESQUEMA", Message: ee.Error()})
	}
	if ep, ok := domain.EsErrorPrefijo(err); ok {
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "PREFIJO_ARCHIVO", Message: ep.Error()})
	}
	switch {
	case errors.Is(err, domain.ErrSesionVacia):
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "SESION_INCOMPLETA", Message: err.Error()})
	case errors.Is(err, domain.ErrSinSeleccion):
		return c.Status(fiber.StatusConflict).
			JSON(dto.ErrorResponse{Code: "SIN_SELECCION", Message: err.Error()})
	case errors.Is(err, domain.ErrArchivoVacio):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "ARCHIVO_VACIO", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).
			JSON(dto.ErrorResponse{Code: "VALIDATION", Message: err.Error()})
	}
	return c.Status(fiber.StatusInternalServerError).
		JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
}

const formatoFecha = "02/01/2006"

// parseFecha interpreta la fecha del reporte; vacía es hoy.
func parseFecha(s string) (time.Time, error) {
	if s == "" {
		return time.Now(), nil
	}
	f, err := time.Parse(formatoFecha, s)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return f, nil
}

// leerArchivo extrae los bytes del multipart "file"; lectura completa en
// memoria, sin streaming.
func leerArchivo(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, domain.ErrInvalidInput
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	datos, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, datos, nil
}

const mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
