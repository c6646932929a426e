package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	apprastrero "github.com/pjlt/rastrero-api/internal/application/rastrero"
	"github.com/pjlt/rastrero-api/internal/application/session"
	infraexcel "github.com/pjlt/rastrero-api/internal/infrastructure/excel"
	httpRouter "github.com/pjlt/rastrero-api/internal/interfaces/http"
	"github.com/pjlt/rastrero-api/pkg/config"
	"github.com/pjlt/rastrero-api/pkg/logger"
)

// @title        Rastrero API
// @version      1.0
// @description  Generación de formatos de rastrero (ingresos y salidas) a partir de reportes WMS en xlsx.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	store := session.NewStore()
	prepararStockUC := apprastrero.NewPrepararStockUseCase()
	generarIngresoUC := apprastrero.NewGenerarIngresoUseCase()
	generarSalidaUC := apprastrero.NewGenerarSalidaUseCase()
	lector := infraexcel.NewLector()
	exportador := infraexcel.NewExportadorPlantilla()

	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
		// Los reportes WMS se leen completos en memoria antes de parsear.
		BodyLimit:    cfg.Rastrero.MaxUploadMB * 1024 * 1024,
		ReadTimeout:  time.Second * 60,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Rastrero API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sesiones": store.Cantidad()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Store:          store,
		PrepararStock:  prepararStockUC,
		GenerarIngreso: generarIngresoUC,
		GenerarSalida:  generarSalidaUC,
		Lector:         lector,
		Exportador:     exportador,
		Log:            log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
