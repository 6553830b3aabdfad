package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/policlinico-tabancura/cerebro-backend/handlers"
	"github.com/policlinico-tabancura/cerebro-backend/middleware"
)

// SetupRoutes configura todas las rutas de la aplicación
func SetupRoutes(app *fiber.App, h *handlers.Handler) {
	// Middleware global
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.SecurityHeaders())
	app.Use(middleware.BodySizeLimit(1024 * 1024)) // 1MB
	app.Use(middleware.DefaultRateLimiter())

	// Ruta de salud del sistema
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"message": "Cerebro API - Policlínico Tabancura",
			"version": "1.0.0",
		})
	})

	// --- RUTAS DE COTIZACIONES ---
	cotizaciones := app.Group("/cotizaciones")
	cotizaciones.Get("/buscar/:rut", h.BuscarCotizaciones)
	cotizaciones.Get("/detalle/:folio", h.ObtenerDetalleCotizacion)
	cotizaciones.Post("/actualizar", middleware.EscrituraRateLimiter(), h.ActualizarCotizacion)

	// --- RUTAS DE ÓRDENES MÉDICAS ---
	ordenes := app.Group("/ordenes")
	ordenes.Post("/generar", middleware.EscrituraRateLimiter(), h.GenerarOrden)
	ordenes.Post("/nueva", middleware.EscrituraRateLimiter(), h.NuevaOrden)
	ordenes.Get("/detalle/:folio_orden", h.ObtenerDetalleOrden)

	// --- RUTAS DE AUDITORÍA ---
	auditoria := app.Group("/auditoria")
	auditoria.Post("/ordenes", middleware.EscrituraRateLimiter(), h.RegistrarAuditoria)
	auditoria.Get("/historial", h.HistorialAuditoria)
}
