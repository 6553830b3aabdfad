package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/policlinico-tabancura/cerebro-backend/models"
)

// BuscarCotizaciones busca cotizaciones usando el documento_id del paciente,
// de la más reciente a la más antigua. Cero resultados retorna 200 con lista
// vacía: la búsqueda sin coincidencias es un resultado válido, no un error
func (h *Handler) BuscarCotizaciones(c *fiber.Ctx) error {
	rut := c.Params("rut")

	cotizaciones, err := h.store.BuscarCotizacionesPorRut(context.Background(), rut)
	if err != nil {
		log.Printf("Error al buscar cotizaciones del RUT %s: %v", rut, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al buscar cotizaciones",
		})
	}

	return c.JSON(cotizaciones)
}

// ObtenerDetalleCotizacion trae los exámenes asociados a un folio específico
func (h *Handler) ObtenerDetalleCotizacion(c *fiber.Ctx) error {
	folio := c.Params("folio")

	detalles, err := h.store.ObtenerDetalleCotizacion(context.Background(), folio)
	if err != nil {
		log.Printf("Error al obtener detalle del folio %s: %v", folio, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener el detalle de la cotización",
		})
	}

	return c.JSON(detalles)
}

// ActualizarCotizacion reemplaza el conjunto completo de exámenes de una
// cotización. Los ítems llegan con claves de presentación del cotizador y se
// normalizan una sola vez en este borde. Una lista vacía elimina todos los
// exámenes del folio
func (h *Handler) ActualizarCotizacion(c *fiber.Ctx) error {
	var req models.ActualizarCotizacionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.Folio == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "El folio es requerido",
		})
	}

	items := make([]models.DetalleCotizacion, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, item.Normalizar())
	}

	if err := h.store.ReemplazarDetalleCotizacion(context.Background(), req.Folio, items); err != nil {
		log.Printf("Error al actualizar detalle del folio %s: %v", req.Folio, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al actualizar la cotización",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}
