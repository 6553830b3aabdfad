package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/policlinico-tabancura/cerebro-backend/models"
	"github.com/policlinico-tabancura/cerebro-backend/storage"
)

// mensajeYaConvertida es el mensaje que muestra el cotizador cuando una
// cotización ya tiene una orden asociada
const mensajeYaConvertida = "Esta cotización ya fue convertida en una orden previamente."

// GenerarOrden registra la conversión de una cotización en una orden médica.
// La restricción de unicidad sobre folio_cotizacion rechaza el segundo intento
func (h *Handler) GenerarOrden(c *fiber.Ctx) error {
	var req models.GenerarOrdenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.Folio == "" || req.Rut == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Folio y RUT son requeridos",
		})
	}

	_, err := h.store.GenerarOrden(context.Background(), req.Folio, req.Rut)
	if err != nil {
		if errors.Is(err, storage.ErrCotizacionYaConvertida) {
			return c.Status(400).JSON(fiber.Map{
				"detail": mensajeYaConvertida,
			})
		}
		log.Printf("Error al generar orden para el folio %s: %v", req.Folio, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al generar la orden",
		})
	}

	return c.JSON(fiber.Map{
		"status":  "success",
		"message": fmt.Sprintf("Orden vinculada exitosamente al folio %s", req.Folio),
	})
}

// NuevaOrden crea una orden médica con su detalle de exámenes. La cabecera y
// el detalle se escriben en una sola transacción: un fallo a mitad de camino
// no deja ninguna orden parcial visible
func (h *Handler) NuevaOrden(c *fiber.Ctx) error {
	var req models.NuevaOrdenRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.FolioCotizacion == "" || req.RutPaciente == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "Folio de cotización y RUT del paciente son requeridos",
		})
	}

	examenes := make([]models.OrdenDetalle, 0, len(req.Examenes))
	for _, item := range req.Examenes {
		det := item.Normalizar()
		examenes = append(examenes, models.OrdenDetalle{
			CodigoExamen: det.CodigoExamen,
			NombreExamen: det.NombreExamen,
		})
	}

	folioOrden, err := h.store.CrearOrdenConDetalle(context.Background(),
		req.FolioCotizacion, req.RutPaciente, examenes)
	if err != nil {
		if errors.Is(err, storage.ErrCotizacionYaConvertida) {
			return c.Status(400).JSON(fiber.Map{
				"detail": mensajeYaConvertida,
			})
		}
		log.Printf("Error al crear orden para el folio %s: %v", req.FolioCotizacion, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al crear la orden",
		})
	}

	return c.Status(201).JSON(fiber.Map{
		"status":      "success",
		"folio_orden": folioOrden,
	})
}

// ObtenerDetalleOrden trae los exámenes de una orden médica
func (h *Handler) ObtenerDetalleOrden(c *fiber.Ctx) error {
	folioOrden, err := strconv.Atoi(c.Params("folio_orden"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Folio de orden inválido",
		})
	}

	detalles, err := h.store.ObtenerDetalleOrden(context.Background(), folioOrden)
	if err != nil {
		log.Printf("Error al obtener detalle de la orden %d: %v", folioOrden, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener el detalle de la orden",
		})
	}

	return c.JSON(detalles)
}
