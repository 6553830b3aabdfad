package handlers

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/policlinico-tabancura/cerebro-backend/models"
)

// RegistrarAuditoria agrega un registro de trazabilidad por cada generación
// de orden. Los registros son inmutables: no existe actualización ni borrado
func (h *Handler) RegistrarAuditoria(c *fiber.Ctx) error {
	var req models.RegistrarAuditoriaRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{
			"error": "Datos inválidos",
		})
	}

	if req.RutPaciente == "" || req.FolioOrigen == "" {
		return c.Status(400).JSON(fiber.Map{
			"error": "RUT del paciente y folio de origen son requeridos",
		})
	}

	// Si el cotizador no envía la cantidad, se deriva de los códigos
	if req.CantidadExamenes == 0 {
		req.CantidadExamenes = len(req.Codigos)
	}

	registro := models.AuditoriaExamen{
		RutPaciente:      req.RutPaciente,
		NombrePaciente:   req.NombrePaciente,
		FolioOrigen:      req.FolioOrigen,
		CantidadExamenes: req.CantidadExamenes,
		Codigos:          req.Codigos,
	}

	if err := h.store.RegistrarAuditoria(context.Background(), registro); err != nil {
		log.Printf("Error al registrar auditoría del folio %s: %v", req.FolioOrigen, err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al registrar la auditoría",
		})
	}

	return c.JSON(fiber.Map{
		"status": "success",
	})
}

// HistorialAuditoria retorna todos los registros de auditoría, del más
// reciente al más antiguo
func (h *Handler) HistorialAuditoria(c *fiber.Ctx) error {
	registros, err := h.store.ListarAuditoria(context.Background())
	if err != nil {
		log.Printf("Error al listar el historial de auditoría: %v", err)
		return c.Status(500).JSON(fiber.Map{
			"error": "Error al obtener el historial de auditoría",
		})
	}

	return c.JSON(registros)
}
