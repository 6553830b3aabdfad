package storage

import (
	"context"
	"errors"

	"github.com/policlinico-tabancura/cerebro-backend/models"
)

var (
	// ErrNoEncontrado indica que la consulta no encontró filas
	ErrNoEncontrado = errors.New("registro no encontrado")
	// ErrCotizacionYaConvertida indica que la cotización ya tiene una orden
	// asociada (violación de unicidad sobre folio_cotizacion)
	ErrCotizacionYaConvertida = errors.New("la cotización ya fue convertida en una orden")
)

// Store define el acceso a datos del flujo cotización → orden → auditoría
type Store interface {
	// BuscarCotizacionesPorRut retorna las cotizaciones del paciente,
	// de la más reciente a la más antigua. Cero resultados es válido
	BuscarCotizacionesPorRut(ctx context.Context, rut string) ([]models.Cotizacion, error)

	// ObtenerDetalleCotizacion retorna los exámenes del folio en el orden
	// en que fueron insertados
	ObtenerDetalleCotizacion(ctx context.Context, folio string) ([]models.DetalleCotizacion, error)

	// ReemplazarDetalleCotizacion borra todos los exámenes del folio e
	// inserta el conjunto de reemplazo, en una sola transacción. Una lista
	// vacía deja el folio sin exámenes. Recalcula el total_copago
	ReemplazarDetalleCotizacion(ctx context.Context, folio string, items []models.DetalleCotizacion) error

	// GenerarOrden registra la conversión de la cotización y retorna el
	// folio de orden asignado. Retorna ErrCotizacionYaConvertida si el
	// folio ya fue convertido
	GenerarOrden(ctx context.Context, folioCotizacion, rutPaciente string) (int, error)

	// CrearOrdenConDetalle crea la orden y su detalle de exámenes en una
	// sola transacción: si falla la inserción del detalle, la cabecera se
	// revierte. Retorna ErrCotizacionYaConvertida ante una segunda conversión
	CrearOrdenConDetalle(ctx context.Context, folioCotizacion, rutPaciente string, examenes []models.OrdenDetalle) (int, error)

	// ObtenerDetalleOrden retorna los exámenes de una orden
	ObtenerDetalleOrden(ctx context.Context, folioOrden int) ([]models.OrdenDetalle, error)

	// RegistrarAuditoria agrega un registro inmutable de trazabilidad
	RegistrarAuditoria(ctx context.Context, registro models.AuditoriaExamen) error

	// ListarAuditoria retorna todo el historial, del más reciente al más antiguo
	ListarAuditoria(ctx context.Context) ([]models.AuditoriaExamen, error)
}
