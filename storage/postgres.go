package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/policlinico-tabancura/cerebro-backend/models"
)

// codigoViolacionUnicidad es el código de error de PostgreSQL para
// unique_violation
const codigoViolacionUnicidad = "23505"

// PostgresStore implementa Store sobre el pool de conexiones de pgx.
// El pool garantiza la devolución de la conexión en todo camino de salida
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore crea el acceso a datos sobre el pool entregado
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// BuscarCotizacionesPorRut busca cotizaciones por el documento_id del paciente
func (s *PostgresStore) BuscarCotizacionesPorRut(ctx context.Context, rut string) ([]models.Cotizacion, error) {
	query := `SELECT folio, documento_id, nombre_paciente, fecha_cotizacion, total_copago
			  FROM cotizaciones
			  WHERE documento_id = $1
			  ORDER BY fecha_cotizacion DESC`

	rows, err := s.pool.Query(ctx, query, rut)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Slice no nulo para que cero resultados serialice como lista vacía
	cotizaciones := []models.Cotizacion{}
	for rows.Next() {
		var cot models.Cotizacion
		if err := rows.Scan(&cot.Folio, &cot.DocumentoID, &cot.NombrePaciente,
			&cot.FechaCotizacion, &cot.TotalCopago); err != nil {
			return nil, err
		}
		cotizaciones = append(cotizaciones, cot)
	}
	return cotizaciones, rows.Err()
}

// ObtenerDetalleCotizacion trae los exámenes asociados a un folio específico
func (s *PostgresStore) ObtenerDetalleCotizacion(ctx context.Context, folio string) ([]models.DetalleCotizacion, error) {
	query := `SELECT codigo_examen, nombre_examen, valor_copago
			  FROM detalle_cotizaciones
			  WHERE folio_cotizacion = $1
			  ORDER BY id`

	rows, err := s.pool.Query(ctx, query, folio)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detalles := []models.DetalleCotizacion{}
	for rows.Next() {
		var det models.DetalleCotizacion
		if err := rows.Scan(&det.CodigoExamen, &det.NombreExamen, &det.ValorCopago); err != nil {
			return nil, err
		}
		detalles = append(detalles, det)
	}
	return detalles, rows.Err()
}

// ReemplazarDetalleCotizacion reemplaza el conjunto completo de exámenes del
// folio y recalcula el total_copago de la cabecera, todo en una transacción
func (s *PostgresStore) ReemplazarDetalleCotizacion(ctx context.Context, folio string, items []models.DetalleCotizacion) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx,
		"DELETE FROM detalle_cotizaciones WHERE folio_cotizacion = $1", folio); err != nil {
		return err
	}

	total := 0
	for _, item := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO detalle_cotizaciones (folio_cotizacion, codigo_examen, nombre_examen, valor_copago)
			 VALUES ($1, $2, $3, $4)`,
			folio, item.CodigoExamen, item.NombreExamen, item.ValorCopago); err != nil {
			return err
		}
		total += item.ValorCopago
	}

	// total_copago es la suma almacenada de los copagos del detalle
	if _, err := tx.Exec(ctx,
		"UPDATE cotizaciones SET total_copago = $1 WHERE folio = $2", total, folio); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// GenerarOrden registra la conversión de una cotización en una orden médica
func (s *PostgresStore) GenerarOrden(ctx context.Context, folioCotizacion, rutPaciente string) (int, error) {
	var folioOrden int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO ordenes_medicas (folio_cotizacion, rut_paciente)
		 VALUES ($1, $2) RETURNING folio_orden`,
		folioCotizacion, rutPaciente).Scan(&folioOrden)
	if err != nil {
		if esViolacionUnicidad(err) {
			return 0, ErrCotizacionYaConvertida
		}
		return 0, err
	}
	return folioOrden, nil
}

// CrearOrdenConDetalle crea la cabecera de la orden y su detalle en una sola
// transacción: si falla cualquier inserción del detalle, la cabecera se revierte
func (s *PostgresStore) CrearOrdenConDetalle(ctx context.Context, folioCotizacion, rutPaciente string, examenes []models.OrdenDetalle) (int, error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var folioOrden int
	err = tx.QueryRow(ctx,
		`INSERT INTO ordenes_medicas (folio_cotizacion, rut_paciente)
		 VALUES ($1, $2) RETURNING folio_orden`,
		folioCotizacion, rutPaciente).Scan(&folioOrden)
	if err != nil {
		if esViolacionUnicidad(err) {
			return 0, ErrCotizacionYaConvertida
		}
		return 0, err
	}

	for _, examen := range examenes {
		if _, err := tx.Exec(ctx,
			`INSERT INTO ordenes_detalle (folio_orden, codigo_examen, nombre_examen)
			 VALUES ($1, $2, $3)`,
			folioOrden, examen.CodigoExamen, examen.NombreExamen); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return folioOrden, nil
}

// ObtenerDetalleOrden trae los exámenes de una orden médica
func (s *PostgresStore) ObtenerDetalleOrden(ctx context.Context, folioOrden int) ([]models.OrdenDetalle, error) {
	query := `SELECT folio_orden, codigo_examen, nombre_examen
			  FROM ordenes_detalle
			  WHERE folio_orden = $1
			  ORDER BY id`

	rows, err := s.pool.Query(ctx, query, folioOrden)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	detalles := []models.OrdenDetalle{}
	for rows.Next() {
		var det models.OrdenDetalle
		if err := rows.Scan(&det.FolioOrden, &det.CodigoExamen, &det.NombreExamen); err != nil {
			return nil, err
		}
		detalles = append(detalles, det)
	}
	return detalles, rows.Err()
}

// RegistrarAuditoria agrega un registro de trazabilidad. La lista de códigos
// se serializa como arreglo JSON en una sola columna, preservando el orden
func (s *PostgresStore) RegistrarAuditoria(ctx context.Context, registro models.AuditoriaExamen) error {
	codigos, err := json.Marshal(registro.Codigos)
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO auditoria_examenes (rut_paciente, nombre_paciente, folio_origen, cantidad_examenes, codigos)
		 VALUES ($1, $2, $3, $4, $5)`,
		registro.RutPaciente, registro.NombrePaciente, registro.FolioOrigen,
		registro.CantidadExamenes, string(codigos))
	return err
}

// ListarAuditoria retorna todo el historial de auditoría, el más reciente primero
func (s *PostgresStore) ListarAuditoria(ctx context.Context) ([]models.AuditoriaExamen, error) {
	query := `SELECT id, rut_paciente, nombre_paciente, folio_origen, cantidad_examenes, codigos, fecha_emision
			  FROM auditoria_examenes
			  ORDER BY fecha_emision DESC`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registros := []models.AuditoriaExamen{}
	for rows.Next() {
		var reg models.AuditoriaExamen
		var codigos string
		if err := rows.Scan(&reg.ID, &reg.RutPaciente, &reg.NombrePaciente,
			&reg.FolioOrigen, &reg.CantidadExamenes, &codigos, &reg.FechaEmision); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(codigos), &reg.Codigos); err != nil {
			// Registros antiguos pudieron guardarse sin formato JSON
			reg.Codigos = []string{codigos}
		}
		registros = append(registros, reg)
	}
	return registros, rows.Err()
}

// esViolacionUnicidad detecta la violación de la restricción de unicidad
// que protege la conversión única por cotización
func esViolacionUnicidad(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codigoViolacionUnicidad
}
