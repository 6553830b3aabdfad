package models

import (
	"time"
)

// OrdenMedica representa la tabla ordenes_medicas. El folio_orden es
// secuencial y lo asigna la base de datos; la restricción de unicidad sobre
// folio_cotizacion garantiza que una cotización se convierta a lo más una vez
type OrdenMedica struct {
	FolioOrden      int       `json:"folio_orden" db:"folio_orden"`
	FolioCotizacion string    `json:"folio_cotizacion" db:"folio_cotizacion"`
	RutPaciente     string    `json:"rut_paciente" db:"rut_paciente"`
	FechaCreacion   time.Time `json:"fecha_creacion" db:"fecha_creacion"`
}

// OrdenDetalle representa un examen dentro de una orden médica
type OrdenDetalle struct {
	FolioOrden   int    `json:"folio_orden" db:"folio_orden"`
	CodigoExamen string `json:"codigo_examen" db:"codigo_examen"`
	NombreExamen string `json:"nombre_examen" db:"nombre_examen"`
}

// GenerarOrdenRequest registra la conversión de una cotización sin detalle
type GenerarOrdenRequest struct {
	Folio string `json:"folio"`
	Rut   string `json:"rut"`
}

// NuevaOrdenRequest crea una orden con su detalle de exámenes en una sola
// transacción
type NuevaOrdenRequest struct {
	FolioCotizacion string       `json:"folio_cotizacion"`
	RutPaciente     string       `json:"rut_paciente"`
	Examenes        []ItemExamen `json:"examenes"`
}
