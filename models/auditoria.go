package models

import (
	"time"
)

// AuditoriaExamen representa la tabla auditoria_examenes. Los registros son
// inmutables: se insertan una vez por conversión y nunca se actualizan ni
// eliminan. El folio_origen se guarda como texto sin llave foránea para que
// la auditoría sobreviva a cualquier depuración futura de cotizaciones
type AuditoriaExamen struct {
	ID               int       `json:"id" db:"id"`
	RutPaciente      string    `json:"rut_paciente" db:"rut_paciente"`
	NombrePaciente   string    `json:"nombre_paciente" db:"nombre_paciente"`
	FolioOrigen      string    `json:"folio_origen" db:"folio_origen"`
	CantidadExamenes int       `json:"cantidad_examenes" db:"cantidad_examenes"`
	Codigos          []string  `json:"codigos" db:"codigos"`
	FechaEmision     time.Time `json:"fecha_emision" db:"fecha_emision"`
}

// RegistrarAuditoriaRequest es la solicitud para registrar la trazabilidad
// de una conversión de cotización a orden
type RegistrarAuditoriaRequest struct {
	RutPaciente      string   `json:"rut_paciente"`
	NombrePaciente   string   `json:"nombre_paciente"`
	FolioOrigen      string   `json:"folio_origen"`
	CantidadExamenes int      `json:"cantidad_examenes"`
	Codigos          []string `json:"codigos"`
}
