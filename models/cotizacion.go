package models

import (
	"strconv"
	"strings"
	"time"
)

// Cotizacion representa la tabla cotizaciones en la base de datos.
// Las cotizaciones las crea el cotizador (front-end); este servicio
// solo las lee y reescribe sus detalles
type Cotizacion struct {
	Folio           string    `json:"folio" db:"folio"`
	DocumentoID     string    `json:"documento_id" db:"documento_id"`
	NombrePaciente  string    `json:"nombre_paciente" db:"nombre_paciente"`
	FechaCotizacion time.Time `json:"fecha_cotizacion" db:"fecha_cotizacion"`
	TotalCopago     int       `json:"total_copago" db:"total_copago"`
}

// DetalleCotizacion representa un examen dentro de una cotización
type DetalleCotizacion struct {
	CodigoExamen string `json:"codigo_examen" db:"codigo_examen"`
	NombreExamen string `json:"nombre_examen" db:"nombre_examen"`
	ValorCopago  int    `json:"valor_copago" db:"valor_copago"`
}

// ItemExamen es un examen tal como llega desde el cotizador. El front-end
// envía claves de presentación (las columnas visibles de la tabla de
// exámenes); también se aceptan las claves canónicas de almacenamiento
type ItemExamen map[string]interface{}

// Claves de presentación usadas por el cotizador
const (
	ClaveCodigoIngreso    = "Codigo Ingreso"
	ClaveNombrePrestacion = "Nombre prestación en Fonasa o Particular"
	ClaveCopago           = "Copago"
)

// Normalizar traduce las claves de presentación a los nombres canónicos de
// almacenamiento. Los campos ausentes quedan en cadena vacía o cero
func (it ItemExamen) Normalizar() DetalleCotizacion {
	return DetalleCotizacion{
		CodigoExamen: it.texto("codigo_examen", ClaveCodigoIngreso),
		NombreExamen: it.texto("nombre_examen", ClaveNombrePrestacion),
		ValorCopago:  it.entero("valor_copago", ClaveCopago),
	}
}

func (it ItemExamen) texto(claves ...string) string {
	for _, clave := range claves {
		if valor, ok := it[clave]; ok {
			if s, ok := valor.(string); ok {
				return s
			}
		}
	}
	return ""
}

func (it ItemExamen) entero(claves ...string) int {
	for _, clave := range claves {
		valor, ok := it[clave]
		if !ok {
			continue
		}
		switch n := valor.(type) {
		case float64:
			// encoding/json decodifica todo número JSON como float64
			return int(n)
		case int:
			return n
		case string:
			if parsed, err := strconv.Atoi(strings.TrimSpace(n)); err == nil {
				return parsed
			}
		}
	}
	return 0
}

// ActualizarCotizacionRequest es la solicitud para reemplazar los detalles
// de una cotización existente
type ActualizarCotizacionRequest struct {
	Folio string       `json:"folio"`
	Items []ItemExamen `json:"items"`
}
