package models

import (
	"encoding/json"
	"testing"
)

func TestNormalizarClavesDePresentacion(t *testing.T) {
	item := ItemExamen{
		"Codigo Ingreso": "EX1",
		"Nombre prestación en Fonasa o Particular": "Hemograma",
		"Copago": float64(5500),
	}

	det := item.Normalizar()
	if det.CodigoExamen != "EX1" {
		t.Errorf("CodigoExamen = %q, se esperaba %q", det.CodigoExamen, "EX1")
	}
	if det.NombreExamen != "Hemograma" {
		t.Errorf("NombreExamen = %q, se esperaba %q", det.NombreExamen, "Hemograma")
	}
	if det.ValorCopago != 5500 {
		t.Errorf("ValorCopago = %d, se esperaba 5500", det.ValorCopago)
	}
}

func TestNormalizarClavesCanonicas(t *testing.T) {
	item := ItemExamen{
		"codigo_examen": "EX2",
		"nombre_examen": "Perfil lipídico",
		"valor_copago":  float64(12000),
	}

	det := item.Normalizar()
	if det.CodigoExamen != "EX2" || det.NombreExamen != "Perfil lipídico" || det.ValorCopago != 12000 {
		t.Errorf("normalización de claves canónicas incorrecta: %+v", det)
	}
}

func TestNormalizarCamposAusentes(t *testing.T) {
	det := ItemExamen{}.Normalizar()
	if det.CodigoExamen != "" {
		t.Errorf("CodigoExamen ausente debe quedar vacío, fue %q", det.CodigoExamen)
	}
	if det.NombreExamen != "" {
		t.Errorf("NombreExamen ausente debe quedar vacío, fue %q", det.NombreExamen)
	}
	if det.ValorCopago != 0 {
		t.Errorf("ValorCopago ausente debe quedar en cero, fue %d", det.ValorCopago)
	}
}

func TestNormalizarCopagoComoTexto(t *testing.T) {
	// Algunas planillas del cotizador exportan el copago como texto
	item := ItemExamen{
		"Codigo Ingreso": "EX3",
		"Copago":         " 8000 ",
	}

	if det := item.Normalizar(); det.ValorCopago != 8000 {
		t.Errorf("ValorCopago = %d, se esperaba 8000", det.ValorCopago)
	}
}

func TestNormalizarDesdeJSON(t *testing.T) {
	// El mismo recorrido que hace BodyParser: JSON → ItemExamen → Normalizar
	cuerpo := `{"Codigo Ingreso": "EX1", "Nombre prestación en Fonasa o Particular": "Hemograma", "Copago": 3500}`

	var item ItemExamen
	if err := json.Unmarshal([]byte(cuerpo), &item); err != nil {
		t.Fatalf("Unmarshal falló: %v", err)
	}

	det := item.Normalizar()
	if det.CodigoExamen != "EX1" || det.NombreExamen != "Hemograma" || det.ValorCopago != 3500 {
		t.Errorf("normalización desde JSON incorrecta: %+v", det)
	}
}
