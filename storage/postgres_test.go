package storage

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestEsViolacionUnicidad(t *testing.T) {
	casos := []struct {
		nombre   string
		err      error
		esperado bool
	}{
		{"violación de unicidad", &pgconn.PgError{Code: "23505"}, true},
		{"violación envuelta", fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), true},
		{"otro error de postgres", &pgconn.PgError{Code: "23503"}, false},
		{"error genérico", errors.New("connection refused"), false},
		{"sin error", nil, false},
	}

	for _, caso := range casos {
		t.Run(caso.nombre, func(t *testing.T) {
			if resultado := esViolacionUnicidad(caso.err); resultado != caso.esperado {
				t.Errorf("esViolacionUnicidad(%v) = %v, se esperaba %v",
					caso.err, resultado, caso.esperado)
			}
		})
	}
}
