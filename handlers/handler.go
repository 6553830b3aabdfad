package handlers

import (
	"github.com/policlinico-tabancura/cerebro-backend/storage"
)

// Handler agrupa los manejadores HTTP sobre el acceso a datos inyectado
type Handler struct {
	store storage.Store
}

// New crea el conjunto de manejadores
func New(store storage.Store) *Handler {
	return &Handler{store: store}
}
