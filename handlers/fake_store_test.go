package handlers_test

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/policlinico-tabancura/cerebro-backend/handlers"
	"github.com/policlinico-tabancura/cerebro-backend/models"
	"github.com/policlinico-tabancura/cerebro-backend/routes"
	"github.com/policlinico-tabancura/cerebro-backend/storage"
)

// fakeStore es un doble en memoria de storage.Store. Conserva los invariantes
// que en producción impone el esquema: conversión única por folio, reemplazo
// total del detalle y auditoría de solo inserción
type fakeStore struct {
	cotizaciones  []models.Cotizacion
	detalles      map[string][]models.DetalleCotizacion
	totales       map[string]int
	ordenes       map[string]int // folio_cotizacion → folio_orden
	ordenDetalles map[int][]models.OrdenDetalle
	auditorias    []models.AuditoriaExamen

	siguienteOrden int
	reloj          int

	// fallarDetalleOrden simula un fallo de inserción del detalle a mitad
	// de la transacción de CrearOrdenConDetalle
	fallarDetalleOrden bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		detalles:      make(map[string][]models.DetalleCotizacion),
		totales:       make(map[string]int),
		ordenes:       make(map[string]int),
		ordenDetalles: make(map[int][]models.OrdenDetalle),
	}
}

func (f *fakeStore) BuscarCotizacionesPorRut(_ context.Context, rut string) ([]models.Cotizacion, error) {
	resultado := []models.Cotizacion{}
	for _, cot := range f.cotizaciones {
		if cot.DocumentoID == rut {
			resultado = append(resultado, cot)
		}
	}
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].FechaCotizacion.After(resultado[j].FechaCotizacion)
	})
	return resultado, nil
}

func (f *fakeStore) ObtenerDetalleCotizacion(_ context.Context, folio string) ([]models.DetalleCotizacion, error) {
	detalles := []models.DetalleCotizacion{}
	return append(detalles, f.detalles[folio]...), nil
}

func (f *fakeStore) ReemplazarDetalleCotizacion(_ context.Context, folio string, items []models.DetalleCotizacion) error {
	reemplazo := make([]models.DetalleCotizacion, len(items))
	copy(reemplazo, items)
	f.detalles[folio] = reemplazo

	total := 0
	for _, item := range items {
		total += item.ValorCopago
	}
	f.totales[folio] = total
	return nil
}

func (f *fakeStore) GenerarOrden(_ context.Context, folioCotizacion, rutPaciente string) (int, error) {
	if _, existe := f.ordenes[folioCotizacion]; existe {
		return 0, storage.ErrCotizacionYaConvertida
	}
	f.siguienteOrden++
	f.ordenes[folioCotizacion] = f.siguienteOrden
	return f.siguienteOrden, nil
}

func (f *fakeStore) CrearOrdenConDetalle(_ context.Context, folioCotizacion, rutPaciente string, examenes []models.OrdenDetalle) (int, error) {
	if _, existe := f.ordenes[folioCotizacion]; existe {
		return 0, storage.ErrCotizacionYaConvertida
	}
	if f.fallarDetalleOrden {
		// La transacción se revierte: ni cabecera ni detalle quedan visibles
		return 0, errors.New("fallo simulado al insertar el detalle")
	}
	f.siguienteOrden++
	folioOrden := f.siguienteOrden
	f.ordenes[folioCotizacion] = folioOrden

	detalle := make([]models.OrdenDetalle, len(examenes))
	for i, examen := range examenes {
		examen.FolioOrden = folioOrden
		detalle[i] = examen
	}
	f.ordenDetalles[folioOrden] = detalle
	return folioOrden, nil
}

func (f *fakeStore) ObtenerDetalleOrden(_ context.Context, folioOrden int) ([]models.OrdenDetalle, error) {
	detalles := []models.OrdenDetalle{}
	return append(detalles, f.ordenDetalles[folioOrden]...), nil
}

func (f *fakeStore) RegistrarAuditoria(_ context.Context, registro models.AuditoriaExamen) error {
	f.reloj++
	registro.ID = len(f.auditorias) + 1
	registro.FechaEmision = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).
		Add(time.Duration(f.reloj) * time.Minute)
	f.auditorias = append(f.auditorias, registro)
	return nil
}

func (f *fakeStore) ListarAuditoria(_ context.Context) ([]models.AuditoriaExamen, error) {
	resultado := make([]models.AuditoriaExamen, len(f.auditorias))
	copy(resultado, f.auditorias)
	sort.SliceStable(resultado, func(i, j int) bool {
		return resultado[i].FechaEmision.After(resultado[j].FechaEmision)
	})
	return resultado, nil
}

// newTestApp levanta la aplicación completa (rutas y middleware incluidos)
// sobre el doble de almacenamiento
func newTestApp(store storage.Store) *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app, handlers.New(store))
	return app
}
