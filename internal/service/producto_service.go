package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Gualguanosky/afterwod/internal/dto"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// ProductoService exposes the catalog and recipe operations of the ledger.
type ProductoService interface {
	Crear(ctx context.Context, req dto.CrearProductoRequest) model.Producto
	Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest)
	Eliminar(ctx context.Context, id uuid.UUID)
	Listar(ctx context.Context) []model.Producto
	Obtener(ctx context.Context, id uuid.UUID) (model.Producto, bool)
	ObtenerReceta(ctx context.Context, id uuid.UUID) []ledger.ItemReceta
	ReemplazarReceta(ctx context.Context, id uuid.UUID, req dto.ReemplazarRecetaRequest)
}

type productoService struct{ base }

func NewProductoService(led *ledger.Ledger, st store.Store) ProductoService {
	return &productoService{base{led: led, st: st}}
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) model.Producto {
	id := s.led.CrearProducto(
		req.Nombre,
		ledger.CoerceMonto(req.Precio),
		ledger.CoerceMonto(req.Stock),
		req.Categoria,
		model.TipoProducto(req.Tipo),
		req.Unidad,
	)
	s.persistir(ctx)
	p, _ := s.led.ObtenerProducto(id)
	return p
}

func (s *productoService) Actualizar(ctx context.Context, id uuid.UUID, req dto.ActualizarProductoRequest) {
	s.led.ActualizarProducto(
		id,
		req.Nombre,
		ledger.CoerceMonto(req.Precio),
		ledger.CoerceMonto(req.Stock),
		req.Categoria,
		model.TipoProducto(req.Tipo),
		req.Unidad,
	)
	s.persistir(ctx)
}

func (s *productoService) Eliminar(ctx context.Context, id uuid.UUID) {
	s.led.EliminarProducto(id)
	s.persistir(ctx)
}

func (s *productoService) Listar(_ context.Context) []model.Producto {
	return s.led.ListarProductos()
}

func (s *productoService) Obtener(_ context.Context, id uuid.UUID) (model.Producto, bool) {
	return s.led.ObtenerProducto(id)
}

func (s *productoService) ObtenerReceta(_ context.Context, id uuid.UUID) []ledger.ItemReceta {
	return s.led.ObtenerReceta(id)
}

// ReemplazarReceta swaps the owned link set for the fresh one, the same flow
// the product editor runs when a compuesto product is saved. Items are parsed
// first so the engine replaces the whole set in one operation.
func (s *productoService) ReemplazarReceta(ctx context.Context, id uuid.UUID, req dto.ReemplazarRecetaRequest) {
	items := make([]ledger.VinculoNuevo, 0, len(req.Items))
	for _, item := range req.Items {
		ingID, err := uuid.Parse(item.IngredienteID)
		if err != nil {
			continue
		}
		items = append(items, ledger.VinculoNuevo{
			IngredienteID: ingID,
			Cantidad:      ledger.CoerceMonto(item.Cantidad),
		})
	}
	s.led.ReemplazarReceta(id, items)
	s.persistir(ctx)
}
