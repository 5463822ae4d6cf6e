package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Gualguanosky/afterwod/internal/dto"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// VentaService covers the two stock-moving logs: outgoing ventas (with the
// recursive recipe deduction) and incoming compras (with ingredient
// unit-cost derivation).
type VentaService interface {
	RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (uuid.UUID, error)
	RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (uuid.UUID, error)
	HistorialVentas(ctx context.Context) []ledger.VentaDetallada
}

type ventaService struct{ base }

func NewVentaService(led *ledger.Ledger, st store.Store) VentaService {
	return &ventaService{base{led: led, st: st}}
}

func (s *ventaService) RegistrarVenta(ctx context.Context, req dto.RegistrarVentaRequest) (uuid.UUID, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return uuid.Nil, err
	}
	var clienteID *uuid.UUID
	if req.ClienteID != nil {
		cid, err := uuid.Parse(*req.ClienteID)
		if err != nil {
			return uuid.Nil, err
		}
		clienteID = &cid
	}
	metodo := req.Metodo
	if metodo == "" {
		metodo = metodoPorDefecto
	}

	id, err := s.led.RegistrarVenta(
		productoID,
		ledger.CoerceMonto(req.Cantidad),
		ledger.CoerceMonto(req.Total),
		clienteID,
		metodo,
	)
	if err != nil {
		// Cyclic recipe: the ledger mutated nothing, so nothing to persist.
		return uuid.Nil, err
	}
	s.persistir(ctx)
	return id, nil
}

func (s *ventaService) RegistrarCompra(ctx context.Context, req dto.RegistrarCompraRequest) (uuid.UUID, error) {
	productoID, err := uuid.Parse(req.ProductoID)
	if err != nil {
		return uuid.Nil, err
	}
	id := s.led.RegistrarCompra(productoID, ledger.CoerceMonto(req.Cantidad), ledger.CoerceMonto(req.Costo))
	s.persistir(ctx)
	return id, nil
}

func (s *ventaService) HistorialVentas(_ context.Context) []ledger.VentaDetallada {
	return s.led.HistorialVentas()
}
