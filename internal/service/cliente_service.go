package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/Gualguanosky/afterwod/internal/dto"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// ClienteService exposes wallet customers and their fiado settlements.
type ClienteService interface {
	Crear(ctx context.Context, req dto.CrearClienteRequest) model.Cliente
	Eliminar(ctx context.Context, id uuid.UUID)
	Listar(ctx context.Context) []model.Cliente
	Obtener(ctx context.Context, id uuid.UUID) (model.Cliente, bool)
	Historial(ctx context.Context, id uuid.UUID) []ledger.Entrada
	Totales(ctx context.Context, id uuid.UUID) dto.TotalesClienteResponse
	RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (uuid.UUID, error)
}

type clienteService struct{ base }

func NewClienteService(led *ledger.Ledger, st store.Store) ClienteService {
	return &clienteService{base{led: led, st: st}}
}

func (s *clienteService) Crear(ctx context.Context, req dto.CrearClienteRequest) model.Cliente {
	id := s.led.CrearCliente(req.Nombre, req.Telefono)
	s.persistir(ctx)
	c, _ := s.led.ObtenerCliente(id)
	return c
}

func (s *clienteService) Eliminar(ctx context.Context, id uuid.UUID) {
	s.led.EliminarCliente(id)
	s.persistir(ctx)
}

func (s *clienteService) Listar(_ context.Context) []model.Cliente {
	return s.led.ListarClientes()
}

func (s *clienteService) Obtener(_ context.Context, id uuid.UUID) (model.Cliente, bool) {
	return s.led.ObtenerCliente(id)
}

func (s *clienteService) Historial(_ context.Context, id uuid.UUID) []ledger.Entrada {
	return s.led.HistorialCliente(id)
}

func (s *clienteService) Totales(_ context.Context, id uuid.UUID) dto.TotalesClienteResponse {
	comprado, pagado := s.led.TotalesCliente(id)
	resp := dto.TotalesClienteResponse{TotalComprado: comprado, TotalPagado: pagado}
	if c, ok := s.led.ObtenerCliente(id); ok {
		resp.Saldo = c.Saldo
	}
	return resp
}

func (s *clienteService) RegistrarPago(ctx context.Context, req dto.RegistrarPagoRequest) (uuid.UUID, error) {
	clienteID, err := uuid.Parse(req.ClienteID)
	if err != nil {
		return uuid.Nil, err
	}
	metodo := req.Metodo
	if metodo == "" {
		metodo = metodoPorDefecto
	}
	id := s.led.RegistrarPago(clienteID, ledger.CoerceMonto(req.Monto), metodo)
	s.persistir(ctx)
	return id, nil
}
