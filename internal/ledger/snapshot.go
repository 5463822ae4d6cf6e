package ledger

import (
	"time"

	"github.com/Gualguanosky/afterwod/internal/model"
)

// State is a full copy of the six collections, used to exchange the ledger's
// contents with a persistence collaborator. The ledger never aliases a State
// it handed out or received.
type State struct {
	Productos []model.Producto      `json:"productos"`
	Clientes  []model.Cliente       `json:"clientes"`
	Vinculos  []model.VinculoReceta `json:"vinculos"`
	Ventas    []model.Venta         `json:"ventas"`
	Compras   []model.Compra        `json:"compras"`
	Pagos     []model.Pago          `json:"pagos"`
}

// Snapshot copies the full ledger contents. Product/customer order follows
// creation order so a restore preserves listings.
func (l *Ledger) Snapshot() State {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := State{
		Productos: make([]model.Producto, 0, len(l.ordenProductos)),
		Clientes:  make([]model.Cliente, 0, len(l.ordenClientes)),
		Vinculos:  append([]model.VinculoReceta(nil), l.vinculos...),
		Ventas:    append([]model.Venta(nil), l.ventas...),
		Compras:   append([]model.Compra(nil), l.compras...),
		Pagos:     append([]model.Pago(nil), l.pagos...),
	}
	for _, id := range l.ordenProductos {
		s.Productos = append(s.Productos, *l.productos[id])
	}
	for _, id := range l.ordenClientes {
		s.Clientes = append(s.Clientes, *l.clientes[id])
	}
	// Venta rows carry a pointer field; unalias it.
	for i := range s.Ventas {
		if s.Ventas[i].ClienteID != nil {
			cid := *s.Ventas[i].ClienteID
			s.Ventas[i].ClienteID = &cid
		}
	}
	return s
}

// NewFromState hydrates a ledger from a saved (or seed) state.
func NewFromState(s State) *Ledger {
	l := New()
	for i := range s.Productos {
		p := s.Productos[i]
		l.productos[p.ID] = &p
		l.ordenProductos = append(l.ordenProductos, p.ID)
	}
	for i := range s.Clientes {
		c := s.Clientes[i]
		l.clientes[c.ID] = &c
		l.ordenClientes = append(l.ordenClientes, c.ID)
	}
	l.vinculos = append([]model.VinculoReceta(nil), s.Vinculos...)
	l.ventas = append([]model.Venta(nil), s.Ventas...)
	l.compras = append([]model.Compra(nil), s.Compras...)
	l.pagos = append([]model.Pago(nil), s.Pagos...)
	for i := range l.ventas {
		if l.ventas[i].ClienteID != nil {
			cid := *l.ventas[i].ClienteID
			l.ventas[i].ClienteID = &cid
		}
	}
	return l
}

// fijarReloj overrides the clock; tests use it to pin timestamps.
func (l *Ledger) fijarReloj(fn func() time.Time) { l.now = fn }
