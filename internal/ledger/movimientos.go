package ledger

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gualguanosky/afterwod/internal/model"
)

// RecetaCiclicaError reports a recipe graph that revisits a product already
// on the current deduction path. The offending sale mutates nothing.
type RecetaCiclicaError struct {
	ProductoID uuid.UUID
}

func (e *RecetaCiclicaError) Error() string {
	return fmt.Sprintf("receta cíclica: el producto %s vuelve a aparecer en su propia composición", e.ProductoID)
}

// RegistrarCompra logs incoming stock: increments the product's stock,
// appends an immutable Compra row, and, when the product's price is owned by
// purchases, re-derives the unit price as costo/cantidad. A non-positive
// cantidad skips the derivation (division guard) but the stock increment and
// the log entry still happen. An unknown product still gets its Compra row;
// the stock/price steps no-op.
func (l *Ledger) RegistrarCompra(productoID uuid.UUID, cantidad, costo decimal.Decimal) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	if p, ok := l.productos[productoID]; ok {
		p.Stock = p.Stock.Add(cantidad)
		if p.OrigenPrecio == model.OrigenCompra && cantidad.IsPositive() {
			p.Precio = costo.Div(cantidad)
			p.UpdatedAt = l.now()
		}
	}
	c := model.Compra{
		ID:         uuid.New(),
		ProductoID: productoID,
		Cantidad:   cantidad,
		Costo:      costo,
		Fecha:      l.now(),
	}
	l.compras = append(l.compras, c)
	return c.ID
}

// RegistrarVenta deducts stock recursively through the recipe graph, appends
// an immutable Venta row, and, for fiado sales, adds the total to the
// customer's balance. Total is caller-supplied and independent of the
// product's current price.
//
// The deduction deltas are accumulated first and only applied once the whole
// walk succeeds, so a cyclic recipe returns *RecetaCiclicaError with the
// ledger untouched.
func (l *Ledger) RegistrarVenta(productoID uuid.UUID, cantidad, total decimal.Decimal, clienteID *uuid.UUID, metodo string) (uuid.UUID, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	deltas := make(map[uuid.UUID]decimal.Decimal)
	if err := l.acumularDescuento(deltas, productoID, cantidad, map[uuid.UUID]bool{}); err != nil {
		return uuid.Nil, err
	}
	for id, delta := range deltas {
		// Deleted ingredients referenced by a dangling link simply no-op.
		if p, ok := l.productos[id]; ok {
			p.Stock = p.Stock.Add(delta)
		}
	}

	v := model.Venta{
		ID:         uuid.New(),
		ProductoID: productoID,
		ClienteID:  clienteID,
		Cantidad:   cantidad,
		Total:      total,
		Metodo:     metodo,
		Fecha:      l.now(),
	}
	l.ventas = append(l.ventas, v)

	if clienteID != nil {
		if c, ok := l.clientes[*clienteID]; ok {
			c.Saldo = c.Saldo.Add(total)
		}
	}
	return v.ID, nil
}

// acumularDescuento walks the recipe graph depth-first, subtracting cantidad
// from the product itself and cantidad×link from each component, transitively.
// ruta holds the ids on the current path; a revisit means the graph cycles.
func (l *Ledger) acumularDescuento(deltas map[uuid.UUID]decimal.Decimal, id uuid.UUID, cantidad decimal.Decimal, ruta map[uuid.UUID]bool) error {
	if ruta[id] {
		return &RecetaCiclicaError{ProductoID: id}
	}
	deltas[id] = deltas[id].Sub(cantidad)

	ruta[id] = true
	defer delete(ruta, id)
	for _, v := range l.vinculos {
		if v.ProductoID != id {
			continue
		}
		if err := l.acumularDescuento(deltas, v.IngredienteID, v.Cantidad.Mul(cantidad), ruta); err != nil {
			return err
		}
	}
	return nil
}

// RegistrarPago settles fiado debt: subtracts monto from the customer's
// balance (overpaying drives it negative, which is tolerated) and appends an
// immutable Pago row. An unknown customer still gets the log entry.
func (l *Ledger) RegistrarPago(clienteID uuid.UUID, monto decimal.Decimal, metodo string) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	if c, ok := l.clientes[clienteID]; ok {
		c.Saldo = c.Saldo.Sub(monto)
	}
	p := model.Pago{
		ID:        uuid.New(),
		ClienteID: clienteID,
		Monto:     monto,
		Metodo:    metodo,
		Fecha:     l.now(),
	}
	l.pagos = append(l.pagos, p)
	return p.ID
}
