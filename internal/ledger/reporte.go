package ledger

import (
	"iter"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Resumen is the all-time financial summary. The totals are not
// time-windowed: any "today" framing belongs to the presentation layer.
type Resumen struct {
	TotalVentas  decimal.Decimal  `json:"total_ventas"`
	TotalCompras decimal.Decimal  `json:"total_compras"`
	Clientes     []ResumenCliente `json:"clientes"`
}

// ResumenCliente is the per-customer breakdown: every customer with at least
// one fiado sale on record, even if the customer was deleted afterwards.
type ResumenCliente struct {
	ClienteID     uuid.UUID       `json:"cliente_id"`
	Nombre        string          `json:"nombre"`
	TotalComprado decimal.Decimal `json:"total_comprado"`
	Saldo         decimal.Decimal `json:"saldo"`
}

// ResumenFinanciero is a pure read: it never mutates state and two calls
// without interleaved mutations return identical results.
func (l *Ledger) ResumenFinanciero() Resumen {
	l.mu.Lock()
	defer l.mu.Unlock()

	r := Resumen{
		TotalVentas:  decimal.Zero,
		TotalCompras: decimal.Zero,
		Clientes:     []ResumenCliente{},
	}
	porCliente := make(map[uuid.UUID]decimal.Decimal)
	for _, v := range l.ventas {
		r.TotalVentas = r.TotalVentas.Add(v.Total)
		if v.ClienteID != nil {
			porCliente[*v.ClienteID] = porCliente[*v.ClienteID].Add(v.Total)
		}
	}
	for _, c := range l.compras {
		r.TotalCompras = r.TotalCompras.Add(c.Costo)
	}

	for id, total := range porCliente {
		rc := ResumenCliente{
			ClienteID:     id,
			Nombre:        etiquetaDesconocido,
			TotalComprado: total,
			Saldo:         decimal.Zero,
		}
		if c, ok := l.clientes[id]; ok {
			rc.Nombre = c.Nombre
			rc.Saldo = c.Saldo
		}
		r.Clientes = append(r.Clientes, rc)
	}
	sort.Slice(r.Clientes, func(i, j int) bool {
		if r.Clientes[i].Nombre != r.Clientes[j].Nombre {
			return r.Clientes[i].Nombre < r.Clientes[j].Nombre
		}
		return r.Clientes[i].ClienteID.String() < r.Clientes[j].ClienteID.String()
	})
	return r
}

// Entrada is one row of a merged venta/pago history.
type Entrada struct {
	ID      uuid.UUID       `json:"id"`
	Tipo    string          `json:"tipo"`
	Detalle string          `json:"detalle"`
	Info    string          `json:"info"`
	Monto   decimal.Decimal `json:"monto"`
	Fecha   string          `json:"fecha"`
}

const (
	tipoVenta = "venta"
	tipoPago  = "pago"

	// Per-customer history uses the buyer's perspective.
	tipoCompraCliente = "compra"
	tipoAbonoCliente  = "abono"

	formatoFecha = "2006-01-02T15:04:05Z07:00"
)

// HistorialCombinado merges all ventas (detalle = product name, info =
// quantity) and pagos (detalle = customer name, info = method) into one
// sequence sorted by timestamp descending. The sequence is lazy, finite and
// restartable; it iterates a snapshot taken when it was created, so later
// mutations never leak into an ongoing iteration.
func (l *Ledger) HistorialCombinado() iter.Seq[Entrada] {
	l.mu.Lock()
	entradas := make([]entradaFechada, 0, len(l.ventas)+len(l.pagos))
	for _, v := range l.ventas {
		detalle := etiquetaDesconocido
		if p, ok := l.productos[v.ProductoID]; ok {
			detalle = p.Nombre
		}
		entradas = append(entradas, entradaFechada{
			Entrada: Entrada{
				ID:      v.ID,
				Tipo:    tipoVenta,
				Detalle: detalle,
				Info:    v.Cantidad.String(),
				Monto:   v.Total,
				Fecha:   v.Fecha.Format(formatoFecha),
			},
			nano: v.Fecha.UnixNano(),
		})
	}
	for _, p := range l.pagos {
		detalle := etiquetaDesconocido
		if c, ok := l.clientes[p.ClienteID]; ok {
			detalle = c.Nombre
		}
		entradas = append(entradas, entradaFechada{
			Entrada: Entrada{
				ID:      p.ID,
				Tipo:    tipoPago,
				Detalle: detalle,
				Info:    p.Metodo,
				Monto:   p.Monto,
				Fecha:   p.Fecha.Format(formatoFecha),
			},
			nano: p.Fecha.UnixNano(),
		})
	}
	l.mu.Unlock()

	ordenarDescendente(entradas)

	return func(yield func(Entrada) bool) {
		for _, e := range entradas {
			if !yield(e.Entrada) {
				return
			}
		}
	}
}

// entradaFechada keeps the raw timestamp next to the display row so merged
// histories sort on time, not on the formatted string.
type entradaFechada struct {
	Entrada
	nano int64
}

func ordenarDescendente(entradas []entradaFechada) {
	sort.SliceStable(entradas, func(i, j int) bool { return entradas[i].nano > entradas[j].nano })
}

// VentaDetallada is one sale with its references resolved for display.
type VentaDetallada struct {
	ID       uuid.UUID       `json:"id"`
	Producto string          `json:"producto"`
	Cliente  string          `json:"cliente"`
	Cantidad decimal.Decimal `json:"cantidad"`
	Total    decimal.Decimal `json:"total"`
	Metodo   string          `json:"metodo"`
	Fecha    string          `json:"fecha"`
}

// HistorialVentas lists every sale, newest first. Cash sales carry an empty
// customer name; deleted referents resolve to the sentinel label.
func (l *Ledger) HistorialVentas() []VentaDetallada {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]VentaDetallada, 0, len(l.ventas))
	for i := len(l.ventas) - 1; i >= 0; i-- {
		v := l.ventas[i]
		producto := etiquetaDesconocido
		if p, ok := l.productos[v.ProductoID]; ok {
			producto = p.Nombre
		}
		cliente := ""
		if v.ClienteID != nil {
			cliente = etiquetaDesconocido
			if c, ok := l.clientes[*v.ClienteID]; ok {
				cliente = c.Nombre
			}
		}
		out = append(out, VentaDetallada{
			ID:       v.ID,
			Producto: producto,
			Cliente:  cliente,
			Cantidad: v.Cantidad,
			Total:    v.Total,
			Metodo:   v.Metodo,
			Fecha:    v.Fecha.Format(formatoFecha),
		})
	}
	return out
}

// HistorialCliente merges one customer's fiado purchases (tipo "compra",
// detalle = product) and settlements (tipo "abono", detalle = method),
// newest first.
func (l *Ledger) HistorialCliente(clienteID uuid.UUID) []Entrada {
	l.mu.Lock()
	defer l.mu.Unlock()

	var entradas []entradaFechada
	for _, v := range l.ventas {
		if v.ClienteID == nil || *v.ClienteID != clienteID {
			continue
		}
		detalle := etiquetaDesconocido
		if p, ok := l.productos[v.ProductoID]; ok {
			detalle = p.Nombre
		}
		entradas = append(entradas, entradaFechada{
			Entrada: Entrada{
				ID:      v.ID,
				Tipo:    tipoCompraCliente,
				Detalle: detalle,
				Info:    v.Cantidad.String(),
				Monto:   v.Total,
				Fecha:   v.Fecha.Format(formatoFecha),
			},
			nano: v.Fecha.UnixNano(),
		})
	}
	for _, p := range l.pagos {
		if p.ClienteID != clienteID {
			continue
		}
		entradas = append(entradas, entradaFechada{
			Entrada: Entrada{
				ID:      p.ID,
				Tipo:    tipoAbonoCliente,
				Detalle: p.Metodo,
				Info:    "-",
				Monto:   p.Monto,
				Fecha:   p.Fecha.Format(formatoFecha),
			},
			nano: p.Fecha.UnixNano(),
		})
	}
	ordenarDescendente(entradas)
	out := make([]Entrada, 0, len(entradas))
	for _, e := range entradas {
		out = append(out, e.Entrada)
	}
	return out
}

// TotalesCliente returns what the customer bought on credit and what they
// have paid back, all-time.
func (l *Ledger) TotalesCliente(clienteID uuid.UUID) (comprado, pagado decimal.Decimal) {
	l.mu.Lock()
	defer l.mu.Unlock()

	comprado, pagado = decimal.Zero, decimal.Zero
	for _, v := range l.ventas {
		if v.ClienteID != nil && *v.ClienteID == clienteID {
			comprado = comprado.Add(v.Total)
		}
	}
	for _, p := range l.pagos {
		if p.ClienteID == clienteID {
			pagado = pagado.Add(p.Monto)
		}
	}
	return comprado, pagado
}
