// Package ledger implements the in-memory point-of-sale ledger: products,
// wallet customers, recipe links and the three append-only transaction logs
// (ventas, compras, pagos). All state is owned exclusively by the Ledger;
// callers only ever see copies. A single mutex serializes every operation so
// the recursive stock deduction of a sale and its balance update are observed
// atomically by concurrent HTTP readers.
package ledger

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gualguanosky/afterwod/internal/model"
)

// etiquetaDesconocido labels historical rows whose product or customer was
// deleted after the fact. History is immutable even when referents are gone.
const etiquetaDesconocido = "desconocido"

type Ledger struct {
	mu sync.Mutex

	productos      map[uuid.UUID]*model.Producto
	ordenProductos []uuid.UUID
	clientes       map[uuid.UUID]*model.Cliente
	ordenClientes  []uuid.UUID
	vinculos       []model.VinculoReceta

	ventas  []model.Venta
	compras []model.Compra
	pagos   []model.Pago

	now func() time.Time
}

// New returns an empty ledger.
func New() *Ledger {
	return &Ledger{
		productos: make(map[uuid.UUID]*model.Producto),
		clientes:  make(map[uuid.UUID]*model.Cliente),
		now:       time.Now,
	}
}

// ─── Productos ───────────────────────────────────────────────────────────────

// origenPara applies the pricing rule: insumo prices are owned by purchases,
// everything else is operator-set.
func origenPara(tipo model.TipoProducto) model.OrigenPrecio {
	if tipo == model.TipoInsumo {
		return model.OrigenCompra
	}
	return model.OrigenManual
}

func (l *Ledger) CrearProducto(nombre string, precio, stock decimal.Decimal, categoria string, tipo model.TipoProducto, unidad string) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	if tipo == "" {
		tipo = model.TipoSimple
	}
	if unidad == "" {
		unidad = "unid"
	}
	p := &model.Producto{
		ID:           uuid.New(),
		Nombre:       nombre,
		Precio:       precio,
		Stock:        stock,
		Categoria:    categoria,
		Tipo:         tipo,
		Unidad:       unidad,
		OrigenPrecio: origenPara(tipo),
		CreatedAt:    l.now(),
		UpdatedAt:    l.now(),
	}
	l.productos[p.ID] = p
	l.ordenProductos = append(l.ordenProductos, p.ID)
	return p.ID
}

// ActualizarProducto replaces every mutable field of the product. Unknown id
// is a silent no-op: the caller always supplies an id it just listed.
func (l *Ledger) ActualizarProducto(id uuid.UUID, nombre string, precio, stock decimal.Decimal, categoria string, tipo model.TipoProducto, unidad string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.productos[id]
	if !ok {
		return
	}
	if tipo == "" {
		tipo = model.TipoSimple
	}
	if unidad == "" {
		unidad = "unid"
	}
	p.Nombre = nombre
	p.Precio = precio
	p.Stock = stock
	p.Categoria = categoria
	p.Tipo = tipo
	p.Unidad = unidad
	p.OrigenPrecio = origenPara(tipo)
	p.UpdatedAt = l.now()
}

// EliminarProducto removes the product and every recipe link it owns.
// Links that merely reference it as an ingredient are left dangling, as are
// historical ventas/compras rows; query paths resolve those to a sentinel.
func (l *Ledger) EliminarProducto(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.productos[id]; !ok {
		return
	}
	delete(l.productos, id)
	for i, pid := range l.ordenProductos {
		if pid == id {
			l.ordenProductos = append(l.ordenProductos[:i], l.ordenProductos[i+1:]...)
			break
		}
	}
	restantes := l.vinculos[:0]
	for _, v := range l.vinculos {
		if v.ProductoID != id {
			restantes = append(restantes, v)
		}
	}
	l.vinculos = restantes
}

func (l *Ledger) ObtenerProducto(id uuid.UUID) (model.Producto, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	p, ok := l.productos[id]
	if !ok {
		return model.Producto{}, false
	}
	return *p, true
}

// ListarProductos returns copies in creation order.
func (l *Ledger) ListarProductos() []model.Producto {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Producto, 0, len(l.ordenProductos))
	for _, id := range l.ordenProductos {
		out = append(out, *l.productos[id])
	}
	return out
}

// ─── Clientes ────────────────────────────────────────────────────────────────

func (l *Ledger) CrearCliente(nombre, telefono string) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	c := &model.Cliente{
		ID:        uuid.New(),
		Nombre:    nombre,
		Telefono:  telefono,
		Saldo:     decimal.Zero,
		CreatedAt: l.now(),
	}
	l.clientes[c.ID] = c
	l.ordenClientes = append(l.ordenClientes, c.ID)
	return c.ID
}

// EliminarCliente removes the customer without touching their venta/pago
// history (dangling references tolerated).
func (l *Ledger) EliminarCliente(id uuid.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.clientes[id]; !ok {
		return
	}
	delete(l.clientes, id)
	for i, cid := range l.ordenClientes {
		if cid == id {
			l.ordenClientes = append(l.ordenClientes[:i], l.ordenClientes[i+1:]...)
			break
		}
	}
}

func (l *Ledger) ObtenerCliente(id uuid.UUID) (model.Cliente, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clientes[id]
	if !ok {
		return model.Cliente{}, false
	}
	return *c, true
}

func (l *Ledger) ListarClientes() []model.Cliente {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Cliente, 0, len(l.ordenClientes))
	for _, id := range l.ordenClientes {
		out = append(out, *l.clientes[id])
	}
	return out
}

// ─── Recetas ─────────────────────────────────────────────────────────────────

// AgregarVinculoReceta appends one recipe edge. No cycle check happens at
// write time; RegistrarVenta detects cycles when it walks the graph.
func (l *Ledger) AgregarVinculoReceta(productoID, ingredienteID uuid.UUID, cantidad decimal.Decimal) uuid.UUID {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := model.VinculoReceta{
		ID:            uuid.New(),
		ProductoID:    productoID,
		IngredienteID: ingredienteID,
		Cantidad:      cantidad,
	}
	l.vinculos = append(l.vinculos, v)
	return v.ID
}

// VinculoNuevo describes one link of a replacement recipe set.
type VinculoNuevo struct {
	IngredienteID uuid.UUID
	Cantidad      decimal.Decimal
}

// ReemplazarReceta swaps the whole link set owned by productoID under one
// lock, so a concurrent sale deducts against either the old set or the new
// one, never a half-replaced mix. An empty items clears the recipe.
func (l *Ledger) ReemplazarReceta(productoID uuid.UUID, items []VinculoNuevo) {
	l.mu.Lock()
	defer l.mu.Unlock()

	restantes := l.vinculos[:0]
	for _, v := range l.vinculos {
		if v.ProductoID != productoID {
			restantes = append(restantes, v)
		}
	}
	l.vinculos = restantes
	for _, it := range items {
		l.vinculos = append(l.vinculos, model.VinculoReceta{
			ID:            uuid.New(),
			ProductoID:    productoID,
			IngredienteID: it.IngredienteID,
			Cantidad:      it.Cantidad,
		})
	}
}

// ItemReceta is one resolved recipe row.
type ItemReceta struct {
	IngredienteID uuid.UUID       `json:"ingrediente_id"`
	Nombre        string          `json:"nombre"`
	Cantidad      decimal.Decimal `json:"cantidad"`
}

// ObtenerReceta lists the links owned by productoID with ingredient names
// resolved. A deleted ingredient resolves to the sentinel label instead of
// breaking the query.
func (l *Ledger) ObtenerReceta(productoID uuid.UUID) []ItemReceta {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []ItemReceta
	for _, v := range l.vinculos {
		if v.ProductoID != productoID {
			continue
		}
		nombre := etiquetaDesconocido
		if ing, ok := l.productos[v.IngredienteID]; ok {
			nombre = ing.Nombre
		}
		out = append(out, ItemReceta{
			IngredienteID: v.IngredienteID,
			Nombre:        nombre,
			Cantidad:      v.Cantidad,
		})
	}
	return out
}
