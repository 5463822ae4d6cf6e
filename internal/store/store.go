// Package store defines the snapshot persistence collaborator. The ledger is
// agnostic to how its state is durably stored: after every successful
// mutation the service layer hands a full snapshot to a Store, best-effort.
// A Store failure is logged and never aborts or corrupts the in-memory
// mutation that triggered it.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
)

// ErrSinEstado signals that no saved state exists yet; the caller falls back
// to the seed dataset.
var ErrSinEstado = errors.New("store: sin estado guardado")

type Store interface {
	// Load rehydrates the last saved snapshot, or ErrSinEstado.
	Load(ctx context.Context) (*ledger.State, error)
	// Save replaces the saved snapshot with s.
	Save(ctx context.Context, s ledger.State) error
}

// Seed is the fixed dataset used on first run: three products (one insumo,
// one compuesto with a recipe link, one simple) and two wallet customers.
func Seed() ledger.State {
	// Distinct timestamps: sqlite restores listings ordered by created_at,
	// so seed rows need an unambiguous creation order.
	ahora := time.Now()
	cafeMolido := model.Producto{
		ID:           uuid.New(),
		Nombre:       "Café molido",
		Precio:       decimal.Zero,
		Stock:        decimal.NewFromInt(1000),
		Categoria:    "Insumos",
		Tipo:         model.TipoInsumo,
		Unidad:       "gr",
		OrigenPrecio: model.OrigenCompra,
		CreatedAt:    ahora,
		UpdatedAt:    ahora,
	}
	cafeAmericano := model.Producto{
		ID:           uuid.New(),
		Nombre:       "Café americano",
		Precio:       decimal.NewFromInt(3500),
		Stock:        decimal.NewFromInt(0),
		Categoria:    "Bebidas calientes",
		Tipo:         model.TipoCompuesto,
		Unidad:       "unid",
		OrigenPrecio: model.OrigenManual,
		CreatedAt:    ahora.Add(time.Second),
		UpdatedAt:    ahora.Add(time.Second),
	}
	gaseosa := model.Producto{
		ID:           uuid.New(),
		Nombre:       "Gaseosa 350ml",
		Precio:       decimal.NewFromInt(3000),
		Stock:        decimal.NewFromInt(24),
		Categoria:    "Bebidas frías",
		Tipo:         model.TipoSimple,
		Unidad:       "unid",
		OrigenPrecio: model.OrigenManual,
		CreatedAt:    ahora.Add(2 * time.Second),
		UpdatedAt:    ahora.Add(2 * time.Second),
	}

	return ledger.State{
		Productos: []model.Producto{cafeMolido, cafeAmericano, gaseosa},
		Clientes: []model.Cliente{
			{ID: uuid.New(), Nombre: "Marta Rojas", Telefono: "3004561234", Saldo: decimal.Zero, CreatedAt: ahora},
			{ID: uuid.New(), Nombre: "Jorge Pineda", Saldo: decimal.Zero, CreatedAt: ahora.Add(time.Second)},
		},
		Vinculos: []model.VinculoReceta{
			{
				ID:            uuid.New(),
				ProductoID:    cafeAmericano.ID,
				IngredienteID: cafeMolido.ID,
				Cantidad:      decimal.NewFromInt(18),
			},
		},
		Ventas:  []model.Venta{},
		Compras: []model.Compra{},
		Pagos:   []model.Pago{},
	}
}
