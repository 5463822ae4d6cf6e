package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
)

func TestSeed(t *testing.T) {
	s := Seed()

	require.Len(t, s.Productos, 3)
	require.Len(t, s.Clientes, 2)
	require.Len(t, s.Vinculos, 1)
	assert.Empty(t, s.Ventas)
	assert.Empty(t, s.Compras)
	assert.Empty(t, s.Pagos)

	porTipo := make(map[model.TipoProducto]model.Producto)
	for _, p := range s.Productos {
		porTipo[p.Tipo] = p
	}
	require.Contains(t, porTipo, model.TipoInsumo)
	require.Contains(t, porTipo, model.TipoCompuesto)
	require.Contains(t, porTipo, model.TipoSimple)

	// The recipe link ties the seeded compuesto to the seeded insumo.
	v := s.Vinculos[0]
	assert.Equal(t, porTipo[model.TipoCompuesto].ID, v.ProductoID)
	assert.Equal(t, porTipo[model.TipoInsumo].ID, v.IngredienteID)
	assert.Equal(t, model.OrigenCompra, porTipo[model.TipoInsumo].OrigenPrecio)

	// A seed must hydrate cleanly.
	led := ledger.NewFromState(s)
	assert.Len(t, led.ListarProductos(), 3)
	assert.Len(t, led.ListarClientes(), 2)
}

func TestSeedFechasDistintas(t *testing.T) {
	s := Seed()

	// Stores that order a reload by created_at need unambiguous stamps.
	for i := 1; i < len(s.Productos); i++ {
		assert.True(t, s.Productos[i].CreatedAt.After(s.Productos[i-1].CreatedAt),
			"producto %d debe ser posterior al %d", i, i-1)
	}
	for i := 1; i < len(s.Clientes); i++ {
		assert.True(t, s.Clientes[i].CreatedAt.After(s.Clientes[i-1].CreatedAt),
			"cliente %d debe ser posterior al %d", i, i-1)
	}
}
