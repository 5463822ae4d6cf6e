package gormstore

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/store"
)

func TestLoadSinEstado(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "afterwod.db"))
	require.NoError(t, err)

	_, err = s.Load(context.Background())
	assert.ErrorIs(t, err, store.ErrSinEstado)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "afterwod.db")
	s, err := New(path)
	require.NoError(t, err)

	semilla := store.Seed()
	require.NoError(t, s.Save(context.Background(), semilla))

	// Re-open as a fresh process would.
	s2, err := New(path)
	require.NoError(t, err)
	cargado, err := s2.Load(context.Background())
	require.NoError(t, err)

	require.Len(t, cargado.Productos, 3)
	require.Len(t, cargado.Clientes, 2)
	require.Len(t, cargado.Vinculos, 1)

	led := ledger.NewFromState(*cargado)
	productos := led.ListarProductos()
	nombres := make([]string, 0, len(productos))
	for _, p := range productos {
		nombres = append(nombres, p.Nombre)
	}
	// Creation order survives the reload (Load orders by created_at).
	assert.Equal(t, []string{"Café molido", "Café americano", "Gaseosa 350ml"}, nombres)
	assert.Equal(t, "Marta Rojas", cargado.Clientes[0].Nombre)
}

func TestLoadConservaHistorialSinCatalogo(t *testing.T) {
	path := filepath.Join(t.TempDir(), "afterwod.db")
	s, err := New(path)
	require.NoError(t, err)

	// A shop can end up with history but no catalog: sell a product for
	// cash, then discontinue it. The history rows alone are saved state.
	led := ledger.New()
	id := led.CrearProducto("Pan", ledger.CoerceMonto("500"), ledger.CoerceMonto("10"), "", "simple", "unid")
	_, err = led.RegistrarVenta(id, ledger.CoerceMonto("1"), ledger.CoerceMonto("500"), nil, "Efectivo")
	require.NoError(t, err)
	led.EliminarProducto(id)
	require.NoError(t, s.Save(context.Background(), led.Snapshot()))

	s2, err := New(path)
	require.NoError(t, err)
	cargado, err := s2.Load(context.Background())
	require.NoError(t, err, "history without catalog must not fall back to the seed")
	assert.Empty(t, cargado.Productos)
	require.Len(t, cargado.Ventas, 1)
	assert.Equal(t, id, cargado.Ventas[0].ProductoID)
}

func TestSaveReemplazaTodo(t *testing.T) {
	s, err := New(filepath.Join(t.TempDir(), "afterwod.db"))
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), store.Seed()))

	// Second snapshot with a single product replaces the first wholesale.
	led := ledger.New()
	led.CrearProducto("Pan", ledger.CoerceMonto("500"), ledger.CoerceMonto("10"), "", "simple", "unid")
	require.NoError(t, s.Save(context.Background(), led.Snapshot()))

	cargado, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, cargado.Productos, 1)
	assert.Equal(t, "Pan", cargado.Productos[0].Nombre)
	assert.Empty(t, cargado.Clientes)
}
