package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gualguanosky/afterwod/internal/model"
)

func TestResumenFinanciero(t *testing.T) {
	l := New()
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	jorge := l.CrearCliente("Jorge", "")

	_, err := l.RegistrarVenta(pan, d("2"), d("1000"), &marta, "Fiado")
	require.NoError(t, err)
	_, err = l.RegistrarVenta(pan, d("1"), d("500"), &jorge, "Fiado")
	require.NoError(t, err)
	_, err = l.RegistrarVenta(pan, d("1"), d("500"), nil, "Efectivo")
	require.NoError(t, err)
	l.RegistrarCompra(pan, d("50"), d("20000"))
	l.RegistrarPago(jorge, d("200"), "Nequi")

	r := l.ResumenFinanciero()
	assert.True(t, r.TotalVentas.Equal(d("2000")))
	assert.True(t, r.TotalCompras.Equal(d("20000")))

	require.Len(t, r.Clientes, 2, "solo clientes con ventas")
	// Sorted by name: Jorge, Marta.
	assert.Equal(t, "Jorge", r.Clientes[0].Nombre)
	assert.True(t, r.Clientes[0].TotalComprado.Equal(d("500")))
	assert.True(t, r.Clientes[0].Saldo.Equal(d("300")))
	assert.Equal(t, "Marta", r.Clientes[1].Nombre)
	assert.True(t, r.Clientes[1].TotalComprado.Equal(d("1000")))
}

func TestResumenFinancieroEsPuroEIdempotente(t *testing.T) {
	l := New()
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	_, err := l.RegistrarVenta(pan, d("2"), d("1000"), &marta, "Fiado")
	require.NoError(t, err)

	primero := l.ResumenFinanciero()
	segundo := l.ResumenFinanciero()
	assert.Equal(t, primero, segundo)

	// And it never mutates: stock and saldo are what the operations left.
	assert.True(t, stockDe(t, l, pan).Equal(d("98")))
	c, _ := l.ObtenerCliente(marta)
	assert.True(t, c.Saldo.Equal(d("1000")))
}

func TestResumenClienteEliminadoUsaEtiqueta(t *testing.T) {
	l := New()
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	_, err := l.RegistrarVenta(pan, d("1"), d("500"), &marta, "Fiado")
	require.NoError(t, err)

	l.EliminarCliente(marta)

	r := l.ResumenFinanciero()
	require.Len(t, r.Clientes, 1)
	assert.Equal(t, "desconocido", r.Clientes[0].Nombre)
	assert.True(t, r.Clientes[0].Saldo.IsZero())
}

func TestHistorialCombinadoOrdenDescendente(t *testing.T) {
	l := New()
	l.fijarReloj(relojSecuencial())
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")

	_, err := l.RegistrarVenta(pan, d("1"), d("500"), &marta, "Fiado") // t1
	require.NoError(t, err)
	l.RegistrarPago(marta, d("500"), "Nequi") // t2

	var entradas []Entrada
	for e := range l.HistorialCombinado() {
		entradas = append(entradas, e)
	}
	require.Len(t, entradas, 2)
	assert.Equal(t, "pago", entradas[0].Tipo, "el pago (más reciente) va primero")
	assert.Equal(t, "Marta", entradas[0].Detalle)
	assert.Equal(t, "Nequi", entradas[0].Info)
	assert.Equal(t, "venta", entradas[1].Tipo)
	assert.Equal(t, "Pan", entradas[1].Detalle)
	assert.Equal(t, "1", entradas[1].Info)
}

func TestHistorialCombinadoEsReiniciable(t *testing.T) {
	l := New()
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	for i := 0; i < 3; i++ {
		_, err := l.RegistrarVenta(pan, d("1"), d("500"), nil, "Efectivo")
		require.NoError(t, err)
	}

	seq := l.HistorialCombinado()

	// Early break, then a full restart over the same sequence.
	n := 0
	for range seq {
		n++
		if n == 1 {
			break
		}
	}
	total := 0
	for range seq {
		total++
	}
	assert.Equal(t, 1, n)
	assert.Equal(t, 3, total)
}

func TestHistorialCombinadoReferenciasColgantes(t *testing.T) {
	l := New()
	l.fijarReloj(relojSecuencial())
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	_, err := l.RegistrarVenta(pan, d("1"), d("500"), &marta, "Fiado")
	require.NoError(t, err)
	l.RegistrarPago(marta, d("100"), "Efectivo")

	l.EliminarProducto(pan)
	l.EliminarCliente(marta)

	var entradas []Entrada
	for e := range l.HistorialCombinado() {
		entradas = append(entradas, e)
	}
	require.Len(t, entradas, 2)
	assert.Equal(t, "desconocido", entradas[0].Detalle)
	assert.Equal(t, "desconocido", entradas[1].Detalle)
}

func TestHistorialVentas(t *testing.T) {
	l := New()
	l.fijarReloj(relojSecuencial())
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	_, err := l.RegistrarVenta(pan, d("1"), d("500"), nil, "Efectivo")
	require.NoError(t, err)
	_, err = l.RegistrarVenta(pan, d("2"), d("1000"), &marta, "Fiado")
	require.NoError(t, err)

	ventas := l.HistorialVentas()
	require.Len(t, ventas, 2)
	// Newest first.
	assert.Equal(t, "Marta", ventas[0].Cliente)
	assert.Equal(t, "", ventas[1].Cliente, "venta de contado sin cliente")
}

func TestHistorialYTotalesCliente(t *testing.T) {
	l := New()
	l.fijarReloj(relojSecuencial())
	pan := l.CrearProducto("Pan", d("500"), d("100"), "", model.TipoSimple, "unid")
	marta := l.CrearCliente("Marta", "")
	jorge := l.CrearCliente("Jorge", "")

	_, err := l.RegistrarVenta(pan, d("2"), d("1000"), &marta, "Fiado")
	require.NoError(t, err)
	l.RegistrarPago(marta, d("400"), "Nequi")
	_, err = l.RegistrarVenta(pan, d("1"), d("500"), &jorge, "Fiado")
	require.NoError(t, err)

	historial := l.HistorialCliente(marta)
	require.Len(t, historial, 2, "solo los movimientos de Marta")
	assert.Equal(t, "abono", historial[0].Tipo)
	assert.Equal(t, "Nequi", historial[0].Detalle)
	assert.Equal(t, "compra", historial[1].Tipo)
	assert.Equal(t, "Pan", historial[1].Detalle)

	comprado, pagado := l.TotalesCliente(marta)
	assert.True(t, comprado.Equal(d("1000")))
	assert.True(t, pagado.Equal(d("400")))
}

func TestHistorialClienteVacio(t *testing.T) {
	l := New()
	cliente := l.CrearCliente("Marta", "")

	assert.Empty(t, l.HistorialCliente(cliente))
	comprado, pagado := l.TotalesCliente(cliente)
	assert.True(t, comprado.IsZero())
	assert.True(t, pagado.IsZero())
}
