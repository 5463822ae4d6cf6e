package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gualguanosky/afterwod/internal/config"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/model"
	"github.com/Gualguanosky/afterwod/internal/router"
	"github.com/Gualguanosky/afterwod/internal/store"
)

type memStore struct{ ultimo *ledger.State }

func (m *memStore) Load(context.Context) (*ledger.State, error) {
	if m.ultimo == nil {
		return nil, store.ErrSinEstado
	}
	return m.ultimo, nil
}

func (m *memStore) Save(_ context.Context, s ledger.State) error {
	m.ultimo = &s
	return nil
}

func nuevoRouter(led *ledger.Ledger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return router.New(&config.Config{Env: "test"}, led, &memStore{})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := nuevoRouter(ledger.New())
	w := doJSON(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCrearYListarProductos(t *testing.T) {
	r := nuevoRouter(ledger.New())

	w := doJSON(t, r, http.MethodPost, "/v1/productos",
		`{"nombre":"Gaseosa 350ml","precio":"3000","stock":"24","tipo":"simple","unidad":"unid"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var creado model.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creado))
	assert.Equal(t, "Gaseosa 350ml", creado.Nombre)

	w = doJSON(t, r, http.MethodGet, "/v1/productos", "")
	require.Equal(t, http.StatusOK, w.Code)
	var lista []model.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &lista))
	assert.Len(t, lista, 1)
}

func TestCrearProductoSinNombre(t *testing.T) {
	r := nuevoRouter(ledger.New())
	w := doJSON(t, r, http.MethodPost, "/v1/productos", `{"precio":"3000"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCrearProductoPrecioInvalidoNoSeRechaza(t *testing.T) {
	r := nuevoRouter(ledger.New())
	w := doJSON(t, r, http.MethodPost, "/v1/productos",
		`{"nombre":"Pan","precio":"no-numerico","stock":""}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var creado model.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &creado))
	assert.True(t, creado.Precio.IsZero())
	assert.True(t, creado.Stock.IsZero())
}

func TestActualizarProductoDesconocidoEs204(t *testing.T) {
	r := nuevoRouter(ledger.New())
	w := doJSON(t, r, http.MethodPut, "/v1/productos/5bfe5ad2-0e2c-4b64-94b4-bbd4eb3f8c2d",
		`{"nombre":"Pan"}`)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestVentaRecetaCiclicaDa409(t *testing.T) {
	led := ledger.New()
	a := led.CrearProducto("A", ledger.CoerceMonto("1"), ledger.CoerceMonto("10"), "", model.TipoCompuesto, "unid")
	b := led.CrearProducto("B", ledger.CoerceMonto("1"), ledger.CoerceMonto("10"), "", model.TipoCompuesto, "unid")
	led.AgregarVinculoReceta(a, b, ledger.CoerceMonto("1"))
	led.AgregarVinculoReceta(b, a, ledger.CoerceMonto("1"))

	r := nuevoRouter(led)
	w := doJSON(t, r, http.MethodPost, "/v1/ventas",
		`{"producto_id":"`+a.String()+`","cantidad":"1","total":"100"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestFlujoFiadoCompleto(t *testing.T) {
	r := nuevoRouter(ledger.New())

	w := doJSON(t, r, http.MethodPost, "/v1/productos",
		`{"nombre":"Pan","precio":"500","stock":"10"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var pan model.Producto
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pan))

	w = doJSON(t, r, http.MethodPost, "/v1/clientes", `{"nombre":"Marta"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var marta model.Cliente
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &marta))

	w = doJSON(t, r, http.MethodPost, "/v1/ventas",
		`{"producto_id":"`+pan.ID.String()+`","cantidad":"2","total":"1000","cliente_id":"`+marta.ID.String()+`","metodo":"Fiado"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/pagos",
		`{"cliente_id":"`+marta.ID.String()+`","monto":"400","metodo":"Nequi"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/clientes/"+marta.ID.String()+"/totales", "")
	require.Equal(t, http.StatusOK, w.Code)
	var totales struct {
		TotalComprado string `json:"total_comprado"`
		TotalPagado   string `json:"total_pagado"`
		Saldo         string `json:"saldo"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &totales))
	assert.Equal(t, "1000", totales.TotalComprado)
	assert.Equal(t, "400", totales.TotalPagado)
	assert.Equal(t, "600", totales.Saldo)

	w = doJSON(t, r, http.MethodGet, "/v1/reportes/historial", "")
	require.Equal(t, http.StatusOK, w.Code)
	var historial []ledger.Entrada
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &historial))
	require.Len(t, historial, 2)
	assert.Equal(t, "pago", historial[0].Tipo)
	assert.Equal(t, "venta", historial[1].Tipo)
}

func TestRecetaEndpoints(t *testing.T) {
	led := ledger.New()
	compuesto := led.CrearProducto("Café americano", ledger.CoerceMonto("3500"), ledger.CoerceMonto("0"), "", model.TipoCompuesto, "unid")
	insumo := led.CrearProducto("Café molido", ledger.CoerceMonto("0"), ledger.CoerceMonto("1000"), "", model.TipoInsumo, "gr")

	r := nuevoRouter(led)
	w := doJSON(t, r, http.MethodPut, "/v1/productos/"+compuesto.String()+"/receta",
		`{"items":[{"ingrediente_id":"`+insumo.String()+`","cantidad":"18"}]}`)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/productos/"+compuesto.String()+"/receta", "")
	require.Equal(t, http.StatusOK, w.Code)
	var receta []ledger.ItemReceta
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &receta))
	require.Len(t, receta, 1)
	assert.Equal(t, "Café molido", receta[0].Nombre)
}
