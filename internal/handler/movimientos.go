package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gualguanosky/afterwod/internal/apierror"
	"github.com/Gualguanosky/afterwod/internal/dto"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/service"
)

type MovimientosHandler struct {
	ventas   service.VentaService
	clientes service.ClienteService
}

func NewMovimientosHandler(ventas service.VentaService, clientes service.ClienteService) *MovimientosHandler {
	return &MovimientosHandler{ventas: ventas, clientes: clientes}
}

func (h *MovimientosHandler) RegistrarVenta(c *gin.Context) {
	var req dto.RegistrarVentaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.ventas.RegistrarVenta(c.Request.Context(), req)
	if err != nil {
		var ciclo *ledger.RecetaCiclicaError
		if errors.As(err, &ciclo) {
			// Structurally impossible request: the recipe graph cycles.
			c.JSON(http.StatusConflict, apierror.New(ciclo.Error()))
			return
		}
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}

func (h *MovimientosHandler) HistorialVentas(c *gin.Context) {
	c.JSON(http.StatusOK, h.ventas.HistorialVentas(c.Request.Context()))
}

func (h *MovimientosHandler) RegistrarCompra(c *gin.Context) {
	var req dto.RegistrarCompraRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.ventas.RegistrarCompra(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}

func (h *MovimientosHandler) RegistrarPago(c *gin.Context) {
	var req dto.RegistrarPagoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.clientes.RegistrarPago(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	c.JSON(http.StatusCreated, dto.IDResponse{ID: id.String()})
}
