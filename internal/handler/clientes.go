package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gualguanosky/afterwod/internal/apierror"
	"github.com/Gualguanosky/afterwod/internal/dto"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/service"
)

type ClientesHandler struct{ svc service.ClienteService }

func NewClientesHandler(svc service.ClienteService) *ClientesHandler {
	return &ClientesHandler{svc: svc}
}

func (h *ClientesHandler) Crear(c *gin.Context) {
	var req dto.CrearClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	cli := h.svc.Crear(c.Request.Context(), req)
	c.JSON(http.StatusCreated, cli)
}

func (h *ClientesHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *ClientesHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	h.svc.Eliminar(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

// Historial returns the customer's merged compras fiadas + abonos, newest
// first. Works for deleted customers too: history is immutable.
func (h *ClientesHandler) Historial(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	entradas := h.svc.Historial(c.Request.Context(), id)
	if entradas == nil {
		entradas = []ledger.Entrada{}
	}
	c.JSON(http.StatusOK, entradas)
}

func (h *ClientesHandler) Totales(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	c.JSON(http.StatusOK, h.svc.Totales(c.Request.Context(), id))
}
