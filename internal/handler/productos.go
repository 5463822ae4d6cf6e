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

type ProductosHandler struct{ svc service.ProductoService }

func NewProductosHandler(svc service.ProductoService) *ProductosHandler {
	return &ProductosHandler{svc: svc}
}

func (h *ProductosHandler) Crear(c *gin.Context) {
	var req dto.CrearProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p := h.svc.Crear(c.Request.Context(), req)
	c.JSON(http.StatusCreated, p)
}

func (h *ProductosHandler) Listar(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Listar(c.Request.Context()))
}

func (h *ProductosHandler) ObtenerPorID(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	p, ok := h.svc.Obtener(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, apierror.New("Producto no encontrado"))
		return
	}
	c.JSON(http.StatusOK, p)
}

// Actualizar replaces every mutable field. An unknown id is a silent no-op in
// the engine, so the handler always answers 204.
func (h *ProductosHandler) Actualizar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ActualizarProductoRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.svc.Actualizar(c.Request.Context(), id, req)
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) Eliminar(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	h.svc.Eliminar(c.Request.Context(), id)
	c.Status(http.StatusNoContent)
}

func (h *ProductosHandler) ObtenerReceta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	items := h.svc.ObtenerReceta(c.Request.Context(), id)
	if items == nil {
		items = []ledger.ItemReceta{}
	}
	c.JSON(http.StatusOK, items)
}

func (h *ProductosHandler) ReemplazarReceta(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return
	}
	var req dto.ReemplazarRecetaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	h.svc.ReemplazarReceta(c.Request.Context(), id, req)
	c.Status(http.StatusNoContent)
}
