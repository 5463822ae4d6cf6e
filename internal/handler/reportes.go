package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gualguanosky/afterwod/internal/service"
)

type ReportesHandler struct{ svc service.ReporteService }

func NewReportesHandler(svc service.ReporteService) *ReportesHandler {
	return &ReportesHandler{svc: svc}
}

// Resumen serves the all-time totals and per-customer breakdown. Any "today"
// framing belongs to the front-end label, not to this endpoint.
func (h *ReportesHandler) Resumen(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Resumen(c.Request.Context()))
}

func (h *ReportesHandler) Historial(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.HistorialCombinado(c.Request.Context()))
}
