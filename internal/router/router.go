package router

import (
	"github.com/gin-gonic/gin"

	"github.com/Gualguanosky/afterwod/internal/config"
	"github.com/Gualguanosky/afterwod/internal/handler"
	"github.com/Gualguanosky/afterwod/internal/ledger"
	"github.com/Gualguanosky/afterwod/internal/middleware"
	"github.com/Gualguanosky/afterwod/internal/service"
	"github.com/Gualguanosky/afterwod/internal/store"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Ledger + Store
func New(cfg *config.Config, led *ledger.Ledger, st store.Store) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	// ── Services ─────────────────────────────────────────────────────────────
	productoSvc := service.NewProductoService(led, st)
	clienteSvc := service.NewClienteService(led, st)
	ventaSvc := service.NewVentaService(led, st)
	reporteSvc := service.NewReporteService(led, st)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productosH := handler.NewProductosHandler(productoSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	movimientosH := handler.NewMovimientosHandler(ventaSvc, clienteSvc)
	reportesH := handler.NewReportesHandler(reporteSvc)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health())

	v1 := r.Group("/v1")
	{
		prods := v1.Group("/productos")
		{
			prods.POST("", productosH.Crear)
			prods.GET("", productosH.Listar)
			prods.GET("/:id", productosH.ObtenerPorID)
			prods.PUT("/:id", productosH.Actualizar)
			prods.DELETE("/:id", productosH.Eliminar)
			prods.GET("/:id/receta", productosH.ObtenerReceta)
			prods.PUT("/:id/receta", productosH.ReemplazarReceta)
		}

		clientes := v1.Group("/clientes")
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.DELETE("/:id", clientesH.Eliminar)
			clientes.GET("/:id/historial", clientesH.Historial)
			clientes.GET("/:id/totales", clientesH.Totales)
		}

		v1.POST("/ventas", movimientosH.RegistrarVenta)
		v1.GET("/ventas", movimientosH.HistorialVentas)
		v1.POST("/compras", movimientosH.RegistrarCompra)
		v1.POST("/pagos", movimientosH.RegistrarPago)

		reportes := v1.Group("/reportes")
		{
			reportes.GET("/resumen", reportesH.Resumen)
			reportes.GET("/historial", reportesH.Historial)
		}
	}

	return r
}
