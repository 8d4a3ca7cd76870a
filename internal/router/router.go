package router

import (
	"time"

	"dalctmarket/internal/authz"
	"dalctmarket/internal/config"
	"dalctmarket/internal/handler"
	"dalctmarket/internal/middleware"
	"dalctmarket/internal/repository"
	"dalctmarket/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← DB/Redis
func New(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *gin.Engine {
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
	r.Use(middleware.RateLimiter(1000, time.Minute)) // 1000 req/min per IP

	// ── Repositories ─────────────────────────────────────────────────────────
	usuarioRepo := repository.NewUsuarioRepository(db)
	clienteRepo := repository.NewClienteRepository(db)
	categoriaRepo := repository.NewCategoriaRepository(db)
	proveedorRepo := repository.NewProveedorRepository(db)
	productoRepo := repository.NewProductoRepository(db)
	inventarioRepo := repository.NewInventarioRepository(db)
	promocionRepo := repository.NewPromocionRepository(db)
	cajaRepo := repository.NewCajaRepository(db)
	ventaRepo := repository.NewVentaRepository(db)
	parametroRepo := repository.NewParametroRepository(db)

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := service.NewAuthService(usuarioRepo, cfg)
	categoriaSvc := service.NewCategoriaService(categoriaRepo)
	proveedorSvc := service.NewProveedorService(proveedorRepo)
	clienteSvc := service.NewClienteService(clienteRepo)
	productoSvc := service.NewProductoService(productoRepo, categoriaRepo, proveedorRepo)
	inventarioSvc := service.NewInventarioService(inventarioRepo, productoRepo)
	promocionSvc := service.NewPromocionService(promocionRepo, productoRepo)
	parametroSvc := service.NewParametroService(parametroRepo, rdb)
	cajaSvc := service.NewCajaService(cajaRepo, ventaRepo)
	ventaSvc := service.NewVentaService(ventaRepo, cajaRepo, clienteRepo, inventarioRepo,
		inventarioSvc, promocionSvc, cajaSvc, parametroSvc)
	comprobanteSvc := service.NewComprobanteService(ventaRepo, parametroRepo, cfg.PDFStoragePath)

	// ── Handlers ─────────────────────────────────────────────────────────────
	authH := handler.NewAuthHandler(authSvc)
	categoriasH := handler.NewCategoriasHandler(categoriaSvc)
	proveedoresH := handler.NewProveedoresHandler(proveedorSvc)
	clientesH := handler.NewClientesHandler(clienteSvc)
	productosH := handler.NewProductosHandler(productoSvc)
	inventarioH := handler.NewInventarioHandler(inventarioSvc)
	promocionesH := handler.NewPromocionesHandler(promocionSvc)
	parametrosH := handler.NewParametrosHandler(parametroSvc)
	cajaH := handler.NewCajaHandler(cajaSvc)
	ventasH := handler.NewVentasHandler(ventaSvc, comprobanteSvc)
	consultaH := handler.NewConsultaPreciosHandler(productoRepo, promocionSvc, rdb)

	// ── Routes ───────────────────────────────────────────────────────────────

	// Public
	r.GET("/health", handler.Health(db, rdb))

	// Auth (public)
	auth := r.Group("/v1/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), authH.Login)
		auth.POST("/refresh", authH.Refresh)
	}

	// Price check — no auth required
	r.GET("/v1/precio/:nombre", consultaH.PorNombre)

	// Protected routes. Each resource group is gated by the static permission
	// table; the HTTP verb is the acción.
	permisos := authz.New()
	jwtMW := middleware.JWTAuth(cfg.JWTSecret)
	v1 := r.Group("/v1", jwtMW)
	{
		usuarios := v1.Group("/usuarios", middleware.RequirePermiso(permisos, authz.RecursoUsuarios))
		{
			usuarios.POST("", authH.CrearUsuario)
			usuarios.GET("", authH.ListarUsuarios)
			usuarios.PUT("/:id", authH.ActualizarUsuario)
			usuarios.DELETE("/:id", authH.DesactivarUsuario)
		}

		categorias := v1.Group("/categorias", middleware.RequirePermiso(permisos, authz.RecursoCategorias))
		{
			categorias.POST("", categoriasH.Crear)
			categorias.GET("", categoriasH.Listar)
			categorias.PUT("/:id", categoriasH.Actualizar)
			categorias.DELETE("/:id", categoriasH.Desactivar)
		}

		proveedores := v1.Group("/proveedores", middleware.RequirePermiso(permisos, authz.RecursoProveedores))
		{
			proveedores.POST("", proveedoresH.Crear)
			proveedores.GET("", proveedoresH.Listar)
			proveedores.GET("/:id", proveedoresH.PorID)
			proveedores.PUT("/:id", proveedoresH.Actualizar)
			proveedores.DELETE("/:id", proveedoresH.Desactivar)
		}

		clientes := v1.Group("/clientes", middleware.RequirePermiso(permisos, authz.RecursoClientes))
		{
			clientes.POST("", clientesH.Crear)
			clientes.GET("", clientesH.Listar)
			clientes.GET("/cedula/:cedula", clientesH.PorCedula)
			clientes.PUT("/:id", clientesH.Actualizar)
			clientes.DELETE("/:id", clientesH.Desactivar)
		}

		productos := v1.Group("/productos", middleware.RequirePermiso(permisos, authz.RecursoProductos))
		{
			productos.POST("", productosH.Crear)
			productos.GET("", productosH.Listar)
			productos.GET("/buscar", productosH.Buscar)
			productos.GET("/:id", productosH.PorID)
			productos.PUT("/:id", productosH.Actualizar)
			productos.DELETE("/:id", productosH.Desactivar)
			productos.PUT("/:id/reactivar", productosH.Reactivar)
		}

		inventario := v1.Group("/inventario", middleware.RequirePermiso(permisos, authz.RecursoInventario))
		{
			inventario.GET("", inventarioH.Listar)
			inventario.GET("/alertas", inventarioH.AlertasStock)
			inventario.GET("/:id", inventarioH.PorProducto)
			inventario.PUT("/:id", inventarioH.Actualizar)
		}

		promociones := v1.Group("/promociones", middleware.RequirePermiso(permisos, authz.RecursoPromocion))
		{
			promociones.POST("", promocionesH.Crear)
			promociones.GET("", promocionesH.Listar)
			promociones.GET("/producto/:id", promocionesH.ActivasPorProducto)
			promociones.DELETE("/:id", promocionesH.Desactivar)
		}

		parametros := v1.Group("/parametros", middleware.RequirePermiso(permisos, authz.RecursoParametros))
		{
			parametros.POST("", parametrosH.Crear)
			parametros.GET("", parametrosH.Listar)
			parametros.GET("/:clave", parametrosH.PorClave)
			parametros.PUT("/:clave", parametrosH.Actualizar)
		}

		caja := v1.Group("/caja", middleware.RequirePermiso(permisos, authz.RecursoCaja))
		{
			caja.POST("/abrir", cajaH.Abrir)
			caja.GET("/hoy", cajaH.ListarHoy)
			caja.GET("", cajaH.ListarTodas)
			caja.GET("/filtrar", cajaH.Filtrar)
			caja.PUT("/:id/cerrar", cajaH.Cerrar)
			caja.PUT("/:id/reabrir", cajaH.Reabrir)
		}

		ventas := v1.Group("/ventas", middleware.RequirePermiso(permisos, authz.RecursoVenta))
		{
			ventas.POST("", ventasH.Crear)
			ventas.GET("/hoy", ventasH.ListarHoy)
			ventas.GET("/historico", ventasH.ListarHistorico)
			ventas.GET("/:id", ventasH.PorID)
			ventas.GET("/:id/comprobante", ventasH.Comprobante)
			ventas.PUT("/:id/anular", ventasH.Anular)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
