package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/catalog"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/application/movement"
	"github.com/jhoicas/almacen-api/internal/application/query"
	"github.com/jhoicas/almacen-api/internal/application/report"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC     *auth.AuthUseCase
	UserUC     *usecase.UserUseCase
	CatalogUC  *catalog.UseCase
	ProductUC  *query.ProductUseCase
	StockUC    *inventory.StockUseCase
	MovementUC *movement.HistoryUseCase
	ReportUC   *report.StockReportUseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Consultas de stock (público: las usa la vista principal sin sesión)
	productHandler := NewProductHandler(deps.ProductUC)
	api.Get("/productos", productHandler.List)
	api.Get("/productos-agrupados", productHandler.ListGrouped)
	api.Get("/productos/:id", productHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Catálogos (protegido)
	catalogGroup := protected.Group("/catalogo")
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	catalogGroup.Get("/prendas", catalogHandler.ListGarments)
	catalogGroup.Post("/prendas", catalogHandler.CreateGarment)
	catalogGroup.Delete("/prendas/:id", catalogHandler.DeleteGarment)
	catalogGroup.Get("/marcas", catalogHandler.ListBrands)
	catalogGroup.Post("/marcas", catalogHandler.CreateBrand)
	catalogGroup.Delete("/marcas/:id", catalogHandler.DeleteBrand)

	// Mutaciones de stock (protegido; la baja directa es solo admin)
	stockHandler := NewStockHandler(deps.StockUC)
	protected.Post("/productos", stockHandler.Add)
	protected.Put("/productos/:id", stockHandler.Edit)
	protected.Delete("/productos/:id", RequireRole(entity.RoleAdmin), stockHandler.Delete)
	protected.Post("/salidas", stockHandler.Remove)

	// Histórico de movimientos (protegido)
	movementHandler := NewMovementHandler(deps.MovementUC)
	protected.Get("/movimientos", movementHandler.Page)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reportes/inventario", reportHandler.StockPDF)

	// Usuarios (solo admin)
	users := protected.Group("/usuarios", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Create)
	users.Delete("/:id", userHandler.Delete)
}
