package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	"github.com/jhoicas/Produccion-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	ProductionUC *usecase.ProductionUseCase
	AnalyticsUC  *analytics.AnalyticsUseCase
	DashboardUC  *usecase.DashboardUseCase
	HospitalUC   *usecase.HospitalUseCase
	EmployeeUC   *usecase.EmployeeUseCase
	ProductUC    *usecase.ProductUseCase
	CategoryUC   *usecase.CategoryUseCase
	InventoryUC  *usecase.InventoryUseCase
	ActivityUC   *usecase.ActivityUseCase
	ReportUC     *usecase.ReportUseCase
	JWTSecret    string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registros de producción (protegido)
	entries := protected.Group("/production-entries")
	productionHandler := NewProductionHandler(deps.ProductionUC)
	entries.Post("/", productionHandler.Create)
	entries.Get("/", productionHandler.List)
	entries.Get("/:id", productionHandler.GetByID)
	entries.Put("/:id", productionHandler.Update)
	entries.Delete("/:id", RequireRole(entity.RoleAdmin, entity.RoleSupervisor), productionHandler.Delete)

	// Analítica (protegido)
	analyticsGroup := protected.Group("/analytics")
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	analyticsGroup.Get("/summary", analyticsHandler.Summary)
	analyticsGroup.Get("/weekly", analyticsHandler.Weekly)
	analyticsGroup.Get("/by-category", analyticsHandler.ByCategory)
	analyticsGroup.Get("/comparative", analyticsHandler.Comparative)
	analyticsGroup.Get("/rankings", analyticsHandler.Rankings)
	analyticsGroup.Get("/deep-report", analyticsHandler.DeepReport)
	analyticsGroup.Get("/insights", analyticsHandler.Insights)

	// Dashboard (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Hospitales (protegido)
	hospitals := protected.Group("/hospitals")
	hospitalHandler := NewHospitalHandler(deps.HospitalUC)
	hospitals.Post("/", hospitalHandler.Create)
	hospitals.Get("/", hospitalHandler.List)
	hospitals.Get("/:id", hospitalHandler.GetByID)
	hospitals.Put("/:id", hospitalHandler.Update)
	hospitals.Delete("/:id", RequireRole(entity.RoleAdmin), hospitalHandler.Delete)

	// Empleados (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", RequireRole(entity.RoleAdmin), employeeHandler.Delete)

	// Productos (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", RequireRole(entity.RoleAdmin), productHandler.Delete)

	// Categorías de producto (protegido)
	categories := protected.Group("/categories")
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	categories.Post("/", categoryHandler.Create)
	categories.Get("/", categoryHandler.List)
	categories.Get("/:id", categoryHandler.GetByID)
	categories.Put("/:id", categoryHandler.Update)
	categories.Delete("/:id", RequireRole(entity.RoleAdmin), categoryHandler.Delete)

	// Inventario (protegido)
	inventory := protected.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inventory.Post("/items", inventoryHandler.CreateItem)
	inventory.Get("/items", inventoryHandler.ListItems)
	inventory.Get("/items/:id", inventoryHandler.GetItem)
	inventory.Put("/items/:id", inventoryHandler.UpdateItem)
	inventory.Delete("/items/:id", RequireRole(entity.RoleAdmin), inventoryHandler.DeleteItem)
	inventory.Post("/items/:id/transactions", inventoryHandler.CreateTransaction)
	inventory.Get("/items/:id/transactions", inventoryHandler.ListTransactions)

	// Bitácora de actividad (protegido)
	activityHandler := NewActivityHandler(deps.ActivityUC)
	protected.Get("/activity", activityHandler.Recent)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/production.pdf", reportHandler.ProductionPDF)
}
