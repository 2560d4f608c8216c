package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/buildtrack/buildtrack-api/internal/application/inventory"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateTransaction *inventory.CreateTransactionUseCase
	TransactionQuery  *inventory.TransactionQueryUseCase
	StockLevels       *inventory.StockLevelUseCase
	ProductUC         *usecase.ProductUseCase
	TaskUC            *usecase.TaskUseCase
	SimpleTaskUC      *usecase.SimpleTaskUseCase
	EquipmentUC       *usecase.EquipmentUseCase
	ActivityUC        *usecase.ActivityUseCase
	SearchUC          *usecase.SearchUseCase
	APIKeyUC          *usecase.APIKeyUseCase
	SettingsUC        *usecase.SettingsUseCase
	VendorUC          *usecase.VendorUseCase
	UserUC            *usecase.UserUseCase
	ReportUC          *usecase.ReportUseCase
	JWTSecret         string
}

// Router registra las rutas de la API. Toda la API va detrás del Bearer Token;
// /settings y el listado de usuarios exigen además el rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api", AuthMiddleware(deps.JWTSecret))

	// Transacciones de inventario (ledger append-only)
	txHandler := NewTransactionHandler(deps.CreateTransaction, deps.TransactionQuery)
	transactions := api.Group("/transactions")
	transactions.Post("/", txHandler.Create)
	transactions.Get("/", txHandler.List)
	transactions.Get("/recent", txHandler.Recent)
	transactions.Get("/stats", txHandler.Stats)
	transactions.Post("/:id/reverse", txHandler.Reverse)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC)
	products := api.Group("/products")
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Deactivate)
	products.Get("/:id/transactions", txHandler.History)

	// Tablero de operaciones
	stockHandler := NewStockHandler(deps.StockLevels)
	operations := api.Group("/operations")
	operations.Get("/stock-levels", stockHandler.Levels)
	operations.Post("/stock-levels", stockHandler.UpdateSettings)
	operations.Get("/reorder", stockHandler.ReorderSuggestions)

	// Tareas de proyectos (numeradas y simples)
	taskHandler := NewTaskHandler(deps.TaskUC, deps.SimpleTaskUC)
	projects := api.Group("/projects")
	projects.Get("/:id/tasks", taskHandler.ListByProject)
	projects.Post("/:id/tasks", taskHandler.Create)
	projects.Get("/:id/tasks/:taskId", taskHandler.GetByID)
	projects.Put("/:id/tasks/:taskId", taskHandler.Update)
	projects.Delete("/:id/tasks/:taskId", taskHandler.Delete)
	projects.Get("/:id/simple-tasks", taskHandler.ListSimple)
	projects.Post("/:id/simple-tasks", taskHandler.CreateSimple)
	projects.Put("/:id/simple-tasks/:taskId", taskHandler.UpdateSimple)
	projects.Delete("/:id/simple-tasks/:taskId", taskHandler.DeleteSimple)

	// Equipos y feed de actividad. La ruta del feed va antes de /:id para que
	// "transactions" no se capture como ID.
	equipmentHandler := NewEquipmentHandler(deps.EquipmentUC, deps.ActivityUC)
	equipment := api.Group("/equipment")
	equipment.Get("/transactions/recent", equipmentHandler.RecentActivity)
	equipment.Post("/", equipmentHandler.Create)
	equipment.Get("/", equipmentHandler.List)
	equipment.Get("/:id", equipmentHandler.GetByID)
	equipment.Post("/:id/actions", equipmentHandler.Act)

	// Búsqueda global
	searchHandler := NewSearchHandler(deps.SearchUC)
	api.Get("/search", searchHandler.Search)

	// Configuración. La verificación de la contraseña de registro es para
	// cualquier usuario autenticado; el resto exige rol admin.
	settingsHandler := NewSettingsHandler(deps.APIKeyUC, deps.SettingsUC)
	api.Post("/settings/registration-password/verify", settingsHandler.VerifyRegistrationPassword)
	settings := api.Group("/settings", RequireRole("admin"))
	settings.Get("/", settingsHandler.GetOrgSettings)
	settings.Put("/", settingsHandler.UpdateOrgSettings)
	settings.Post("/api-keys", settingsHandler.CreateAPIKey)
	settings.Get("/api-keys", settingsHandler.ListAPIKeys)
	settings.Delete("/api-keys/:id", settingsHandler.RevokeAPIKey)
	settings.Put("/registration-password", settingsHandler.SetRegistrationPassword)

	// Proveedores
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors := api.Group("/vendors")
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Usuarios
	userHandler := NewUserHandler(deps.UserUC)
	api.Get("/users/me", userHandler.Profile)
	api.Get("/users", RequireRole("admin"), userHandler.List)

	// Reportes
	reportHandler := NewReportHandler(deps.ReportUC)
	api.Get("/reports/transactions.pdf", reportHandler.LedgerPDF)
}
