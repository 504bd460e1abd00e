package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/neelsoon/inventario-laboral/internal/application/analytics"
	"github.com/neelsoon/inventario-laboral/internal/application/auth"
	"github.com/neelsoon/inventario-laboral/internal/application/inventory"
	"github.com/neelsoon/inventario-laboral/internal/application/studio"
	"github.com/neelsoon/inventario-laboral/internal/application/usecase"
	"github.com/neelsoon/inventario-laboral/internal/domain/entity"
	"github.com/neelsoon/inventario-laboral/internal/infrastructure/pdf"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC        *usecase.ProductUseCase
	UserUC           *usecase.UserUseCase
	RegisterMovement *inventory.RegisterMovementUseCase
	MovementQuery    *inventory.MovementQueryUseCase
	ReposicionUC     *inventory.ReposicionUseCase
	DashboardUC      *analytics.DashboardUseCase
	StudioUC         *studio.StudioUseCase
	AuthUC           *auth.AuthUseCase
	ReportGenerator  *pdf.MarotoReportGenerator
	JWTSecret        string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC, deps.ReposicionUC)
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Save)
	products.Get("/reposicion", productHandler.Reposicion)
	products.Delete("/:id", productHandler.Delete)

	// Movements (protegido)
	movements := protected.Group("/movements")
	movementHandler := NewMovementHandler(deps.RegisterMovement, deps.MovementQuery, deps.ReportGenerator)
	movements.Get("/", movementHandler.List)
	movements.Post("/", movementHandler.Register)
	movements.Get("/export", movementHandler.ExportCSV)
	movements.Get("/reporte", movementHandler.Reporte)

	// Dashboard (protegido)
	dashboard := protected.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/stats", dashboardHandler.Stats)

	// Estudio IA (protegido)
	studioGroup := protected.Group("/studio")
	studioHandler := NewStudioHandler(deps.StudioUC)
	studioGroup.Post("/search", studioHandler.Search)
	studioGroup.Post("/image", studioHandler.GenerateImage)

	// Users (solo ADMIN)
	users := protected.Group("/users", RequireRole(entity.RoleAdmin))
	userHandler := NewUserHandler(deps.UserUC)
	users.Get("/", userHandler.List)
	users.Post("/", userHandler.Save)
	users.Patch("/:id/role", userHandler.UpdateRole)
	users.Delete("/:id", userHandler.Delete)
}
