package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/checkout"
	"github.com/tu-usuario/punto-venta/internal/application/receipt"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
	"github.com/tu-usuario/punto-venta/internal/application/usecase"
	"github.com/tu-usuario/punto-venta/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC  *usecase.ProductUseCase
	SaleUC     *usecase.SaleUseCase
	CheckoutUC *checkout.UseCase
	ReceiptUC  *receipt.UseCase
	ReportsUC  *reports.UseCase
	AuthUC     *auth.UseCase
	JWTSecret  string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login público; register solo admin)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/register", adminOnly, authHandler.Register)

	// Products (lectura para todos; mutaciones solo admin)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Get("/", productHandler.List)
	products.Get("/search", productHandler.Search)
	products.Get("/:id", productHandler.GetByID)
	products.Post("/", adminOnly, productHandler.Create)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (cajeros y admins)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC, deps.SaleUC, deps.ReceiptUC)
	sales.Post("/checkout", saleHandler.Checkout)
	sales.Get("/:id", saleHandler.GetByID)
	sales.Get("/:id/items", saleHandler.Items)
	sales.Get("/:id/receipt", saleHandler.Receipt)

	// Reports
	reportsGroup := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportsUC)
	reportsGroup.Get("/daily", reportHandler.Daily)
	reportsGroup.Get("/history", reportHandler.History)
	reportsGroup.Get("/top_products", reportHandler.TopProducts)
}
