package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/blueshipsync/shipsync-api/internal/application/auth"
	"github.com/blueshipsync/shipsync-api/internal/application/chat"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	"github.com/blueshipsync/shipsync-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	WarehouseUC *usecase.WarehouseUseCase
	InventoryUC *usecase.InventoryQueryUseCase
	ProductUC   *usecase.ProductUseCase
	CustomerUC  *usecase.CustomerUseCase
	CarrierUC   *usecase.CarrierUseCase
	OrderUC     *usecase.OrderUseCase
	ShipmentUC  *usecase.ShipmentUseCase
	LabelUC     *usecase.LabelUseCase
	ChatUC      *chat.ChatUseCase
	AuthUC      *auth.AuthUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Warehouses + the inventory read endpoints behind the detail page
	warehouses := protected.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	manageWarehouses := RequireRole(entity.RoleAdmin, entity.RoleManager)
	warehouses.Post("/", manageWarehouses, warehouseHandler.Create)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:id", warehouseHandler.GetByID)
	warehouses.Put("/:id", manageWarehouses, warehouseHandler.Update)
	warehouses.Delete("/:id", RequireRole(entity.RoleAdmin), warehouseHandler.Delete)
	warehouses.Get("/:id/inventory", inventoryHandler.Query)
	warehouses.Get("/:id/inventory/categories", inventoryHandler.Categories)
	warehouses.Get("/:id/inventory/stats", inventoryHandler.Stats)
	warehouses.Get("/:id/overview", inventoryHandler.Overview)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/sku/:sku", productHandler.GetBySKU)
	products.Get("/:id", productHandler.GetByID)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)

	// Carriers
	carriers := protected.Group("/carriers")
	carrierHandler := NewCarrierHandler(deps.CarrierUC)
	carriers.Post("/", carrierHandler.Create)
	carriers.Get("/", carrierHandler.List)
	carriers.Get("/:id/quote", carrierHandler.Quote)

	// Orders + their shipments
	orders := protected.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrderUC)
	shipmentHandler := NewShipmentHandler(deps.ShipmentUC, deps.LabelUC)
	orders.Post("/", orderHandler.Create)
	orders.Get("/", orderHandler.List)
	orders.Get("/:id", orderHandler.GetByID)
	orders.Get("/:id/shipments", shipmentHandler.ListByOrder)

	// Shipments
	shipments := protected.Group("/shipments")
	shipments.Post("/", shipmentHandler.Create)
	shipments.Get("/", shipmentHandler.ListRecent)
	shipments.Get("/:id", shipmentHandler.GetByID)
	shipments.Get("/:id/label", shipmentHandler.DownloadLabel)

	// Chat assistant
	chatGroup := protected.Group("/chat")
	chatHandler := NewChatHandler(deps.ChatUC)
	chatGroup.Post("/", chatHandler.Send)
	chatGroup.Get("/history", chatHandler.History)
}
