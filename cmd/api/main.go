package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/blueshipsync/shipsync-api/internal/application/auth"
	"github.com/blueshipsync/shipsync-api/internal/application/chat"
	"github.com/blueshipsync/shipsync-api/internal/application/usecase"
	infraai "github.com/blueshipsync/shipsync-api/internal/infrastructure/ai"
	infrapdf "github.com/blueshipsync/shipsync-api/internal/infrastructure/pdf"
	"github.com/blueshipsync/shipsync-api/internal/infrastructure/postgres"
	httpRouter "github.com/blueshipsync/shipsync-api/internal/interfaces/http"
	"github.com/blueshipsync/shipsync-api/pkg/config"
	"github.com/blueshipsync/shipsync-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL connection")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	warehouseRepo := postgres.NewWarehouseRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	carrierRepo := postgres.NewCarrierRepository(pool)
	orderRepo := postgres.NewOrderRepository(pool)
	shipmentRepo := postgres.NewShipmentRepository(pool)
	chatRepo := postgres.NewChatRepository(pool)

	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	inventoryUC := usecase.NewInventoryQueryUseCase(warehouseRepo, inventoryRepo, log, cfg.Query.TimeoutSeconds)
	productUC := usecase.NewProductUseCase(productRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	carrierUC := usecase.NewCarrierUseCase(carrierRepo)
	orderUC := usecase.NewOrderUseCase(orderRepo, customerRepo, productRepo)
	shipmentUC := usecase.NewShipmentUseCase(shipmentRepo, orderRepo, warehouseRepo, carrierRepo)

	// PDF: printable shipping labels
	labelGenerator := infrapdf.NewMarotoLabelGenerator()
	labelUC := usecase.NewLabelUseCase(shipmentRepo, orderRepo, labelGenerator)

	assistantSvc := infraai.NewEchoService()
	chatUC := chat.NewChatUseCase(warehouseRepo, inventoryRepo, chatRepo, assistantSvc, log)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ShipSync API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		WarehouseUC: warehouseUC,
		InventoryUC: inventoryUC,
		ProductUC:   productUC,
		CustomerUC:  customerUC,
		CarrierUC:   carrierUC,
		OrderUC:     orderUC,
		ShipmentUC:  shipmentUC,
		LabelUC:     labelUC,
		ChatUC:      chatUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
