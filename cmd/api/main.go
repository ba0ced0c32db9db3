package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/punto-venta/internal/application/auth"
	"github.com/tu-usuario/punto-venta/internal/application/checkout"
	"github.com/tu-usuario/punto-venta/internal/application/receipt"
	"github.com/tu-usuario/punto-venta/internal/application/reports"
	"github.com/tu-usuario/punto-venta/internal/application/usecase"
	infrapdf "github.com/tu-usuario/punto-venta/internal/infrastructure/pdf"
	"github.com/tu-usuario/punto-venta/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/punto-venta/internal/interfaces/http"
	"github.com/tu-usuario/punto-venta/pkg/config"
	"github.com/tu-usuario/punto-venta/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	saleUC := usecase.NewSaleUseCase(saleRepo)
	checkoutUC := checkout.NewUseCase(txRunner)
	reportsUC := reports.NewUseCase(saleRepo, reportRepo)
	receiptUC := receipt.NewUseCase(saleRepo, infrapdf.NewMarotoReceiptGenerator(), cfg.App.StoreName)
	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	seeded, err := authUC.EnsureDefaultAdmin()
	if err != nil {
		log.Fatal().Err(err).Msg("verificar usuario admin por defecto")
	}
	if seeded {
		log.Warn().
			Str("username", auth.DefaultAdminUsername).
			Msg("usuario admin por defecto creado; cambie la contraseña")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:  productUC,
		SaleUC:     saleUC,
		CheckoutUC: checkoutUC,
		ReceiptUC:  receiptUC,
		ReportsUC:  reportsUC,
		AuthUC:     authUC,
		JWTSecret:  cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
