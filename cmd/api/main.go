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

	"github.com/logisur/almacen-api/internal/application/auth"
	"github.com/logisur/almacen-api/internal/application/batch"
	"github.com/logisur/almacen-api/internal/application/billing"
	"github.com/logisur/almacen-api/internal/application/dispatch"
	"github.com/logisur/almacen-api/internal/application/payment"
	"github.com/logisur/almacen-api/internal/application/reception"
	"github.com/logisur/almacen-api/internal/application/settings"
	"github.com/logisur/almacen-api/internal/application/usecase"
	infrapdf "github.com/logisur/almacen-api/internal/infrastructure/pdf"
	"github.com/logisur/almacen-api/internal/infrastructure/postgres"
	httpRouter "github.com/logisur/almacen-api/internal/interfaces/http"
	"github.com/logisur/almacen-api/pkg/config"
	"github.com/logisur/almacen-api/pkg/logger"
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

	companyRepo := postgres.NewCompanyRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewCompanyProductRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	receptionRepo := postgres.NewReceptionRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	dispatchRepo := postgres.NewDispatchRepository(pool)
	batchRepo := postgres.NewBatchRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	receiverRepo := postgres.NewReceiverRepository(pool)
	cityRepo := postgres.NewCityRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	settingsLoader := settings.NewLoader(settingsRepo)

	authUC := auth.NewUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo, stockRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	receiverUC := usecase.NewReceiverUseCase(receiverRepo, cityRepo)
	cityUC := usecase.NewCityUseCase(cityRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	receptionUC := reception.NewUseCase(txRunner, companyRepo, productRepo, receptionRepo)
	dispatchUC := dispatch.NewUseCase(txRunner, dispatchRepo, batchRepo, receiverRepo)
	batchUC := batch.NewUseCase(txRunner, batchRepo, userRepo)
	paymentUC := payment.NewUseCase(paymentRepo, companyRepo)

	// Facturación: estado de cuenta y su volcado a PDF
	statementUC := billing.NewStatementUseCase(
		companyRepo, lotRepo, dispatchRepo, paymentRepo, settingsLoader, nil,
	)
	pdfGenerator := infrapdf.NewMarotoStatementGenerator()
	pdfUC := billing.NewPDFUseCase(statementUC, companyRepo, settingsLoader, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Almacén API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		ProductUC:   productUC,
		ReceiverUC:  receiverUC,
		CityUC:      cityUC,
		SettingsUC:  settingsUC,
		ReceptionUC: receptionUC,
		DispatchUC:  dispatchUC,
		BatchUC:     batchUC,
		PaymentUC:   paymentUC,
		StatementUC: statementUC,
		PDFUC:       pdfUC,
		JWTSecret:   cfg.JWT.Secret,
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
