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

	"github.com/buildtrack/buildtrack-api/internal/application/inventory"
	"github.com/buildtrack/buildtrack-api/internal/application/usecase"
	infrapdf "github.com/buildtrack/buildtrack-api/internal/infrastructure/pdf"
	"github.com/buildtrack/buildtrack-api/internal/infrastructure/postgres"
	httpRouter "github.com/buildtrack/buildtrack-api/internal/interfaces/http"
	"github.com/buildtrack/buildtrack-api/pkg/config"
	"github.com/buildtrack/buildtrack-api/pkg/logger"
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

	// Repositorios sobre el pool (lecturas y escrituras simples). Las mutaciones
	// de stock van por el TxRunner, que ata repos a una transacción.
	productRepo := postgres.NewProductRepository(pool)
	transactionRepo := postgres.NewTransactionRepository(pool)
	projectRepo := postgres.NewProjectRepository(pool)
	taskRepo := postgres.NewTaskRepository(pool)
	simpleTaskRepo := postgres.NewSimpleTaskRepository(pool)
	equipmentRepo := postgres.NewEquipmentRepository(pool)
	apiKeyRepo := postgres.NewAPIKeyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso de inventario
	createTransactionUC := inventory.NewCreateTransactionUseCase(txRunner)
	transactionQueryUC := inventory.NewTransactionQueryUseCase(transactionRepo)
	stockLevelUC := inventory.NewStockLevelUseCase(productRepo)

	// Resto de casos de uso
	productUC := usecase.NewProductUseCase(productRepo)
	taskUC := usecase.NewTaskUseCase(taskRepo, projectRepo)
	simpleTaskUC := usecase.NewSimpleTaskUseCase(simpleTaskRepo, projectRepo)
	equipmentUC := usecase.NewEquipmentUseCase(equipmentRepo, projectRepo)
	activityUC := usecase.NewActivityUseCase(equipmentRepo, transactionRepo)
	searchUC := usecase.NewSearchUseCase(productRepo, equipmentRepo, projectRepo, taskRepo)
	apiKeyUC := usecase.NewAPIKeyUseCase(apiKeyRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	reportUC := usecase.NewReportUseCase(transactionRepo, infrapdf.NewMarotoLedgerGenerator())

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
		Title:    "BuildTrack API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CreateTransaction: createTransactionUC,
		TransactionQuery:  transactionQueryUC,
		StockLevels:       stockLevelUC,
		ProductUC:         productUC,
		TaskUC:            taskUC,
		SimpleTaskUC:      simpleTaskUC,
		EquipmentUC:       equipmentUC,
		ActivityUC:        activityUC,
		SearchUC:          searchUC,
		APIKeyUC:          apiKeyUC,
		SettingsUC:        settingsUC,
		VendorUC:          vendorUC,
		UserUC:            userUC,
		ReportUC:          reportUC,
		JWTSecret:         cfg.JWT.Secret,
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
