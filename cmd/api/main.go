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

	appanalytics "github.com/jhoicas/Produccion-api/internal/application/analytics"
	"github.com/jhoicas/Produccion-api/internal/application/audit"
	"github.com/jhoicas/Produccion-api/internal/application/auth"
	"github.com/jhoicas/Produccion-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/Produccion-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Produccion-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Produccion-api/internal/interfaces/http"
	"github.com/jhoicas/Produccion-api/pkg/config"
	"github.com/jhoicas/Produccion-api/pkg/logger"
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

	// Repositorios
	userRepo := postgres.NewUserRepository(pool)
	entryRepo := postgres.NewProductionEntryRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	hospitalRepo := postgres.NewHospitalRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	itemRepo := postgres.NewInventoryItemRepository(pool)
	txnRepo := postgres.NewStockTransactionRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Casos de uso
	recorder := audit.NewRecorder(activityRepo, log)
	productionUC := usecase.NewProductionUseCase(entryRepo, recorder)
	analyticsUC := appanalytics.NewAnalyticsUseCase(analyticsRepo)
	hospitalUC := usecase.NewHospitalUseCase(hospitalRepo, recorder)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo, recorder)
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, recorder)
	inventoryUC := usecase.NewInventoryUseCase(itemRepo, txnRepo, txRunner)
	activityUC := usecase.NewActivityUseCase(activityRepo)
	dashboardUC := usecase.NewDashboardUseCase(analyticsUC, activityUC)

	// PDF: reporte de producción del período
	reportGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := usecase.NewReportUseCase(analyticsUC, reportGenerator)

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

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Producción API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductionUC: productionUC,
		AnalyticsUC:  analyticsUC,
		DashboardUC:  dashboardUC,
		HospitalUC:   hospitalUC,
		EmployeeUC:   employeeUC,
		ProductUC:    productUC,
		CategoryUC:   categoryUC,
		InventoryUC:  inventoryUC,
		ActivityUC:   activityUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
