package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/neelsoon/inventario-laboral/internal/application/analytics"
	"github.com/neelsoon/inventario-laboral/internal/application/auth"
	"github.com/neelsoon/inventario-laboral/internal/application/inventory"
	"github.com/neelsoon/inventario-laboral/internal/application/studio"
	"github.com/neelsoon/inventario-laboral/internal/application/usecase"
	infraai "github.com/neelsoon/inventario-laboral/internal/infrastructure/ai"
	infrapdf "github.com/neelsoon/inventario-laboral/internal/infrastructure/pdf"
	"github.com/neelsoon/inventario-laboral/internal/infrastructure/postgres"
	httpRouter "github.com/neelsoon/inventario-laboral/internal/interfaces/http"
	"github.com/neelsoon/inventario-laboral/pkg/config"
	"github.com/neelsoon/inventario-laboral/pkg/logger"
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

	// Esquema y usuario admin inicial (idempotente)
	if err := postgres.Bootstrap(ctx, pool, cfg.Seed.AdminNombre, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("bootstrap de la base de datos")
	}

	productRepo := postgres.NewProductRepository(pool)
	movementRepo := postgres.NewMovementRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	registerMovementUC := inventory.NewRegisterMovementUseCase(txRunner)
	movementQueryUC := inventory.NewMovementQueryUseCase(movementRepo)
	reposicionUC := inventory.NewReposicionUseCase(productRepo)
	productUC := usecase.NewProductUseCase(productRepo)
	userUC := usecase.NewUserUseCase(userRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo, movementRepo)

	genaiSvc, err := infraai.NewGenAIStudioService(ctx, infraai.Config{
		APIKey:       cfg.AI.GeminiAPIKey,
		SearchModel:  cfg.AI.SearchModel,
		ImageModel:   cfg.AI.ImageModel,
		ImageModelHQ: cfg.AI.ImageModelHQ,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar servicio GenAI")
	}
	studioUC := studio.NewStudioUseCase(genaiSvc)

	reportGenerator := infrapdf.NewMarotoReportGenerator()

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 60,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Inventario Laboral API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:        productUC,
		UserUC:           userUC,
		RegisterMovement: registerMovementUC,
		MovementQuery:    movementQueryUC,
		ReposicionUC:     reposicionUC,
		DashboardUC:      dashboardUC,
		StudioUC:         studioUC,
		AuthUC:           authUC,
		ReportGenerator:  reportGenerator,
		JWTSecret:        cfg.JWT.Secret,
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
