package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"

	_ "github.com/stoneworks/inventory-api/docs"
	"github.com/stoneworks/inventory-api/internal/application/auth"
	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/application/procurement"
	"github.com/stoneworks/inventory-api/internal/application/usecase"
	"github.com/stoneworks/inventory-api/internal/infrastructure/excel"
	infrapdf "github.com/stoneworks/inventory-api/internal/infrastructure/pdf"
	"github.com/stoneworks/inventory-api/internal/infrastructure/postgres"
	httpRouter "github.com/stoneworks/inventory-api/internal/interfaces/http"
	"github.com/stoneworks/inventory-api/pkg/config"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   cfg.App.LogLevel,
		Service: cfg.App.Name,
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

	if cfg.DB.AutoMigrate {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
		log.Info().Msg("esquema verificado")
	}

	itemRepo := postgres.NewInventoryItemRepository(pool)
	txRepo := postgres.NewInventoryTransactionRepository(pool)
	procRepo := postgres.NewProcurementRepository(pool)
	procItemRepo := postgres.NewProcurementItemRepository(pool)
	masterRepo := postgres.NewMasterDataRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	adjustUC := inventory.NewAdjustUseCase(txRunner, log, cfg.Ledger.DefaultPerformer)
	queryUC := inventory.NewQueryUseCase(txRunner, itemRepo, txRepo, excel.NewHistoryGenerator(), log)
	procurementUC := procurement.NewProcurementUseCase(
		txRunner, procRepo, procItemRepo,
		infrapdf.NewMarotoPDFGenerator(), log, cfg.Ledger.ProcurementPerformer,
	)
	masterUC := usecase.NewMasterDataUseCase(masterRepo)
	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)

	app := httpRouter.NewApp(httpRouter.ServerConfig{
		AppName:      cfg.App.Name,
		Production:   cfg.App.Env == "production",
		AllowOrigins: cfg.HTTP.Origins(),
	}, log)

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Stone Inventory API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		Adjust:         adjustUC,
		InventoryQuery: queryUC,
		Procurement:    procurementUC,
		MasterData:     masterUC,
		Auth:           authUC,
		JWTSecret:      cfg.JWT.Secret,
		AppName:        cfg.App.Name,
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
