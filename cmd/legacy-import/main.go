// legacy-import copia stones, catálogos, vendors, inventory_items, inventory_transactions,
// procurements y procurement_items desde la base MySQL anterior a PostgreSQL conservando los IDs.
//
// Uso: go run ./cmd/legacy-import [--dsn user:pass@tcp(host:3306)/db] [--latin1] [--dry-run]
// Sin --dsn usa LEGACY_MYSQL_DSN. El destino es la configuración DB_* / DATABASE_URL habitual.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	flag "github.com/spf13/pflag"

	"github.com/stoneworks/inventory-api/internal/infrastructure/legacy"
	"github.com/stoneworks/inventory-api/internal/infrastructure/postgres"
	"github.com/stoneworks/inventory-api/pkg/config"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

func main() {
	dsn := flag.String("dsn", "", "DSN MySQL de origen (por defecto LEGACY_MYSQL_DSN)")
	latin1 := flag.Bool("latin1", false, "el origen guarda texto en ISO-8859-1")
	dryRun := flag.Bool("dry-run", false, "convierte y copia pero no confirma la transacción")
	migrate := flag.Bool("migrate", true, "aplica el esquema antes de importar")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "legacy-import"})

	if *dsn == "" {
		*dsn = cfg.Legacy.MySQLDSN
	}
	if *dsn == "" {
		log.Fatal().Msg("falta el DSN de origen: --dsn o LEGACY_MYSQL_DSN")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src, err := legacy.OpenMySQL(ctx, *dsn)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a MySQL")
	}
	defer src.Close()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if *migrate {
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("aplicar esquema")
		}
	}

	res, err := legacy.NewImporter(src, pool, log, legacy.Options{Latin1: *latin1, DryRun: *dryRun}).Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("importación abortada, no se escribió nada")
		os.Exit(1)
	}

	var total int64
	for _, t := range res.Tables {
		fmt.Printf("%-24s %8d\n", t.Table, t.Rows)
		total += t.Rows
	}
	fmt.Printf("%-24s %8d\n", "total", total)
	if *dryRun {
		fmt.Println("dry run: transacción descartada")
	}
}
