// ledger-verify reproduce el ledger de cada línea de inventario y lista las que no cuadran:
// saldos que no son la suma de los cambios, piezas mal derivadas o saldos negativos.
//
// Uso: go run ./cmd/ledger-verify [--item 42]
// Sale con código 1 si encuentra alguna inconsistencia.
package main

import (
	"context"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/infrastructure/excel"
	"github.com/stoneworks/inventory-api/internal/infrastructure/postgres"
	"github.com/stoneworks/inventory-api/pkg/config"
	"github.com/stoneworks/inventory-api/pkg/logger"
)

func main() {
	itemID := flag.Int64("item", 0, "verifica solo esta línea de inventario")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel, Service: "ledger-verify"})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	queryUC := inventory.NewQueryUseCase(
		postgres.NewTxRunner(pool),
		postgres.NewInventoryItemRepository(pool),
		postgres.NewInventoryTransactionRepository(pool),
		excel.NewHistoryGenerator(),
		log,
	)

	var (
		checked int
		broken  []*inventory.LedgerReport
	)
	if *itemID > 0 {
		rep, err := queryUC.LedgerCheck(ctx, *itemID)
		if err != nil {
			log.Fatal().Err(err).Int64("inventory_item_id", *itemID).Msg("verificar ledger")
		}
		checked = 1
		if !rep.Consistent() {
			broken = append(broken, rep)
		}
	} else {
		checked, broken, err = queryUC.VerifyAll(ctx)
		if err != nil {
			log.Fatal().Err(err).Int("checked", checked).Msg("verificar ledgers")
		}
	}

	for _, rep := range broken {
		fmt.Printf("inventory_item %d (%d transactions, balance %s sqm / %d pcs)\n",
			rep.InventoryItemID, rep.Transactions, rep.Balance.SqMeter.String(), rep.Balance.Pieces)
		for _, v := range rep.Violations {
			fmt.Printf("  transaction %d: %s\n", v.TransactionID, v.Problem)
		}
	}
	fmt.Printf("%d items checked, %d inconsistent\n", checked, len(broken))
	if len(broken) > 0 {
		os.Exit(1)
	}
}
