package inventory

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/stock"
)

// LedgerViolation inconsistencia de una fila del ledger.
type LedgerViolation struct {
	TransactionID int64
	Problem       string
}

// LedgerReport resultado de reproducir el ledger de una línea.
type LedgerReport struct {
	InventoryItemID int64
	Transactions    int
	Balance         entity.Balance // saldo de la última fila
	Violations      []LedgerViolation
}

// Consistent indica si el ledger no tiene violaciones.
func (r *LedgerReport) Consistent() bool { return len(r.Violations) == 0 }

// VerifyLedger reproduce rows (orden created_at, id) y comprueba que cada saldo sea la suma
// de los cambios previos, que las piezas se deriven de los m² y que ningún saldo sea negativo.
func VerifyLedger(item *entity.InventoryItem, rows []*entity.InventoryTransaction) *LedgerReport {
	rep := &LedgerReport{InventoryItemID: item.ID, Transactions: len(rows)}
	running := entity.Balance{SqMeter: decimal.Zero}
	add := func(id int64, format string, args ...any) {
		rep.Violations = append(rep.Violations, LedgerViolation{TransactionID: id, Problem: fmt.Sprintf(format, args...)})
	}

	for _, row := range rows {
		if err := checkDirection(row.Type, row.ChangeInSqMeter); err != nil {
			add(row.ID, "%v", err)
		}
		want := stock.SignedPiecesFromSqMeter(row.ChangeInSqMeter, item.LengthMM, item.WidthMM)
		if row.ChangeInPieces != want {
			add(row.ID, "change_in_pieces %d, derived %d", row.ChangeInPieces, want)
		}
		running = running.Add(row.Change())
		if !running.SqMeter.Equal(row.BalanceAfterSqMeter) {
			add(row.ID, "balance_after_sq_meter %s, running total %s", row.BalanceAfterSqMeter, running.SqMeter)
		}
		if running.Pieces != row.BalanceAfterPieces {
			add(row.ID, "balance_after_pieces %d, running total %d", row.BalanceAfterPieces, running.Pieces)
		}
		if row.BalanceAfterSqMeter.IsNegative() || row.BalanceAfterPieces < 0 {
			add(row.ID, "negative balance")
		}
		// Seguimos desde el saldo guardado para no arrastrar un mismo error a todas las filas siguientes.
		running = row.BalanceAfter()
	}
	if n := len(rows); n > 0 {
		rep.Balance = rows[n-1].BalanceAfter()
	} else {
		rep.Balance = entity.Balance{SqMeter: decimal.Zero}
	}
	return rep
}
