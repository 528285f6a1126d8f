package inventory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stoneworks/inventory-api/internal/application/inventory"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

func ledgerRow(id int64, typ entity.TransactionType, change string, pieces int64, after string, afterPieces int64) *entity.InventoryTransaction {
	return &entity.InventoryTransaction{
		ID: id, InventoryItemID: 1, Type: typ,
		ChangeInSqMeter: dec(change), ChangeInPieces: pieces,
		BalanceAfterSqMeter: dec(after), BalanceAfterPieces: afterPieces,
	}
}

func TestVerifyLedger(t *testing.T) {
	item := &entity.InventoryItem{ID: 1, ItemAttributes: entity.ItemAttributes{LengthMM: 500, WidthMM: 500}}

	t.Run("consistente", func(t *testing.T) {
		rep := inventory.VerifyLedger(item, []*entity.InventoryTransaction{
			ledgerRow(1, entity.TxProcurementInitialStock, "10", 40, "10", 40),
			ledgerRow(2, entity.TxManualRemove, "-0.1", -1, "9.9", 39),
			ledgerRow(3, entity.TxProcurementQuantityAdded, "2", 8, "11.9", 47),
		})
		assert.True(t, rep.Consistent())
		assert.Equal(t, 3, rep.Transactions)
		assertDecimal(t, "11.9", rep.Balance.SqMeter)
		assert.Equal(t, int64(47), rep.Balance.Pieces)
	})

	t.Run("saldo con hueco", func(t *testing.T) {
		rep := inventory.VerifyLedger(item, []*entity.InventoryTransaction{
			ledgerRow(1, entity.TxManualAdd, "10", 40, "10", 40),
			ledgerRow(2, entity.TxManualAdd, "1", 4, "12", 44),
		})
		require.Len(t, rep.Violations, 1)
		assert.Equal(t, int64(2), rep.Violations[0].TransactionID)
		assert.Contains(t, rep.Violations[0].Problem, "balance_after_sq_meter")
	})

	t.Run("piezas mal derivadas", func(t *testing.T) {
		rep := inventory.VerifyLedger(item, []*entity.InventoryTransaction{
			ledgerRow(1, entity.TxManualAdd, "10", 40, "10", 40),
			ledgerRow(2, entity.TxManualRemove, "-0.1", 0, "9.9", 40),
		})
		require.Len(t, rep.Violations, 1)
		assert.Contains(t, rep.Violations[0].Problem, "change_in_pieces")
	})

	t.Run("signo contrario al tipo", func(t *testing.T) {
		rep := inventory.VerifyLedger(item, []*entity.InventoryTransaction{
			ledgerRow(1, entity.TxManualRemove, "1", 4, "1", 4),
		})
		assert.False(t, rep.Consistent())
	})

	t.Run("vacío", func(t *testing.T) {
		rep := inventory.VerifyLedger(item, nil)
		assert.True(t, rep.Consistent())
		assert.True(t, rep.Balance.SqMeter.IsZero())
	})
}
