package inventory

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/stock"
)

// Entry describe una fila a agregar al ledger. Las piezas siempre se derivan de ChangeSqMeter.
type Entry struct {
	OperationID   string
	Type          entity.TransactionType
	ChangeSqMeter decimal.Decimal
	Reason        string
	SourceDetails string
	PerformedBy   string
}

// AppendEntry agrega una fila al ledger de item. El llamador debe tener la fila del item
// bloqueada en la misma transacción. Rechaza con InsufficientStockError si alguna unidad
// quedaría negativa.
func AppendEntry(ctx context.Context, r Repos, item *entity.InventoryItem, e Entry) (*entity.InventoryTransaction, error) {
	sq := stock.RoundSqMeter(e.ChangeSqMeter)
	if sq.IsZero() {
		return nil, domain.Invalid("quantity change must be non-zero")
	}
	if err := checkDirection(e.Type, sq); err != nil {
		return nil, err
	}
	change := entity.Balance{
		SqMeter: sq,
		Pieces:  stock.SignedPiecesFromSqMeter(sq, item.LengthMM, item.WidthMM),
	}

	last, err := r.Transactions.LastBalance(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	next := last.Add(change)
	if next.SqMeter.IsNegative() {
		return nil, &domain.InsufficientStockError{
			Unit:      domain.StockUnitSqMeter,
			Requested: change.SqMeter.Neg(),
			Available: last.SqMeter,
		}
	}
	if next.Pieces < 0 {
		return nil, &domain.InsufficientStockError{
			Unit:      domain.StockUnitPieces,
			Requested: decimal.NewFromInt(-change.Pieces),
			Available: decimal.NewFromInt(last.Pieces),
		}
	}

	row := &entity.InventoryTransaction{
		InventoryItemID:     item.ID,
		OperationID:         e.OperationID,
		Type:                e.Type,
		ChangeInSqMeter:     change.SqMeter,
		ChangeInPieces:      change.Pieces,
		BalanceAfterSqMeter: next.SqMeter,
		BalanceAfterPieces:  next.Pieces,
		Reason:              optionalText(e.Reason),
		SourceDetails:       optionalText(e.SourceDetails),
		PerformedBy:         e.PerformedBy,
	}
	if err := r.Transactions.Create(ctx, row); err != nil {
		return nil, err
	}
	return row, nil
}

// checkDirection verifica que el signo del cambio corresponda al tipo.
func checkDirection(t entity.TransactionType, sq decimal.Decimal) error {
	switch t {
	case entity.TxProcurementInitialStock, entity.TxProcurementQuantityAdded, entity.TxManualAdd:
		if !sq.IsPositive() {
			return fmt.Errorf("%s requires a positive change, got %s", t, sq)
		}
	case entity.TxProcurementItemDeleted, entity.TxManualRemove:
		if !sq.IsNegative() {
			return fmt.Errorf("%s requires a negative change, got %s", t, sq)
		}
	default:
		return fmt.Errorf("unknown transaction type %q", t)
	}
	return nil
}

// ManualType devuelve el tipo de fila de un ajuste manual según el signo.
func ManualType(delta decimal.Decimal) entity.TransactionType {
	if delta.IsPositive() {
		return entity.TxManualAdd
	}
	return entity.TxManualRemove
}

func optionalText(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
