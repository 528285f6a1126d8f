package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType es el conjunto cerrado de eventos que cambian el saldo de una línea.
type TransactionType string

const (
	TxProcurementInitialStock  TransactionType = "procurement_initial_stock"
	TxProcurementQuantityAdded TransactionType = "procurement_quantity_added"
	TxProcurementItemDeleted   TransactionType = "procurement_item_deleted"
	TxManualAdd                TransactionType = "manual_add"
	TxManualRemove             TransactionType = "manual_remove"
)

// TransactionTypes lista todos los tipos en orden estable.
var TransactionTypes = []TransactionType{
	TxProcurementInitialStock,
	TxProcurementQuantityAdded,
	TxProcurementItemDeleted,
	TxManualAdd,
	TxManualRemove,
}

// Valid indica si t es uno de los tipos conocidos.
func (t TransactionType) Valid() bool {
	switch t {
	case TxProcurementInitialStock, TxProcurementQuantityAdded, TxProcurementItemDeleted,
		TxManualAdd, TxManualRemove:
		return true
	}
	return false
}

// Label devuelve el texto que se muestra en historiales y exportaciones.
func (t TransactionType) Label() string {
	switch t {
	case TxProcurementInitialStock:
		return "Initial Stock (Procurement)"
	case TxProcurementQuantityAdded:
		return "Quantity Added (Procurement)"
	case TxProcurementItemDeleted:
		return "Procurement Item Deleted"
	case TxManualAdd:
		return "Manual Add"
	case TxManualRemove:
		return "Manual Remove"
	}
	return string(t)
}

// IsAddition indica si el tipo solo puede sumar stock.
func (t TransactionType) IsAddition() bool {
	switch t {
	case TxProcurementInitialStock, TxProcurementQuantityAdded, TxManualAdd:
		return true
	case TxProcurementItemDeleted, TxManualRemove:
		return false
	}
	return false
}

// Balance es el saldo de una línea en ambas unidades. SqMeter es la unidad maestra.
type Balance struct {
	SqMeter decimal.Decimal
	Pieces  int64
}

// Add devuelve el saldo resultante de aplicar un cambio.
func (b Balance) Add(change Balance) Balance {
	return Balance{SqMeter: b.SqMeter.Add(change.SqMeter), Pieces: b.Pieces + change.Pieces}
}

// InventoryTransaction es una fila inmutable del ledger.
type InventoryTransaction struct {
	ID                  int64
	InventoryItemID     int64
	OperationID         string // agrupa las filas escritas por una misma operación
	Type                TransactionType
	ChangeInSqMeter     decimal.Decimal
	ChangeInPieces      int64
	BalanceAfterSqMeter decimal.Decimal
	BalanceAfterPieces  int64
	Reason              *string
	SourceDetails       *string
	PerformedBy         string
	CreatedAt           time.Time
}

// BalanceAfter devuelve el saldo que dejó esta fila.
func (t *InventoryTransaction) BalanceAfter() Balance {
	return Balance{SqMeter: t.BalanceAfterSqMeter, Pieces: t.BalanceAfterPieces}
}

// Change devuelve el cambio que aplicó esta fila.
func (t *InventoryTransaction) Change() Balance {
	return Balance{SqMeter: t.ChangeInSqMeter, Pieces: t.ChangeInPieces}
}
