package repository

import (
	"context"
	"time"

	"github.com/stoneworks/inventory-api/internal/domain/entity"
)

// InventoryTransactionRepository define el puerto del ledger. Solo inserta y lee: las filas son inmutables.
type InventoryTransactionRepository interface {
	Create(ctx context.Context, tx *entity.InventoryTransaction) error
	// LastBalance devuelve el saldo de la fila más reciente (por id) o cero si no hay filas.
	LastBalance(ctx context.Context, itemID int64) (entity.Balance, error)
	// ListByItem devuelve el historial más reciente primero (created_at DESC, id DESC).
	ListByItem(ctx context.Context, itemID int64, filter TransactionFilter) ([]*entity.InventoryTransaction, error)
	// ListChronological devuelve el ledger en orden de aplicación, para verificarlo.
	ListChronological(ctx context.Context, itemID int64) ([]*entity.InventoryTransaction, error)
}

// TransactionFilter filtros del historial de una línea.
type TransactionFilter struct {
	Direction string // "add", "remove" o vacío
	Search    string // busca en reason, source_details y performed_by
	From      *time.Time
	To        *time.Time // exclusivo
}
