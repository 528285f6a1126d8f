package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stoneworks/inventory-api/internal/domain"
	"github.com/stoneworks/inventory-api/internal/domain/entity"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

var _ repository.InventoryTransactionRepository = (*InventoryTransactionRepo)(nil)

// InventoryTransactionRepo ledger de inventario sobre PostgreSQL. Solo INSERT y SELECT.
type InventoryTransactionRepo struct {
	q Querier
}

// NewInventoryTransactionRepository construye el adaptador del ledger. Pasar pool o tx (Querier).
func NewInventoryTransactionRepository(q Querier) *InventoryTransactionRepo {
	return &InventoryTransactionRepo{q: q}
}

const transactionColumns = `id, inventory_item_id, operation_id::text, transaction_type,
	change_in_sq_meter, change_in_pieces, balance_after_sq_meter, balance_after_pieces,
	reason, source_details, performed_by, created_at`

func scanTransaction(row pgx.Row) (*entity.InventoryTransaction, error) {
	var t entity.InventoryTransaction
	var txType string
	err := row.Scan(&t.ID, &t.InventoryItemID, &t.OperationID, &txType,
		&t.ChangeInSqMeter, &t.ChangeInPieces, &t.BalanceAfterSqMeter, &t.BalanceAfterPieces,
		&t.Reason, &t.SourceDetails, &t.PerformedBy, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	t.Type = entity.TransactionType(txType)
	return &t, nil
}

// Create inserta una fila del ledger y completa ID y CreatedAt.
func (r *InventoryTransactionRepo) Create(ctx context.Context, t *entity.InventoryTransaction) error {
	query := `
		INSERT INTO inventory_transactions (inventory_item_id, operation_id, transaction_type,
			change_in_sq_meter, change_in_pieces, balance_after_sq_meter, balance_after_pieces,
			reason, source_details, performed_by)
		VALUES ($1, $2::uuid, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`
	err := r.q.QueryRow(ctx, query,
		t.InventoryItemID, t.OperationID, string(t.Type),
		t.ChangeInSqMeter, t.ChangeInPieces, t.BalanceAfterSqMeter, t.BalanceAfterPieces,
		t.Reason, t.SourceDetails, t.PerformedBy,
	).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		if isCheckViolation(err) {
			return domain.ErrInsufficientStock
		}
		return fmt.Errorf("insert inventory transaction: %w", err)
	}
	return nil
}

// LastBalance lee el saldo de la fila más reciente de la línea.
func (r *InventoryTransactionRepo) LastBalance(ctx context.Context, itemID int64) (entity.Balance, error) {
	b := entity.Balance{SqMeter: decimal.Zero}
	err := r.q.QueryRow(ctx, `
		SELECT balance_after_sq_meter, balance_after_pieces
		FROM inventory_transactions
		WHERE inventory_item_id = $1
		ORDER BY id DESC LIMIT 1`, itemID,
	).Scan(&b.SqMeter, &b.Pieces)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Balance{SqMeter: decimal.Zero}, nil
		}
		return entity.Balance{}, fmt.Errorf("last balance: %w", err)
	}
	return b, nil
}

// ListByItem lista el historial filtrado, más reciente primero.
func (r *InventoryTransactionRepo) ListByItem(ctx context.Context, itemID int64, f repository.TransactionFilter) ([]*entity.InventoryTransaction, error) {
	var c conditions
	c.add("inventory_item_id = $%d", itemID)
	switch f.Direction {
	case "add":
		c.and("change_in_sq_meter > 0")
	case "remove":
		c.and("change_in_sq_meter < 0")
	}
	if f.Search != "" {
		c.add("(reason ILIKE $%[1]d OR source_details ILIKE $%[1]d OR performed_by ILIKE $%[1]d)", likePattern(f.Search))
	}
	if f.From != nil {
		c.add("created_at >= $%d", *f.From)
	}
	if f.To != nil {
		c.add("created_at < $%d", *f.To)
	}
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions` + c.where() +
		` ORDER BY created_at DESC, id DESC`
	return r.list(ctx, query, c.args...)
}

// ListChronological devuelve el ledger completo en orden (created_at, id), el mismo que usa
// el historial invertido.
func (r *InventoryTransactionRepo) ListChronological(ctx context.Context, itemID int64) ([]*entity.InventoryTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM inventory_transactions WHERE inventory_item_id = $1 ORDER BY created_at, id`
	return r.list(ctx, query, itemID)
}

func (r *InventoryTransactionRepo) list(ctx context.Context, query string, args ...any) ([]*entity.InventoryTransaction, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	defer rows.Close()
	list := []*entity.InventoryTransaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory transaction: %w", err)
		}
		list = append(list, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list inventory transactions: %w", err)
	}
	return list, nil
}
