package inventory

import (
	"context"

	"github.com/stoneworks/inventory-api/internal/application/dto"
	"github.com/stoneworks/inventory-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción.
type Repos struct {
	Items            repository.InventoryItemRepository
	Transactions     repository.InventoryTransactionRepository
	Procurements     repository.ProcurementRepository
	ProcurementItems repository.ProcurementItemRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error se hace Rollback de todo lo escrito.
type TxRunner interface {
	Run(ctx context.Context, fn func(r Repos) error) error
}

// HistorySpreadsheet puerto de salida para exportar el historial de una línea.
type HistorySpreadsheet interface {
	GenerateHistoryXLSX(ctx context.Context, history *dto.InventoryHistoryResponse) ([]byte, error)
}
